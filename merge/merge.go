package merge

import (
	"sort"

	"github.com/jsphweid/midirect/model"
)

// Tracks joins every track into one sequence ordered by offset and then by
// kind. Duplicates are kept; the normalizer deals with them.
func Tracks(tracks []model.Track) model.Track {
	var n int
	for _, track := range tracks {
		n += len(track)
	}
	res := make(model.Track, 0, n)
	for _, track := range tracks {
		res = append(res, track...)
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Offset != res[j].Offset {
			return res[i].Offset < res[j].Offset
		}
		return res[i].Kind < res[j].Kind
	})
	return res
}
