package order

import (
	"sort"

	"github.com/jsphweid/midirect/model"
)

// Less orders by offset, then kind priority, then ascending pitch for notes.
// Context events of the same kind at the same offset compare equal.
func Less(a, b model.Event) bool {
	if a.Offset != b.Offset {
		return a.Offset < b.Offset
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.Kind == model.NoteOn {
		return a.Pitch < b.Pitch
	}
	return false
}

// Sort orders track in place, keeping the input order of equal events.
func Sort(track model.Track) model.Track {
	sort.SliceStable(track, func(i, j int) bool {
		return Less(track[i], track[j])
	})
	return track
}
