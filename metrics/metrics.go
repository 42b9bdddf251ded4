// Package metrics annotates notes with a local density score and the
// interval to the following note.
package metrics

import (
	"math"

	"github.com/jsphweid/midirect/model"
)

// Annotate sets Density and Interval on every note of an ordered track.
// Context events take no part in either calculation. window is in ticks,
// normally the file's ticks per beat.
func Annotate(track model.Track, window uint64) model.Track {
	var notes []int
	for i, event := range track {
		if event.Kind == model.NoteOn {
			notes = append(notes, i)
		}
	}

	offsets := make([]uint64, len(notes))
	for n, i := range notes {
		offsets[n] = track[i].Offset
	}

	for n, i := range notes {
		track[i].Density = Density(offsets, n, window)
		track[i].Interval = nil
		if n < len(notes)-1 {
			interval, _ := Classify(int(track[notes[n+1]].Pitch) - int(track[i].Pitch))
			track[i].Interval = &interval
		}
	}
	return track
}

// Density counts the notes from the start of index's offset group up to the
// last note no later than window ticks after it, scaled by 1/sqrt(window).
// Sparse music stays below 1 but heavy clusters can exceed it.
func Density(offsets []uint64, index int, window uint64) float64 {
	offset := offsets[index]
	from := index
	for from > 0 && offsets[from-1] == offset {
		from--
	}
	to := index + 1
	for to < len(offsets) && offsets[to] <= offset+window {
		to++
	}
	return float64(to-from) / math.Sqrt(float64(window))
}

// Classify reduces a semitone difference to an interval within one octave,
// ignoring direction, and reports how many whole octaves were removed.
func Classify(difference int) (model.Interval, int) {
	if difference < 0 {
		difference = -difference
	}
	return model.Interval(difference % 12), difference / 12
}
