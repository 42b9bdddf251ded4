// Package absolute converts a decoded track from delta ticks to absolute
// offsets and works out how long each note sounds.
package absolute

import (
	"fmt"

	"github.com/jsphweid/midirect/model"
)

// Track keeps note-on, tempo, key and time signature events, each stamped
// with its absolute offset. A note-off closes the oldest open note of the
// same pitch. Notes still open at the end of the track last until its end.
func Track(track model.RawTrack) (model.Track, []model.Warning) {
	var res model.Track
	var warnings []model.Warning
	// indexes into res, oldest first
	var open []int
	var offset uint64

	closeAll := func() {
		for _, i := range open {
			res[i].Duration = offset - res[i].Offset
		}
	}

	for _, raw := range track {
		offset += uint64(raw.Delta)
		switch raw.Kind {
		case model.RawNoteOn:
			res = append(res, model.Event{
				Kind:     model.NoteOn,
				Offset:   offset,
				Pitch:    raw.Pitch,
				Velocity: raw.Velocity,
			})
			open = append(open, len(res)-1)
		case model.RawTempo:
			res = append(res, model.Event{Kind: model.Tempo, Offset: offset, MicrosPerBeat: raw.MicrosPerBeat})
		case model.RawKeySignature:
			res = append(res, model.Event{Kind: model.KeySignature, Offset: offset, Fifths: raw.Fifths, Minor: raw.Minor})
		case model.RawTimeSignature:
			res = append(res, model.Event{
				Kind:        model.TimeSignature,
				Offset:      offset,
				Numerator:   raw.Numerator,
				Denominator: raw.Denominator,
			})
		case model.RawNoteOff:
			found := -1
			for q, i := range open {
				if res[i].Pitch == raw.Pitch {
					found = q
					break
				}
			}
			if found < 0 {
				warnings = append(warnings, model.Warning{
					Kind:   model.UnmatchedNoteOff,
					Offset: offset,
					Detail: fmt.Sprintf("pitch %v", raw.Pitch),
				})
				continue
			}
			i := open[found]
			res[i].Duration = offset - res[i].Offset
			open = append(open[:found], open[found+1:]...)
		case model.RawEndOfTrack:
			closeAll()
			return res, warnings
		}
	}

	closeAll()
	return res, warnings
}
