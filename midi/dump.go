package midi

import (
	"fmt"
	"io"

	"github.com/jsphweid/midirect/model"
)

// Dump writes a human readable listing of a decoded song.
func Dump(w io.Writer, song *model.Song) {
	fmt.Fprintf(w, "ticks per beat: %v\n", song.TicksPerBeat)
	fmt.Fprintf(w, "tracks: %v\n", len(song.Tracks))
	for i, track := range song.Tracks {
		fmt.Fprintf(w, "track %v (%v events)\n", i, len(track))
		var abs uint64
		for _, event := range track {
			abs += uint64(event.Delta)
			fmt.Fprintf(w, "  %8d +%-6d %-14v %s\n", abs, event.Delta, event.Kind, describe(event))
		}
	}
}

func describe(event model.RawEvent) string {
	switch event.Kind {
	case model.RawNoteOn:
		return fmt.Sprintf("pitch=%v velocity=%v", event.Pitch, event.Velocity)
	case model.RawNoteOff:
		return fmt.Sprintf("pitch=%v", event.Pitch)
	case model.RawTempo:
		return fmt.Sprintf("microsecondsPerBeat=%v", event.MicrosPerBeat)
	case model.RawTimeSignature:
		return fmt.Sprintf("%v/%v", event.Numerator, event.Denominator)
	case model.RawKeySignature:
		return fmt.Sprintf("fifths=%v minor=%v", event.Fifths, event.Minor)
	}
	return ""
}
