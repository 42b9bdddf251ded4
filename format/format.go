// Package format renders event payloads as the raw, pretty and canonical
// strings written to the CSV columns.
package format

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jsphweid/midirect/constants"
	"github.com/jsphweid/midirect/model"
)

var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// index is fifths + 7
var keyNames = [15]string{"Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#"}

func NoteRaw(e model.Event) string {
	return fmt.Sprintf("%v:%v", e.Pitch, e.Velocity)
}

// NoteCanonical spells a pitch with flats regardless of key so the same
// pitch always gets the same name.
func NoteCanonical(e model.Event) string {
	return noteName(e.Pitch, flatNames)
}

// NotePretty spells a pitch with flats in flat keys and sharps otherwise.
func NotePretty(e model.Event, keySignature model.Event) string {
	if keySignature.Fifths < 0 {
		return noteName(e.Pitch, flatNames)
	}
	return noteName(e.Pitch, sharpNames)
}

func noteName(pitch uint8, names [12]string) string {
	// octaves count from MIDI note 0, so middle C (60) is C5
	return fmt.Sprintf("%s%d", names[pitch%12], pitch/12)
}

func TempoRaw(e model.Event) string {
	return strconv.FormatUint(uint64(e.MicrosPerBeat), 10)
}

// TempoPretty is the tempo in beats per minute.
func TempoPretty(e model.Event) string {
	if e.MicrosPerBeat == 0 {
		return ""
	}
	return formatFloat(float64(constants.MicrosPerMinute) / float64(e.MicrosPerBeat))
}

func TimeSignatureRaw(e model.Event) string {
	return fmt.Sprintf("%v:%v", e.Numerator, e.Denominator)
}

func TimeSignaturePretty(e model.Event) string {
	return fmt.Sprintf("%v/%v", e.Numerator, e.Denominator)
}

func KeySignatureRaw(e model.Event) string {
	scale := 0
	if e.Minor {
		scale = 1
	}
	return fmt.Sprintf("%v:%v", e.Fifths, scale)
}

func KeySignaturePretty(e model.Event) string {
	scale := "Major"
	if e.Minor {
		scale = "Minor"
	}
	if e.Fifths < -7 || e.Fifths > 7 {
		return "Unknown " + scale
	}
	return keyNames[int(e.Fifths)+7] + " " + scale
}

func TicksPerBeat(e model.Event) string {
	return strconv.FormatUint(uint64(e.Resolution), 10)
}

func Density(d float64) string {
	factor := math.Pow(10, constants.DensityPrecision)
	return formatFloat(math.Round(d*factor) / factor)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
