package model

// RawKind is what the decoder reports for a single track event.
type RawKind uint8

const (
	RawOther RawKind = iota
	RawNoteOn
	RawNoteOff
	RawTempo
	RawKeySignature
	RawTimeSignature
	RawEndOfTrack
)

func (k RawKind) String() string {
	switch k {
	case RawNoteOn:
		return "NoteOn"
	case RawNoteOff:
		return "NoteOff"
	case RawTempo:
		return "SetTempo"
	case RawKeySignature:
		return "KeySignature"
	case RawTimeSignature:
		return "TimeSignature"
	case RawEndOfTrack:
		return "EndOfTrack"
	}
	return "Other"
}

type RawEvent struct {
	Delta uint32
	Kind  RawKind

	Pitch         uint8
	Velocity      uint8
	MicrosPerBeat uint32
	Numerator     uint8
	Denominator   uint8
	Fifths        int8
	Minor         bool
}

type RawTrack = []RawEvent

type Song struct {
	TicksPerBeat uint16
	Tracks       []RawTrack
}
