package model

import "fmt"

// Kind is the closed set of event kinds that survive decoding. The numeric
// order doubles as the tie-break priority for events sharing an offset.
type Kind uint8

const (
	TicksPerBeat Kind = iota
	KeySignature
	TimeSignature
	Tempo
	NoteOn
)

func (k Kind) String() string {
	switch k {
	case TicksPerBeat:
		return "ticks_per_quarter"
	case KeySignature:
		return "key_signature"
	case TimeSignature:
		return "time_signature"
	case Tempo:
		return "tempo"
	case NoteOn:
		return "note"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

type Event struct {
	Kind     Kind
	Offset   uint64
	Duration uint64

	// NoteOn
	Pitch    uint8
	Velocity uint8

	// Tempo
	MicrosPerBeat uint32

	// TimeSignature
	Numerator   uint8
	Denominator uint8

	// KeySignature
	Fifths int8
	Minor  bool

	// TicksPerBeat
	Resolution uint16

	// set on notes by metrics.Annotate
	Density  float64
	Interval *Interval
}

type Track = []Event
