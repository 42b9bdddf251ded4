package model

import "fmt"

type WarningKind uint8

const (
	UnmatchedNoteOff WarningKind = iota
	MultipleContextEvents
)

func (k WarningKind) String() string {
	switch k {
	case UnmatchedNoteOff:
		return "note off missing partner"
	case MultipleContextEvents:
		return "multiple context events"
	}
	return fmt.Sprintf("warning(%d)", uint8(k))
}

// Warning records a condition that was corrected without stopping the pipeline.
type Warning struct {
	Kind   WarningKind
	Offset uint64
	Detail string
}

func (w Warning) String() string {
	return fmt.Sprintf("%v at %d: %s", w.Kind, w.Offset, w.Detail)
}
