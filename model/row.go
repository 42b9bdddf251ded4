package model

// Layout selects how context events are flattened into rows.
type Layout string

const (
	// Wide repeats the active tempo, time and key signature on every note row.
	Wide Layout = "wide"
	// Narrow keeps context in its own rows only.
	Narrow Layout = "narrow"
)

type Row struct {
	Type         string
	TickOffset   uint64
	TickDuration uint64
	ValueRaw     string
	ValuePretty  string
	Canonical    string
	Density      string
	Interval     string

	// wide only
	Tempo         string
	TimeSignature string
	KeySignature  string
}
