package model

import "fmt"

// Interval is a semitone distance reduced to a single octave.
type Interval uint8

const (
	PerfectUnison Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	DiminishedFifth
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
)

var intervalNames = [...]string{
	"Perfect Unison",
	"Minor Second",
	"Major Second",
	"Minor Third",
	"Major Third",
	"Perfect Fourth",
	"Diminished Fifth",
	"Perfect Fifth",
	"Minor Sixth",
	"Major Sixth",
	"Minor Seventh",
	"Major Seventh",
}

// scale degree codes, half steps written as .5
var intervalDegrees = [...]string{
	"1", "1.5", "2", "2.5", "3", "4", "4.5", "5", "5.5", "6", "6.5", "7",
}

func (i Interval) String() string {
	if int(i) < len(intervalNames) {
		return intervalNames[i]
	}
	return fmt.Sprintf("Interval(%d)", uint8(i))
}

func (i Interval) Degree() string {
	if int(i) < len(intervalDegrees) {
		return intervalDegrees[i]
	}
	return ""
}
