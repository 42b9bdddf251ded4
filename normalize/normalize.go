// Package normalize makes sure a merged track opens with exactly one tempo,
// key signature, time signature and ticks-per-beat event.
package normalize

import (
	"fmt"

	"github.com/jsphweid/midirect/constants"
	"github.com/jsphweid/midirect/model"
)

var kinds = []model.Kind{
	model.TimeSignature,
	model.KeySignature,
	model.Tempo,
	model.TicksPerBeat,
}

func defaultEvent(kind model.Kind, ticksPerBeat uint16) model.Event {
	switch kind {
	case model.TimeSignature:
		return model.Event{
			Kind:        model.TimeSignature,
			Numerator:   constants.DefaultNumerator,
			Denominator: constants.DefaultDenominator,
		}
	case model.KeySignature:
		return model.Event{Kind: model.KeySignature, Fifths: constants.DefaultFifths}
	case model.Tempo:
		return model.Event{Kind: model.Tempo, MicrosPerBeat: constants.DefaultMicrosPerBeat}
	}
	return model.Event{Kind: model.TicksPerBeat, Resolution: ticksPerBeat}
}

// Track adds a default at offset 0 for each missing kind and keeps only the
// last of several offset-0 events of the same kind. Ticks-per-beat never
// comes from the decoder, so the first pass always adds it. The result is
// not sorted.
func Track(track model.Track, ticksPerBeat uint16) (model.Track, []model.Warning) {
	var warnings []model.Warning
	drop := make(map[int]bool)
	var added model.Track

	for _, kind := range kinds {
		var found []int
		for i, event := range track {
			if event.Kind == kind && event.Offset == 0 {
				found = append(found, i)
			}
		}
		switch {
		case len(found) == 0:
			added = append(added, defaultEvent(kind, ticksPerBeat))
		case len(found) > 1:
			warnings = append(warnings, model.Warning{
				Kind:   model.MultipleContextEvents,
				Offset: 0,
				Detail: fmt.Sprintf("%v %v events, keeping the last", len(found), kind),
			})
			for _, i := range found[:len(found)-1] {
				drop[i] = true
			}
		}
	}

	res := make(model.Track, 0, len(track)-len(drop)+len(added))
	for i, event := range track {
		if !drop[i] {
			res = append(res, event)
		}
	}
	res = append(res, added...)
	return res, warnings
}
