// Package rect flattens an annotated, ordered track into CSV rows.
package rect

import (
	"strconv"

	"github.com/jsphweid/midirect/format"
	"github.com/jsphweid/midirect/model"
	"github.com/pkg/errors"
)

var narrowHeader = []string{
	"type",
	"tick_offset",
	"tick_duration",
	"value_raw",
	"value_pretty",
	"canonical",
	"density",
	"interval",
}

var wideHeader = append(append([]string{}, narrowHeader...),
	"tempo",
	"time_signature",
	"key_signature",
)

type Options struct {
	Layout model.Layout
	// IntervalNames writes "Major Third" instead of the degree code "3".
	IntervalNames bool
}

func Header(layout model.Layout) []string {
	if layout == model.Narrow {
		return append([]string{}, narrowHeader...)
	}
	return append([]string{}, wideHeader...)
}

// Rows returns one row per event. Note rows are spelled with the most recent
// key signature; in the wide layout they also repeat the most recent tempo,
// time and key signature.
func Rows(track model.Track, opts Options) ([]model.Row, error) {
	var lastTempo, lastTS, lastKS *model.Event
	res := make([]model.Row, 0, len(track))

	for i := range track {
		event := track[i]
		row := model.Row{
			Type:         event.Kind.String(),
			TickOffset:   event.Offset,
			TickDuration: event.Duration,
		}
		switch event.Kind {
		case model.NoteOn:
			var ks model.Event
			if lastKS != nil {
				ks = *lastKS
			}
			row.ValueRaw = format.NoteRaw(event)
			row.ValuePretty = format.NotePretty(event, ks)
			row.Canonical = format.NoteCanonical(event)
			row.Density = format.Density(event.Density)
			if event.Interval != nil {
				row.Interval = event.Interval.Degree()
				if opts.IntervalNames {
					row.Interval = event.Interval.String()
				}
			}
			if opts.Layout != model.Narrow {
				if lastTempo != nil {
					row.Tempo = format.TempoPretty(*lastTempo)
				}
				if lastTS != nil {
					row.TimeSignature = format.TimeSignaturePretty(*lastTS)
				}
				if lastKS != nil {
					row.KeySignature = format.KeySignaturePretty(*lastKS)
				}
			}
		case model.Tempo:
			lastTempo = &track[i]
			row.ValueRaw = format.TempoRaw(event)
			row.ValuePretty = format.TempoPretty(event)
		case model.KeySignature:
			lastKS = &track[i]
			row.ValueRaw = format.KeySignatureRaw(event)
			row.ValuePretty = format.KeySignaturePretty(event)
		case model.TimeSignature:
			lastTS = &track[i]
			row.ValueRaw = format.TimeSignatureRaw(event)
			row.ValuePretty = format.TimeSignaturePretty(event)
		case model.TicksPerBeat:
			row.ValueRaw = format.TicksPerBeat(event)
			row.ValuePretty = format.TicksPerBeat(event)
		default:
			return nil, errors.Errorf("unknown event kind %v at offset %v", event.Kind, event.Offset)
		}
		res = append(res, row)
	}
	return res, nil
}

// Fields lays a row out in header order for the given layout.
func Fields(row model.Row, layout model.Layout) []string {
	res := []string{
		row.Type,
		strconv.FormatUint(row.TickOffset, 10),
		strconv.FormatUint(row.TickDuration, 10),
		row.ValueRaw,
		row.ValuePretty,
		row.Canonical,
		row.Density,
		row.Interval,
	}
	if layout == model.Narrow {
		return res
	}
	return append(res, row.Tempo, row.TimeSignature, row.KeySignature)
}

// Records is the header followed by every row, ready for a CSV writer.
func Records(rows []model.Row, layout model.Layout) [][]string {
	res := make([][]string, 0, len(rows)+1)
	res = append(res, Header(layout))
	for _, row := range rows {
		res = append(res, Fields(row, layout))
	}
	return res
}
