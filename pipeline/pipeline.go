// Package pipeline runs a decoded song through every stage, from delta
// ticks to flattened rows.
package pipeline

import (
	"github.com/jsphweid/midirect/absolute"
	"github.com/jsphweid/midirect/merge"
	"github.com/jsphweid/midirect/metrics"
	"github.com/jsphweid/midirect/model"
	"github.com/jsphweid/midirect/normalize"
	"github.com/jsphweid/midirect/order"
	"github.com/jsphweid/midirect/rect"
)

type Result struct {
	Events   model.Track
	Rows     []model.Row
	Warnings []model.Warning
}

// Events returns the merged, normalized, ordered and annotated events of song.
func Events(song *model.Song) (model.Track, []model.Warning) {
	var warnings []model.Warning
	tracks := make([]model.Track, 0, len(song.Tracks))
	for _, raw := range song.Tracks {
		track, w := absolute.Track(raw)
		warnings = append(warnings, w...)
		tracks = append(tracks, track)
	}

	merged := merge.Tracks(tracks)
	normalized, w := normalize.Track(merged, song.TicksPerBeat)
	warnings = append(warnings, w...)
	sorted := order.Sort(normalized)
	return metrics.Annotate(sorted, uint64(song.TicksPerBeat)), warnings
}

func Run(song *model.Song, opts rect.Options) (*Result, error) {
	events, warnings := Events(song)
	rows, err := rect.Rows(events, opts)
	if err != nil {
		return nil, err
	}
	return &Result{Events: events, Rows: rows, Warnings: warnings}, nil
}
