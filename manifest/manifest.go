// Package manifest converts every MIDI file listed in an ASAP style
// manifest and enriches the manifest with performer, composer and CSV
// columns.
package manifest

import (
	"context"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/hako/durafmt"
	"github.com/jsphweid/midirect/composer"
	"github.com/jsphweid/midirect/csvfile"
	"github.com/jsphweid/midirect/file"
	"github.com/jsphweid/midirect/rect"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	colComposer        = "composer"
	colYearBorn        = "year_born"
	colYearDied        = "year_died"
	colMidiScore       = "midi_score"
	colMidiPerformance = "midi_performance"
	colPerformer       = "performer"
	colCsvScore        = "csv_score"
	colCsvPerformance  = "csv_performance"
)

type Options struct {
	// Root is the directory manifest paths are relative to. Empty means the
	// manifest's own directory.
	Root      string
	Rect      rect.Options
	Composers composer.Source
}

var performerRe = regexp.MustCompile(`/([a-zA-Z]+)[^/]+$`)
var allCapsRe = regexp.MustCompile(`^[A-Z]+$`)
var titleCaser = cases.Title(language.Und)

// Execute converts every file in the manifest at path, one at a time,
// stopping at the first failure, then rewrites the manifest.
func Execute(ctx context.Context, path string, opts Options) error {
	table, err := csvfile.Read(path)
	if err != nil {
		return err
	}
	root := opts.Root
	if root == "" {
		root = filepath.Dir(path)
	}

	if err := Process(ctx, root, FileList(table), opts.Rect); err != nil {
		return err
	}
	if err := Enrich(table, opts.Composers); err != nil {
		return err
	}
	_, err = table.Write()
	return err
}

// FileList returns every performance and each distinct score.
func FileList(table *csvfile.Table) []string {
	var res []string
	for _, row := range table.Rows {
		res = append(res, row[colMidiPerformance])
		if !slices.Contains(res, row[colMidiScore]) {
			res = append(res, row[colMidiScore])
		}
	}
	return res
}

// Process converts each relative MIDI path under root to a CSV beside it.
func Process(ctx context.Context, root string, list []string, opts rect.Options) error {
	logger := charmlog.FromContext(ctx)
	start := time.Now()
	for i, rel := range list {
		if err := ctx.Err(); err != nil {
			return err
		}
		src := filepath.Join(root, rel)
		dst := file.CsvPath(src)
		logger.Info("processing", "file", i+1, "of", len(list), "src", src, "dst", dst)
		if err := file.Convert(ctx, src, dst, opts); err != nil {
			return err
		}
	}
	logger.Info("processed manifest", "files", len(list), "elapsed", durafmt.Parse(time.Since(start)).LimitFirstN(2).String())
	return nil
}

// Enrich adds performer, year_born, year_died, csv_score and csv_performance
// to every row. A composer missing from source is an error.
func Enrich(table *csvfile.Table, source composer.Source) error {
	for _, row := range table.Rows {
		c, err := source.Lookup(row[colComposer])
		if err != nil {
			return err
		}
		performer, err := Performer(row[colMidiPerformance])
		if err != nil {
			return err
		}
		row[colPerformer] = performer
		row[colCsvScore] = file.CsvPath(row[colMidiScore])
		row[colCsvPerformance] = file.CsvPath(row[colMidiPerformance])
		row[colYearBorn] = strconv.FormatUint(uint64(c.YearBorn), 10)
		row[colYearDied] = ""
		if c.YearDied != 0 {
			row[colYearDied] = strconv.FormatUint(uint64(c.YearDied), 10)
		}
	}

	h := table.Header
	if !slices.Contains(h, colCsvScore) {
		h = append(h, colCsvScore)
	}
	if !slices.Contains(h, colPerformer) {
		h = slices.Insert(h, slices.Index(h, colMidiScore)+1, colPerformer)
	}
	if !slices.Contains(h, colCsvPerformance) {
		h = append(h, colCsvPerformance)
	}
	if !slices.Contains(h, colYearBorn) {
		h = slices.Insert(h, slices.Index(h, colComposer)+1, colYearBorn)
	}
	if !slices.Contains(h, colYearDied) {
		h = slices.Insert(h, slices.Index(h, colYearBorn)+1, colYearDied)
	}
	table.Header = h
	return nil
}

// Performer pulls the leading letters of a performance file name,
// e.g. Bach/Fugue/bwv_846/Shi05M.mid gives Shi.
func Performer(midiPerformance string) (string, error) {
	m := performerRe.FindStringSubmatch(midiPerformance)
	if m == nil {
		return "", errors.Errorf("no performer in %q", midiPerformance)
	}
	return ToNameCase(m[1]), nil
}

// ToNameCase turns an all caps name into a capitalized one and leaves any
// other name alone.
func ToNameCase(name string) string {
	if allCapsRe.MatchString(name) {
		return titleCaser.String(strings.ToLower(name))
	}
	return name
}
