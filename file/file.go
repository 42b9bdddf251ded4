// Package file converts one MIDI file into one CSV file.
package file

import (
	"context"
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/jsphweid/midirect/csvfile"
	"github.com/jsphweid/midirect/midi"
	"github.com/jsphweid/midirect/model"
	"github.com/jsphweid/midirect/pipeline"
	"github.com/jsphweid/midirect/rect"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// CsvPath swaps a .mid or .midi extension for .csv.
func CsvPath(midiPath string) string {
	for _, ext := range []string{".mid", ".midi"} {
		if strings.HasSuffix(midiPath, ext) {
			return strings.TrimSuffix(midiPath, ext) + ".csv"
		}
	}
	return midiPath + ".csv"
}

func rows(ctx context.Context, name string, s *smf.SMF, opts rect.Options) ([][]string, error) {
	song, err := midi.Decode(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", name)
	}
	res, err := pipeline.Run(song, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "converting %s", name)
	}
	logWarnings(ctx, name, res.Warnings)
	return rect.Records(res.Rows, opts.Layout), nil
}

func logWarnings(ctx context.Context, name string, warnings []model.Warning) {
	logger := charmlog.FromContext(ctx)
	for _, w := range warnings {
		logger.Warn(w.Kind.String(), "path", name, "offset", w.Offset, "detail", w.Detail)
	}
}

// Convert reads the MIDI file at src and writes its CSV rows to dst.
func Convert(ctx context.Context, src string, dst string, opts rect.Options) error {
	s, err := midi.ReadMidiFile(src)
	if err != nil {
		return errors.Wrapf(err, "reading %s", src)
	}
	records, err := rows(ctx, src, s, opts)
	if err != nil {
		return err
	}
	n, err := csvfile.Write(dst, records)
	if err != nil {
		return err
	}
	charmlog.FromContext(ctx).Info("wrote csv", "path", dst, "rows", len(records)-1, "size", humanize.Bytes(uint64(n)))
	return nil
}

// ConvertStream reads MIDI bytes from r and writes CSV to w.
func ConvertStream(ctx context.Context, name string, r io.Reader, w io.Writer, opts rect.Options) error {
	s, err := midi.ReadMidi(r)
	if err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	records, err := rows(ctx, name, s, opts)
	if err != nil {
		return err
	}
	return csvfile.WriteRecords(w, records)
}
