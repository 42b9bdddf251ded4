package manifest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/midirect/composer"
	"github.com/jsphweid/midirect/csvfile"
	"github.com/jsphweid/midirect/model"
	"github.com/jsphweid/midirect/rect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestToNameCase(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Test", ToNameCase("Test"))
	assert.Equal("FirstL", ToNameCase("FirstL"))
	assert.Equal("Allcaps", ToNameCase("ALLCAPS"))
}

func TestPerformer(t *testing.T) {
	p, err := Performer("Bach/Fugue/bwv_846/Shi05M.mid")
	caps, err2 := Performer("Chopin/Ballades/1/KOLESSOVA02.mid")
	_, err3 := Performer("nofolder.mid")

	assert := assert.New(t)
	assert.Nil(err)
	assert.Nil(err2)
	assert.Equal("Shi", p)
	assert.Equal("Kolessova", caps)
	assert.NotNil(err3)
}

func table() *csvfile.Table {
	return &csvfile.Table{
		Header: []string{"composer", "title", "midi_score", "midi_performance"},
		Rows: []map[string]string{
			{"composer": "Bach", "title": "Fugue", "midi_score": "Bach/Fugue/midi_score.mid", "midi_performance": "Bach/Fugue/Shi05M.mid"},
			{"composer": "bach", "title": "Fugue", "midi_score": "Bach/Fugue/midi_score.mid", "midi_performance": "Bach/Fugue/Lee01.mid"},
		},
	}
}

func TestFileList(t *testing.T) {
	assert.New(t).Equal([]string{
		"Bach/Fugue/Shi05M.mid",
		"Bach/Fugue/midi_score.mid",
		"Bach/Fugue/Lee01.mid",
	}, FileList(table()))
}

func TestEnrich(t *testing.T) {
	tbl := table()

	err := Enrich(tbl, composer.Default)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal([]string{
		"composer", "year_born", "year_died", "title", "midi_score", "performer",
		"midi_performance", "csv_score", "csv_performance",
	}, tbl.Header)
	row := tbl.Rows[0]
	assert.Equal("1685", row["year_born"])
	assert.Equal("1750", row["year_died"])
	assert.Equal("Shi", row["performer"])
	assert.Equal("Bach/Fugue/midi_score.csv", row["csv_score"])
	assert.Equal("Bach/Fugue/Shi05M.csv", row["csv_performance"])

	// enriching twice does not add columns again
	assert.Nil(Enrich(tbl, composer.Default))
	assert.Len(tbl.Header, 9)
}

func TestEnrichUnknownComposer(t *testing.T) {
	tbl := table()
	tbl.Rows[1]["composer"] = "Salieri"

	err := Enrich(tbl, composer.Default)

	assert.New(t).Equal(composer.ErrNotFound, errors.Cause(err))
}

func writeMidi(t *testing.T, path string) {
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 62, 64))
	tr.Add(96, gomidi.NoteOff(0, 62))
	tr.Close(0)
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(96)
	if err := s.Add(tr); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range FileList(table()) {
		writeMidi(t, filepath.Join(dir, rel))
	}
	path := filepath.Join(dir, "metadata.csv")
	tbl := table()
	tbl.Path = path
	if _, err := tbl.Write(); err != nil {
		t.Fatal(err)
	}

	err := Execute(context.Background(), path, Options{
		Rect:      rect.Options{Layout: model.Wide},
		Composers: composer.Default,
	})

	assert := assert.New(t)
	assert.Nil(err)
	for _, rel := range []string{"Bach/Fugue/Shi05M.csv", "Bach/Fugue/midi_score.csv", "Bach/Fugue/Lee01.csv"} {
		_, statErr := os.Stat(filepath.Join(dir, rel))
		assert.Nil(statErr, rel)
	}
	updated, readErr := csvfile.Read(path)
	assert.Nil(readErr)
	assert.Contains(updated.Header, "csv_performance")
	assert.Equal("Lee", updated.Rows[1]["performer"])
}

func TestExecuteStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	// only the score exists, the first performance is missing
	writeMidi(t, filepath.Join(dir, "Bach/Fugue/midi_score.mid"))
	path := filepath.Join(dir, "metadata.csv")
	tbl := table()
	tbl.Path = path
	if _, err := tbl.Write(); err != nil {
		t.Fatal(err)
	}

	err := Execute(context.Background(), path, Options{
		Rect:      rect.Options{Layout: model.Wide},
		Composers: composer.Default,
	})

	assert := assert.New(t)
	assert.NotNil(err)
	_, statErr := os.Stat(filepath.Join(dir, "Bach/Fugue/midi_score.csv"))
	assert.True(os.IsNotExist(statErr))
	unchanged, _ := csvfile.Read(path)
	assert.Len(unchanged.Header, 4)
}
