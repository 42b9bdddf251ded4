package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func touch(t *testing.T, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.mid"))
	touch(t, filepath.Join(dir, "a", "x.midi"))
	touch(t, filepath.Join(dir, "a", "notes.txt"))
	touch(t, filepath.Join(dir, "c.csv"))

	all, err := GatherAllMidiPaths(dir, 0)
	one, err2 := GatherAllMidiPaths(dir, 1)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Nil(err2)
	assert.Equal([]string{filepath.Join(dir, "a", "x.midi"), filepath.Join(dir, "b.mid")}, all)
	assert.Len(one, 1)
}

func TestGatherMissingDir(t *testing.T) {
	_, err := GatherAllMidiPaths(filepath.Join(t.TempDir(), "missing"), 0)

	assert.New(t).NotNil(err)
}
