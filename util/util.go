package util

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func IsMidiPath(path string) bool {
	return strings.HasSuffix(path, ".mid") || strings.HasSuffix(path, ".midi")
}

// GatherAllMidiPaths walks path in lexical order and returns every MIDI file
// found, at most maxNum of them unless maxNum is 0.
func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrap(err, "Error walking")
		}
		if maxNum != 0 && len(res) >= maxNum {
			return filepath.SkipAll
		}
		if !d.IsDir() && IsMidiPath(s) {
			res = append(res, s)
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, err
	}
	return res, nil
}
