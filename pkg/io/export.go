package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/routeperm/pkg/errors"
)

// Summary is the start/end distance record written once per run.
// Distance is a string with one decimal so the file matches what downstream
// import scripts already parse.
type Summary struct {
	RunID       string    `json:"run_id"`
	FromState   string    `json:"from_state"`
	FromZipCode string    `json:"from_zipcode"`
	ToState     string    `json:"to_state"`
	ToZipCode   string    `json:"to_zipcode"`
	Distance    string    `json:"distance"`
	Unit        string    `json:"unit"`
	CreatedAt   time.Time `json:"created_at"`
}

// WriteSummary encodes s as indented JSON to w.
func WriteSummary(s Summary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode distance summary")
	}
	return nil
}

// ExportSummary writes s to path, replacing any existing file.
func ExportSummary(s Summary, path string) error {
	f, err := Create(path)
	if err != nil {
		return err
	}
	if err := WriteSummary(s, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}

// ReadSummary decodes a summary previously written by [WriteSummary].
func ReadSummary(r io.Reader) (Summary, error) {
	var s Summary
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeParse, err, "decode distance summary")
	}
	return s, nil
}

// Create opens path for writing, truncating an existing file and creating
// missing parent directories. The path is validated first.
func Create(path string) (*os.File, error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "create directory %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	return f, nil
}
