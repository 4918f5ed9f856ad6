package io

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/routeperm/pkg/errors"
	"github.com/matzehuels/routeperm/pkg/lookup"
	"github.com/matzehuels/routeperm/pkg/route"
)

// ReadLookup decodes a JSON array of lookup records from r and parses them
// into a table.
//
// ReadLookup returns PARSE_ERROR if the JSON is malformed or a coordinate is
// not a decimal. An empty array is valid and yields an empty table.
// ReadLookup does not close r.
func ReadLookup(r io.Reader) (*lookup.Table, error) {
	var records []lookup.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode lookup table")
	}
	return lookup.FromRecords(records)
}

// ImportLookup reads the lookup file at path.
func ImportLookup(path string) (*lookup.Table, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadLookup(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "read %s", path)
	}
	return t, nil
}

// ReadRequest decodes a JSON array of route requests from r and returns the
// first one. An empty array is INVALID_INPUT.
func ReadRequest(r io.Reader) (route.Request, error) {
	var reqs []route.Request
	if err := json.NewDecoder(r).Decode(&reqs); err != nil {
		return route.Request{}, errors.Wrap(errors.ErrCodeParse, err, "decode route request")
	}
	if len(reqs) == 0 {
		return route.Request{}, errors.New(errors.ErrCodeInvalidInput, "route request file lists no endpoints")
	}
	return reqs[0], nil
}

// ImportRequest reads the route request file at path.
func ImportRequest(path string) (route.Request, error) {
	f, err := open(path)
	if err != nil {
		return route.Request{}, err
	}
	defer f.Close()

	req, err := ReadRequest(f)
	if err != nil {
		return route.Request{}, errors.Wrap(errors.GetCode(err), err, "read %s", path)
	}
	return req, nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	return f, nil
}
