package snyk

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	ErrNoInput      = errors.New("no data or input file provided")
	ErrInvalidInput = errors.New("the input data does not appear to be valid")
)

// ParseInput splits the output of one or more Snyk scans into per-project
// documents.
//
// The input is either a single report object, or an array of report objects
// as produced by `snyk test --all-projects --json`.
func ParseInput(data []byte) ([]Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoInput
	}

	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidInput
	}

	parsed := gjson.ParseBytes(data)

	switch {
	case parsed.IsObject():
		return []Document{Document(parsed.Raw)}, nil
	case parsed.IsArray():
		var err error
		docs := make([]Document, 0)

		parsed.ForEach(func(_, value gjson.Result) bool {
			if !value.IsObject() {
				err = fmt.Errorf("%w: element %d is a %s, not a project report", ErrInvalidInput, len(docs), value.Type)

				return false
			}
			docs = append(docs, Document(value.Raw))

			return true
		})

		if err != nil {
			return nil, err
		}

		return docs, nil
	default:
		return nil, fmt.Errorf("%w: expected a project report or an array of them, got %s", ErrInvalidInput, parsed.Type)
	}
}
