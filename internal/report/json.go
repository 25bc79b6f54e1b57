package report

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/arloliu/coldplan/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON writes res as an indented JSON document.
//
// Parameters:
//   - w: Destination
//   - res: Planning result
//   - withTable: Include the full plan table
//
// Returns:
//   - error: Encoding or write error
func WriteJSON(w io.Writer, res *types.Result, withTable bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(NewDocument(res, withTable)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}

// DecodeJSON reads a document previously written by WriteJSON.
func DecodeJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	return &doc, nil
}
