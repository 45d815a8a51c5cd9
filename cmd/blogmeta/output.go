package main

import (
	"encoding/json"
	"io"
)

// writeJSON writes v to w as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// orEmpty returns an empty slice in place of nil so JSON output is "[]".
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
