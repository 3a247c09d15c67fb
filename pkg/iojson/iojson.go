// Package iojson writes and reads the JSON documents the CLI exchanges with
// scripts: indented documents, one-object-per-line streams and file or stdin
// input.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// marshalFailure renders a JSON error document by hand, since the value that
// failed to marshal cannot be part of it.
func marshalFailure(err error) string {
	msg, _ := json.Marshal(err.Error())
	return fmt.Sprintf(`{"message":"could not encode output","data":{"json_error":%s}}`, msg)
}

// WriteWith writes obj to w as indented JSON. When obj cannot be marshaled an
// error document is written to ew and the marshal error is returned.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintln(ew, marshalFailure(err))
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteLine writes obj as a single line of compact JSON.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("encode line: %w", err)
	}
	_, err = fmt.Fprintln(w, string(bits))
	return err
}
