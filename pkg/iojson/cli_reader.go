package iojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrNoInput is returned by FileReader.Read when no file was named and stdin
// is an interactive terminal.
var ErrNoInput = errors.New("no input: pass --file or pipe JSON on stdin")

// FileReader decodes a JSON document of type T from the file named by its
// flag, or from stdin when the flag is unset.
type FileReader[T any] struct {
	path  string
	stdin io.Reader
}

// Flag returns the --file/-f flag bound to the reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "read JSON from `FILE` instead of stdin",
		TakesFile:   true,
		Destination: &fr.path,
	}
}

// SetStdin replaces os.Stdin as the fallback input.
func (fr *FileReader[T]) SetStdin(r io.Reader) {
	fr.stdin = r
}

// Read decodes one document of type T.
func (fr *FileReader[T]) Read() (T, error) {
	var doc T

	r, err := fr.open()
	if err != nil {
		return doc, err
	}
	defer func() { _ = r.Close() }()

	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return doc, fmt.Errorf("decode JSON: %w", err)
	}
	return doc, nil
}

func (fr *FileReader[T]) open() (io.ReadCloser, error) {
	if fr.path != "" {
		f, err := os.Open(fr.path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		return f, nil
	}

	if fr.stdin != nil {
		return io.NopCloser(fr.stdin), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNoInput
	}
	return io.NopCloser(os.Stdin), nil
}
