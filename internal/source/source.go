// Package source loads the text file to be checked.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	apperrors "github.com/zorak1103/bracecheck/internal/errors"
)

// ErrInvalidUTF8 is returned (wrapped in a LoadError) when the file is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// errNoPath is returned when no file was named.
var errNoPath = errors.New("no file path given")

// newlines translates CRLF and lone CR to LF, matching text-mode reads.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Load reads the whole file at path into memory and returns its text.
// The file handle is closed before Load returns, on every path.
// A byte order mark is kept and counts as a character.
func Load(path string) (string, error) {
	if path == "" {
		return "", &apperrors.LoadError{Op: "open", Err: errNoPath}
	}

	f, err := os.Open(path) // #nosec G304 -- reading the user-named file is the purpose of the tool
	if err != nil {
		return "", &apperrors.LoadError{Path: path, Op: "open", Err: err}
	}
	defer f.Close() // nolint:errcheck // read-only handle

	data, err := io.ReadAll(f)
	if err != nil {
		return "", &apperrors.LoadError{Path: path, Op: "read", Err: err}
	}

	if !utf8.Valid(data) {
		return "", &apperrors.LoadError{Path: path, Op: "decode", Err: invalidAt(data)}
	}

	return newlines.Replace(string(data)), nil
}

// invalidAt reports the byte offset of the first invalid UTF-8 sequence.
func invalidAt(data []byte) error {
	off := 0
	for off < len(data) {
		r, size := utf8.DecodeRune(data[off:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		off += size
	}
	return fmt.Errorf("%w (byte offset %d)", ErrInvalidUTF8, off)
}
