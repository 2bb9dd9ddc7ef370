package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncodings is the decoding priority used when none is configured:
// UTF-8 first, then the common Western legacy code page.
var DefaultEncodings = []string{"utf-8", "windows-1252"}

// ErrUndecodable is returned when no encoding could decode the input
var ErrUndecodable = errors.New("no encoding could decode input")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts data to a UTF-8 string, trying the named encodings in order.
// It returns the decoded text and the name of the encoding that succeeded.
func Decode(data []byte, encodings []string) (string, string, error) {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	for _, name := range encodings {
		text, err := decodeAs(data, name)
		if err != nil {
			continue
		}
		return text, name, nil
	}

	return "", "", ErrUndecodable
}

// ValidateEncoding reports whether name is an encoding Decode understands
func ValidateEncoding(name string) error {
	if isUTF8(name) {
		return nil
	}
	if _, err := htmlindex.Get(name); err != nil {
		return fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return nil
}

func decodeAs(data []byte, name string) (string, error) {
	if isUTF8(name) {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("input is not valid %s", name)
		}
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", name, err)
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding as %s: %w", name, err)
	}

	// Single-byte decoders substitute U+FFFD for bytes the code page does not define
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", fmt.Errorf("input has bytes undefined in %s", name)
	}

	return string(out), nil
}

func isUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return true
	}
	return false
}
