// =============================================================================
// Sales Analytics - Input Reader
// =============================================================================
//
// This file handles reading the raw sales export from disk. Legacy exports
// arrive in inconsistent encodings, so the reader tries an ordered list of
// codecs until one succeeds. The first line of the file is a column header
// and is discarded; blank lines are dropped.
//
// =============================================================================

package salesparser

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DefaultEncodings is the codec order used when the configuration does not
// specify one.
var DefaultEncodings = []string{"UTF-8", "ISO-8859-1", "Windows-1252"}

// ReadLines reads the input file and returns its data lines: the header line
// is stripped and blank lines are removed. The encodings are tried in order;
// the first one that decodes the file is used.
//
// A missing file is the one fatal condition at this stage and is returned as
// an error. A file that decodes under none of the codecs yields an empty
// line set and no error.
func ReadLines(path string, encodings []string) ([]string, error) {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	for _, enc := range encodings {
		text, ok := decode(raw, enc)
		if !ok {
			continue
		}
		return splitDataLines(text), nil
	}

	return nil, nil
}

// decode decodes raw bytes using the named codec. The boolean result reports
// whether the bytes are representable in that codec.
func decode(raw []byte, encoding string) (string, bool) {
	switch strings.ToUpper(encoding) {
	case "UTF-8", "UTF8":
		if !utf8.Valid(raw) {
			return "", false
		}
		return string(raw), true
	case "ISO-8859-1", "LATIN-1", "LATIN1":
		text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", false
		}
		return string(text), true
	case "WINDOWS-1252", "CP1252":
		text, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return "", false
		}
		return string(text), true
	default:
		return "", false
	}
}

// splitDataLines splits decoded file content into trimmed data lines,
// discarding the header line, a leading byte-order mark, and blank lines.
func splitDataLines(text string) []string {
	text = strings.TrimPrefix(text, "\uFEFF")

	rawLines := strings.Split(text, "\n")
	if len(rawLines) <= 1 {
		return nil
	}

	// Index 0 is the column header.
	lines := make([]string, 0, len(rawLines)-1)
	for _, line := range rawLines[1:] {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
