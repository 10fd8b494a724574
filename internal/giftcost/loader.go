package giftcost

import (
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/agbru/giftcalc/internal/errors"
)

// Load reads the file at path and parses one cost per line.
//
// A missing or unreadable file yields a *apperrors.FileAccessError. A line
// that is not a base-10 integer yields a *apperrors.ParseError carrying the
// line number and the offending text.
func Load(path string) (Costs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &apperrors.FileAccessError{Path: path, Cause: err}
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads r to the end and converts each line into a cost. source names
// the input in error messages and may be empty.
//
// Lines are separated by '\n'. A single empty token left by a final line
// terminator is ignored, so "5\n10\n" and "5\n10" both parse as [5 10]. Any
// other blank line is a parse error. Blank space around a value, including
// the '\r' of CRLF files, is trimmed before conversion.
func Parse(r io.Reader, source string) (Costs, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &apperrors.FileAccessError{Path: source, Cause: err}
	}

	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	costs := make(Costs, 0, len(lines))
	for i, line := range lines {
		token := strings.TrimSpace(line)
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, &apperrors.ParseError{Source: source, Line: i + 1, Token: line, Cause: err}
		}
		costs = append(costs, v)
	}
	return costs, nil
}
