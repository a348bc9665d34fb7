package parsers

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
)

// CommentPrefix starts a comment line in the public suffix list format.
const CommentPrefix = "//"

// Lines returns the trimmed lines of `r`, skipping empty and comment lines.
func Lines(r io.Reader) SeriesParser[string] {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

type lineReader struct {
	scanner *bufio.Scanner
	lineNo  uint
}

func (l *lineReader) Position() string {
	return "line " + strconv.FormatUint(uint64(l.lineNo), 10)
}

func (l *lineReader) Next(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", NewNonResumableError(err)
		}

		l.lineNo++

		if !l.scanner.Scan() {
			break
		}

		line := strings.TrimSpace(l.scanner.Text())
		if len(line) > 0 && !strings.HasPrefix(line, CommentPrefix) {
			return line, nil
		}
	}

	if err := l.scanner.Err(); err != nil {
		// the scanner can't continue after an error
		return "", NewNonResumableError(err)
	}

	return "", NewNonResumableError(io.EOF)
}
