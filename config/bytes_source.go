//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names --values
package config

import (
	"fmt"
	"strings"
)

const maxTextSourceDisplayLen = 12

// BytesSourceType supported BytesSource types. ENUM(
// text=1 // Inline YAML block.
// http   // HTTP(S).
// file   // Local file.
// )
type BytesSourceType uint16

// BytesSource is a location some data can be read from
type BytesSource struct {
	Type BytesSourceType
	From string
}

// IsZero reports if no source was configured
func (s BytesSource) IsZero() bool {
	return s == BytesSource{}
}

func (s BytesSource) String() string {
	switch s.Type {
	case BytesSourceTypeText:
		return abbreviate(s.From)

	case BytesSourceTypeHttp:
		return s.From

	case BytesSourceTypeFile:
		return "file://" + s.From
	}

	return fmt.Sprintf("unknown source (%s: %s)", s.Type, s.From)
}

// abbreviate shortens inline text to the start of its first line
func abbreviate(text string) string {
	first, rest, _ := strings.Cut(text, "\n")

	if len(first) > maxTextSourceDisplayLen {
		return first[:maxTextSourceDisplayLen] + "..."
	}

	if len(rest) > 0 {
		return first + "..."
	}

	return first
}

// UnmarshalText implements `encoding.TextUnmarshaler`.
func (s *BytesSource) UnmarshalText(data []byte) error {
	source := strings.TrimSpace(string(data))

	switch {
	case len(source) == 0:
		*s = BytesSource{}

	// Inline definition in YAML (with literal style Block Scalar)
	case strings.ContainsAny(string(data), "\n"):
		*s = BytesSource{Type: BytesSourceTypeText, From: string(data)}

	// HTTP(S)
	case strings.HasPrefix(source, "http"):
		*s = BytesSource{Type: BytesSourceTypeHttp, From: source}

	// Probably path to a local file
	default:
		*s = BytesSource{Type: BytesSourceTypeFile, From: strings.TrimPrefix(source, "file://")}
	}

	return nil
}

// NewBytesSource parses `source` the same way as the configuration file does
func NewBytesSource(source string) BytesSource {
	var res BytesSource

	// UnmarshalText never returns an error
	_ = res.UnmarshalText([]byte(source))

	return res
}

// TextBytesSource creates an inline source from `lines`
func TextBytesSource(lines ...string) BytesSource {
	return BytesSource{Type: BytesSourceTypeText, From: inlineList(lines...)}
}

func inlineList(lines ...string) string {
	res := strings.Join(lines, "\n")

	// ensure at least one line ending so it's parsed as an inline block
	res += "\n"

	return res
}
