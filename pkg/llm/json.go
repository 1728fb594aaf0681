package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON indicates no balanced JSON value was found in the model reply.
var ErrNoJSON = errors.New("no JSON value found in model output")

// ExtractJSON returns the first balanced `{…}` or `[…]` in text, tolerating
// fenced code blocks and leading prose. String literals and escapes inside
// the value are respected when matching delimiters.
func ExtractJSON(text string) (json.RawMessage, error) {
	text = stripFences(text)

	start := -1
	for i, r := range text {
		if r == '{' || r == '[' {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, ErrNoJSON
	}

	open := text[start]
	var close byte = '}'
	if open == '[' {
		close = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == open:
			depth++
		case ch == close:
			depth--
			if depth == 0 {
				candidate := text[start : i+1]
				if !json.Valid([]byte(candidate)) {
					return nil, ErrNoJSON
				}
				return json.RawMessage(candidate), nil
			}
		}
	}
	return nil, ErrNoJSON
}

// stripFences removes markdown code fences so fenced JSON extracts cleanly.
func stripFences(text string) string {
	if !strings.Contains(text, "```") {
		return text
	}
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
