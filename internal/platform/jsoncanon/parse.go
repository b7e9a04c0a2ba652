package jsoncanon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

const msgUnexpectedEOF = "unexpected end of JSON input"

// SyntaxError locates the first offending token of a document. Line and
// Column are 1-based; Column counts characters, not bytes.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Parse decodes a single strict JSON document. Object members keep source
// order; a repeated key keeps its first position and its last value.
func Parse(data []byte) (Value, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return Value{}, locate(data, syntaxErr)
		}
		return Value{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decode(dec)
}

func locate(data []byte, err *json.SyntaxError) *SyntaxError {
	msg := err.Error()
	offset, convErr := safecast.Conv[int](err.Offset)
	if convErr != nil || offset > len(data) {
		offset = len(data)
	}
	// Offset counts the offending byte itself, except at end of input where
	// the scanner reports the length of the document.
	pos := offset - 1
	switch {
	case msg == msgUnexpectedEOF:
		pos = offset
	case offset == len(data) && strings.HasPrefix(msg, "invalid character ' '") && !endsWithSpace(data):
		// The scanner feeds a virtual space to flush a truncated literal.
		pos = offset
		msg = msgUnexpectedEOF
	}
	if pos < 0 {
		pos = 0
	}
	switch {
	case msg == msgUnexpectedEOF:
		if start, ok := openToken(data); ok {
			pos = start
		}
	case insideToken(msg):
		if start, ok := tokenStart(data, pos); ok {
			pos = start
		}
	}
	line, column := Position(data, pos)
	return &SyntaxError{Line: line, Column: column, Msg: msg}
}

// Scanner contexts reported for a byte that breaks the literal, number or
// string it belongs to.
var tokenContexts = []string{
	" in literal ",
	" in numeric literal",
	" in exponent of numeric literal",
	" in string literal",
	" in string escape code",
	` in \u hexadecimal character escape`,
}

func insideToken(msg string) bool {
	for _, context := range tokenContexts {
		if strings.Contains(msg, context) {
			return true
		}
	}
	return false
}

var completeNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

func isBareByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-' || b == '+' || b == '.'
}

// tokenStart returns the start of the string, literal or number that covers
// pos. A bare token also covers the byte right after it, which is where the
// scanner notices that it is malformed.
func tokenStart(data []byte, pos int) (int, bool) {
	for i := 0; i < len(data) && i <= pos; {
		switch {
		case data[i] == '"':
			end, closed := stringEnd(data, i)
			if pos <= end || !closed {
				return i, true
			}
			i = end + 1
		case isBareByte(data[i]):
			end := i
			for end < len(data) && isBareByte(data[end]) {
				end++
			}
			if pos <= end {
				return i, true
			}
			i = end
		default:
			i++
		}
	}
	return 0, false
}

// openToken returns the start of the token left unfinished at the end of
// data: an unterminated string or a truncated literal or number.
func openToken(data []byte) (int, bool) {
	last := -1
	for i := 0; i < len(data); {
		switch {
		case data[i] == '"':
			end, closed := stringEnd(data, i)
			if !closed {
				return i, true
			}
			i = end + 1
		case isBareByte(data[i]):
			end := i
			for end < len(data) && isBareByte(data[end]) {
				end++
			}
			if end == len(data) {
				last = i
			}
			i = end
		default:
			i++
		}
	}
	if last < 0 {
		return 0, false
	}
	switch word := string(data[last:]); word {
	case "true", "false", "null":
		return 0, false
	default:
		if completeNumber.MatchString(word) {
			return 0, false
		}
	}
	return last, true
}

// stringEnd returns the index of the quote closing the string opened at
// start, or len(data) when the string is unterminated.
func stringEnd(data []byte, start int) (int, bool) {
	for i := start + 1; i < len(data); i++ {
		switch data[i] {
		case '\\':
			i++
		case '"':
			return i, true
		}
	}
	return len(data), false
}

func endsWithSpace(data []byte) bool {
	return len(data) > 0 && data[len(data)-1] == ' '
}

// Position converts a byte offset into a 1-based line and character column.
func Position(data []byte, offset int) (int, int) {
	if offset > len(data) {
		offset = len(data)
	}
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte{'\n'}) + 1
	lineStart := bytes.LastIndexByte(prefix, '\n') + 1
	return line, utf8.RuneCount(prefix[lineStart:]) + 1
}

func decode(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %T", tok)
	}
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		item, err := decode(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Array(items...), nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	members := []Member{}
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", tok)
		}
		value, err := decode(dec)
		if err != nil {
			return Value{}, err
		}
		if i, seen := index[key]; seen {
			members[i].Value = value
			continue
		}
		index[key] = len(members)
		members = append(members, Member{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Object(members...), nil
}
