package binder

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

// encoding/json turns a \uXXXX escape of an unpaired UTF-16 surrogate into
// U+FFFD, which would let it pass the text encoding check. String values that
// carry one are unquoted here instead, keeping the half as its three byte
// form (\xED\xA0\x80 for \uD800), the same bytes a percent-encoded form value
// delivers.

func decodeValue(raw json.RawMessage) (any, error) {
	if len(raw) > 0 && raw[0] == '"' && hasLoneSurrogate(raw) {
		if s, ok := unquoteKeepSurrogates(raw); ok {
			return s, nil
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func hasLoneSurrogate(raw []byte) bool {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			continue
		}
		if raw[i+1] != 'u' {
			i++
			continue
		}
		r, ok := hex4(raw, i+2)
		if !ok {
			i++
			continue
		}
		if utf16.IsSurrogate(r) {
			if _, paired := pairAt(r, raw, i+6); !paired {
				return true
			}
			i += 6
		}
		i += 5
	}
	return false
}

// pairAt decodes the low half escape at raw[j:] that completes hi.
func pairAt(hi rune, raw []byte, j int) (rune, bool) {
	if hi >= 0xDC00 || j+1 >= len(raw) || raw[j] != '\\' || raw[j+1] != 'u' {
		return 0, false
	}
	lo, ok := hex4(raw, j+2)
	if !ok {
		return 0, false
	}
	r := utf16.DecodeRune(hi, lo)
	return r, r != unicode.ReplacementChar
}

func hex4(raw []byte, i int) (rune, bool) {
	if i+4 > len(raw) {
		return 0, false
	}
	n, err := strconv.ParseUint(string(raw[i:i+4]), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}

func unquoteKeepSurrogates(raw []byte) (string, bool) {
	if len(raw) < 2 || raw[len(raw)-1] != '"' {
		return "", false
	}
	s := raw[1 : len(raw)-1]

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		i++
		if i >= len(s) {
			return "", false
		}
		switch s[i] {
		case '"', '\\', '/':
			b.WriteByte(s[i])
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, ok := hex4(s, i+1)
			if !ok {
				return "", false
			}
			i += 4
			if !utf16.IsSurrogate(r) {
				b.WriteRune(r)
				continue
			}
			if pair, ok := pairAt(r, s, i+1); ok {
				b.WriteRune(pair)
				i += 6
				continue
			}
			b.WriteByte(0xE0 | byte(r>>12))
			b.WriteByte(0x80 | byte(r>>6)&0x3F)
			b.WriteByte(0x80 | byte(r)&0x3F)
		default:
			return "", false
		}
	}
	return b.String(), true
}
