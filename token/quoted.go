package token

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote renders v as a JSON string: quote, backslash and the short
// escapes per RFC 8259, \u00XX for remaining control characters, and
// raw UTF-8 for everything else.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes a complete quoted JSON string, escapes included.
func Unquote(v string) (string, error) {
	d := []byte(v)
	n, err := quoted(d)
	if err != nil {
		return "", err
	}
	if n != len(d) {
		return "", ErrUnterminated
	}
	return QuotedToString(d), nil
}

// quoted validates a quoted string at the start of d and returns its
// length, closing quote included. It only checks well-formedness; the
// decode happens in QuotedToString.
func quoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrUnterminated
	}
	escaped := false
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return 0, ErrBadUTF8
		}
		i += sz
		switch r {
		case '"':
			if !escaped {
				return i, nil
			}
			escaped = false
		case '\\':
			escaped = !escaped
		case 'u':
			if escaped {
				if i+4 > n {
					return 0, ErrUnterminated
				}
				if !allHex(d[i : i+4]) {
					return 0, ErrBadUnicode
				}
			}
			escaped = false
		case '/', 'b', 'f', 'n', 'r', 't':
			escaped = false
		default:
			if r < 0x20 {
				return 0, ErrControlInString
			}
			if escaped {
				return 0, ErrBadEscape
			}
		}
	}
	return 0, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString decodes a quoted string already validated by the
// tokenizer. \uXXXX escapes decode UTF-16, combining surrogate pairs;
// a lone surrogate decodes to U+FFFD.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	i := 1
	esc := false
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		switch r {
		case '\\':
			if esc {
				b.WriteByte('\\')
			}
			esc = !esc
		case '"':
			if !esc {
				if i != len(d) {
					panic(fmt.Sprintf("internal string: trailing %q", string(d[i:])))
				}
				return b.String()
			}
			b.WriteByte('"')
			esc = false
		default:
			if !esc {
				b.WriteRune(r)
				continue
			}
			esc = false
			switch r {
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'f':
				b.WriteByte('\f')
			case 'r':
				b.WriteByte('\r')
			case '/':
				b.WriteByte('/')
			case 'b':
				b.WriteByte('\b')
			case 'u':
				u, ok := hex4(d[i:])
				if !ok {
					b.WriteRune(utf8.RuneError)
					return b.String()
				}
				i += 4
				if !utf16.IsSurrogate(u) {
					b.WriteRune(u)
					continue
				}
				if len(d[i:]) >= 6 && d[i] == '\\' && d[i+1] == 'u' {
					if u2, ok := hex4(d[i+2:]); ok {
						if r := utf16.DecodeRune(u, u2); r != utf8.RuneError {
							b.WriteRune(r)
							i += 6
							continue
						}
					}
				}
				b.WriteRune(utf8.RuneError)
			default:
				panic(fmt.Sprintf("internal string escape %q", string(r)))
			}
		}
	}
	return b.String()
}

func hex4(d []byte) (rune, bool) {
	if len(d) < 4 {
		return 0, false
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d[:4]); err != nil {
		return 0, false
	}
	return rune(dst[0])<<8 | rune(dst[1]), true
}
