package token

import (
	"bytes"
	"fmt"
)

// Tokenize appends the tokens of one JSON document to dst. Token Bytes
// alias src. Whitespace between tokens is skipped; anything that is
// not a JSON token is a TokenizeErr carrying the byte offset.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pd := NewPosDoc(src)
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r':
			i++
		case '\n':
			pd.nl(i)
			i++
		case '{':
			dst = append(dst, Token{Type: TLCurl, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case '}':
			dst = append(dst, Token{Type: TRCurl, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case ':':
			dst = append(dst, Token{Type: TColon, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case ',':
			dst = append(dst, Token{Type: TComma, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case '"':
			m, err := quoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i))
			}
			dst = append(dst, Token{Type: TString, Pos: pd.Pos(i), Bytes: src[i : i+m]})
			i += m
		case 't':
			m, err := literal(src, i, "true", pd)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TTrue, Pos: pd.Pos(i), Bytes: src[i : i+m]})
			i += m
		case 'f':
			m, err := literal(src, i, "false", pd)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TFalse, Pos: pd.Pos(i), Bytes: src[i : i+m]})
			i += m
		case 'n':
			m, err := literal(src, i, "null", pd)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TNull, Pos: pd.Pos(i), Bytes: src[i : i+m]})
			i += m
		default:
			if c != '-' && !asciiDigit(c) {
				return nil, NewTokenizeErr(fmt.Errorf("%w %q", ErrCharacter, c), pd.Pos(i))
			}
			m, isFloat, err := number(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i))
			}
			tt := TInteger
			if isFloat {
				tt = TFloat
			}
			dst = append(dst, Token{Type: tt, Pos: pd.Pos(i), Bytes: src[i : i+m]})
			i += m
		}
	}
	return dst, nil
}

func literal(src []byte, i int, lit string, pd *PosDoc) (int, error) {
	if !bytes.HasPrefix(src[i:], []byte(lit)) || wordByte(src, i+len(lit)) {
		return 0, NewTokenizeErr(fmt.Errorf("%w: expected %q", ErrLiteral, lit), pd.Pos(i))
	}
	return len(lit), nil
}

func wordByte(src []byte, i int) bool {
	if i >= len(src) {
		return false
	}
	c := src[i]
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', asciiDigit(c), c == '_':
		return true
	default:
		return false
	}
}
