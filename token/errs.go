package token

import "errors"

var (
	ErrNumber            = errors.New("malformed number")
	ErrNumberLeadingZero = errors.New("number has leading zero")
	ErrUnterminated      = errors.New("unterminated string")
	ErrBadEscape         = errors.New("invalid escape")
	ErrBadUnicode        = errors.New("invalid \\u escape")
	ErrBadUTF8           = errors.New("invalid utf8")
	ErrControlInString   = errors.New("unescaped control character in string")
	ErrLiteral           = errors.New("malformed literal")
	ErrCharacter         = errors.New("unexpected character")
)
