package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")

	ErrDepth    = fmt.Errorf("%w: max depth exceeded", ErrParse)
	ErrTrailing = fmt.Errorf("%w: trailing data after document", ErrParse)
	ErrEmpty    = fmt.Errorf("%w: empty document", ErrParse)
)
