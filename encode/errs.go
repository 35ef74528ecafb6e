package encode

import "errors"

// ErrEncoding covers values with no JSON rendering, NaN and the
// infinities.
var ErrEncoding = errors.New("encoding error")
