package encode

type EncodeOption func(*EncState)

// Indent enables pretty printing with n-space indentation. n <= 0
// keeps the compact default.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.indent = n
		}
	}
}

// Trailing appends a newline after the document.
func Trailing(v bool) EncodeOption {
	return func(es *EncState) { es.trailing = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
