package jdoc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jdoc-format/go-jdoc/encode"
	"github.com/jdoc-format/go-jdoc/ir"
	"github.com/jdoc-format/go-jdoc/parse"
)

// ParseFile reads the whole file at path and parses it as one JSON
// document.
func ParseFile(path string, opts ...parse.Option) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return node, nil
}

// WriteFile encodes node and writes it to path atomically: the bytes
// go to a temp file in the same directory which is renamed over path,
// so a failed write never leaves a partial document behind.
func WriteFile(path string, node *ir.Node, opts ...encode.EncodeOption) error {
	buf := &bytes.Buffer{}
	opts = append(opts, encode.Trailing(true))
	if err := encode.Encode(node, buf, opts...); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".jdoc-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	tmp := f.Name()
	_, werr := f.Write(buf.Bytes())
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Chmod(tmp, 0644)
	}
	if werr == nil {
		werr = os.Rename(tmp, path)
	}
	if werr != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, werr)
	}
	return nil
}
