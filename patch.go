package jdoc

import (
	"fmt"

	"github.com/jdoc-format/go-jdoc/debug"
	"github.com/jdoc-format/go-jdoc/ir"
	"github.com/jdoc-format/go-jdoc/parse"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// Patch applies an RFC 6902 patch document (an array of operations)
// to doc and returns the result as a fresh tree. Neither input is
// mutated.
func Patch(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := AppendBytes(nil, patch)
	if err != nil {
		return nil, err
	}
	return PatchBytes(doc, d)
}

// PatchBytes is Patch with the operations still in JSON text form.
func PatchBytes(doc *ir.Node, patch []byte) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("patch %s with %s\n", doc.Path(), string(patch))
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	d, err := AppendBytes(nil, doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return parse.Parse(out)
}

// MergePatch applies an RFC 7386 merge patch to doc and returns the
// result as a fresh tree.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := AppendBytes(nil, doc)
	if err != nil {
		return nil, err
	}
	p, err := AppendBytes(nil, patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	return parse.Parse(out)
}
