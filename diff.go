package jdoc

import (
	"fmt"

	"github.com/jdoc-format/go-jdoc/debug"
	"github.com/jdoc-format/go-jdoc/encode"
	"github.com/jdoc-format/go-jdoc/ir"
	"github.com/jdoc-format/go-jdoc/parse"

	jsonpatch "github.com/evanphx/json-patch/v5"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes the RFC 7386 merge patch that transforms a into b,
// so MergePatch(a, Diff(a, b)) equals b. A nil result means the trees
// encode identically.
func Diff(a, b *ir.Node) (*ir.Node, error) {
	if debug.Diff() {
		debug.Logf("diff %s %s\n", a.Path(), b.Path())
	}
	if a == nil || b == nil || a.Type != ir.ObjectType || b.Type != ir.ObjectType {
		// merge-patch semantics for non-object roots: whole replacement
		if ir.Equal(a, b) {
			return nil, nil
		}
		if b == nil {
			return ir.Null(), nil
		}
		return b.Clone(), nil
	}
	ad, err := AppendBytes(nil, a)
	if err != nil {
		return nil, err
	}
	bd, err := AppendBytes(nil, b)
	if err != nil {
		return nil, err
	}
	md, err := jsonpatch.CreateMergePatch(ad, bd)
	if err != nil {
		return nil, fmt.Errorf("creating merge patch: %w", err)
	}
	res, err := parse.Parse(md)
	if err != nil {
		return nil, err
	}
	if res.Type == ir.ObjectType && res.Len() == 0 && ir.Equal(a, b) {
		return nil, nil
	}
	return res, nil
}

// TextDiff renders a human-readable character diff of the indented
// encodings of a and b, colored for terminal display.
func TextDiff(a, b *ir.Node) (string, error) {
	at, err := EncodeToString(a, encode.Indent(2))
	if err != nil {
		return "", err
	}
	bt, err := EncodeToString(b, encode.Indent(2))
	if err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(at, bt, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs), nil
}
