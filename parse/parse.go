// Package parse converts JSON text into ir trees.
package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jdoc-format/go-jdoc/ir"
	"github.com/jdoc-format/go-jdoc/token"
)

// Parse reads exactly one JSON value from d. Failures wrap ErrParse
// and carry the byte offset of the offending input; no partial tree is
// ever returned alongside an error.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: MaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		if pos := completeRootBefore(d, err, pOpts.maxDepth); pos != nil {
			return nil, fmt.Errorf("%w %s", ErrTrailing, pos)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(toks) == 0 {
		return nil, ErrEmpty
	}
	off := 0
	res, err := parseValue(toks, &off, 0, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, fmt.Errorf("%w %s", ErrTrailing, toks[off].Pos)
	}
	return res, nil
}

// completeRootBefore classifies a tokenize failure as trailing data:
// when the input up to the failing offset already lexes and parses as
// one complete value, the unlexable byte is garbage after the
// document, not part of it. It returns the garbage position, or nil.
func completeRootBefore(d []byte, err error, maxDepth int) *token.Pos {
	var te *token.TokenizeErr
	if !errors.As(err, &te) || te.Pos.I == 0 {
		return nil
	}
	pre, perr := token.Tokenize(nil, d[:te.Pos.I])
	if perr != nil || len(pre) == 0 {
		return nil
	}
	off := 0
	scratch := &parseOpts{maxDepth: maxDepth}
	if _, verr := parseValue(pre, &off, 0, scratch); verr != nil || off != len(pre) {
		return nil
	}
	return &te.Pos
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

// parseValue consumes one value starting at toks[*pi]. depth counts
// the containers already open around it.
func parseValue(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, fmt.Errorf("%w: premature end of document %s",
			ErrParse, toks[len(toks)-1].Pos)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		if depth >= opts.maxDepth {
			return nil, fmt.Errorf("%w (%d) %s", ErrDepth, opts.maxDepth, t.Pos)
		}
		*pi++
		objY := ir.NewObject()
		trackPos(objY, t.Pos, opts)
		return parseObj(toks, objY, pi, depth+1, opts)
	case token.TLSquare:
		if depth >= opts.maxDepth {
			return nil, fmt.Errorf("%w (%d) %s", ErrDepth, opts.maxDepth, t.Pos)
		}
		*pi++
		arrY := ir.NewArray()
		trackPos(arrY, t.Pos, opts)
		return parseArr(toks, arrY, pi, depth+1, opts)
	case token.TString:
		*pi++
		sy := ir.FromString(t.String())
		trackPos(sy, t.Pos, opts)
		return sy, nil
	case token.TInteger:
		*pi++
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			// out of int64 range, keep the value as a double
			f, ferr := strconv.ParseFloat(string(t.Bytes), 64)
			if ferr != nil {
				return nil, fmt.Errorf("%w: invalid integer (%w) %s", ErrParse, err, t.Pos)
			}
			fy := ir.FromFloat(f)
			trackPos(fy, t.Pos, opts)
			return fy, nil
		}
		iy := ir.FromInt(i)
		trackPos(iy, t.Pos, opts)
		return iy, nil
	case token.TFloat:
		*pi++
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number (%w) %s", ErrParse, err, t.Pos)
		}
		fy := ir.FromFloat(f)
		trackPos(fy, t.Pos, opts)
		return fy, nil
	case token.TTrue:
		*pi++
		b := ir.FromBool(true)
		trackPos(b, t.Pos, opts)
		return b, nil
	case token.TFalse:
		*pi++
		b := ir.FromBool(false)
		trackPos(b, t.Pos, opts)
		return b, nil
	case token.TNull:
		*pi++
		res := ir.Null()
		trackPos(res, t.Pos, opts)
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %q %s (%s)",
			ErrParse, string(t.Bytes), t.Pos, t.Type)
	}
}

// parseObj consumes the members of p after its '{'. Duplicate keys are
// legal input; the last binding wins via ir.Set replace semantics.
func parseObj(toks []token.Token, p *ir.Node, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	first := true
	for *pi < len(toks) {
		tok := &toks[*pi]
		if first && tok.Type == token.TRCurl {
			*pi++
			return p, nil
		}
		first = false
		if tok.Type != token.TString {
			return nil, fmt.Errorf("%w: expected field name, got %q %s",
				ErrParse, string(tok.Bytes), tok.Pos)
		}
		key := tok.String()
		*pi++
		if *pi == len(toks) {
			return nil, fmt.Errorf("%w: premature end of object %s", ErrParse, tok.Pos)
		}
		colTok := &toks[*pi]
		if colTok.Type != token.TColon {
			return nil, fmt.Errorf("%w: expected ':', got %q %s",
				ErrParse, string(colTok.Bytes), colTok.Pos)
		}
		*pi++
		val, err := parseValue(toks, pi, depth, opts)
		if err != nil {
			return nil, err
		}
		p.Set(key, val)
		if *pi == len(toks) {
			break
		}
		sep := &toks[*pi]
		switch sep.Type {
		case token.TRCurl:
			*pi++
			return p, nil
		case token.TComma:
			*pi++
		default:
			return nil, fmt.Errorf("%w: expected ',' or '}', got %q %s",
				ErrParse, string(sep.Bytes), sep.Pos)
		}
	}
	return nil, fmt.Errorf("%w: unterminated object %s",
		ErrParse, toks[len(toks)-1].Pos)
}

func parseArr(toks []token.Token, p *ir.Node, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	first := true
	for *pi < len(toks) {
		tok := &toks[*pi]
		if first && tok.Type == token.TRSquare {
			*pi++
			return p, nil
		}
		first = false
		elt, err := parseValue(toks, pi, depth, opts)
		if err != nil {
			return nil, err
		}
		p.Append(elt)
		if *pi == len(toks) {
			break
		}
		sep := &toks[*pi]
		switch sep.Type {
		case token.TRSquare:
			*pi++
			return p, nil
		case token.TComma:
			*pi++
		default:
			return nil, fmt.Errorf("%w: expected ',' or ']', got %q %s",
				ErrParse, string(sep.Bytes), sep.Pos)
		}
	}
	return nil, fmt.Errorf("%w: unterminated array %s",
		ErrParse, toks[len(toks)-1].Pos)
}
