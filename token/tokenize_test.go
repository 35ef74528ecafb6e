package token

import (
	"errors"
	"testing"
)

func TestTokenizeTypes(t *testing.T) {
	toks, err := Tokenize(nil, []byte(` {"a": [1, -2.5, 1e14, true, false, null]} `))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{
		TLCurl, TString, TColon, TLSquare,
		TInteger, TComma, TFloat, TComma, TFloat, TComma,
		TTrue, TComma, TFalse, TComma, TNull,
		TRSquare, TRCurl,
	}
	if len(toks) != len(want) {
		t.Fatalf("want %d tokens, got %d", len(want), len(toks))
	}
	for i := range want {
		if toks[i].Type != want[i] {
			t.Errorf("token %d: want %s, got %s (%q)",
				i, want[i], toks[i].Type, string(toks[i].Bytes))
		}
	}
}

func TestTokenizeStringDecode(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`"a\tb"`))
	if err != nil {
		t.Fatal(err)
	}
	if got := toks[0].String(); got != "a\tb" {
		t.Fatalf("decoded %q", got)
	}
}

func TestTokenizeOffsets(t *testing.T) {
	toks, err := Tokenize(nil, []byte("{\n  \"a\": 1\n}"))
	if err != nil {
		t.Fatal(err)
	}
	// the "a" token starts at byte 4, line 1, col 2
	str := toks[1]
	if str.Type != TString {
		t.Fatalf("token 1 is %s", str.Type)
	}
	if str.Pos.I != 4 {
		t.Errorf("offset = %d, want 4", str.Pos.I)
	}
	if l, c := str.Pos.LineCol(); l != 1 || c != 2 {
		t.Errorf("line/col = %d/%d, want 1/2", l, c)
	}
}

func TestTokenizeErrs(t *testing.T) {
	for _, tc := range []struct {
		in  string
		e   error
		off int
	}{
		{"truth", ErrLiteral, 0},
		{"[tru]", ErrLiteral, 1},
		{"nul", ErrLiteral, 0},
		{"falsey", ErrLiteral, 0},
		{"01", ErrNumberLeadingZero, 0},
		{"-", ErrNumber, 0},
		{"@", ErrCharacter, 0},
		{`["ok", "unterminated`, ErrUnterminated, 7},
	} {
		_, err := Tokenize(nil, []byte(tc.in))
		if err == nil {
			t.Errorf("Tokenize(%q) should fail", tc.in)
			continue
		}
		if !errors.Is(err, tc.e) {
			t.Errorf("Tokenize(%q) = %v, want %v", tc.in, err, tc.e)
			continue
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("Tokenize(%q): error has no position", tc.in)
			continue
		}
		if te.Pos.I != tc.off {
			t.Errorf("Tokenize(%q): offset %d, want %d", tc.in, te.Pos.I, tc.off)
		}
	}
}

func TestNumberLexemes(t *testing.T) {
	for _, tc := range []struct {
		in      string
		isFloat bool
	}{
		{"0", false},
		{"-7", false},
		{"123", false},
		{"1.5", true},
		{"-0.25", true},
		{"2e10", true},
		{"2E-3", true},
		{"1.25e+11", true},
	} {
		n, isFloat, err := number([]byte(tc.in))
		if err != nil {
			t.Errorf("number(%q): %v", tc.in, err)
			continue
		}
		if n != len(tc.in) {
			t.Errorf("number(%q) consumed %d of %d", tc.in, n, len(tc.in))
		}
		if isFloat != tc.isFloat {
			t.Errorf("number(%q) isFloat = %v", tc.in, isFloat)
		}
	}
}
