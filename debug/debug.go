// Package debug holds env-var gated debug switches, read once at
// startup: JDOC_DEBUG_PARSE, JDOC_DEBUG_PATCH, JDOC_DEBUG_DIFF.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Patch bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JDOC_DEBUG_PARSE")
	d.Patch = boolEnv("JDOC_DEBUG_PATCH")
	d.Diff = boolEnv("JDOC_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
