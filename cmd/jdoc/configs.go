package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jdoc-format/go-jdoc/encode"
	"github.com/jdoc-format/go-jdoc/ir"
	"github.com/jdoc-format/go-jdoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='force color output'"`
	Compact bool `cli:"name=c aliases=compact desc='compact (wire) output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func fmtErrNoSub(name string) error {
	return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, name)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if !cfg.Compact {
		res = append(res, encode.Indent(2), encode.Trailing(true))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// readDoc parses one document argument, "-" meaning stdin.
func readDoc(arg string) (*ir.Node, error) {
	var rd io.Reader
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rd = f
	}
	d, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

func writeDoc(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if cfg.Compact {
		fmt.Fprintln(w)
	}
	return nil
}

func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='emit an RFC 7386 merge patch instead of a text diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p aliases=patch desc='file containing the patch document'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	To string `cli:"name=O aliases=to desc='output format: json or yaml'"`

	Convert *cli.Command
}
