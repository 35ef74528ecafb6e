package main

import (
	"fmt"

	jdoc "github.com/jdoc-format/go-jdoc"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two document arguments", cli.ErrUsage)
	}
	a, err := readDoc(args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(args[1])
	if err != nil {
		return err
	}
	if cfg.Merge {
		mp, err := jdoc.Diff(a, b)
		if err != nil {
			return err
		}
		if mp == nil {
			return nil
		}
		return writeDoc(cfg.MainConfig, cc.Out, mp)
	}
	text, err := jdoc.TextDiff(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, text)
	return nil
}
