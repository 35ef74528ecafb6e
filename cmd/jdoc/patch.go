package main

import (
	"fmt"

	jdoc "github.com/jdoc-format/go-jdoc"
	"github.com/jdoc-format/go-jdoc/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p patchfile", cli.ErrUsage)
	}
	patchDoc, err := readDoc(cfg.PatchFile)
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args) {
		doc, err := readDoc(arg)
		if err != nil {
			return err
		}
		var res *ir.Node
		if patchDoc.Type == ir.ArrayType {
			res, err = jdoc.Patch(doc, patchDoc)
		} else {
			res, err = jdoc.MergePatch(doc, patchDoc)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
