package main

import (
	"fmt"

	jdoc "github.com/jdoc-format/go-jdoc"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range argsOrStdin(args[1:]) {
		node, err := readDoc(arg)
		if err != nil {
			return err
		}
		res, err := jdoc.Lookup(node, path)
		if err != nil {
			return fmt.Errorf("error looking up %q in %s: %w", path, arg, err)
		}
		if res == nil {
			// absent is not an error, and prints nothing
			continue
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
