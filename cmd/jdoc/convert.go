package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jdoc-format/go-jdoc/parse"
	"github.com/jdoc-format/go-jdoc/yamlconv"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	switch cfg.To {
	case "json", "yaml":
	case "":
		return fmt.Errorf("%w: convert requires -O json|yaml", cli.ErrUsage)
	default:
		return fmt.Errorf("%w: unknown format %q", cli.ErrUsage, cfg.To)
	}
	for _, arg := range argsOrStdin(args) {
		d, err := readBytes(arg)
		if err != nil {
			return err
		}
		if err := convertOne(cfg, cc.Out, arg, d); err != nil {
			return err
		}
	}
	return nil
}

func convertOne(cfg *ConvertConfig, w io.Writer, arg string, d []byte) error {
	switch cfg.To {
	case "yaml":
		node, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		out, err := yamlconv.Encode(node)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "json":
		node, err := yamlconv.Decode(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		return writeDoc(cfg.MainConfig, w, node)
	default:
		panic("format")
	}
}

func readBytes(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return d, nil
}
