package main

import (
	tdoc "github.com/tlang-format/tdoc/go-tdoc"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed := false
	for _, arg := range orStdin(args) {
		src, err := readArg(arg)
		if err != nil {
			return err
		}
		opts, err := cfg.parseOpts(arg)
		if err != nil {
			return err
		}
		perr := tdoc.Check(src, opts...)
		if perr == nil {
			continue
		}
		failed = true
		if !cfg.Quiet {
			theLog.Error(perr.Message, "file", arg, "line", perr.Line)
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
