package main

import (
	"github.com/tlang-format/tdoc/go-tdoc/emit"

	"github.com/scott-cotton/cli"
)

func xmlRender(cfg *XMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.XML.Parse(cc, args)
	if err != nil {
		cfg.XML.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var xOpts []emit.XMLOption
	if c := cfg.colors(cc.Out); c != nil {
		xOpts = append(xOpts, emit.XMLColors(c))
	}
	for _, arg := range orStdin(args) {
		if err := renderArg(cfg.MainConfig, cc.Out, arg, emit.NewXML(xOpts...)); err != nil {
			return err
		}
	}
	return nil
}
