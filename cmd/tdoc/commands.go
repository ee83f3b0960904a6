package main

import (
	"strings"

	"github.com/tlang-format/tdoc/go-tdoc/emit"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format for bare file arguments: " + strings.Join(emit.Formats(), ", "),
			Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tdoc").
		WithSynopsis("tdoc [opts] command [opts] [files]").
		WithDescription("tdoc is a tool for working with tree document notation.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tdocMain(cfg, cc, args)
		}).
		WithSubs(
			XMLCommand(cfg),
			FmtCommand(cfg),
			EventsCommand(cfg),
			CheckCommand(cfg))
}

func XMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &XMLConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.XML, "xml").
		WithAliases("x").
		WithSynopsis("xml [files]").
		WithDescription("render documents as xml").
		WithRun(func(cc *cli.Context, args []string) error {
			return xmlRender(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-d] [-w] [files]").
		WithDescription("rewrite documents in normalized notation").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return format(cfg, cc, args)
		})
}

func EventsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EventsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Events, "events").
		WithAliases("ev").
		WithSynopsis("events [-f expr] [-y] [files]").
		WithDescription("trace the structural event stream of documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return events(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("ck").
		WithSynopsis("check [-q] [files]").
		WithDescription("syntax-check documents, reporting the first violation per file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
