package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tdoc "github.com/tlang-format/tdoc/go-tdoc"
	"github.com/tlang-format/tdoc/go-tdoc/emit"
	"github.com/tlang-format/tdoc/go-tdoc/parse"

	"github.com/scott-cotton/cli"
)

func tdocMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		// a bare file argument renders in the -O format (xml by
		// default) without naming a subcommand
		if args[0] != "-" && !isFile(args[0]) {
			return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
		}
		return renderMain(cfg, cc, args)
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func renderMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	for _, arg := range args {
		em := emit.Default()
		if cfg.OutFormat != "" {
			var err error
			em, err = emit.New(cfg.OutFormat)
			if err != nil {
				return fmt.Errorf("%w: %v", cli.ErrUsage, err)
			}
		}
		if err := renderArg(cfg, cc.Out, arg, em); err != nil {
			return err
		}
	}
	return nil
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// renderArg parses one input argument ("-" for stdin) through em,
// writing the emitter output to w.
func renderArg(cfg *MainConfig, w io.Writer, arg string, em parse.Emitter) error {
	opts, err := cfg.parseOpts(arg)
	if err != nil {
		return err
	}
	sink := &tdoc.Writer{Out: w}
	if arg == "-" {
		return tdoc.ParseReader(os.Stdin, em, sink, opts...)
	}
	if err := tdoc.ParsePath(arg, em, sink, opts...); err != nil {
		return fmt.Errorf("error rendering %s: %w", arg, err)
	}
	return nil
}

func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
