package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	tdoc "github.com/tlang-format/tdoc/go-tdoc"
	"github.com/tlang-format/tdoc/go-tdoc/emit"

	"github.com/scott-cotton/cli"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Diff && cfg.Write {
		return fmt.Errorf("%w: -d and -w are mutually exclusive", cli.ErrUsage)
	}
	for _, arg := range orStdin(args) {
		if err := formatArg(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func formatArg(cfg *FmtConfig, cc *cli.Context, arg string) error {
	src, err := readArg(arg)
	if err != nil {
		return err
	}
	opts, err := cfg.parseOpts(arg)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	sink := &tdoc.Writer{Out: &buf}
	if err := tdoc.ParseString(src, emit.NewTDoc(), sink, opts...); err != nil {
		return fmt.Errorf("error formatting %s: %w", arg, err)
	}
	out := buf.String()
	switch {
	case cfg.Diff:
		return formatDiff(cfg, cc.Out, src, out)
	case cfg.Write:
		if arg == "-" {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		if out == src {
			return nil
		}
		return os.WriteFile(arg, []byte(out), 0644)
	default:
		_, err := io.WriteString(cc.Out, out)
		return err
	}
}

func formatDiff(cfg *FmtConfig, w io.Writer, src, out string) error {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(src, out, false)
	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		return nil
	}
	if cfg.colors(w) != nil {
		_, err := io.WriteString(w, dmp.DiffPrettyText(diffs))
		return err
	}
	patches := dmp.PatchMake(src, diffs)
	_, err := io.WriteString(w, dmp.PatchToText(patches))
	return err
}

func readArg(arg string) (string, error) {
	if arg == "-" {
		d, err := io.ReadAll(os.Stdin)
		return string(d), err
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	return string(d), nil
}
