package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tlang-format/tdoc/go-tdoc/emit"
	"github.com/tlang-format/tdoc/go-tdoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Comments bool   `cli:"name=c aliases=comments desc='include comment lines in the output'"`
	Root     string `cli:"name=r aliases=root desc='wrap the document in a root node'"`
	Color    bool   `cli:"name=color desc='colorize output'"`

	Embed      bool   `cli:"name=e aliases=embed desc='extract the notation embedded in a host file'"`
	EmbedNode  string `cli:"name=en desc='node name wrapping opaque host lines'"`
	EmbedLine  string `cli:"name=el desc='line prefix marking literal notation lines'"`
	EmbedStart string `cli:"name=es desc='marker opening a block of literal notation lines'"`
	EmbedEnd   string `cli:"name=ee desc='marker closing a block of literal notation lines'"`
	Profiles   string `cli:"name=profiles desc='embed profile file overriding the builtin table'"`

	OutFormat string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtOpt(_ *cli.Context, a string) (any, error) {
	if _, err := emit.New(a); err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	cfg.OutFormat = a
	return a, nil
}

// parseOpts builds the parser options for one input. Embedding markers
// come from the flags when given, otherwise from the profile matching
// the input's file extension.
func (cfg *MainConfig) parseOpts(path string) ([]parse.Option, error) {
	res := []parse.Option{
		parse.WithComments(cfg.Comments),
	}
	if cfg.Root != "" {
		res = append(res, parse.WithRootNode(cfg.Root))
	}
	if !cfg.Embed && cfg.EmbedLine == "" && cfg.EmbedStart == "" && cfg.EmbedEnd == "" {
		return res, nil
	}
	res = append(res, parse.WithEmbed(true))
	if cfg.EmbedNode != "" {
		res = append(res, parse.WithEmbedNode(cfg.EmbedNode))
	}
	line, start, end := cfg.EmbedLine, cfg.EmbedStart, cfg.EmbedEnd
	if line == "" && start == "" && end == "" {
		prof, err := cfg.profileFor(path)
		if err != nil {
			return nil, err
		}
		if prof != nil {
			line, start, end = prof.Line, prof.Start, prof.End
		}
	}
	if line != "" {
		res = append(res, parse.WithEmbedLine(line))
	}
	if start != "" {
		res = append(res, parse.WithEmbedStart(start))
	}
	if end != "" {
		res = append(res, parse.WithEmbedEnd(end))
	}
	return res, nil
}

func (cfg *MainConfig) colors(w io.Writer) *emit.Colors {
	if cfg.Color {
		return emit.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return emit.NewColors()
	}
	return nil
}

type XMLConfig struct {
	*MainConfig

	XML *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Diff  bool `cli:"name=d aliases=diff desc='show a diff against the input instead of the result'"`
	Write bool `cli:"name=w aliases=write desc='write the result back to the source file'"`

	Fmt *cli.Command
}

type EventsConfig struct {
	*MainConfig
	Filter string `cli:"name=f aliases=filter desc='expression selecting which events to print'"`
	YAML   bool   `cli:"name=y aliases=yaml desc='encode events as yaml documents'"`

	Events *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='suppress diagnostics, only set the exit status'"`

	Check *cli.Command
}
