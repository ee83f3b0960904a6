package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tlang-format/tdoc/go-tdoc/stream"

	"github.com/scott-cotton/cli"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
)

func events(cfg *EventsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Events.Parse(cc, args)
	if err != nil {
		cfg.Events.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var prog *vm.Program
	if cfg.Filter != "" {
		prog, err = expr.Compile(cfg.Filter,
			expr.Env(eventEnv(&stream.Event{})),
			expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad filter %q: %v", cli.ErrUsage, cfg.Filter, err)
		}
	}
	for _, arg := range orStdin(args) {
		if err := eventsArg(cfg, cc, prog, arg); err != nil {
			return err
		}
	}
	return nil
}

func eventsArg(cfg *EventsConfig, cc *cli.Context, prog *vm.Program, arg string) error {
	var in io.Reader = os.Stdin
	if arg != "-" {
		f, err := os.Open(arg)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	opts, err := cfg.parseOpts(arg)
	if err != nil {
		return err
	}
	dec := stream.NewDecoder(in, opts...)
	for {
		ev, err := dec.ReadEvent()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error tracing %s: %w", arg, err)
		}
		if prog != nil {
			keep, err := expr.Run(prog, eventEnv(ev))
			if err != nil {
				return err
			}
			if ok, _ := keep.(bool); !ok {
				continue
			}
		}
		if err := printEvent(cfg, cc.Out, ev); err != nil {
			return err
		}
	}
}

func printEvent(cfg *EventsConfig, w io.Writer, ev *stream.Event) error {
	if cfg.YAML {
		d, err := yaml.Marshal(ev)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "---\n%s", d)
		return err
	}
	d, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", d)
	return err
}

// eventEnv is the variable environment a -f expression runs against.
func eventEnv(ev *stream.Event) map[string]any {
	return map[string]any{
		"type":   ev.Type.String(),
		"ns":     ev.NS,
		"name":   ev.Name,
		"parser": ev.Parser,
		"value":  ev.Value,
		"text":   ev.Text,
		"indent": ev.Indent,
	}
}
