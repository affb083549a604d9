// Package inspect implements commands answering questions about animatable
// CSS properties.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssanim/common"
	"cssanim/props"
	"cssanim/state"
)

// ErrNotAnimatable is returned in strict mode when some of the requested
// properties cannot be animated.
var ErrNotAnimatable = errors.New("property cannot be animated")

// prepare makes sure registry is available and builds renderer honoring
// command line overrides of configured output. Configured template describes
// property results, only commands producing them should ask for it.
func prepare(ctx context.Context, cmd *cli.Command, name string, useCfgTemplate bool) (*state.LocalEnv, *zap.Logger, *renderer, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, nil, err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named(name)

	if err := env.LoadRegistry(); err != nil {
		return nil, nil, nil, fmt.Errorf("unable to prepare registry: %w", err)
	}

	format, indent := env.Cfg.Output.Format, env.Cfg.Output.Indent
	var text string
	if useCfgTemplate {
		text = env.Cfg.Output.Template
	}
	if f := cmd.String("format"); len(f) > 0 {
		parsed, err := common.ParseOutputFmt(f)
		if err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.String("format", f), zap.Stringer("using", format))
		} else {
			format = parsed
		}
	}
	if t := cmd.String("template"); len(t) > 0 {
		text = t
	}

	r, err := newRenderer(format, indent, text)
	if err != nil {
		return nil, nil, nil, err
	}
	return env, log, r, nil
}

func notAnimatable(names []string) error {
	return fmt.Errorf("%w: %s", ErrNotAnimatable, strings.Join(names, ", "))
}

// Check reports whether each of the arguments can be animated.
func Check(ctx context.Context, cmd *cli.Command) error {
	env, log, r, err := prepare(ctx, cmd, "check", false)
	if err != nil {
		return err
	}
	if cmd.Args().Len() == 0 {
		return errors.New("no properties to check have been specified")
	}

	var (
		entries = make([]checkEntry, 0, cmd.Args().Len())
		missing []string
	)
	for _, name := range cmd.Args().Slice() {
		ok := env.Registry.CanAnimate(name)
		if !ok {
			missing = append(missing, name)
		}
		entries = append(entries, checkEntry{Name: name, Animate: ok})
	}
	log.Debug("Checked properties", zap.Int("requested", len(entries)), zap.Int("not animatable", len(missing)))

	if err := r.checks(env.Out, entries); err != nil {
		return err
	}
	if len(missing) > 0 && cmd.Bool("strict") {
		return notAnimatable(missing)
	}
	return nil
}

// Show describes each of the arguments, optionally expanding shorthands.
func Show(ctx context.Context, cmd *cli.Command) error {
	env, log, r, err := prepare(ctx, cmd, "show", true)
	if err != nil {
		return err
	}
	if cmd.Args().Len() == 0 {
		return errors.New("no properties to show have been specified")
	}

	expand := cmd.Bool("expand")
	results, missing, err := lookup(env.Registry, cmd.Args().Slice(), expand)
	if err != nil {
		return err
	}
	for _, name := range missing {
		log.Warn("Property cannot be animated", zap.String("property", name))
	}
	if len(missing) > 0 && cmd.Bool("strict") {
		return notAnimatable(missing)
	}
	if len(results) == 0 {
		return nil
	}
	log.Debug("Showing properties", zap.Int("count", len(results)), zap.Bool("expand", expand))
	return r.properties(env.Out, results)
}

// lookup queries registry for every name, unknown names are returned
// separately in order.
func lookup(reg *props.Registry, names []string, expand bool) (results []*props.Property, missing []string, err error) {
	for _, name := range names {
		p, err := reg.GetProperty(name, expand)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to describe '%s': %w", name, err)
		}
		if p == nil {
			missing = append(missing, name)
			continue
		}
		results = append(results, p)
	}
	return results, missing, nil
}

// List outputs names of known properties.
func List(ctx context.Context, cmd *cli.Command) error {
	env, _, r, err := prepare(ctx, cmd, "list", false)
	if err != nil {
		return err
	}

	kind := common.PropertyKindAll
	if k := cmd.String("kind"); len(k) > 0 {
		if kind, err = common.ParsePropertyKind(k); err != nil {
			return fmt.Errorf("unable to list properties: %w", err)
		}
	}
	return r.names(env.Out, selectNames(env.Registry, kind))
}

func selectNames(reg *props.Registry, kind common.PropertyKind) []string {
	names := make([]string, 0, reg.Len())
	for name, def := range reg.Definitions() {
		if kind.Match(def.IsShorthand()) {
			names = append(names, name)
		}
	}
	return names
}

// Types outputs descriptors of known animation value types.
func Types(ctx context.Context, cmd *cli.Command) error {
	env, _, r, err := prepare(ctx, cmd, "types", false)
	if err != nil {
		return err
	}

	var entries []typeEntry
	for key, td := range env.Registry.Types() {
		entries = append(entries, typeEntry{Key: key, Name: td.Name, Href: td.Href})
	}
	return r.types(env.Out, entries)
}

// Dump writes active dataset as YAML to the file named by the first argument
// or to the output when there is none.
func Dump(ctx context.Context, cmd *cli.Command) error {
	env, log, _, err := prepare(ctx, cmd, "dump", false)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	data, err := props.MarshalDataset(env.Registry.Dataset())
	if err != nil {
		return err
	}

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		_, err = env.Out.Write(data)
		return err
	}
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return fmt.Errorf("unable to write dataset: %w", err)
	}
	log.Info("Dataset written", zap.String("file", fname), zap.Int("properties", env.Registry.Len()))
	return nil
}
