package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssanim/common"
	"cssanim/config"
	"cssanim/inspect"
	"cssanim/misc"
	"cssanim/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		// save complete processed configuration if external configuration was provided
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging
	env.RestoreStdLog()

	// log is synced now and result can be used in report if necessary, errors
	// must be reported directly to stderr from now on
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	// reporting is closed now - remove empty panic file if any
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := filepath.Join(filepath.Dir(env.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// urfave/cli default error handling (cli.Exit) is not used, subcommands
// return regular errors.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {

	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {

	// allow graceful shutdown on interrupt.
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	formatFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "format", Aliases: []string{"f"},
			Usage: "output `TYPE`, overrides configuration (supported types: " + strings.Join(common.OutputFmtNames(), ", ") + ")"}
	}
	templateFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "template", Aliases: []string{"t"},
			Usage: "Go `TEMPLATE` (with slim-sprig functions) to render every result, overrides format"}
	}
	strictFlag := func() cli.Flag {
		return &cli.BoolFlag{Name: "strict", Aliases: []string{"s"}, Usage: "fail if any of the properties cannot be animated"}
	}

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "reference of animatable CSS properties and their interpolation types",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "check",
				Usage:        "Checks if CSS properties can be animated",
				OnUsageError: usageErrorHandler,
				Action:       inspect.Check,
				Flags:        []cli.Flag{formatFlag(), strictFlag()},
				ArgsUsage:    "PROPERTY [PROPERTY...]",
				CustomHelpTemplate: fmt.Sprintf(`%s
PROPERTY:
    exact CSS property name, case sensitive, vendor prefixes are not recognized.
    Names starting with "-" must follow "--" so they are not taken for flags:
        check -- -webkit-transform
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "show",
				Usage:        "Describes how CSS properties are animated",
				OnUsageError: usageErrorHandler,
				Action:       inspect.Show,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "expand", Aliases: []string{"e"}, Usage: "recursively describe sub-properties of shorthand properties"},
					formatFlag(), templateFlag(), strictFlag(),
				},
				ArgsUsage: "PROPERTY [PROPERTY...]",
				CustomHelpTemplate: fmt.Sprintf(`%s
PROPERTY:
    exact CSS property name, case sensitive, vendor prefixes are not recognized.
    Names starting with "-" must follow "--" so they are not taken for flags:
        show -- -moz-opacity

TEMPLATE:
    receives every result as "." with fields Name, Properties, Expanded,
    Types, Multiple and Repeatable, for example:
        --template '{{ .Name }}: {{ join ", " .Types }}'
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "list",
				Usage:        "Lists animatable CSS properties",
				OnUsageError: usageErrorHandler,
				Action:       inspect.List,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Value: common.PropertyKindAll.String(),
						Usage: "which properties to list (" + strings.Join(common.PropertyKindNames(), ", ") + ")"},
					formatFlag(),
				},
			},
			{
				Name:         "types",
				Usage:        "Lists animation value types",
				OnUsageError: usageErrorHandler,
				Action:       inspect.Types,
				Flags:        []cli.Flag{formatFlag(), templateFlag()},
			},
			{
				Name:         "dump",
				Usage:        "Dumps active property dataset (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       inspect.Dump,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write dataset to, if absent - STDOUT

Written dataset could be edited and used instead of built-in one by setting
registry.dataset_path in configuration file.
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		err   error
		data  []byte
		state = "actual"
	)
	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		// results go to stdout, keep it clean
		env.Log.Debug("Outputing configuration", zap.String("state", state), zap.String("file", "STDOUT"))
		_, err = env.Out.Write(data)
		return err
	}

	env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", fname))
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
