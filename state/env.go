// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"cssanim/config"
	"cssanim/props"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// Registry used by all commands, see LoadRegistry
	Registry *props.Registry
	// Out receives command results
	Out io.Writer

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now(), Out: os.Stdout})
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// LoadRegistry prepares registry according to configuration: built-in
// dataset unless dataset file is specified. Configured dataset file is
// added to the debug report.
func (e *LocalEnv) LoadRegistry() error {
	if e.Registry != nil {
		return nil
	}

	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}

	var (
		path     string
		maxDepth = props.DefaultMaxDepth
	)
	if e.Cfg != nil {
		path = e.Cfg.Registry.DatasetPath
		if e.Cfg.Registry.MaxDepth > 0 {
			maxDepth = e.Cfg.Registry.MaxDepth
		}
	}

	if len(path) == 0 {
		if maxDepth == props.DefaultMaxDepth {
			e.Registry = props.Default()
			return nil
		}
		reg, err := props.New(log, props.Builtin(), maxDepth)
		if err != nil {
			return fmt.Errorf("unable to prepare built-in registry: %w", err)
		}
		e.Registry = reg
		return nil
	}

	ds, err := props.LoadDatasetFile(path)
	if err != nil {
		return err
	}
	e.Rpt.Store("dataset.yaml", path)

	reg, err := props.New(log, ds, maxDepth)
	if err != nil {
		return fmt.Errorf("dataset '%s' is inconsistent: %w", path, err)
	}
	log.Debug("Using external dataset", zap.String("path", path), zap.Int("properties", reg.Len()))
	e.Registry = reg
	return nil
}
