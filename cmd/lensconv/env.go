package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"lensconv/config"
	"lensconv/misc"
	"lensconv/state"
)

// setupEnv loads configuration and starts logging once command line is
// parsed. Bare invocation (help, version) does not need either.
func setupEnv(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.NArg() == 0 {
		return ctx, nil
	}

	var err error
	env := state.EnvFromContext(ctx)

	cfgPath := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(cfgPath); err != nil {
		return ctx, fmt.Errorf("unable to load configuration: %w", err)
	}

	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to start debug report: %w", err)
		}
		if cfgPath != "" {
			// dump goes through sanitizing, raw file is never stored
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData("config/"+filepath.Base(cfgPath), data)
			}
		}
	}

	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to start logging: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Starting",
		zap.Strings("args", os.Args),
		zap.String("version", misc.GetVersion()),
		zap.String("go", runtime.Version()),
		zap.String("commit", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Debug report requested", zap.String("file", env.Rpt.Name()))
	}
	if cfgPath == "" {
		env.Log.Info("No configuration file, running with embedded defaults")
	}
	return ctx, nil
}

// teardownEnv runs after command completes. Once logging is stopped errors
// can only be returned.
func teardownEnv(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Finished", zap.Duration("elapsed", env.Uptime()), zap.Strings("args", cmd.Args().Slice()))
	}
	env.RestoreStdLog()

	if env.Rpt != nil {
		if e := env.Rpt.Close(); e != nil {
			err = multierr.Append(err, fmt.Errorf("unable to finalize debug report: %w", e))
		}
	}

	if env.Cfg == nil || env.Cfg.Logging.FileLogger.Destination == "" {
		return err
	}
	debug.SetCrashOutput(nil, debug.CrashOptions{})
	panicLog := filepath.Join(filepath.Dir(env.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
	if fi, e := os.Stat(panicLog); e == nil && fi.Size() == 0 {
		if e := os.Remove(panicLog); e != nil {
			err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log '%s': %w", panicLog, e))
		}
	}
	return err
}

// errLogged is set when command error made it into the log, main then does
// not repeat it on stderr.
var errLogged bool

// logExitError replaces cli.Exit based handling: commands return plain
// errors which are logged here before teardownEnv closes the log.
func logExitError(ctx context.Context, _ *cli.Command, err error) {
	if log := state.EnvFromContext(ctx).Log; log != nil {
		log.Error("Command failed", zap.Error(err))
		errLogged = true
	}
}

func passUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func unknownCommand(ctx context.Context, _ *cli.Command, name string) {
	if log := state.EnvFromContext(ctx).Log; log != nil {
		log.Warn("Unknown command ignored", zap.String("command", name))
		return
	}
	fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", misc.GetAppName(), name)
}
