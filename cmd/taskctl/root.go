package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/taskmaster/internal/bootstrap"
	"github.com/jsamuelsen11/taskmaster/internal/platform/config"
	"github.com/jsamuelsen11/taskmaster/internal/platform/logging"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

const defaultProfile = "local"

// cli holds the state shared by every subcommand for one invocation.
type cli struct {
	out    io.Writer
	errOut io.Writer

	profile   string
	configDir string
	jsonOut   bool
	verbose   bool

	injector *do.RootScope
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "taskctl",
		Short:         "taskctl - manage the task list from the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	root.PersistentFlags().StringVarP(&c.profile, "profile", "p", profile, "Config profile (defaults to $APP_PROFILE or local)")
	root.PersistentFlags().StringVar(&c.configDir, "config-dir", "configs", "Directory holding base.yaml and profile files")
	root.PersistentFlags().BoolVarP(&c.jsonOut, "json", "j", false, "Output as JSON")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log at the configured level instead of warn")

	root.AddCommand(
		listCmd(c),
		addCmd(c),
		toggleCmd(c),
		deleteCmd(c),
		priorityCmd(c),
		suggestCmd(c),
	)

	return root
}

// run opens the task list, calls fn with the task service and closes the
// list again, also when fn fails.
func (c *cli) run(ctx context.Context, fn func(ctx context.Context, svc ports.TaskService) error) (err error) {
	svc, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := c.close(ctx); err == nil {
			err = closeErr
		}
	}()
	return fn(ctx, svc)
}

// open loads configuration and wires the task service. Loading the service
// seeds the store on first run.
func (c *cli) open(ctx context.Context) (ports.TaskService, error) {
	cfg, err := config.Load(c.profile, config.WithConfigDir(c.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if !c.verbose {
		level = "warn"
	}
	logger := logging.New(level, cfg.Log.Format, c.errOut)

	c.injector = bootstrap.New(cfg, logger, nil)
	bootstrap.RegisterCore(ctx, c.injector)

	svc, err := do.Invoke[ports.TaskService](c.injector)
	if err != nil {
		_ = c.close(ctx)
		return nil, fmt.Errorf("opening task list: %w", err)
	}

	logger.Debug("task list opened",
		slog.String("profile", c.profile),
		slog.String("storage_backend", cfg.Storage.Backend),
	)
	return svc, nil
}

func (c *cli) close(ctx context.Context) error {
	if c.injector == nil {
		return nil
	}
	report := c.injector.ShutdownWithContext(ctx)
	if report != nil && len(report.Errors) > 0 {
		return fmt.Errorf("closing task list: %s", report.Error())
	}
	return nil
}
