package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"todoapp/internal/cli"
	"todoapp/internal/commands"
	"todoapp/internal/config"
	"todoapp/internal/exitcode"
	"todoapp/internal/logging"
	"todoapp/internal/output"
	"todoapp/internal/service"
	"todoapp/internal/shell"
	"todoapp/internal/tasklist"
	"todoapp/internal/tui"
)

// session is the state shared by one invocation: config, logger and store.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *tasklist.Store
}

type rootFlags struct {
	configDir string
	debug     bool
	quiet     bool
	noSeed    bool
}

// errConfig marks failures that map to exitcode.ConfigError.
var errConfig = errors.New("configuration error")

// runTUI starts the terminal UI. Tests replace it since they have no TTY.
var runTUI = tui.Run

// Execute builds the command tree, runs it with args and returns the exit code.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	root, code := newRootCmd(in, out, errOut)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		if errors.Is(err, errConfig) {
			return exitcode.ConfigError
		}
		if *code == exitcode.Success {
			return exitcode.UserError
		}
	}
	return *code
}

func newRootCmd(in io.Reader, out, errOut io.Writer) (*cobra.Command, *int) {
	var (
		flags rootFlags
		sess  *session
		code  = exitcode.Success
	)

	root := &cobra.Command{
		Use:   "todoapp",
		Short: "A small in-memory task list",
		Long: `todoapp keeps a list of short tasks for one session.

Run without arguments to start the interactive terminal UI. Tasks are not
saved: every session starts from the sample tasks (or empty with --no-seed).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags)
			if err != nil {
				return err
			}
			sess = s
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if sess != nil {
				_ = sess.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), sess.store, sess.logger)
		},
	}
	root.PersistentFlags().StringVar(&flags.configDir, "config", "", "config directory (default $XDG_CONFIG_HOME/todoapp)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "write debug logs to the config directory")
	root.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress informational output")
	root.PersistentFlags().BoolVar(&flags.noSeed, "no-seed", false, "start with an empty task list")

	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), sess.store, sess.logger)
		},
	}

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Read task commands line by line from stdin",
		Long: `Reads one command per line (add, done, rm, list, help, version) and
applies it to this session's tasks. "quit" or end of input ends the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := cli.NewDispatcher(commands.DefaultRegistry, sess.cfg, sess.store, sess.logger)
			sh := shell.New(d, sess.logger, isTerminal(in))
			c, err := sh.Run(cmd.Context(), in, out, errOut)
			code = c
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the starting tasks and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.FormatTaskList(out, sess.store)
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(out, "todoapp %s\n", commands.Version)
			return nil
		},
	}

	root.AddCommand(uiCmd, shellCmd, listCmd, versionCmd)
	return root, &code
}

// newSession loads configuration, applies flags, and creates the logger and store.
func newSession(flags rootFlags) (*session, error) {
	cfg, err := config.Load(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errConfig, err)
	}
	if flags.debug {
		cfg.Debug = true
	}
	if flags.noSeed {
		cfg.Seed = false
	}
	cfg.Quiet = flags.quiet

	logger, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errConfig, err)
	}

	var seed []service.Task
	if cfg.Seed {
		seed = tasklist.SampleTasks()
	}
	store := tasklist.New(seed, tasklist.WithLogger(logger))
	store.Subscribe(logging.StoreObserver(logger))
	if cfg.HasFile() {
		logger.Debug("config file loaded", zap.String("path", cfg.FilePath()))
	}
	logger.Debug("session started", zap.Bool("seed", cfg.Seed), zap.Int("tasks", store.Len()))

	return &session{cfg: cfg, logger: logger, store: store}, nil
}

// isTerminal reports whether r is an interactive character device.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
