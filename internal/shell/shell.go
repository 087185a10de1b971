// Package shell runs session commands read line by line from a reader.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"todoapp/internal/cli"
	"todoapp/internal/exitcode"
)

// Prompt is written before each line when the shell is interactive.
const Prompt = "todo> "

// Shell feeds lines to a dispatcher until input ends, a quit command is
// read, or the context is cancelled.
type Shell struct {
	dispatcher  *cli.Dispatcher
	logger      *zap.Logger
	interactive bool
}

// New creates a shell. When interactive is true a prompt is printed before
// each line. A nil logger disables logging.
func New(dispatcher *cli.Dispatcher, logger *zap.Logger, interactive bool) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		dispatcher:  dispatcher,
		logger:      logger,
		interactive: interactive,
	}
}

// Run reads commands from in and returns the exit code of the last command
// that ran, or Success if none did. Blank lines and lines starting with '#'
// are skipped.
func (s *Shell) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) (int, error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	code := exitcode.Success
	for {
		if s.interactive {
			fmt.Fprint(out, Prompt)
		}

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			s.logger.Debug("shell cancelled")
			return code, ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			if err := <-readErr; err != nil {
				return code, fmt.Errorf("failed to read input: %w", err)
			}
			return code, nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return code, nil
		}

		s.logger.Debug("shell command", zap.String("command", fields[0]))
		code = s.dispatcher.Run(ctx, fields, out, errOut)
	}
}
