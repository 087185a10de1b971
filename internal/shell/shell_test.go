package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"todoapp/internal/cli"
	"todoapp/internal/commands"
	"todoapp/internal/config"
	"todoapp/internal/exitcode"
	"todoapp/internal/tasklist"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newShell(store *tasklist.Store, interactive bool) *Shell {
	d := cli.NewDispatcher(commands.DefaultRegistry, &config.Config{}, store, nil)
	return New(d, nil, interactive)
}

func TestShell_Scenario(t *testing.T) {
	store := tasklist.New(tasklist.SampleTasks())
	script := strings.Join([]string{
		"# start from the sample tasks",
		"add buy milk",
		"",
		"done 4",
		"rm 1",
		"list --active",
	}, "\n")

	var out, errOut bytes.Buffer
	code, err := newShell(store, false).Run(context.Background(), strings.NewReader(script), &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, errOut.String())
	assert.Equal(t, "added 4\nok\nok\nActive Tasks\n   0  [ ] Finish 411A Assignment\n   3  [ ] retire at an early age\n", out.String())
}

func TestShell_StaleReferenceDoesNotEndSession(t *testing.T) {
	store := tasklist.New(tasklist.SampleTasks())
	script := "rm 2\ndone 2\nadd after\n"

	var out, errOut bytes.Buffer
	code, err := newShell(store, false).Run(context.Background(), strings.NewReader(script), &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "error: task not found: 2\n", errOut.String())
	assert.Equal(t, "ok\nadded 4\n", out.String())
}

func TestShell_ReturnsLastCode(t *testing.T) {
	store := tasklist.New(nil)

	var out, errOut bytes.Buffer
	code, err := newShell(store, false).Run(context.Background(), strings.NewReader("add x\nrm 9\n"), &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, exitcode.UserError, code)
}

func TestShell_QuitStopsReading(t *testing.T) {
	store := tasklist.New(nil)

	var out, errOut bytes.Buffer
	_, err := newShell(store, true).Run(context.Background(), strings.NewReader("add a\nQUIT\nadd b\n"), &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, Prompt+"added 0\n"+Prompt, out.String())
}

func TestShell_ContextCancelled(t *testing.T) {
	store := tasklist.New(nil)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		_, err := newShell(store, false).Run(ctx, pr, io.Discard, io.Discard)
		result <- err
	}()

	cancel()
	select {
	case err := <-result:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("shell did not stop after cancel")
	}

	// Unblock the reader goroutine so goleak sees it exit.
	pw.Close()
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestShell_ReadError(t *testing.T) {
	_, err := newShell(tasklist.New(nil), false).Run(context.Background(), failingReader{}, io.Discard, io.Discard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
