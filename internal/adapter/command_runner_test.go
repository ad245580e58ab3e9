package adapter

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/shlex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCommandRunner_Run(t *testing.T) {
	runner := NewLocalCommandRunner()
	dir := t.TempDir()

	t.Run("success captures output", func(t *testing.T) {
		result, err := runner.Run(context.Background(), dir, `sh -c "echo out; echo err 1>&2"`, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Succeeded())
		assert.Contains(t, result.Output, "out")
		assert.Contains(t, result.Output, "err")
	})

	t.Run("runs in work dir", func(t *testing.T) {
		result, err := runner.Run(context.Background(), dir, "pwd", time.Minute)
		require.NoError(t, err)
		assert.Contains(t, result.Output, dir)
	})

	t.Run("non-zero exit is a result", func(t *testing.T) {
		result, err := runner.Run(context.Background(), dir, `sh -c "exit 3"`, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Succeeded())
		assert.Equal(t, 3, result.ExitCode)
		assert.False(t, result.TimedOut)
	})

	t.Run("timeout is a failed result", func(t *testing.T) {
		result, err := runner.Run(context.Background(), dir, "sleep 5", 100*time.Millisecond)
		require.NoError(t, err)
		assert.True(t, result.TimedOut)
		assert.False(t, result.Succeeded())
		assert.Less(t, result.Duration, 5*time.Second)
	})

	t.Run("missing binary is an error", func(t *testing.T) {
		_, err := runner.Run(context.Background(), dir, "definitely-not-a-binary-elle", time.Minute)
		require.Error(t, err)
	})

	t.Run("empty command is an error", func(t *testing.T) {
		_, err := runner.Run(context.Background(), dir, "   ", time.Minute)
		require.Error(t, err)
	})
}

func TestExpandCommand(t *testing.T) {
	command := ExpandCommand("tool -w {path} --bug {bug}", map[string]string{
		"path": "/tmp/with space/it's",
		"bug":  "Lang-1",
	})

	argv, err := shlex.Split(command)
	require.NoError(t, err)
	assert.Equal(t, []string{"tool", "-w", "/tmp/with space/it's", "--bug", "Lang-1"}, argv)

	assert.Equal(t, "x ''", ExpandCommand("x {empty}", map[string]string{"empty": ""}))
	assert.True(t, strings.HasPrefix(ExpandCommand("{a}", map[string]string{"a": "{b}", "b": "no"}), "{b}"))
}
