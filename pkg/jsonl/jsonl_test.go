package jsonl

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	ID     string  `json:"id"`
	Prompt *string `json:"prompt"`
}

func TestWriter(t *testing.T) {
	t.Run("Create writes one line per record", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "out.jsonl")

		w, err := Create[record](path)
		require.NoError(t, err)

		prompt := "<fim_prefix>x"
		require.NoError(t, w.Append(record{ID: "a", Prompt: &prompt}))
		require.NoError(t, w.Append(record{ID: "b"}))
		require.Equal(t, uint64(2), w.Len())
		require.Equal(t, path, w.Path())
		require.NoError(t, w.Close())

		raw, err := os.ReadFile(path)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
		require.Len(t, lines, 2)
		require.Equal(t, `{"id":"a","prompt":"<fim_prefix>x"}`, lines[0])
		require.Equal(t, `{"id":"b","prompt":null}`, lines[1])
	})

	t.Run("Create truncates and OpenAppend appends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.jsonl")

		w, err := Create[record](path)
		require.NoError(t, err)
		require.NoError(t, w.AppendBatch([]record{{ID: "1"}, {ID: "2"}}))
		require.NoError(t, w.Close())

		w, err = OpenAppend[record](path)
		require.NoError(t, err)
		require.NoError(t, w.Append(record{ID: "3"}))
		require.NoError(t, w.Close())

		items, err := ReadAll[record](path)
		require.NoError(t, err)
		require.Len(t, items, 3)
		require.Equal(t, "3", items[2].ID)

		w, err = Create[record](path)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		items, err = ReadAll[record](path)
		require.NoError(t, err)
		require.Empty(t, items)
	})

	t.Run("Close is idempotent", func(t *testing.T) {
		w, err := Create[record](filepath.Join(t.TempDir(), "out.jsonl"))
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.NoError(t, w.Close())
	})

	t.Run("concurrent appends keep whole lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.jsonl")

		w, err := Create[record](path)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()
				if err := w.Append(record{ID: strings.Repeat("x", 100)}); err != nil {
					t.Error(err)
				}
			}()
		}

		wg.Wait()
		require.NoError(t, w.Close())

		items, err := ReadAll[record](path)
		require.NoError(t, err)
		require.Len(t, items, 50)
	})
}

func TestRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{\"id\":\"a\"}\n{\"id\":\"b\"}\n{\"id\":\"c\"}\n"), 0o600))

	t.Run("visits records in order", func(t *testing.T) {
		var ids []string

		err := Range(path, func(index uint64, item record) error {
			require.Equal(t, uint64(len(ids)), index)
			ids = append(ids, item.ID)

			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "c"}, ids)
	})

	t.Run("stops on callback error", func(t *testing.T) {
		stop := errors.New("stop")
		visited := 0

		err := Range(path, func(_ uint64, _ record) error {
			visited++
			return stop
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 1, visited)
	})

	t.Run("reports decode errors", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.jsonl")
		require.NoError(t, os.WriteFile(bad, []byte("{\"id\":\"a\"}\n{oops\n"), 0o600))

		_, err := ReadAll[record](bad)
		require.Error(t, err)
		require.Contains(t, err.Error(), "record 1")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadAll[record](filepath.Join(t.TempDir(), "missing.jsonl"))
		require.Error(t, err)
	})
}
