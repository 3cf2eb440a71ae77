package taskfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tracker/internal/core/task"
)

func TestSave(t *testing.T) {
	t.Run("writes one line per task in order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.txt")

		tasks := []task.Task{
			{Ref: 1, Text: "Buy milk", Done: true},
			{Ref: 2, Text: "Walk dog", Done: false},
		}
		require.NoError(t, Save(path, tasks))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "1;Buy milk\n0;Walk dog\n", string(data))
	})

	t.Run("overwrites rather than appends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.txt")

		require.NoError(t, Save(path, []task.Task{{Text: "old"}, {Text: "stale"}}))
		require.NoError(t, Save(path, []task.Task{{Text: "new"}}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "0;new\n", string(data))
	})

	t.Run("unwritable path returns error", func(t *testing.T) {
		err := Save(filepath.Join(t.TempDir(), "missing", "tasks.txt"), nil)
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "tasks.txt")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("missing file yields empty list", func(t *testing.T) {
		records, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("parses flag and text", func(t *testing.T) {
		records, err := Load(write(t, "1;Buy milk\n0;Walk dog\n"))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, Record{Text: "Buy milk", Done: true}, records[0])
		assert.Equal(t, Record{Text: "Walk dog", Done: false}, records[1])
	})

	t.Run("line without delimiter degrades to plain text", func(t *testing.T) {
		records, err := Load(write(t, "hello world\n"))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, Record{Text: "hello world", Done: false}, records[0])
	})

	t.Run("unparsable flag means not completed", func(t *testing.T) {
		records, err := Load(write(t, "yes;Buy milk\n2;Walk dog\n"))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, Record{Text: "Buy milk", Done: false}, records[0])
		assert.Equal(t, Record{Text: "Walk dog", Done: false}, records[1])
	})

	t.Run("splits on first delimiter only", func(t *testing.T) {
		records, err := Load(write(t, "1;call 555;1234\n"))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, Record{Text: "call 555;1234", Done: true}, records[0])
	})

	t.Run("strips carriage returns", func(t *testing.T) {
		records, err := Load(write(t, "0;Walk dog\r\n"))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Walk dog", records[0].Text)
	})

	t.Run("missing trailing newline still parses", func(t *testing.T) {
		records, err := Load(write(t, "1;Buy milk"))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, Record{Text: "Buy milk", Done: true}, records[0])
	})
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")

	tasks := []task.Task{
		{Ref: 1, Text: "Write report", Done: true},
		{Ref: 2, Text: "plan; then execute", Done: false},
		{Ref: 3, Text: "Walk dog", Done: false},
	}
	require.NoError(t, Save(path, tasks))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, len(tasks))
	for i, rec := range records {
		assert.Equal(t, tasks[i].Text, rec.Text, "text at %d", i)
		assert.Equal(t, tasks[i].Done, rec.Done, "done at %d", i)
	}
}
