package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAppend(t *testing.T) {
	t.Run("appends trimmed text", func(t *testing.T) {
		l := NewList()

		ref, ok := l.Append("  Write report  ")
		require.True(t, ok)

		tasks := l.Tasks()
		require.Len(t, tasks, 1)
		assert.Equal(t, ref, tasks[0].Ref)
		assert.Equal(t, "Write report", tasks[0].Text)
		assert.False(t, tasks[0].Done)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		l := NewList()

		_, ok := l.Append("")
		assert.False(t, ok)

		_, ok = l.Append("   ")
		assert.False(t, ok)

		assert.Equal(t, 0, l.Len())
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		l := NewList()
		for _, text := range []string{"one", "two", "three"} {
			_, ok := l.Append(text)
			require.True(t, ok)
		}

		tasks := l.Tasks()
		require.Len(t, tasks, 3)
		assert.Equal(t, "one", tasks[0].Text)
		assert.Equal(t, "two", tasks[1].Text)
		assert.Equal(t, "three", tasks[2].Text)
	})
}

func TestListToggle(t *testing.T) {
	t.Run("flips done flag", func(t *testing.T) {
		l := NewList()
		ref, _ := l.Append("Walk dog")

		assert.True(t, l.Toggle(ref))
		assert.True(t, l.Tasks()[0].Done)

		assert.True(t, l.Toggle(ref))
		assert.False(t, l.Tasks()[0].Done)
	})

	t.Run("stale ref is a no-op", func(t *testing.T) {
		l := NewList()
		ref, _ := l.Append("Walk dog")
		l.Remove(ref)

		assert.False(t, l.Toggle(ref))
		assert.Equal(t, 0, l.Len())
	})
}

func TestListRemove(t *testing.T) {
	t.Run("duplicate refs remove once", func(t *testing.T) {
		l := NewList()
		a, _ := l.Append("a")
		l.Append("b")

		assert.Equal(t, 1, l.Remove(a, a))

		tasks := l.Tasks()
		require.Len(t, tasks, 1)
		assert.Equal(t, "b", tasks[0].Text)
	})

	t.Run("closes gaps keeping relative order", func(t *testing.T) {
		l := NewList()
		var refs []Ref
		for _, text := range []string{"a", "b", "c", "d"} {
			ref, _ := l.Append(text)
			refs = append(refs, ref)
		}

		assert.Equal(t, 2, l.Remove(refs[1], refs[3]))

		tasks := l.Tasks()
		require.Len(t, tasks, 2)
		assert.Equal(t, "a", tasks[0].Text)
		assert.Equal(t, "c", tasks[1].Text)
	})

	t.Run("stale refs are ignored", func(t *testing.T) {
		l := NewList()
		a, _ := l.Append("a")
		b, _ := l.Append("b")
		l.Remove(a)

		assert.Equal(t, 1, l.Remove(a, b))
		assert.Equal(t, 0, l.Len())
	})

	t.Run("empty ref set is a no-op", func(t *testing.T) {
		l := NewList()
		l.Append("a")

		assert.Equal(t, 0, l.Remove())
		assert.Equal(t, 1, l.Len())
	})
}

func TestListRefsStayStable(t *testing.T) {
	l := NewList()
	a, _ := l.Append("a")
	b, _ := l.Append("b")
	c, _ := l.Append("c")

	// Removing a neighbor must not shift what b and c denote.
	l.Remove(a)

	require.True(t, l.Toggle(c))
	tasks := l.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, b, tasks[0].Ref)
	assert.False(t, tasks[0].Done)
	assert.Equal(t, c, tasks[1].Ref)
	assert.True(t, tasks[1].Done)
}

func TestListSnapshotsAreIndependent(t *testing.T) {
	l := NewList()
	l.Append("a")

	first := l.Tasks()
	l.Append("b")
	second := l.Tasks()

	assert.Len(t, first, 1)
	assert.Len(t, second, 2)

	// Mutating a snapshot must not leak back into the list.
	first[0].Text = "mangled"
	assert.Equal(t, "a", l.Tasks()[0].Text)
}
