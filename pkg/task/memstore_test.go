package task

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func newTestStore() *MemStore {
	s := NewMemStore()
	s.now = func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local) }
	return s
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	prev := 0
	for i := 0; i < 10; i++ {
		tk, err := s.Create(ctx, strp(fmt.Sprintf("task %d", i)))
		require.NoError(t, err)
		assert.Greater(t, tk.ID, prev)
		prev = tk.ID
	}
	assert.Equal(t, 10, prev)
}

func TestCreateTrimsText(t *testing.T) {
	s := newTestStore()

	tk, err := s.Create(context.Background(), strp("  buy milk  "))
	require.NoError(t, err)
	assert.Equal(t, "buy milk", tk.Text)
	assert.False(t, tk.Done)
	assert.Equal(t, 1, tk.ID)
	assert.Equal(t, "2026-03-14 09:26:53", tk.CreatedAt)
}

func TestCreateRejectsInvalidText(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	_, err := s.Create(ctx, strp("keep"))
	require.NoError(t, err)

	cases := map[string]*string{
		"absent":     nil,
		"empty":      strp(""),
		"whitespace": strp(" \t\n "),
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Create(ctx, text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			tasks, err := s.List(ctx)
			require.NoError(t, err)
			assert.Len(t, tasks, 1)
		})
	}

	// failed creates must not consume ids
	tk, err := s.Create(ctx, strp("next"))
	require.NoError(t, err)
	assert.Equal(t, 2, tk.ID)
}

func TestParseTextMessages(t *testing.T) {
	_, err := ParseText(nil)
	assert.EqualError(t, err, "Task text is required")

	_, err = ParseText(strp("   "))
	assert.EqualError(t, err, "Task text cannot be empty")
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	orig, err := s.Create(ctx, strp("a"))
	require.NoError(t, err)

	once, err := s.Toggle(ctx, orig.ID)
	require.NoError(t, err)
	assert.True(t, once.Done)

	twice, err := s.Toggle(ctx, orig.ID)
	require.NoError(t, err)
	assert.Equal(t, *orig, *twice)
}

func TestToggleAndDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	_, err := s.Create(ctx, strp("a"))
	require.NoError(t, err)
	before, _ := s.List(ctx)

	_, err = s.Toggle(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Delete(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	after, _ := s.List(ctx)
	assert.Equal(t, before, after)
}

func TestDeletePreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	for _, text := range []string{"a", "b", "c", "d"} {
		_, err := s.Create(ctx, strp(text))
		require.NoError(t, err)
	}
	_, err := s.Toggle(ctx, 2)
	require.NoError(t, err)

	removed, err := s.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, Task{ID: 2, Text: "b", Done: true, CreatedAt: "2026-03-14 09:26:53"}, *removed)

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	var ids []int
	for _, tk := range tasks {
		ids = append(ids, tk.ID)
	}
	assert.Equal(t, []int{1, 3, 4}, ids)

	// deleted ids are never reused
	tk, err := s.Create(ctx, strp("e"))
	require.NoError(t, err)
	assert.Equal(t, 5, tk.ID)
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	empty, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = s.Create(ctx, strp("a"))
	require.NoError(t, err)
	tasks, _ := s.List(ctx)
	tasks[0].Text = "changed"

	again, _ := s.List(ctx)
	assert.Equal(t, "a", again[0].Text)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	for _, text := range []string{"a", "b", "c"} {
		_, err := s.Create(ctx, strp(text))
		require.NoError(t, err)
	}
	_, err := s.Toggle(ctx, 3)
	require.NoError(t, err)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 3, Completed: 1, Pending: 2}, st)
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	const n = 200
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tk, err := s.Create(ctx, strp("x"))
			if err == nil {
				ids <- tk.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	tasks, _ := s.List(ctx)
	for i := 1; i < len(tasks); i++ {
		assert.Less(t, tasks[i-1].ID, tasks[i].ID)
	}
}
