package task

import (
	"context"
	"sync"
	"time"
)

// MemStore keeps tasks in process memory. The slice and the id counter
// are guarded by one mutex so every operation applies as a single step.
type MemStore struct {
	mu     sync.Mutex
	tasks  []Task
	nextID int
	now    func() time.Time
}

// NewMemStore creates an empty MemStore whose first id is 1.
func NewMemStore() *MemStore {
	return &MemStore{nextID: 1, now: time.Now}
}

// List returns a copy of all tasks in creation order.
func (s *MemStore) List(_ context.Context) ([]Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// Create validates text and appends a new task.
func (s *MemStore) Create(_ context.Context, text *string) (*Task, error) {
	trimmed, err := ParseText(text)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t := Task{
		ID:        s.nextID,
		Text:      trimmed,
		Done:      false,
		CreatedAt: s.now().Local().Format(TimeLayout),
	}
	s.tasks = append(s.tasks, t)
	s.nextID++
	return &t, nil
}

// Toggle flips the done flag of the task with the given id.
func (s *MemStore) Toggle(_ context.Context, id int) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	s.tasks[i].Done = !s.tasks[i].Done
	t := s.tasks[i]
	return &t, nil
}

// Delete removes the task with the given id and returns it as it was
// immediately before removal.
func (s *MemStore) Delete(_ context.Context, id int) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	t := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return &t, nil
}

// Stats counts completed and pending tasks.
func (s *MemStore) Stats(_ context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Done {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	return st, nil
}

// indexOf must be called with mu held.
func (s *MemStore) indexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
