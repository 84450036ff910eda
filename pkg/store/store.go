// Package store owns every persisted collection of the application behind a
// single snapshot object. Each mutation swaps in a new snapshot and writes
// it through a pluggable Persister, so persistence stays a side effect
// rather than part of the mutation path.
package store

import (
	"context"
	"sync"

	"study-assistant-be/internal/entity"

	"github.com/google/uuid"
)

// Persister durably stores the full snapshot under one fixed key and loads
// it back on boot.
type Persister interface {
	Save(ctx context.Context, state *State) error
	Load(ctx context.Context) (*State, error)
}

type Store struct {
	mu        sync.RWMutex
	state     *State
	chatEpoch uint64
	persister Persister
}

func New(persister Persister) *Store {
	return &Store{
		state:     NewState(),
		persister: persister,
	}
}

// Hydrate replaces the in-memory snapshot with the persisted one, if any.
func (s *Store) Hydrate(ctx context.Context) error {
	loaded, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}
	if loaded == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = normalize(loaded)
	return nil
}

// Snapshot returns the current state. Snapshots are immutable; callers must
// not modify the returned value.
func (s *Store) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ChatEpoch identifies the current chat history generation. ClearChat bumps
// it, which lets an in-flight send detect that its history is gone.
func (s *Store) ChatEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chatEpoch
}

// commit installs next as the current snapshot and persists it synchronously.
// Callers hold the write lock.
func (s *Store) commit(ctx context.Context, next *State) error {
	s.state = next
	return s.persister.Save(ctx, next)
}

func (s *Store) AddTask(ctx context.Context, task entity.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.shallowCopy()
	next.Tasks = append(copySlice(s.state.Tasks), task)
	return s.commit(ctx, next)
}

func (s *Store) ToggleTask(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := copySlice(s.state.Tasks)
	found := false
	for i := range tasks {
		if tasks[i].Id == id {
			tasks[i].Completed = !tasks[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	next := s.state.shallowCopy()
	next.Tasks = tasks
	return s.commit(ctx, next)
}

func (s *Store) DeleteTask(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, removed := filterOut(s.state.Tasks, func(t entity.Task) bool { return t.Id == id })
	if !removed {
		return nil
	}
	next := s.state.shallowCopy()
	next.Tasks = tasks
	return s.commit(ctx, next)
}

func (s *Store) AddFlashcardSet(ctx context.Context, set entity.FlashcardSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.shallowCopy()
	next.FlashcardSets = append(copySlice(s.state.FlashcardSets), set)
	return s.commit(ctx, next)
}

func (s *Store) DeleteFlashcardSet(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sets, removed := filterOut(s.state.FlashcardSets, func(fs entity.FlashcardSet) bool { return fs.Id == id })
	if !removed {
		return nil
	}
	next := s.state.shallowCopy()
	next.FlashcardSets = sets
	return s.commit(ctx, next)
}

func (s *Store) AddMCQSet(ctx context.Context, set entity.MCQSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.shallowCopy()
	next.MCQSets = append(copySlice(s.state.MCQSets), set)
	return s.commit(ctx, next)
}

func (s *Store) DeleteMCQSet(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sets, removed := filterOut(s.state.MCQSets, func(ms entity.MCQSet) bool { return ms.Id == id })
	if !removed {
		return nil
	}
	next := s.state.shallowCopy()
	next.MCQSets = sets
	return s.commit(ctx, next)
}

func (s *Store) AppendChatMessage(ctx context.Context, msg entity.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.shallowCopy()
	next.ChatHistory = append(copySlice(s.state.ChatHistory), msg)
	return s.commit(ctx, next)
}

// AppendChatReply appends msg only when the history generation observed at
// send time is still current. A reply that lost the race with ClearChat is
// discarded; the bool reports whether the message was appended.
func (s *Store) AppendChatReply(ctx context.Context, msg entity.ChatMessage, epoch uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.chatEpoch {
		return false, nil
	}
	next := s.state.shallowCopy()
	next.ChatHistory = append(copySlice(s.state.ChatHistory), msg)
	return true, s.commit(ctx, next)
}

func (s *Store) ClearChat(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chatEpoch++
	next := s.state.shallowCopy()
	next.ChatHistory = []entity.ChatMessage{}
	return s.commit(ctx, next)
}

// AddSummary prepends: newest analysis first, matching display order.
func (s *Store) AddSummary(ctx context.Context, summary entity.SummarySession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.shallowCopy()
	next.Summaries = append([]entity.SummarySession{summary}, s.state.Summaries...)
	return s.commit(ctx, next)
}

func (s *Store) DeleteSummary(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries, removed := filterOut(s.state.Summaries, func(ss entity.SummarySession) bool { return ss.Id == id })
	if !removed {
		return nil
	}
	next := s.state.shallowCopy()
	next.Summaries = summaries
	return s.commit(ctx, next)
}

func (s *Store) SetTheme(ctx context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.shallowCopy()
	next.Theme = theme
	return s.commit(ctx, next)
}

func (s *Store) SetUser(ctx context.Context, user *entity.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.shallowCopy()
	next.User = user
	return s.commit(ctx, next)
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func filterOut[T any](in []T, match func(T) bool) ([]T, bool) {
	out := make([]T, 0, len(in))
	removed := false
	for _, v := range in {
		if match(v) {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out, removed
}

// normalize guards against nil collections in an older persisted snapshot.
func normalize(st *State) *State {
	if st.Tasks == nil {
		st.Tasks = []entity.Task{}
	}
	if st.FlashcardSets == nil {
		st.FlashcardSets = []entity.FlashcardSet{}
	}
	if st.MCQSets == nil {
		st.MCQSets = []entity.MCQSet{}
	}
	if st.ChatHistory == nil {
		st.ChatHistory = []entity.ChatMessage{}
	}
	if st.Summaries == nil {
		st.Summaries = []entity.SummarySession{}
	}
	if st.Theme == "" {
		st.Theme = NewState().Theme
	}
	return st
}
