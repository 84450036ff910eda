package store_test

import (
	"context"
	"testing"
	"time"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/memory"
	"study-assistant-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTaskPreservesOrder(t *testing.T) {
	st, _ := newStore(t)
	ctx := context.Background()

	first := entity.Task{Id: uuid.New(), Title: "read chapter 3", Category: "study"}
	second := entity.Task{Id: uuid.New(), Title: "submit essay", Category: "assignment"}
	require.NoError(t, st.AddTask(ctx, first))
	require.NoError(t, st.AddTask(ctx, second))

	tasks := st.Snapshot().Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, first.Id, tasks[0].Id)
	assert.Equal(t, second.Id, tasks[1].Id)
}

func TestToggleTask(t *testing.T) {
	st, repo := newStore(t)
	ctx := context.Background()

	task := entity.Task{Id: uuid.New(), Title: "revise"}
	require.NoError(t, st.AddTask(ctx, task))

	require.NoError(t, st.ToggleTask(ctx, task.Id))
	assert.True(t, st.Snapshot().Tasks[0].Completed)

	require.NoError(t, st.ToggleTask(ctx, task.Id))
	assert.False(t, st.Snapshot().Tasks[0].Completed)

	// Toggling an unknown id changes nothing and writes nothing.
	saves := repo.Saves()
	require.NoError(t, st.ToggleTask(ctx, uuid.New()))
	assert.Equal(t, saves, repo.Saves())
}

func TestDeleteTaskIdempotent(t *testing.T) {
	st, repo := newStore(t)
	ctx := context.Background()

	task := entity.Task{Id: uuid.New(), Title: "revise"}
	require.NoError(t, st.AddTask(ctx, task))

	require.NoError(t, st.DeleteTask(ctx, task.Id))
	assert.Empty(t, st.Snapshot().Tasks)

	saves := repo.Saves()
	require.NoError(t, st.DeleteTask(ctx, task.Id))
	assert.Equal(t, saves, repo.Saves())
}

func TestAddSummaryPrepends(t *testing.T) {
	st, _ := newStore(t)
	ctx := context.Background()

	older := entity.SummarySession{Id: uuid.New(), Title: "older"}
	newer := entity.SummarySession{Id: uuid.New(), Title: "newer"}
	require.NoError(t, st.AddSummary(ctx, older))
	require.NoError(t, st.AddSummary(ctx, newer))

	summaries := st.Snapshot().Summaries
	require.Len(t, summaries, 2)
	assert.Equal(t, "newer", summaries[0].Title)
	assert.Equal(t, "older", summaries[1].Title)
}

func TestAppendChatReplyDiscardedAfterClear(t *testing.T) {
	st, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, st.AppendChatMessage(ctx, entity.ChatMessage{
		Id: uuid.New(), Role: "user", Text: "explain osmosis",
	}))

	epoch := st.ChatEpoch()
	require.NoError(t, st.ClearChat(ctx))

	appended, err := st.AppendChatReply(ctx, entity.ChatMessage{
		Id: uuid.New(), Role: "model", Text: "osmosis is...",
	}, epoch)

	require.NoError(t, err)
	assert.False(t, appended)
	assert.Empty(t, st.Snapshot().ChatHistory)
}

func TestAppendChatReplyCurrentEpoch(t *testing.T) {
	st, _ := newStore(t)
	ctx := context.Background()

	appended, err := st.AppendChatReply(ctx, entity.ChatMessage{
		Id: uuid.New(), Role: "model", Text: "hello",
	}, st.ChatEpoch())

	require.NoError(t, err)
	assert.True(t, appended)
	require.Len(t, st.Snapshot().ChatHistory, 1)
}

func TestHydrateRoundTrip(t *testing.T) {
	repo := memory.NewSnapshotRepository()
	ctx := context.Background()

	st := store.New(repo)
	task := entity.Task{Id: uuid.New(), Title: "persisted", Date: "2026-09-01", CreatedAt: time.Now().UTC()}
	require.NoError(t, st.AddTask(ctx, task))
	require.NoError(t, st.SetTheme(ctx, "dark"))
	require.NoError(t, st.SetUser(ctx, &entity.UserProfile{Name: "Ada", Email: "ada@example.com"}))

	// A fresh store backed by the same persister sees the saved snapshot.
	rehydrated := store.New(repo)
	require.NoError(t, rehydrated.Hydrate(ctx))

	snapshot := rehydrated.Snapshot()
	require.Len(t, snapshot.Tasks, 1)
	assert.Equal(t, task.Id, snapshot.Tasks[0].Id)
	assert.Equal(t, "dark", snapshot.Theme)
	require.NotNil(t, snapshot.User)
	assert.Equal(t, "Ada", snapshot.User.Name)
}

func TestHydrateEmptyPersister(t *testing.T) {
	st, _ := newStore(t)

	require.NoError(t, st.Hydrate(context.Background()))

	snapshot := st.Snapshot()
	assert.Equal(t, "system", snapshot.Theme)
	assert.NotNil(t, snapshot.Tasks)
	assert.Empty(t, snapshot.Tasks)
}

func TestDeleteFlashcardSet(t *testing.T) {
	st, _ := newStore(t)
	ctx := context.Background()

	set := entity.FlashcardSet{Id: uuid.New(), Title: "biology"}
	require.NoError(t, st.AddFlashcardSet(ctx, set))
	require.NoError(t, st.DeleteFlashcardSet(ctx, set.Id))

	assert.Empty(t, st.Snapshot().FlashcardSets)
}

func newStore(t *testing.T) (*store.Store, *memory.SnapshotRepository) {
	t.Helper()
	repo := memory.NewSnapshotRepository()
	return store.New(repo), repo
}
