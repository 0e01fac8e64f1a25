package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	db := openTestStore(t).DB()

	var fk int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)

	var sync int
	require.NoError(t, db.QueryRow("PRAGMA synchronous").Scan(&sync))
	assert.Equal(t, 1, sync, "synchronous should be NORMAL")
}

func TestOpen_FileDatabaseIsReopenable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendLLMRequest(context.Background(), LLMRequestEventData{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "roadmap-gen", Success: true}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	events, err := s.EventRepo().QueryLLMEvents(context.Background(), QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	calls := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "roadmap-gen", InputTokens: 120, OutputTokens: 900, LatencyMs: 2100, Success: true, RequestBody: "[user]\nplan", ResponseBody: `{"weeks":[]}`},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "job-match", InputTokens: 80, OutputTokens: 300, LatencyMs: 1500, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "job-match", LatencyMs: 500, Success: false, ErrorMessage: "LLM provider unavailable"},
	}
	for _, c := range calls {
		require.NoError(t, repo.AppendLLMRequest(ctx, c))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "LLM provider unavailable", all[0].ErrorMessage, "newest first")
	assert.Equal(t, `{"weeks":[]}`, all[2].ResponseBody)
	assert.NotEmpty(t, all[2].RequestID)
	assert.WithinDuration(t, time.Now(), all[2].Timestamp, time.Minute)

	jobs, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "job-match", Limit: 1})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.False(t, jobs[0].Success)

	future, err := repo.QueryLLMEvents(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)

	got, err := repo.GetLLMEvent(ctx, all[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "roadmap-gen", got.Purpose)
	assert.Equal(t, 900, got.OutputTokens)
}

func TestGetLLMEvent_NotFound(t *testing.T) {
	_, err := openTestStore(t).EventRepo().GetLLMEvent(context.Background(), 42)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLLMUsage(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Model: "gemini-2.5-flash", Purpose: "roadmap-gen", InputTokens: 100, OutputTokens: 1000, LatencyMs: 3000, Success: true}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Model: "gemini-2.5-flash", Purpose: "roadmap-gen", InputTokens: 100, OutputTokens: 0, LatencyMs: 1000, Success: false}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Model: "gpt-4o-mini", Purpose: "job-match", InputTokens: 50, OutputTokens: 200, LatencyMs: 800, Success: true}))

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, PurposeUsage{Purpose: "job-match", Calls: 1, InputTokens: 50, OutputTokens: 200, AvgLatencyMs: 800}, byPurpose[0])
	assert.Equal(t, PurposeUsage{Purpose: "roadmap-gen", Calls: 2, Failures: 1, InputTokens: 200, OutputTokens: 1000, AvgLatencyMs: 2000}, byPurpose[1])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, ModelUsage{Model: "gemini-2.5-flash", Calls: 2, InputTokens: 200, OutputTokens: 1000}, byModel[0])
}

func TestDiscard(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, Discard.AppendLLMRequest(ctx, LLMRequestEventData{}))
	events, err := Discard.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, events)
	_, err = Discard.GetLLMEvent(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEARNPATH_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "learnpath", "learnpath.db"), p)
	assert.DirExists(t, filepath.Join(dir, "learnpath"))

	t.Setenv("LEARNPATH_DB", filepath.Join(dir, "x", "custom.db"))
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "x", "custom.db"), p)
}
