package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	var repo Repository = NewMemory()

	first := NewRecord(StatusSuccess, "[  OK]", "a;b\n")
	second := NewRecord(StatusFailed, "bad input", "")
	_, err := uuid.Parse(first.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	// stored copies are not shared with callers
	got.Report = "changed"
	again, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "[  OK]", again.Report)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	first.Status = StatusFailed
	require.NoError(t, repo.Save(ctx, first))
	list, _ = repo.List(ctx)
	assert.Len(t, list, 2)
	assert.Equal(t, StatusFailed, list[0].Status)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.Get(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), ErrNotFound)

	list, _ = repo.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	assert.Error(t, repo.Save(ctx, &Record{}))
}
