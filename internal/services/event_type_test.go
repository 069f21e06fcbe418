package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inholiday/internal/domain"
)

func TestEventTypeService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and trims the name", func(t *testing.T) {
		repo := newFakeEventTypeRepo()
		svc := NewEventTypeService(repo)

		require.NoError(t, svc.Add(ctx, "  Wedding ").Err())

		list := svc.List(ctx)
		require.NoError(t, list.Err())
		require.Len(t, list.Value(), 1)
		assert.Equal(t, "Wedding", list.Value()[0].Name)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		repo := newFakeEventTypeRepo()
		svc := NewEventTypeService(repo)

		require.NoError(t, svc.Add(ctx, "Wedding").Err())
		res := svc.Add(ctx, "Wedding")
		require.Error(t, res.Err())
		assert.ErrorIs(t, res.Err(), domain.ErrExists)
		assert.Len(t, repo.byID, 1)
	})
}

func TestEventTypeService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventTypeRepo()
	svc := NewEventTypeService(repo)

	require.NoError(t, svc.Add(ctx, "Wedding").Err())
	require.NoError(t, svc.Add(ctx, "Birthday").Err())

	t.Run("rename to taken name conflicts", func(t *testing.T) {
		res := svc.Update(ctx, 2, "Wedding")
		require.Error(t, res.Err())
		assert.ErrorIs(t, res.Err(), domain.ErrExists)
	})

	t.Run("rename to free name succeeds", func(t *testing.T) {
		require.NoError(t, svc.Update(ctx, 2, "Anniversary").Err())
		got, err := repo.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Anniversary", got.Name)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		res := svc.Update(ctx, 999, "Graduation")
		require.Error(t, res.Err())
		assert.ErrorIs(t, res.Err(), domain.ErrNotFound)
	})
}

func TestEventTypeService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventTypeRepo()
	svc := NewEventTypeService(repo)

	require.NoError(t, svc.Add(ctx, "Wedding").Err())
	require.NoError(t, svc.Delete(ctx, 1).Err())

	again := svc.Delete(ctx, 1)
	require.Error(t, again.Err())
	assert.ErrorIs(t, again.Err(), domain.ErrNotFound)
}
