package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightflow/booking-api/internal/repository"
	"github.com/freightflow/booking-api/internal/testutil"
)

func TestNextNumberIncrements(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewOrderSequenceRepository(db)
	ctx := context.Background()

	first, err := repo.NextNumber(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := repo.NextNumber(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)

	current, err := repo.CurrentSequence(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(2), current)
}

func TestNextNumberIsPerYear(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewOrderSequenceRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.NextNumber(ctx, 2025)
		require.NoError(t, err)
	}

	// A new year starts from scratch
	next, err := repo.NextNumber(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)

	current, err := repo.CurrentSequence(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(3), current)
}

func TestCurrentSequenceUnknownYear(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewOrderSequenceRepository(db)

	current, err := repo.CurrentSequence(context.Background(), 1999)
	require.NoError(t, err)
	assert.Zero(t, current)
}
