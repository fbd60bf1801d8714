package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneynest/money_tracker_app/internal/storage"
)

func TestMemoryKVStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryKVStore()

	_, found, err := store.Load(ctx, "accounts")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, "accounts", []byte(`[1,2,3]`)))

	value, found, err := store.Load(ctx, "accounts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[1,2,3]`), value)
}

func TestMemoryKVStore_CopiesOnSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryKVStore()

	input := []byte(`abc`)
	require.NoError(t, store.Save(ctx, "k", input))
	input[0] = 'z'

	loaded, _, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), loaded)

	loaded[0] = 'z'
	again, _, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), again)
}
