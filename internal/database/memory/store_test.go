package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PotionCraft_Go/internal/domain"
)

func TestAdjustStaked(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.AdjustStaked(ctx, 10)
		}()
	}
	wg.Wait()

	stats, err := store.GetPoolStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10001000), stats.TotalKaiStaked)

	stats, err = store.AdjustStaked(ctx, -99999999)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalKaiStaked)
}

func TestSnapshots(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.LoadSnapshots(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	doc := []byte(`{"balance":1}`)
	require.NoError(t, store.SaveSnapshots(ctx, "s1", map[string][]byte{domain.SnapshotKeyWallet: doc}))
	doc[0] = 'X'

	loaded, err := store.LoadSnapshots(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, `{"balance":1}`, string(loaded[domain.SnapshotKeyWallet]), "store keeps its own copy")

	loaded[domain.SnapshotKeyWallet][0] = 'Y'
	again, _ := store.LoadSnapshots(ctx, "s1")
	assert.Equal(t, `{"balance":1}`, string(again[domain.SnapshotKeyWallet]))

	require.NoError(t, store.SaveSnapshots(ctx, "a0", map[string][]byte{domain.SnapshotKeyAppState: []byte(`{}`)}))
	ids, err := store.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "s1"}, ids)

	require.NoError(t, store.DeleteSnapshots(ctx, "s1"))
	_, err = store.LoadSnapshots(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
