package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/event"
	"github.com/osse101/PotionCraft_Go/internal/repository"
)

var errStorageDown = errors.New("storage down")

// failingSaves lets saves and deletes through until broken is set
type failingSaves struct {
	repository.Snapshots
	broken bool
}

func (f *failingSaves) SaveSnapshots(ctx context.Context, id string, docs map[string][]byte) error {
	if f.broken {
		return errStorageDown
	}
	return f.Snapshots.SaveSnapshots(ctx, id, docs)
}

func (f *failingSaves) DeleteSnapshots(ctx context.Context, id string) error {
	if f.broken {
		return errStorageDown
	}
	return f.Snapshots.DeleteSnapshots(ctx, id)
}

func newFailingHarness(t *testing.T, cfg Config) (harness, *failingSaves) {
	t.Helper()
	h := newHarness(t, cfg)
	saves := &failingSaves{Snapshots: h.store}
	h.svc.store = saves
	return h, saves
}

func TestFailedSave_LeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()

	t.Run("CASE 1: spend and stake", func(t *testing.T) {
		h, saves := newFailingHarness(t, Config{})
		id := h.openConnected(t)
		before, err := h.svc.Get(ctx, id)
		require.NoError(t, err)
		seen := len(*h.events)

		saves.broken = true
		_, err = h.svc.Spend(ctx, id, 100, "test")
		assert.ErrorIs(t, err, errStorageDown)
		_, err = h.svc.Stake(ctx, id, 200)
		assert.ErrorIs(t, err, errStorageDown)

		after, err := h.svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, before.Wallet.Balance, after.Wallet.Balance)
		assert.Zero(t, after.Rewards.StakedKai)

		stats, _ := h.store.GetPoolStats(ctx)
		assert.Equal(t, int64(10_000_000), stats.TotalKaiStaked)
		assert.Len(t, *h.events, seen, "nothing is published for a failed save")
	})

	t.Run("CASE 2: craft and unstake", func(t *testing.T) {
		h, saves := newFailingHarness(t, Config{})
		id := h.openConnected(t)
		_, err := h.svc.Stake(ctx, id, 500)
		require.NoError(t, err)
		before, err := h.svc.Get(ctx, id)
		require.NoError(t, err)

		saves.broken = true
		_, err = h.svc.Craft(ctx, id, CraftRequest{Name: "Lost Draught"})
		assert.Error(t, err)
		_, err = h.svc.Unstake(ctx, id)
		assert.Error(t, err)

		after, err := h.svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, before.Wallet.Balance, after.Wallet.Balance)
		assert.Empty(t, after.Inventory)
		assert.Equal(t, int64(500), after.Rewards.StakedKai)

		stats, _ := h.store.GetPoolStats(ctx)
		assert.Equal(t, int64(10_000_500), stats.TotalKaiStaked)

		// the session works again once storage recovers
		saves.broken = false
		_, err = h.svc.Unstake(ctx, id)
		require.NoError(t, err)
		stats, _ = h.store.GetPoolStats(ctx)
		assert.Equal(t, int64(10_000_000), stats.TotalKaiStaked)
	})

	t.Run("CASE 3: connect with sample seeding", func(t *testing.T) {
		h, saves := newFailingHarness(t, Config{SeedSample: true})
		view, err := h.svc.Open(ctx)
		require.NoError(t, err)

		saves.broken = true
		_, err = h.svc.Connect(ctx, view.ID)
		assert.Error(t, err)

		after, err := h.svc.Get(ctx, view.ID)
		require.NoError(t, err)
		assert.False(t, after.Wallet.Connected)
		assert.Empty(t, after.Inventory)
		assert.Zero(t, after.Rewards.StakedKai)

		stats, _ := h.store.GetPoolStats(ctx)
		assert.Equal(t, int64(10_000_000), stats.TotalKaiStaked)

		saves.broken = false
		connected, err := h.svc.Connect(ctx, view.ID)
		require.NoError(t, err)
		assert.True(t, connected.Wallet.Connected)
		assert.Len(t, connected.Inventory, h.svc.economy.Tuning().Sample.Items)
	})

	t.Run("CASE 4: reset keeps the stake", func(t *testing.T) {
		h, saves := newFailingHarness(t, Config{})
		id := h.openConnected(t)
		_, err := h.svc.Stake(ctx, id, 300)
		require.NoError(t, err)

		saves.broken = true
		assert.ErrorIs(t, h.svc.Reset(ctx, id), errStorageDown)

		after, err := h.svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(300), after.Rewards.StakedKai)
		stats, _ := h.store.GetPoolStats(ctx)
		assert.Equal(t, int64(10_000_300), stats.TotalKaiStaked)
	})
}

func TestFailedImport_KeepsPreviousSession(t *testing.T) {
	h, saves := newFailingHarness(t, Config{})
	ctx := context.Background()
	id := h.openConnected(t)
	_, err := h.svc.Stake(ctx, id, 400)
	require.NoError(t, err)
	data, err := h.svc.Export(ctx, id)
	require.NoError(t, err)

	other := h.openConnected(t)
	_, err = h.svc.Stake(ctx, other, 100)
	require.NoError(t, err)

	saves.broken = true
	_, err = h.svc.Import(ctx, other, data)
	assert.ErrorIs(t, err, errStorageDown)

	view, err := h.svc.Get(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, int64(100), view.Rewards.StakedKai)
	stats, _ := h.store.GetPoolStats(ctx)
	assert.Equal(t, int64(10_000_500), stats.TotalKaiStaked)
}

func TestEventsPublishedAfterSave(t *testing.T) {
	h := newHarness(t, Config{})
	ctx := context.Background()
	id := h.openConnected(t)

	var savedBalance int64
	h.svc.bus.Subscribe(domain.EventTypeKaiSpent, func(ctx context.Context, _ event.Event) error {
		docs, err := h.store.LoadSnapshots(ctx, id)
		if err != nil {
			return err
		}
		var ws domain.WalletState
		if err := json.Unmarshal(docs[domain.SnapshotKeyWallet], &ws); err != nil {
			return err
		}
		savedBalance = ws.Balance
		return nil
	})

	ws, err := h.svc.Spend(ctx, id, 100, "test")
	require.NoError(t, err)
	assert.Equal(t, ws.Balance, savedBalance, "subscribers see the stored state")
}

func TestImport_OversizedBundle(t *testing.T) {
	h := newHarness(t, Config{})
	payload := bytes.Repeat([]byte{' '}, MaxDecodedBundleBytes+1)

	t.Run("CASE 1: size in the frame header", func(t *testing.T) {
		enc, err := zstd.NewWriter(nil)
		require.NoError(t, err)
		defer enc.Close()

		huge := enc.EncodeAll(payload, nil)
		require.Less(t, len(huge), 64<<10)
		_, err = h.svc.Import(context.Background(), "x", huge)
		assert.ErrorIs(t, err, domain.ErrInvalidBundle)
	})

	t.Run("CASE 2: streamed frame", func(t *testing.T) {
		var buf bytes.Buffer
		enc, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		for off := 0; off < len(payload); off += 64 << 10 {
			_, err = enc.Write(payload[off:min(off+64<<10, len(payload))])
			require.NoError(t, err)
		}
		require.NoError(t, enc.Close())

		_, err = h.svc.Import(context.Background(), "x", buf.Bytes())
		assert.ErrorIs(t, err, domain.ErrInvalidBundle)
	})
}

func TestImport_ClampsNumbers(t *testing.T) {
	h := newHarness(t, Config{})
	ctx := context.Background()

	items := []domain.Item{{ID: "forged", Name: "Forged", DailyEarnings: 1_000_000, TotalEarnings: -5, UsageCount: -1}}
	rawItems, _ := json.Marshal(items)
	rawLedger, _ := json.Marshal(domain.Ledger{UnclaimedRewards: -40, WorldPoolShare: -3})
	raw, _ := json.Marshal(bundle{
		Version: BundleVersion,
		Snapshots: map[string]json.RawMessage{
			domain.SnapshotKeyInventory: rawItems,
			domain.SnapshotKeyStaking:   rawLedger,
		},
	})
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()

	view, err := h.svc.Import(ctx, "clamped", enc.EncodeAll(raw, nil))
	require.NoError(t, err)
	require.Len(t, view.Inventory, 1)
	assert.Equal(t, int64(MaxImportedDailyEarnings), view.Inventory[0].DailyEarnings)
	assert.Zero(t, view.Inventory[0].TotalEarnings)
	assert.Zero(t, view.Inventory[0].UsageCount)
	assert.Zero(t, view.Rewards.UnclaimedRewards)
	assert.Zero(t, view.Rewards.WorldPoolShare)
}
