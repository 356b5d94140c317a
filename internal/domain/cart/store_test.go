package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/pkg/money"
)

func newTestStore() (*Store, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return NewStore(testCatalog(), log), hook
}

func TestStoreStartsEmpty(t *testing.T) {
	store, _ := newTestStore()
	assert.True(t, store.State().IsEmpty())
}

func TestStoreAddAndUpdate(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	state, err := store.AddItem(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, state.Len())

	state, err = store.AddItem(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, money.Cents(3998), TotalPrice(state))

	state, err = store.UpdateQuantity(ctx, "p1", -2)
	require.NoError(t, err)
	assert.True(t, state.IsEmpty())
	assert.True(t, store.State().IsEmpty())
}

func TestStoreKeepsStateOnError(t *testing.T) {
	ctx := context.Background()
	store, hook := newTestStore()

	_, err := store.AddItem(ctx, "p1")
	require.NoError(t, err)
	before := store.State()

	_, err = store.AddItem(ctx, "unknown-id")
	assert.ErrorIs(t, err, ErrUnknownProduct)
	_, err = store.UpdateQuantity(ctx, "p2", -1)
	assert.ErrorIs(t, err, ErrItemNotInCart)

	assert.Equal(t, before.Items(), store.State().Items())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "update_quantity", entry.Data["action"])
	assert.Equal(t, "p2", entry.Data["product_id"])
	assert.Equal(t, -1, entry.Data["delta"])
}

func TestStoreLogsTransitions(t *testing.T) {
	store, hook := newTestStore()

	_, err := store.AddItem(context.Background(), "p2")
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "add_item", entry.Data["action"])
	assert.Equal(t, 1, entry.Data["items"])
}

func TestStoreSnapshotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	first, err := store.AddItem(ctx, "p1")
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "p1")
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "p2")
	require.NoError(t, err)

	assert.Equal(t, []LineItem{{ID: "p1", Name: "Shirt", Price: 1999, Quantity: 1}}, first.Items())
	assert.Equal(t, 2, store.State().Len())
}

func TestStoreConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.AddItem(ctx, "p1")
			_ = store.State()
		}()
	}
	wg.Wait()

	item, ok := store.State().Find("p1")
	require.True(t, ok)
	assert.Equal(t, writers, item.Quantity)
	assert.Equal(t, 1, store.State().Len())
}
