package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Add_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	store := NewStore(storage)
	_, err := store.Add(ctx, "session-1", watch(1, "Chrono X", 50000), 2, nil)
	require.NoError(t, err)

	// A new Store over the same storage must rehydrate the cart.
	rehydrated, err := NewStore(storage).Get(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, rehydrated.Items, 1)
	assert.Equal(t, 2, rehydrated.Items[0].Quantity)
}

func TestStore_Get_MissingSessionIsEmptyCart(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	c, err := store.Get(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	_, err := store.Add(ctx, "session-1", watch(1, "Chrono X", 50000), 1, nil)
	require.NoError(t, err)

	c, err := store.Get(ctx, "session-2")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestStore_UpdateAndRemovePersist(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	_, err := store.Add(ctx, "s", watch(1, "Chrono X", 50000), 1, nil)
	require.NoError(t, err)
	_, err = store.Add(ctx, "s", watch(2, "Casio G", 12000), 1, nil)
	require.NoError(t, err)

	_, err = store.UpdateQuantity(ctx, "s", 1, 4)
	require.NoError(t, err)
	_, err = store.Remove(ctx, "s", 2)
	require.NoError(t, err)

	c, err := store.Get(ctx, "s")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 4, c.Items[0].Quantity)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	_, err := store.Add(ctx, "s", watch(1, "Chrono X", 50000), 3, nil)
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, "s"))

	c, err := store.Get(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestDecodeItems_CorruptDataIsEmptyCart(t *testing.T) {
	assert.Nil(t, decodeItems("s", []byte("{not json")))
	assert.Nil(t, decodeItems("s", []byte(`"a string"`)))
}

func TestDecodeItems_RoundTrip(t *testing.T) {
	items := decodeItems("s", []byte(`[{"product":{"id":1,"name":"Chrono X","price":50000},"quantity":2}]`))
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
}
