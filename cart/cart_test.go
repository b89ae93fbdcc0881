package cart

import (
	"testing"

	"github.com/Luxera/luxera-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func watch(id uint, name string, price int) models.Product {
	return models.Product{ID: id, Name: name, Price: price, IsActive: true}
}

func TestCart_Add_MergesSameLine(t *testing.T) {
	var c Cart
	p := watch(1, "Chrono X", 50000)

	c.Add(p, 2, nil)
	c.Add(p, 3, nil)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestCart_Add_MergesSameOptionSet(t *testing.T) {
	var c Cart
	p := watch(1, "Chrono X", 50000)
	opts := map[string]string{"strap": "leather", "dial": "black"}

	c.Add(p, 1, map[string]string{"dial": "black", "strap": "leather"})
	c.Add(p, 2, opts)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestCart_Add_DistinctOptionsSeparateLines(t *testing.T) {
	var c Cart
	p := watch(1, "Chrono X", 50000)

	c.Add(p, 1, map[string]string{"strap": "leather"})
	c.Add(p, 1, map[string]string{"strap": "steel"})

	assert.Len(t, c.Items, 2)
}

func TestCart_Add_SnapshotsProduct(t *testing.T) {
	var c Cart
	p := watch(1, "Chrono X", 50000)
	c.Add(p, 1, nil)

	// A later catalog edit must not affect the cart line.
	p.Price = 99999

	assert.Equal(t, 50000, c.Items[0].Product.Price)
}

func TestCart_Add_CopiesOptionsMap(t *testing.T) {
	var c Cart
	p := watch(1, "Chrono X", 50000)
	opts := map[string]string{"strap": "leather"}

	c.Add(p, 1, opts)
	opts["strap"] = "steel"

	// The stored line keeps its original merge identity.
	assert.Equal(t, "leather", c.Items[0].SelectedOptions["strap"])

	c.Add(p, 2, map[string]string{"strap": "leather"})
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestCart_Add_NonPositiveQuantityBecomesOne(t *testing.T) {
	var c Cart
	c.Add(watch(1, "Chrono X", 50000), 0, nil)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestCart_Remove_DropsAllOptionVariants(t *testing.T) {
	var c Cart
	p := watch(1, "Chrono X", 50000)
	other := watch(2, "Casio G", 12000)

	c.Add(p, 1, map[string]string{"strap": "leather"})
	c.Add(p, 1, map[string]string{"strap": "steel"})
	c.Add(other, 1, nil)

	c.Remove(1)

	require.Len(t, c.Items, 1)
	assert.Equal(t, uint(2), c.Items[0].Product.ID)
}

func TestCart_UpdateQuantity_SetsQuantity(t *testing.T) {
	var c Cart
	c.Add(watch(1, "Chrono X", 50000), 2, nil)

	c.UpdateQuantity(1, 7)

	assert.Equal(t, 7, c.Items[0].Quantity)
}

func TestCart_UpdateQuantity_NonPositiveRemoves(t *testing.T) {
	for _, quantity := range []int{0, -1, -100} {
		var c Cart
		c.Add(watch(1, "Chrono X", 50000), 2, nil)

		c.UpdateQuantity(1, quantity)

		assert.Empty(t, c.Items, "quantity %d should remove the line", quantity)
	}
}

// Pins the intentional asymmetry: Add merges per option set, but
// UpdateQuantity touches every variant of the product.
func TestCart_UpdateQuantity_MatchesByProductIDOnly(t *testing.T) {
	var c Cart
	p := watch(1, "Chrono X", 50000)

	c.Add(p, 1, map[string]string{"strap": "leather"})
	c.Add(p, 2, map[string]string{"strap": "steel"})

	c.UpdateQuantity(1, 5)

	require.Len(t, c.Items, 2)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, 5, c.Items[1].Quantity)
}

func TestCart_Totals(t *testing.T) {
	var c Cart
	c.Add(watch(1, "Chrono X", 50000), 2, nil)
	c.Add(watch(2, "Casio G", 12000), 3, nil)

	assert.Equal(t, 5, c.TotalItems())
	assert.Equal(t, 2*50000+3*12000, c.TotalPrice())

	c.UpdateQuantity(2, 1)
	assert.Equal(t, 3, c.TotalItems())
	assert.Equal(t, 2*50000+12000, c.TotalPrice())

	c.Remove(1)
	assert.Equal(t, 1, c.TotalItems())
	assert.Equal(t, 12000, c.TotalPrice())
}

func TestCart_Clear(t *testing.T) {
	var c Cart
	c.Add(watch(1, "Chrono X", 50000), 2, nil)

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalItems())
	assert.Zero(t, c.TotalPrice())
}

func TestCart_InsertionOrderPreserved(t *testing.T) {
	var c Cart
	c.Add(watch(3, "Omega S", 90000), 1, nil)
	c.Add(watch(1, "Chrono X", 50000), 1, nil)
	c.Add(watch(2, "Casio G", 12000), 1, nil)

	require.Len(t, c.Items, 3)
	assert.Equal(t, uint(3), c.Items[0].Product.ID)
	assert.Equal(t, uint(1), c.Items[1].Product.ID)
	assert.Equal(t, uint(2), c.Items[2].Product.ID)
}
