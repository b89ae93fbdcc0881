// Package cart implements the shopping cart: an ordered list of product
// snapshots with quantities, persisted through a pluggable Storage port.
package cart

import (
	"encoding/json"
	"strconv"

	"github.com/Luxera/luxera-api/models"
)

// Item is one cart line. The product is a snapshot taken at add time and
// is never reconciled with later catalog edits; the order endpoint
// re-resolves the live price at submission.
type Item struct {
	Product         models.Product    `json:"product"`
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
}

// Cart is an insertion-ordered sequence of items.
//
// Line identity is asymmetric on purpose, matching the storefront it
// serves: Add merges on (product id, selected options) while Remove and
// UpdateQuantity match on product id alone, touching every option
// variant of that product.
type Cart struct {
	Items []Item `json:"items"`
}

// lineKey canonicalizes the merge identity of a line. json.Marshal sorts
// map keys, so equal option sets always serialize identically. A nil and
// an empty option map are treated as the same (no options).
func lineKey(productID uint, options map[string]string) string {
	if len(options) == 0 {
		return strconv.FormatUint(uint64(productID), 10)
	}
	b, _ := json.Marshal(options)
	return strconv.FormatUint(uint64(productID), 10) + "|" + string(b)
}

// Add merges into an existing line with the same product and options, or
// appends a new line snapshotting the product. Stock quantity is not
// enforced as a cap. Quantities below 1 are treated as 1.
func (c *Cart) Add(product models.Product, quantity int, options map[string]string) {
	if quantity < 1 {
		quantity = 1
	}

	key := lineKey(product.ID, options)
	for i := range c.Items {
		if lineKey(c.Items[i].Product.ID, c.Items[i].SelectedOptions) == key {
			c.Items[i].Quantity += quantity
			return
		}
	}

	// Copy the options so later caller mutations cannot change the
	// line's merge identity.
	var stored map[string]string
	if len(options) > 0 {
		stored = make(map[string]string, len(options))
		for k, v := range options {
			stored[k] = v
		}
	}

	c.Items = append(c.Items, Item{Product: product, Quantity: quantity, SelectedOptions: stored})
}

// Remove drops every line for the product, regardless of options.
func (c *Cart) Remove(productID uint) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// UpdateQuantity sets the quantity on every line for the product. A
// quantity of zero or less removes the product instead.
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
		}
	}
}

// Clear empties the cart. Called after a successful order handoff.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price times quantity using the snapshotted prices.
func (c *Cart) TotalPrice() int {
	total := 0
	for _, item := range c.Items {
		total += item.Product.Price * item.Quantity
	}
	return total
}
