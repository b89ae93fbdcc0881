// Package catalog implements the in-memory filter and sort pipeline
// applied to a fetched product list. All functions are pure and return
// new slices; the input is never mutated.
package catalog

import (
	"sort"
	"strings"

	"github.com/Luxera/luxera-api/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	SortByName      = "name"
	SortPriceAsc    = "price-low"
	SortPriceDesc   = "price-high"
	SortNewestFirst = "newest"
)

// Filter keeps products whose name or description contains the search
// term (case-insensitive) and whose category matches. An empty category
// or "all" matches everything. An empty result is not an error.
func Filter(products []models.Product, search, category string) []models.Product {
	search = strings.ToLower(search)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, search) {
			continue
		}
		if !matchesCategory(p, category) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesSearch(p models.Product, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), search)
}

func matchesCategory(p models.Product, category string) bool {
	if category == "" || category == "all" {
		return true
	}
	return p.Category != nil && *p.Category == category
}

// Sort orders products by the given key. Name ordering is locale-aware;
// an unknown key leaves the order unchanged.
func Sort(products []models.Product, sortBy string) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch sortBy {
	case SortByName:
		c := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortNewestFirst:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}

	return sorted
}
