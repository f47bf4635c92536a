package catalog

import (
	"slices"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Merge joins the FakeStore and ReactBD feeds into one list with ids
// 1..N for the FakeStore items followed by N+1..N+M for the ReactBD
// items. A ReactBD item whose title equals a FakeStore title is dropped.
//
// The input slices are not modified.
func Merge(fakestore, reactbd []domain.Product) []domain.Product {
	merged := make([]domain.Product, 0, len(fakestore)+len(reactbd))
	titles := make(map[string]struct{}, len(fakestore))

	nextID := 1
	for _, p := range fakestore {
		p.OriginalID = originalID(p)
		p.ID = nextID
		p.Source = domain.SourceFakeStore
		titles[p.Title] = struct{}{}
		merged = append(merged, p)
		nextID++
	}

	for _, p := range reactbd {
		if _, dup := titles[p.Title]; dup {
			continue
		}
		p.OriginalID = originalID(p)
		p.ID = nextID
		p.Source = domain.SourceReactBD
		merged = append(merged, p)
		nextID++
	}

	return merged
}

// originalID prefers the upstream id already carried in OriginalID and
// falls back to ID when the feed only filled that one.
func originalID(p domain.Product) int {
	if p.OriginalID != 0 {
		return p.OriginalID
	}
	return p.ID
}

// MergeCategoryNames returns the FakeStore names followed by the
// lower-cased ReactBD names that are not already present.
func MergeCategoryNames(fakestore, reactbd []string) []string {
	merged := slices.Clone(fakestore)
	for _, name := range reactbd {
		if name == "" {
			continue
		}
		name = strings.ToLower(name)
		if !slices.Contains(merged, name) {
			merged = append(merged, name)
		}
	}
	return merged
}

// Find returns the product with the given id.
func Find(ps []domain.Product, id int) (domain.Product, bool) {
	i := slices.IndexFunc(ps, func(p domain.Product) bool {
		return p.ID == id
	})
	if i < 0 {
		return domain.Product{}, false
	}
	return ps[i], true
}
