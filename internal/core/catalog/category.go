package catalog

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/niksmo/storefront/internal/core/domain"
)

// DefaultCategories is the FakeStore category set, used when nothing
// better is known.
var DefaultCategories = []string{
	"electronics", "jewelery", "men's clothing", "women's clothing",
}

var categoryAliases = map[string][]string{
	"electronics":            {"electronics", "Electronics"},
	"jewelery":               {"jewelery", "jewelry"},
	"men's clothing":         {"men's clothing", "Fashion"},
	"women's clothing":       {"women's clothing", "Fashion"},
	"fashion":                {"Fashion", "men's clothing", "women's clothing"},
	"home & garden":          {"Home & Garden", "Home Decoration"},
	"sports & outdoors":      {"Sports & Outdoors", "Equipments"},
	"beauty & personal care": {"Beauty & Personal Care", "Beauty Product"},
	"cameras":                {"Electronics", "Cameras"},
	"smartphones":            {"Electronics", "Smartphones"},
	"audio":                  {"Electronics", "Audio"},
	"accessories":            {"Accessories", "Fashion"},
	"furniture":              {"Furniture", "Home & Garden"},
	"outdoor decor":          {"Outdoor Decor", "Home & Garden"},
	"campaign gear":          {"Campaign Gear", "Sports & Outdoors"},
	"athletic wear":          {"Athletic Wear", "Sports & Outdoors"},
	"skincare":               {"Skincare", "Beauty & Personal Care"},
	"makeup":                 {"Makeup", "Beauty & Personal Care"},
	"action cameras":         {"Action Cameras", "Electronics"},
	"wireless earbuds":       {"Wireless Earbuds", "Electronics"},
	"sunglasses":             {"Sunglasses", "Accessories"},
}

var categoryDisplayNames = map[string]string{
	"electronics":            "Electronics",
	"jewelery":               "Jewelry",
	"men's clothing":         "Men's Clothing",
	"women's clothing":       "Women's Clothing",
	"fashion":                "Fashion",
	"home & garden":          "Home & Garden",
	"sports & outdoors":      "Sports & Outdoors",
	"beauty & personal care": "Beauty & Personal Care",
	"beauty product":         "Beauty Products",
	"equipments":             "Equipment",
	"home decoration":        "Home Decoration",
}

// CategoryAliases returns the upstream category names that belong to
// the storefront category. An unknown category is its own only alias.
func CategoryAliases(category string) []string {
	if aliases, ok := categoryAliases[strings.ToLower(category)]; ok {
		return aliases
	}
	return []string{category}
}

// ByCategory returns the products whose category matches one of the
// aliases of category, ignoring case.
func ByCategory(ps []domain.Product, category string) []domain.Product {
	aliases := CategoryAliases(category)
	return filter(ps, func(p domain.Product) bool {
		return slices.ContainsFunc(aliases, func(a string) bool {
			return strings.EqualFold(a, p.Category)
		})
	})
}

// DisplayName returns the human readable name of a lower-cased category.
func DisplayName(name string) string {
	if dn, ok := categoryDisplayNames[name]; ok {
		return dn
	}
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// WorkingCategories counts the products per lower-cased category,
// most populated first. Categories with equal counts keep the order in
// which they first appear. An empty list yields [DefaultCategories]
// with zero counts.
func WorkingCategories(ps []domain.Product) []domain.Category {
	if len(ps) == 0 {
		cs := make([]domain.Category, len(DefaultCategories))
		for i, name := range DefaultCategories {
			cs[i] = domain.Category{Name: name, DisplayName: DisplayName(name)}
		}
		return cs
	}

	index := make(map[string]int)
	var cs []domain.Category
	for _, p := range ps {
		name := strings.ToLower(p.Category)
		i, ok := index[name]
		if !ok {
			i = len(cs)
			index[name] = i
			cs = append(cs, domain.Category{Name: name, DisplayName: DisplayName(name)})
		}
		cs[i].Count++
	}

	slices.SortStableFunc(cs, func(a, b domain.Category) int {
		return b.Count - a.Count
	})
	return cs
}
