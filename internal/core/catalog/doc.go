// Package catalog merges the upstream product feeds into one list and
// derives the storefront views from it.
//
// Every function is a pure transformation of its input. Product ids are
// assigned by [Merge] and are only meaningful within the list it returns.
package catalog
