// Package search filters an already-fetched recipe collection in memory.
// It issues no store queries; filtering is deterministic, stable, and
// idempotent for a fixed set of inputs.
package search

import (
	"sort"
	"strings"

	"RecipeHub-Backend/domain"
)

// Filter narrows recipes by free-text query, category, and difficulty.
// Empty inputs are no-op filters; non-empty ones compose with logical AND.
// The relative order of the input collection is preserved.
func Filter(recipes []domain.RecipeResponse, query, category, difficulty string) []domain.RecipeResponse {
	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		if lowerQuery != "" && !matchesQuery(recipe, lowerQuery) {
			continue
		}
		if category != "" && recipe.Category != category {
			continue
		}
		if difficulty != "" && recipe.Difficulty != difficulty {
			continue
		}
		filtered = append(filtered, recipe)
	}
	return filtered
}

// matchesQuery reports whether any searchable field of the recipe contains
// the lowercased query as a substring.
func matchesQuery(recipe domain.RecipeResponse, lowerQuery string) bool {
	fields := []string{
		recipe.Title,
		recipe.Description,
		recipe.Category,
		recipe.Ingredients,
		recipe.Instructions,
	}
	if recipe.Author != nil {
		fields = append(fields, recipe.Author.Username, recipe.Author.FullName)
	}

	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}

// Categories collects the distinct non-empty categories present in the
// collection, alphabetically sorted.
func Categories(recipes []domain.RecipeResponse) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, recipe := range recipes {
		if recipe.Category == "" {
			continue
		}
		if _, ok := seen[recipe.Category]; ok {
			continue
		}
		seen[recipe.Category] = struct{}{}
		categories = append(categories, recipe.Category)
	}
	sort.Strings(categories)
	return categories
}
