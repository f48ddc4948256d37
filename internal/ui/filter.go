package ui

// AllCategories selects every item.
const AllCategories = "all"

type Categorized interface {
	CategoryName() string
}

// FilterByCategory keeps the items whose category equals category exactly.
// AllCategories and "" keep everything.
func FilterByCategory[T Categorized](items []T, category string) []T {
	if category == "" || category == AllCategories {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.CategoryName() == category {
			out = append(out, it)
		}
	}
	return out
}

// Categories lists AllCategories followed by each distinct non-empty
// category in first-seen order.
func Categories[T Categorized](items []T) []string {
	seen := map[string]bool{}
	out := []string{AllCategories}
	for _, it := range items {
		c := it.CategoryName()
		if c == "" || c == AllCategories || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Toggle is the accordion transition: clicking the open panel closes it
// (-1), clicking any other panel opens that one.
func Toggle(open, clicked int) int {
	if open == clicked {
		return -1
	}
	return clicked
}
