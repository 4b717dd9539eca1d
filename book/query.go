package book

import (
	"sort"
	"strings"
)

const (
	// All is the filter value that disables a category or status filter
	All             = "all"
	DefaultPageSize = 5
)

// Sort orders accepted by Query.Sort
const (
	SortNone   = ""
	SortTitle  = "title"
	SortAuthor = "author"
	SortNewest = "newest"
)

// Query describes the visible part of a catalog
type Query struct {
	Search   string
	Category string
	Status   string
	Sort     string
	Page     int
	PageSize int
}

// Page is the result of VisiblePage
type Page struct {
	Items      []Book
	TotalPages int
	// Total is the number of records matching the filters
	Total int
}

/* VisiblePage is a pure function: it never touches the store and never clamps q.Page.
 * A page outside 1..TotalPages yields no items; callers use ClampPage after a filter change.
 */
func VisiblePage(list []Book, q Query) Page {
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	matches := make([]Book, 0, len(list))
	for _, b := range list {
		if matchesSearch(b, q.Search) && matchesCategory(b, q.Category) && matchesStatus(b, q.Status) {
			matches = append(matches, b)
		}
	}
	sortBooks(matches, q.Sort)

	total := len(matches)
	totalPages := (total + size - 1) / size

	items := []Book{}
	if q.Page >= 1 {
		start := (q.Page - 1) * size
		if start < total {
			end := start + size
			if end > total {
				end = total
			}
			items = matches[start:end]
		}
	}
	return Page{
		Items:      items,
		TotalPages: totalPages,
		Total:      total,
	}
}

// ClampPage brings page back into 1..max(1, totalPages)
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

func matchesSearch(b Book, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(b.Title), needle) ||
		strings.Contains(strings.ToLower(b.Author), needle)
}

func matchesCategory(b Book, category string) bool {
	if category == "" || category == All {
		return true
	}
	return b.Category.String() == category
}

func matchesStatus(b Book, status string) bool {
	if status == "" || status == All {
		return true
	}
	return b.Status.String() == status
}

func sortBooks(list []Book, order string) {
	switch order {
	case SortTitle:
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].Title) < strings.ToLower(list[j].Title)
		})
	case SortAuthor:
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].Author) < strings.ToLower(list[j].Author)
		})
	case SortNewest:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].ID > list[j].ID
		})
	}
}
