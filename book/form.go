package book

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var isbnPattern = regexp.MustCompile(`^[0-9-]+$`)

// Form holds the raw fields submitted for one book
type Form struct {
	Title       string
	Author      string
	ISBN        string
	Category    string
	Status      string
	Description string
	// Cover is nil when no image was attached
	Cover *CoverUpload
}

// FieldErrors maps a field name to a human readable message
type FieldErrors map[string]string

// ValidationError reports every failing field of a Form
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "invalid book: " + strings.Join(parts, "; ")
}

/* Validate checks every rule and collects all failures; it never stops at the first one.
 * On success it returns the normalized record without an id.
 */
func (f Form) Validate() (Book, error) {
	errs := FieldErrors{}

	title := strings.TrimSpace(f.Title)
	if utf8.RuneCountInString(title) < 2 {
		errs["title"] = "title must be at least 2 characters"
	}

	author := strings.TrimSpace(f.Author)
	if utf8.RuneCountInString(author) < 2 {
		errs["author"] = "author must be at least 2 characters"
	}

	isbn := strings.TrimSpace(f.ISBN)
	if msg := checkISBN(isbn); msg != "" {
		errs["isbn"] = msg
	}

	category, err := ParseCategory(strings.TrimSpace(f.Category))
	if err != nil {
		errs["category"] = "choose a valid category"
	}

	status, err := ParseStatus(strings.TrimSpace(f.Status))
	if err != nil {
		errs["status"] = "choose a valid status"
	}

	var cover string
	if f.Cover != nil {
		cover, err = f.Cover.DataURL()
		if err != nil {
			errs["coverImage"] = err.Error()
		}
	}

	if len(errs) > 0 {
		return Book{}, &ValidationError{Fields: errs}
	}
	return Book{
		Title:       title,
		Author:      author,
		Category:    category,
		Status:      status,
		ISBN:        isbn,
		Description: strings.TrimSpace(f.Description),
		CoverImage:  cover,
	}, nil
}

// FormFrom pre-fills a form with an existing book, as the edit flow does
func FormFrom(b Book) Form {
	return Form{
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Category:    b.Category.String(),
		Status:      b.Status.String(),
		Description: b.Description,
	}
}

func checkISBN(isbn string) string {
	n := utf8.RuneCountInString(isbn)
	switch {
	case n < 10:
		return "isbn must be at least 10 characters"
	case n > 13:
		return "isbn must be at most 13 characters"
	case !isbnPattern.MatchString(isbn):
		return "isbn may only contain digits and hyphens"
	}
	return ""
}
