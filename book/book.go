package book

/* Book is the business view of a catalog entry. It carries no tags: the slot codec
 * and the HTTP layer each have their own representation.
 */

// Book is one entry of a user's catalog
type Book struct {
	ID          int64
	Title       string
	Author      string
	Category    Category
	Status      Status
	ISBN        string
	Description string
	// CoverImage is an embedded data URL, empty when the book has no cover
	CoverImage string
}

// NextID returns max(ids)+1, or 1 for an empty list
func NextID(list []Book) int64 {
	var max int64
	for _, b := range list {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}
