package book

import (
	"encoding/json"
	"fmt"
)

// slotRecord is the persisted shape of a Book
type slotRecord struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Category    Category `json:"category"`
	Status      Status   `json:"status"`
	ISBN        string   `json:"isbn"`
	Description string   `json:"description,omitempty"`
	CoverImage  string   `json:"coverImage,omitempty"`
}

// Encode serializes the full list, preserving order
func Encode(list []Book) ([]byte, error) {
	records := make([]slotRecord, 0, len(list))
	for _, b := range list {
		records = append(records, slotRecord{
			ID:          b.ID,
			Title:       b.Title,
			Author:      b.Author,
			Category:    b.Category,
			Status:      b.Status,
			ISBN:        b.ISBN,
			Description: b.Description,
			CoverImage:  b.CoverImage,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding books: %w", err)
	}
	return data, nil
}

// Decode parses a persisted list. Category and status must be known values and ids
// positive and unique; the ISBN is taken as stored.
func Decode(data []byte) ([]Book, error) {
	var records []slotRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding books: %w", err)
	}
	seen := make(map[int64]struct{}, len(records))
	list := make([]Book, 0, len(records))
	for i, r := range records {
		if r.ID <= 0 {
			return nil, fmt.Errorf("record %d: invalid id %d", i, r.ID)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %d", i, r.ID)
		}
		if err := r.Category.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if err := r.Status.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		seen[r.ID] = struct{}{}
		list = append(list, Book{
			ID:          r.ID,
			Title:       r.Title,
			Author:      r.Author,
			Category:    r.Category,
			Status:      r.Status,
			ISBN:        r.ISBN,
			Description: r.Description,
			CoverImage:  r.CoverImage,
		})
	}
	return list, nil
}
