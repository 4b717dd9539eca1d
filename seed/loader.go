package seed

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/marcelsud/bookshelf/book"
	"gopkg.in/yaml.v3"
)

/* Loader reads the list a new catalog starts with from a YAML file
 * Without a file the built-in list is used
 */

// Config represents the structure of the seed file
type Config struct {
	Books []BookConfig `yaml:"books"`
}

// BookConfig represents a single book in the YAML file
type BookConfig struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Category    string `yaml:"category"`
	Status      string `yaml:"status"` // Default: unread
	ISBN        string `yaml:"isbn"`
	Description string `yaml:"description"`
}

// Load returns the seed list stored at filePath, or book.DefaultSeed when filePath is empty
func Load(filePath string) ([]book.Book, error) {
	if strings.TrimSpace(filePath) == "" {
		return book.DefaultSeed(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse converts the YAML content into books with ids 1..n
func Parse(data []byte) ([]book.Book, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing seed YAML: %w", err)
	}

	list := make([]book.Book, 0, len(config.Books))
	for i, bc := range config.Books {
		b, err := bc.toBook()
		if err != nil {
			return nil, fmt.Errorf("validating book %d: %w", i+1, err)
		}
		b.ID = int64(i + 1)
		list = append(list, b)
	}
	return list, nil
}

// ISBN is not checked: the built-in list has none either
func (bc BookConfig) toBook() (book.Book, error) {
	title := strings.TrimSpace(bc.Title)
	if utf8.RuneCountInString(title) < 2 {
		return book.Book{}, fmt.Errorf("title must be at least 2 characters")
	}
	author := strings.TrimSpace(bc.Author)
	if utf8.RuneCountInString(author) < 2 {
		return book.Book{}, fmt.Errorf("author must be at least 2 characters for %q", title)
	}
	category, err := book.ParseCategory(strings.TrimSpace(bc.Category))
	if err != nil {
		return book.Book{}, fmt.Errorf("invalid category for %q: %w", title, err)
	}
	status := book.Unread
	if s := strings.TrimSpace(bc.Status); s != "" {
		status, err = book.ParseStatus(s)
		if err != nil {
			return book.Book{}, fmt.Errorf("invalid status for %q: %w", title, err)
		}
	}
	return book.Book{
		Title:       title,
		Author:      author,
		Category:    category,
		Status:      status,
		ISBN:        strings.TrimSpace(bc.ISBN),
		Description: strings.TrimSpace(bc.Description),
	}, nil
}
