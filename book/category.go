package book

import (
	"bytes"
	"encoding/json"
	"fmt"
)

/* Criar tipos de dados específicos para a aplicação
 * Usar o compilador a seu favor, tentar encontrar erros em tempo de compilação e não de execução.
 */

// Category type
type Category int

const (
	Technology Category = iota + 1
	Fiction
	NonFiction
	Other
)

func (c Category) String() string {
	switch c {
	case Technology:
		return "technology"
	case Fiction:
		return "fiction"
	case NonFiction:
		return "non-fiction"
	case Other:
		return "other"
	}
	return "unknown"
}

// Validate checks if the category is one of the known values
func (c Category) Validate() error {
	if c < Technology || c > Other {
		return fmt.Errorf("invalid category: %d", c)
	}
	return nil
}

// Define how to transform a Category object into a JSON
func (c Category) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(c.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

// UnmarshalJSON rejects unknown categories instead of defaulting them
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding category: %w", err)
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// NewCategory creates a category, falling back to Technology like the form default
func NewCategory(s string) Category {
	c, err := ParseCategory(s)
	if err != nil {
		return Technology
	}
	return c
}

// ParseCategory is the strict variant of NewCategory
func ParseCategory(s string) (Category, error) {
	switch s {
	case "technology":
		return Technology, nil
	case "fiction":
		return Fiction, nil
	case "non-fiction":
		return NonFiction, nil
	case "other":
		return Other, nil
	}
	return 0, fmt.Errorf("invalid category: %q", s)
}

// Categories lists every category in display order
func Categories() []Category {
	return []Category{Technology, Fiction, NonFiction, Other}
}
