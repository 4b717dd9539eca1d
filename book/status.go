package book

import (
	"bytes"
	"encoding/json"
	"fmt"
)

/* Status represents how far the owner is with a book
 * Follows the cycle: Unread -> Reading -> Completed -> Unread
 */
type Status int

const (
	Unread Status = iota + 1
	Reading
	Completed
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Unread:
		return "unread"
	case Reading:
		return "reading"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// NewStatus creates a Status from a string
func NewStatus(str string) Status {
	s, err := ParseStatus(str)
	if err != nil {
		return Unread
	}
	return s
}

// ParseStatus is the strict variant of NewStatus
func ParseStatus(str string) (Status, error) {
	switch str {
	case "unread":
		return Unread, nil
	case "reading":
		return Reading, nil
	case "completed":
		return Completed, nil
	default:
		return 0, fmt.Errorf("invalid status: %q", str)
	}
}

// Validate checks if the status is valid
func (s Status) Validate() error {
	if s < Unread || s > Completed {
		return fmt.Errorf("invalid status: %d", s)
	}
	return nil
}

// Next returns the status that follows s when the owner toggles it
func (s Status) Next() Status {
	switch s {
	case Unread:
		return Reading
	case Reading:
		return Completed
	default:
		return Unread
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(s.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("decoding status: %w", err)
	}
	parsed, err := ParseStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Statuses lists every status in cycle order
func Statuses() []Status {
	return []Status{Unread, Reading, Completed}
}
