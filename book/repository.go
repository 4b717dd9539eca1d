package book

import (
	"context"
	"errors"
	"fmt"
)

/* Interfaces pequenas */

/* The catalog is persisted wholesale: one serialized list per owner, read once when the
 * catalog is opened and overwritten after every mutation. A Slot is that durable key-value cell.
 */

var (
	ErrNotFound  = errors.New("not found")
	ErrSlotEmpty = errors.New("slot is empty")
)

type SlotReader interface {
	// Read returns ErrSlotEmpty when nothing was ever written under key
	Read(ctx context.Context, key string) ([]byte, error)
}

type SlotWriter interface {
	Write(ctx context.Context, key string, payload []byte) error
}

/* Composição de interfaces */

type Slot interface {
	SlotReader
	SlotWriter
	Close(ctx context.Context) error
}

// SlotKey is the fixed key holding an owner's catalog
func SlotKey(owner string) string {
	return fmt.Sprintf("books:%s", owner)
}
