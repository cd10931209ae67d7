package engine

import "fmt"

// ErrorKind classifies a per-item packing failure.
type ErrorKind string

const (
	// ErrOverWeight: the item alone exceeds the container's weight allowance.
	ErrOverWeight ErrorKind = "over_weight"
	// ErrUnplaceable: no orientation of the item fits an empty container.
	ErrUnplaceable ErrorKind = "unplaceable"
)

// PackError records an item the packer skipped. Errors are collected in the
// Result, never returned.
type PackError struct {
	Kind ErrorKind
	Item Item
}

func (e PackError) Error() string {
	switch e.Kind {
	case ErrOverWeight:
		return fmt.Sprintf("Item: %s is too heavy for container", e.Item)
	case ErrUnplaceable:
		return fmt.Sprintf("Item: %s cannot be placed in container", e.Item)
	default:
		return fmt.Sprintf("Item: %s: %s", e.Item, string(e.Kind))
	}
}
