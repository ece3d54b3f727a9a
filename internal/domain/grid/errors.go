package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRow is matched by errors.Is for any *InvalidRowError
	ErrInvalidRow = errors.New("invalid row")

	// ErrColumnNotFound is matched by errors.Is for any *ColumnNotFoundError
	ErrColumnNotFound = errors.New("column not found")
)

// InvalidRowError reports a row whose length differs from the column count
type InvalidRowError struct {
	Expected int // column count
	Got      int // values supplied
}

func (e *InvalidRowError) Error() string {
	return fmt.Sprintf("invalid row: expected %d values, got %d", e.Expected, e.Got)
}

func (e *InvalidRowError) Is(target error) bool {
	return target == ErrInvalidRow
}

// ColumnNotFoundError reports a sort key that does not resolve to a column.
// Name is empty when the column was addressed by index.
type ColumnNotFoundError struct {
	Name  string
	Index int
}

func (e *ColumnNotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("column not found: %q", e.Name)
	}
	return fmt.Sprintf("column not found: index %d", e.Index)
}

func (e *ColumnNotFoundError) Is(target error) bool {
	return target == ErrColumnNotFound
}
