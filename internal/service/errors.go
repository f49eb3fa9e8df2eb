package service

import "fmt"

// ValidationError reports an operation rejected before any state changed:
// adding a second draft row, or editing a title to nothing.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NotFoundError reports an id lookup that matched nothing.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no item with id %d", e.ID)
}
