package model

// Item is the domain model for a todo entry.
// Kept minimal on purpose; it’s easy to evolve.
type Item struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// IsDraft reports whether the item is an in-progress row with no title yet.
// At most one draft may exist in a collection at a time.
func (i Item) IsDraft() bool {
	return i.Title == ""
}
