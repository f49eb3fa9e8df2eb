// Package service owns the authoritative in-memory todo collection. All
// mutations go through it: it validates, assigns ids, writes the whole
// collection through to the storage backend, and then notifies observers.
package service

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"todolist/internal/event"
	"todolist/internal/model"
	"todolist/internal/store"
)

// DefaultKey is the storage key the CLI and TUI persist under.
const DefaultKey = "todos.json"

// Stored payloads are checked against this schema on load so a corrupt or
// foreign file fails construction instead of half-parsing.
const itemsSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title"],
		"additionalProperties": false,
		"properties": {
			"id": { "type": "integer", "minimum": 1 },
			"title": { "type": "string" }
		}
	}
}`

var itemsSchema = jsonschema.MustCompileString("items.schema.json", itemsSchemaJSON)

// Service is single-threaded by design: one logical caller, one storage
// backend, every operation runs to completion before returning. Avoid
// calling back into it from a DataChanged listener.
type Service struct {
	backend store.Backend
	key     string
	items   []model.Item

	// DataChanged fires after every successfully persisted mutation.
	// Observers should re-read through GetAll.
	DataChanged *event.Notifier
}

// New loads the collection stored under key. When the backend holds no
// prior data the service seeds from defaults and persists the seed
// immediately.
func New(backend store.Backend, key string, defaults []model.Item) (*Service, error) {
	s := &Service{
		backend:     backend,
		key:         key,
		DataChanged: event.NewNotifier(),
	}

	raw, ok, err := backend.Read(key)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	if !ok || raw == "" {
		s.items = append([]model.Item{}, defaults...)
		if err := s.persist(); err != nil {
			return nil, err
		}
		return s, nil
	}

	items, err := decodeItems(raw)
	if err != nil {
		return nil, err
	}
	s.items = items
	return s, nil
}

func decodeItems(raw string) ([]model.Item, error) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("parse stored items: %w", err)
	}
	if err := itemsSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("stored items have unexpected layout: %w", err)
	}
	items := []model.Item{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("parse stored items: %w", err)
	}
	return items, nil
}

// GetAll returns a snapshot of the collection. Mutating the returned
// slice never touches service state.
func (s *Service) GetAll() []model.Item {
	return append([]model.Item{}, s.items...)
}

// Add appends a new item with the trimmed title and a fresh id. An empty
// title creates a draft row; at most one draft may exist, so Add fails
// with a ValidationError while one is present.
func (s *Service) Add(title string) (model.Item, error) {
	for _, it := range s.items {
		if it.IsDraft() {
			return model.Item{}, &ValidationError{Msg: "there is an empty element in the list"}
		}
	}

	item := model.Item{ID: s.nextID(), Title: strings.TrimSpace(title)}
	s.items = append(s.GetAll(), item)
	if err := s.persist(); err != nil {
		return model.Item{}, err
	}
	s.DataChanged.Emit(nil)
	return item, nil
}

// Edit replaces the title of the item with the given id. The title is
// validated before trimming and stored trimmed.
func (s *Service) Edit(id int, title string) error {
	if title == "" {
		return &ValidationError{Msg: "title must not be empty"}
	}
	idx, err := s.find(id)
	if err != nil {
		return err
	}

	next := s.GetAll()
	next[idx].Title = strings.TrimSpace(title)
	s.items = next
	if err := s.persist(); err != nil {
		return err
	}
	s.DataChanged.Emit(nil)
	return nil
}

// Delete removes the item with the given id if present. Unlike Edit it is
// idempotent: an absent id is not an error, and the collection is
// persisted and observers notified either way.
func (s *Service) Delete(id int) error {
	next := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	s.items = next
	if err := s.persist(); err != nil {
		return err
	}
	s.DataChanged.Emit(nil)
	return nil
}

// Sort reorders the collection case-insensitively by title. Draft rows
// are dropped for good: the filtered, sorted collection becomes the new
// authoritative state.
func (s *Service) Sort(ascending bool) error {
	next := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if !it.IsDraft() {
			next = append(next, it)
		}
	}
	slices.SortStableFunc(next, func(a, b model.Item) int {
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})
	if !ascending {
		slices.Reverse(next)
	}

	s.items = next
	if err := s.persist(); err != nil {
		return err
	}
	s.DataChanged.Emit(nil)
	return nil
}

// nextID is a live max-scan, not a counter: deleting the highest-id item
// and adding a new one re-issues that id. Accepted, since no external
// references to ids persist anywhere.
func (s *Service) nextID() int {
	max := 0
	for _, it := range s.items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

func (s *Service) find(id int) (int, error) {
	for i, it := range s.items {
		if it.ID == id {
			return i, nil
		}
	}
	return -1, &NotFoundError{ID: id}
}

// persist writes the whole collection under the fixed key, replacing any
// prior value. A failed write leaves in-memory state ahead of storage; no
// rollback is attempted.
func (s *Service) persist() error {
	b, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.backend.Write(s.key, string(b)); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	return nil
}
