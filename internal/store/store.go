package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Contact is a single directory entry. Immutable once created; the
// store assigns the ID, never the caller.
type Contact struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

// Store owns the in-memory contact sequence, id allocation and the
// persistence round-trip against the backing file.
//
// Ids are allocated monotonically and never reused, even after a
// delete. Every mutation rewrites the whole backing file; at personal
// directory scale that is cheaper than being clever.
type Store struct {
	path     string
	codec    Codec
	contacts []Contact
	nextID   int
}

// Open constructs a store over the given backing file and loads it
// synchronously. A missing file is not an error — the store starts
// empty. On a read or decode failure the (empty) store is still
// returned alongside the error so the caller can surface a diagnostic
// and keep running.
func Open(path string, codec Codec) (*Store, error) {
	s := &Store{
		path:   path,
		codec:  codec,
		nextID: 1,
	}
	if err := s.load(); err != nil {
		return s, err
	}
	return s, nil
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Add appends a new contact under a freshly allocated id and persists
// the full sequence. The store accepts name and phone as given;
// validation is the caller's job.
//
// On a save failure the in-memory mutation is kept: the contact
// exists, the error tells the caller that disk and memory now
// disagree until the next successful save.
func (s *Store) Add(name, phone string) (Contact, error) {
	c := Contact{ID: s.nextID, Name: name, Phone: phone}
	s.nextID++
	s.contacts = append(s.contacts, c)
	return c, s.save()
}

// List returns all contacts in insertion order.
func (s *Store) List() []Contact {
	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Search returns every contact whose name contains the query
// case-insensitively, or whose phone contains it verbatim. An empty
// query matches everything.
func (s *Store) Search(query string) []Contact {
	q := strings.ToLower(query)
	var out []Contact
	for _, c := range s.contacts {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out
}

// Delete removes the contact with the given id, if present, and
// persists the remaining sequence. It reports whether a removal
// happened. The id is never reassigned; nextID is untouched.
func (s *Store) Delete(id int) (bool, error) {
	for i, c := range s.contacts {
		if c.ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return true, s.save()
		}
	}
	return false, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("load contacts: %w", err)
	}

	contacts, err := s.codec.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}

	s.contacts = contacts
	for _, c := range contacts {
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
	}
	return nil
}

func (s *Store) save() error {
	data, err := s.codec.Encode(s.contacts)
	if err != nil {
		return fmt.Errorf("encode contacts: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("save contacts: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("save contacts: %w", err)
	}
	return nil
}
