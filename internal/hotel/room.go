package hotel

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Room is a fixed catalog entry. Rooms are created at startup and never
// mutated afterwards.
type Room struct {
	ID       string
	Category string
	Price    Cents // nightly rate
}

// Catalog is the read-only room inventory, kept in insertion order.
type Catalog struct {
	rooms []Room
	byID  map[string]Room
}

func NewCatalog(rooms []Room) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Room, len(rooms))}
	for _, r := range rooms {
		if r.ID == "" {
			return nil, fmt.Errorf("room without id")
		}
		if r.Price < 0 {
			return nil, fmt.Errorf("room %s: negative price", r.ID)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate room id %s", r.ID)
		}
		c.rooms = append(c.rooms, r)
		c.byID[r.ID] = r
	}
	return c, nil
}

// DefaultCatalog is the built-in inventory used when no catalog file is configured.
func DefaultCatalog() *Catalog {
	c, _ := NewCatalog([]Room{
		{ID: "R101", Category: "Standard", Price: 200000},
		{ID: "R102", Category: "Standard", Price: 200000},
		{ID: "R201", Category: "Deluxe", Price: 350000},
		{ID: "R202", Category: "Deluxe", Price: 380000},
		{ID: "R301", Category: "Suite", Price: 650000},
	})
	return c
}

// List returns all rooms in insertion order.
func (c *Catalog) List() []Room {
	out := make([]Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

// ByCategory filters rooms by category, case-insensitively. An empty category
// matches every room.
func (c *Catalog) ByCategory(category string) []Room {
	if category == "" {
		return c.List()
	}
	return lo.Filter(c.rooms, func(r Room, _ int) bool {
		return strings.EqualFold(r.Category, category)
	})
}

func (c *Catalog) ByID(id string) (Room, bool) {
	r, ok := c.byID[id]
	return r, ok
}
