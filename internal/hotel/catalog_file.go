package hotel

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseCatalog reads a room inventory from r, one room per line in the form
// id,category,price (price in major units with optional two fraction digits).
// Blank lines are skipped.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	var rooms []Room
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("catalog line %d: want 3 fields, got %d", line, len(fields))
		}
		price, err := ParseCents(fields[2])
		if err != nil {
			return nil, fmt.Errorf("catalog line %d: %w", line, err)
		}
		rooms = append(rooms, Room{
			ID:       strings.TrimSpace(fields[0]),
			Category: strings.TrimSpace(fields[1]),
			Price:    price,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewCatalog(rooms)
}

// LoadCatalogFile parses the catalog file at path. The inventory is read once
// at startup; there is no runtime editing.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCatalog(f)
}
