package catalog

import (
	"encoding/json"
	"fmt"
)

// Entry is one course, college or resource in the guidance catalog.
// Entries are loaded once at startup and never mutated.
type Entry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"` // "course", "college" or "resource"
	TargetClass  string   `json:"targetClass"` // "10", "12" or "both"
	TargetStream string   `json:"targetStream,omitempty"`
	Tags         []string `json:"tags"`
	Description  string   `json:"description,omitempty"`
	Popularity   int      `json:"popularity"`
}

// Catalog is a read-only set of entries. Insertion order is significant:
// the pre-filter breaks score ties by it. Safe for concurrent readers.
type Catalog struct {
	entries []Entry
}

func New(entries []Entry) *Catalog {
	return &Catalog{entries: entries}
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	return New(builtinEntries)
}

// LoadJSON builds a catalog from a JSON document of the shape
// {"entries": [...]}, as served from the catalog bucket.
func LoadJSON(data []byte) (*Catalog, error) {
	var doc struct {
		Entries []Entry `json:"entries"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog json: %w", err)
	}
	if len(doc.Entries) == 0 {
		return nil, fmt.Errorf("catalog json contains no entries")
	}
	for i, e := range doc.Entries {
		if e.ID == "" || e.Name == "" {
			return nil, fmt.Errorf("catalog entry %d missing id or name", i)
		}
	}
	return New(doc.Entries), nil
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entry list.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get looks an entry up by id.
func (c *Catalog) Get(id string) (Entry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
