package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCategory = errors.New("catalog: unknown category")
	ErrUnknownModel    = errors.New("catalog: unknown model")
)

// Category selects which catalog is active.
type Category int

const (
	Mechanical Category = iota
	Biological
)

func (c Category) String() string {
	switch c {
	case Mechanical:
		return "mechanical"
	case Biological:
		return "biological"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Title is the subject heading shown in the selector.
func (c Category) Title() string {
	if c == Biological {
		return "Brain Medical Science"
	}
	return "Mechanical Engineering"
}

// Short is the lowercase phrase used in toasts and loading messages.
func (c Category) Short() string {
	if c == Biological {
		return "brain science"
	}
	return "mechanical engineering"
}

func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mechanical", "mech":
		return Mechanical, nil
	case "biological", "bio", "brain":
		return Biological, nil
	}
	return Mechanical, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func Categories() []Category { return []Category{Mechanical, Biological} }

type Dimensions struct {
	Width, Height, Depth float64
	Unit                 string
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%s × %s × %s %s", trimFloat(d.Width), trimFloat(d.Height), trimFloat(d.Depth), d.Unit)
}

// Entry is the static description of one displayed model.
type Entry struct {
	ID         string
	Name       string
	Category   Category
	Dimensions Dimensions
	Overview   string
	Specs      string
	Details    string
	Label      string
	LabelKind  string
}

// Catalog is the ordered list of entries valid for a category. The first
// entry is the default.
type Catalog struct {
	Category Category
	Entries  []Entry
}

func For(c Category) Catalog {
	if c == Biological {
		return Catalog{Category: Biological, Entries: biological}
	}
	return Catalog{Category: Mechanical, Entries: mechanical}
}

func (c Catalog) IDs() []string {
	ids := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		ids[i] = e.ID
	}
	return ids
}

func (c Catalog) Default() Entry { return c.Entries[0] }

func (c Catalog) Contains(id string) bool {
	_, ok := c.Lookup(id)
	return ok
}

func (c Catalog) Lookup(id string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Index returns the position of id in the catalog, or -1.
func (c Catalog) Index(id string) int {
	for i, e := range c.Entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Find looks an id up across every catalog.
func Find(id string) (Entry, error) {
	for _, cat := range Categories() {
		if e, ok := For(cat).Lookup(id); ok {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownModel, id)
}

// All returns every entry, mechanical first.
func All() []Entry {
	out := make([]Entry, 0, len(mechanical)+len(biological))
	out = append(out, mechanical...)
	return append(out, biological...)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
