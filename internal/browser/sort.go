package browser

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortMode selects the key entries are ordered by.
type SortMode int

// Sort modes, in the order the sort dialog lists them.
const (
	SortByName SortMode = iota
	SortByCreated
	SortByAccessed
	SortByModified
	SortBySize
	SortByExtension
)

// SortModes lists every mode.
//
//nolint:gochecknoglobals // Enumeration
var SortModes = []SortMode{SortByName, SortByCreated, SortByAccessed, SortByModified, SortBySize, SortByExtension}

func (m SortMode) String() string {
	switch m {
	case SortByName:
		return "name"
	case SortByCreated:
		return "created"
	case SortByAccessed:
		return "accessed"
	case SortByModified:
		return "modified"
	case SortBySize:
		return "size"
	case SortByExtension:
		return "extension"
	default:
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
}

// Label is the human-facing name of the mode.
func (m SortMode) Label() string {
	switch m {
	case SortByCreated:
		return "Created Date"
	case SortByAccessed:
		return "Accessed Date"
	case SortByModified:
		return "Modified Date"
	case SortBySize:
		return "Size"
	case SortByExtension:
		return "Extension"
	default:
		return "Name"
	}
}

// ParseSortMode converts a mode name, case-insensitively.
func ParseSortMode(s string) (SortMode, error) {
	for _, m := range SortModes {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}

	return SortByName, fmt.Errorf("unknown sort mode %q", s)
}

// SortOrder is the direction of a sort.
type SortOrder int

// Sort orders.
const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "desc"
	}

	return "asc"
}

// Label is the human-facing name of the order.
func (o SortOrder) Label() string {
	if o == Descending {
		return "Descending"
	}

	return "Ascending"
}

// ParseSortOrder accepts asc/ascending and desc/descending, case-insensitively.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("unknown sort order %q", s)
	}
}

// Sort orders entries in place. Directories always precede files; within each
// group entries compare by the mode's key, reversed for Descending, with ties
// broken by case-insensitive name.
func Sort(entries []Entry, mode SortMode, order SortOrder) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}

			return 1
		}

		c := compareKey(a, b, mode)
		if order == Descending {
			c = -c
		}

		if c != 0 {
			return c
		}

		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.Name, b.Name),
		)
	})
}

func compareKey(a, b Entry, mode SortMode) int {
	switch mode {
	case SortByCreated:
		return a.Created.Compare(b.Created)
	case SortByAccessed:
		return a.Accessed.Compare(b.Accessed)
	case SortByModified:
		return a.Modified.Compare(b.Modified)
	case SortBySize:
		return cmp.Compare(a.Size, b.Size)
	case SortByExtension:
		return cmp.Compare(strings.ToLower(a.Ext()), strings.ToLower(b.Ext()))
	default:
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.Name, b.Name),
		)
	}
}
