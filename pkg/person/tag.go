package person

import (
	"sort"

	"tableflip.dev/weddingbook/pkg/wedding"
)

// Tag links a person to a wedding by ID. A tag does not own the wedding and
// is valid as long as the ID is well formed.
type Tag struct {
	Wedding wedding.ID
}

// ParseTag validates the wedding ID syntax.
func ParseTag(raw string) (Tag, error) {
	id, err := wedding.ParseID(raw)
	if err != nil {
		return Tag{}, err
	}
	return Tag{Wedding: id}, nil
}

func (t Tag) String() string {
	return t.Wedding.String()
}

// tagSet returns the tags deduplicated by wedding ID and ordered by ID so that
// set comparison is a slice comparison.
func tagSet(tags []Tag) []Tag {
	seen := make(map[wedding.ID]bool, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if seen[t.Wedding] {
			continue
		}
		seen[t.Wedding] = true
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Wedding < out[j].Wedding })
	return out
}
