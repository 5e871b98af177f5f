package song

import (
	"fmt"
	"regexp"
)

// PartID identifies a part inside a song. The textual form is
// '<part_type>.<number>' (e.g. 'verse.1'). An ID should be unique inside a
// song - this is a documented property, AddPart does not enforce it (see
// DESIGN.md).
type PartID struct {
	id string
}

// partIDRe is compiled once for the lifetime of the package.
var partIDRe = regexp.MustCompile(`^([a-zA-Z]+)\.(\d+)$`)

// ParsePartID validates the textual form of a part ID.
func ParsePartID(s string) (PartID, error) {
	if !partIDRe.MatchString(s) {
		return PartID{}, fmt.Errorf("malformed part id %q, expected '<part_type>.<number>'", s)
	}
	return PartID{id: s}, nil
}

// MakePartID constructs an ID from a part type and number. Number is expected
// to be positive.
func MakePartID(t PartType, number int) PartID {
	return PartID{id: fmt.Sprintf("%s.%d", t, number)}
}

func (id PartID) String() string {
	return id.id
}

func (id PartID) IsZero() bool {
	return len(id.id) == 0
}

// Type derives the part type back from the ID prefix.
func (id PartID) Type() PartType {
	m := partIDRe.FindStringSubmatch(id.id)
	if m == nil {
		return PartTypeOther
	}
	return PartTypeFromString(m[1])
}

func (id PartID) MarshalText() ([]byte, error) {
	return []byte(id.id), nil
}

func (id *PartID) UnmarshalText(text []byte) error {
	parsed, err := ParsePartID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
