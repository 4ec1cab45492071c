package access

import (
	"errors"
	"maps"
)

// Permissions maps each Section to a Level. It is immutable; lookups of sections
// that were never granted return NoAccess.
type Permissions struct {
	levels map[Section]Level
}

// NewPermissions validates and copies levels.
func NewPermissions(levels map[Section]Level) (Permissions, error) {
	var validationErrs []error
	for s, l := range levels {
		validationErrs = append(validationErrs, s.Validate(), l.Validate())
	}
	if err := errors.Join(validationErrs...); err != nil {
		return Permissions{}, err
	}
	return Permissions{levels: maps.Clone(levels)}, nil
}

// PermissionsFromCodes builds Permissions from wire codes such as {"sb": "read_write"}.
func PermissionsFromCodes(codes map[string]string) (Permissions, error) {
	levels := make(map[Section]Level, len(codes))
	var parseErrs []error
	for sc, lc := range codes {
		s, err := ParseSection(sc)
		if err != nil {
			parseErrs = append(parseErrs, err)
			continue
		}
		l, err := ParseLevel(lc)
		if err != nil {
			parseErrs = append(parseErrs, err)
			continue
		}
		levels[s] = l
	}
	if err := errors.Join(parseErrs...); err != nil {
		return Permissions{}, err
	}
	return Permissions{levels: levels}, nil
}

// Level returns the level held on s.
func (p Permissions) Level(s Section) Level {
	return p.levels[s]
}

// Codes renders every section, including the implicit NoAccess ones.
func (p Permissions) Codes() map[string]string {
	out := make(map[string]string, len(sectionCodes))
	for _, s := range Sections() {
		out[s.String()] = p.Level(s).String()
	}
	return out
}
