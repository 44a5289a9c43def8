package companionsdk

import "fmt"

// ──────────────────────────────────────────────
// Role Archetype — the relational role the companion embodies
// ──────────────────────────────────────────────

// RoleArchetype selects which personality profile drives the response.
type RoleArchetype string

const (
	ArchetypePaternal RoleArchetype = "paternal"
	ArchetypeMaternal RoleArchetype = "maternal"
	ArchetypeSibling  RoleArchetype = "sibling"
	ArchetypeMentor   RoleArchetype = "mentor"
	ArchetypeFriend   RoleArchetype = "friend"
	ArchetypeRomantic RoleArchetype = "romantic"
	ArchetypeCustom   RoleArchetype = "custom"
)

// AllArchetypes lists every supported archetype.
var AllArchetypes = []RoleArchetype{
	ArchetypePaternal, ArchetypeMaternal, ArchetypeSibling,
	ArchetypeMentor, ArchetypeFriend, ArchetypeRomantic, ArchetypeCustom,
}

// ParseArchetype validates a raw string against the closed set.
func ParseArchetype(s string) (RoleArchetype, error) {
	for _, a := range AllArchetypes {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownArchetype, s)
}

// IsParental reports whether the archetype is a parent-figure role.
func (a RoleArchetype) IsParental() bool {
	return a == ArchetypePaternal || a == ArchetypeMaternal
}

// IsPeerLike reports whether the archetype is an equal-footing role.
// Peer-like roles get the morning energize treatment in tone modulation.
func (a RoleArchetype) IsPeerLike() bool {
	return a == ArchetypeSibling || a == ArchetypeFriend
}
