// Package bundle reassembles texture bundles from the flat list of files
// found in one directory.
//
// A bundle is every file sharing a base name and extension: either a complete
// albedo/parameter/normal set, or a single unclassified file (or both, when a
// directory holds map1.tga next to map1_albedo.tga and friends).
package bundle

import (
	"github.com/backmassage/texbake/internal/naming"
)

// Bundle is one processing unit. Empty slots hold the zero ParsedName.
type Bundle struct {
	Albedo    naming.ParsedName
	Parameter naming.ParsedName
	Normal    naming.ParsedName
	Other     naming.ParsedName

	// Sources holds the original file name behind each slot, indexed by
	// naming.Role (RoleUnclassified is the Other slot). Parsed names are
	// lower case; the source keeps the on-disk spelling.
	Sources [4]string
}

// Complete reports whether the albedo, parameter and normal slots are all
// filled.
func (b Bundle) Complete() bool {
	return b.Albedo.Valid() && b.Parameter.Valid() && b.Normal.Valid()
}

// Valid reports whether b can be processed: a complete three-channel set or
// an unclassified file.
func (b Bundle) Valid() bool {
	return b.Complete() || b.Other.Valid()
}

// String identifies the bundle in logs: the albedo base name, else the
// unclassified name, else "[invalid]".
func (b Bundle) String() string {
	switch {
	case b.Albedo.Valid():
		return b.Albedo.Name
	case b.Other.Valid():
		return b.Other.Name
	}
	return "[invalid]"
}

// Slot returns the parsed name held for role.
func (b Bundle) Slot(role naming.Role) naming.ParsedName {
	switch role {
	case naming.RoleAlbedo:
		return b.Albedo
	case naming.RoleParameter:
		return b.Parameter
	case naming.RoleNormal:
		return b.Normal
	}
	return b.Other
}

// Source returns the on-disk file name for role. When no source was
// recorded the formatted parsed name is returned.
func (b Bundle) Source(role naming.Role) string {
	if s := b.Sources[role]; s != "" {
		return s
	}
	return b.Slot(role).String()
}

// Partial lists the classified roles that are present when the three-channel
// set is incomplete. It is empty for complete bundles.
func (b Bundle) Partial() []naming.Role {
	if b.Complete() {
		return nil
	}
	var roles []naming.Role
	for _, r := range naming.Roles {
		if b.Slot(r).Valid() {
			roles = append(roles, r)
		}
	}
	return roles
}

// set stores p in the slot for its role, replacing any earlier occupant.
func (b *Bundle) set(p naming.ParsedName, source string) {
	switch p.Role {
	case naming.RoleAlbedo:
		b.Albedo = p
	case naming.RoleParameter:
		b.Parameter = p
	case naming.RoleNormal:
		b.Normal = p
	default:
		b.Other = p
	}
	b.Sources[p.Role] = source
}
