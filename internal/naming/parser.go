package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role is the channel a texture file carries.
type Role int

const (
	RoleUnclassified Role = iota
	RoleAlbedo
	RoleParameter
	RoleNormal
)

// Roles lists every classified role in slot order.
var Roles = []Role{RoleAlbedo, RoleParameter, RoleNormal}

// String returns the lower-case role token used in file names. Unclassified
// has no token and returns "".
func (r Role) String() string {
	switch r {
	case RoleAlbedo:
		return "albedo"
	case RoleParameter:
		return "parameter"
	case RoleNormal:
		return "normal"
	}
	return ""
}

// ParseRole maps a lower-case role token to its Role. Unknown tokens map to
// RoleUnclassified.
func ParseRole(token string) Role {
	switch token {
	case "albedo":
		return RoleAlbedo
	case "parameter":
		return RoleParameter
	case "normal":
		return RoleNormal
	}
	return RoleUnclassified
}

// ParsedName is the structured identity recovered from a texture file name.
// It is comparable; two values are equal when all three fields match.
type ParsedName struct {
	Name string
	Role Role
	Ext  string
}

// Valid reports whether both the name and the extension are non-blank. The
// zero value is not valid and marks an empty bundle slot.
func (p ParsedName) Valid() bool {
	return strings.TrimSpace(p.Name) != "" && strings.TrimSpace(p.Ext) != ""
}

// String returns the file name p was parsed from (see [Format]).
func (p ParsedName) String() string { return Format(p) }

// Equal reports structural equality of a and b.
func Equal(a, b ParsedName) bool { return a == b }

// Format serializes p back into a file name:
//
//	name + "_" + role + "." + ext   (classified)
//	name + "." + ext                (Unclassified)
func Format(p ParsedName) string {
	var b strings.Builder
	b.Grow(len(p.Name) + len(p.Ext) + 12)
	b.WriteString(p.Name)
	if p.Role != RoleUnclassified {
		b.WriteByte('_')
		b.WriteString(p.Role.String())
	}
	b.WriteByte('.')
	b.WriteString(p.Ext)
	return b.String()
}

// ErrFormat is the sentinel wrapped by every [FormatError].
var ErrFormat = errors.New("unrecognized texture file name")

// FormatError reports a file name that matches neither naming pattern.
type FormatError struct {
	Name string // file name without directory
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrFormat, e.Name)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// Parse recovers a ParsedName from fileName. Only the file name portion is
// considered; both '/' and '\' count as directory separators.
//
// The extension is the text after the last dot and must be 1-3 letters or
// digits. The stem in front of it must start with a word character. When the
// stem ends in "_<token>" and token is a role, the role is split off;
// otherwise the whole stem is the name (so "map9_abc.txt" has name
// "map9_abc").
func Parse(fileName string) (ParsedName, error) {
	base := BaseName(fileName)
	lower := strings.ToLower(base)

	dot := strings.LastIndexByte(lower, '.')
	if dot < 0 {
		return ParsedName{}, &FormatError{Name: base}
	}
	stem, ext := lower[:dot], lower[dot+1:]
	if !isExtension(ext) || !startsWithWord(stem) {
		return ParsedName{}, &FormatError{Name: base}
	}

	if name, role, ok := splitRole(stem); ok {
		return ParsedName{Name: name, Role: role, Ext: ext}, nil
	}
	return ParsedName{Name: stem, Role: RoleUnclassified, Ext: ext}, nil
}

// BaseName returns the portion of path after the last '/' or '\'.
func BaseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// splitRole applies the "<base>_<role>" pattern to stem. ok is false when
// the pattern does not structurally apply (no underscore after the first
// character, or a trailing token that is empty or not a word).
func splitRole(stem string) (name string, role Role, ok bool) {
	us := strings.LastIndexByte(stem, '_')
	if us < 1 {
		return "", RoleUnclassified, false
	}
	token := stem[us+1:]
	if token == "" || !allWord(token) {
		return "", RoleUnclassified, false
	}
	role = ParseRole(token)
	if role == RoleUnclassified {
		return stem, role, true
	}
	return stem[:us], role, true
}

func isExtension(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 1 || n > 3 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func startsWithWord(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && isWordRune(r)
}

func allWord(s string) bool {
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
