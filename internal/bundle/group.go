package bundle

import (
	"cmp"
	"slices"

	"github.com/backmassage/texbake/internal/naming"
)

// entry is a parsed file name together with the name it was parsed from.
type entry struct {
	parsed naming.ParsedName
	source string
}

func compareEntries(a, b entry) int {
	return cmp.Or(
		cmp.Compare(a.parsed.Name, b.parsed.Name),
		cmp.Compare(a.parsed.Ext, b.parsed.Ext),
		cmp.Compare(a.parsed.Role, b.parsed.Role),
		cmp.Compare(a.source, b.source),
	)
}

func sameGroup(a, b naming.ParsedName) bool {
	return a.Name == b.Name && a.Ext == b.Ext
}

// Group parses names and partitions them into bundles. Names that do not
// parse are left out and returned as errors (each a *naming.FormatError) for
// the caller to report; they never stop grouping. Bundles that are neither
// complete nor unclassified singles are dropped.
//
// The result does not depend on the order of names: the working set is
// sorted by (name, extension, role, original file name) before grouping, so
// when two files land in the same slot (e.g. Map1_Albedo.tga and
// map1_albedo.tga) the one whose original name sorts last wins. Bundles are
// returned sorted by name, then extension.
func Group(names []string) ([]Bundle, []error) {
	entries := make([]entry, 0, len(names))
	var errs []error
	for _, n := range names {
		p, err := naming.Parse(n)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !p.Valid() {
			continue
		}
		entries = append(entries, entry{parsed: p, source: naming.BaseName(n)})
	}

	slices.SortFunc(entries, compareEntries)
	entries = slices.CompactFunc(entries, func(a, b entry) bool {
		return naming.Equal(a.parsed, b.parsed) && a.source == b.source
	})

	var bundles []Bundle
	for len(entries) > 0 {
		head := entries[0].parsed

		// The set is sorted by name and extension first, so every member of
		// head's bundle is in the leading run.
		n := 1
		for n < len(entries) && sameGroup(entries[n].parsed, head) {
			n++
		}

		var b Bundle
		for _, e := range entries[:n] {
			b.set(e.parsed, e.source)
		}
		entries = entries[n:]

		if b.Valid() {
			bundles = append(bundles, b)
		}
	}
	return bundles, errs
}
