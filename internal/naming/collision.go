package naming

import (
	"errors"
	"fmt"
	"sync"
)

// ErrOutputClaimed is wrapped by [ClaimError].
var ErrOutputClaimed = errors.New("output path already claimed")

// ClaimError reports that an output path requested by one bundle is already
// owned by another, e.g. map1_albedo.tga and map1_albedo.png in the same
// directory both producing map1_albedo.png.
type ClaimError struct {
	Path  string
	Owner string // current owner of Path
	Claim string // rejected claimant
}

func (e *ClaimError) Error() string {
	return fmt.Sprintf("%s: %s (owned by %s, requested by %s)", ErrOutputClaimed, e.Path, e.Owner, e.Claim)
}

func (e *ClaimError) Unwrap() error { return ErrOutputClaimed }

// ClaimRegistry tracks which owner (a bundle label) writes each output path
// during one directory run. All methods are goroutine-safe.
type ClaimRegistry struct {
	mu     sync.Mutex
	owners map[string]string // output path -> owner
}

// NewClaimRegistry creates a ready-to-use registry.
func NewClaimRegistry() *ClaimRegistry {
	return &ClaimRegistry{owners: make(map[string]string)}
}

// Claim records owner for every path. If any path already belongs to a
// different owner nothing is recorded and a *ClaimError is returned.
// Claiming a path twice for the same owner is a no-op.
func (r *ClaimRegistry) Claim(owner string, paths ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range paths {
		if cur, ok := r.owners[p]; ok && cur != owner {
			return &ClaimError{Path: p, Owner: cur, Claim: owner}
		}
	}
	for _, p := range paths {
		r.owners[p] = owner
	}
	return nil
}
