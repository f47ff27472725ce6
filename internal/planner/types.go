package planner

import "github.com/backmassage/texbake/internal/naming"

// Action describes one unit of work in a Plan.
type Action int

const (
	ActionComposite Action = iota
	ActionConvert
)

func (a Action) String() string {
	switch a {
	case ActionComposite:
		return "composite"
	case ActionConvert:
		return "convert"
	}
	return "unknown"
}

// Channels holds one path per bundle slot. Unused slots are empty.
type Channels struct {
	Albedo    string
	Parameter string
	Normal    string
	Other     string
}

func (c *Channels) set(role naming.Role, path string) {
	switch role {
	case naming.RoleAlbedo:
		c.Albedo = path
	case naming.RoleParameter:
		c.Parameter = path
	case naming.RoleNormal:
		c.Normal = path
	default:
		c.Other = path
	}
}

// Plan holds the complete set of decisions for one bundle. It is produced by
// BuildPlan and consumed by the compositor.
type Plan struct {
	Label   string
	Actions []Action

	Inputs    Channels
	Outputs   Channels
	OutputDir string

	// Partial lists the classified roles found without a full set. They are
	// not written.
	Partial []naming.Role
	Note    string
}
