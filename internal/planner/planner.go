package planner

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/backmassage/texbake/internal/bundle"
	"github.com/backmassage/texbake/internal/config"
	"github.com/backmassage/texbake/internal/naming"
)

// BuildPlan produces the Plan for b using the directories in cfg, which must
// already be scoped to the directory b was found in (see
// config.Config.ForDirectory).
//
// Flow:
//  1. Composite when the albedo/parameter/normal set is complete
//  2. Convert when an unclassified file is present
//  3. Resolve source paths from the on-disk names and output paths from the
//     parsed names with the png extension
func BuildPlan(cfg *config.Config, b bundle.Bundle) *Plan {
	plan := &Plan{
		Label:     b.String(),
		OutputDir: cfg.OutputDir,
	}

	var roles []naming.Role
	if b.Complete() {
		plan.Actions = append(plan.Actions, ActionComposite)
		roles = append(roles, naming.Roles...)
	} else {
		plan.Partial = b.Partial()
	}
	if b.Other.Valid() {
		plan.Actions = append(plan.Actions, ActionConvert)
		roles = append(roles, naming.RoleUnclassified)
	}

	for _, r := range roles {
		plan.Inputs.set(r, filepath.Join(cfg.InputDir, b.Source(r)))
		plan.Outputs.set(r, naming.GetOutputPath(b.Slot(r), cfg.OutputDir))
	}

	if len(plan.Partial) > 0 {
		names := make([]string, len(plan.Partial))
		for i, r := range plan.Partial {
			names[i] = r.String()
		}
		plan.Note = fmt.Sprintf("incomplete set (%s only); converting %s alone",
			strings.Join(names, ", "), b.Source(naming.RoleUnclassified))
	}
	return plan
}

// Has reports whether the plan includes action a.
func (p *Plan) Has(a Action) bool {
	return slices.Contains(p.Actions, a)
}

// OutputPaths lists every file the plan writes, composite outputs first.
func (p *Plan) OutputPaths() []string {
	var paths []string
	if p.Has(ActionComposite) {
		paths = append(paths, p.Outputs.Albedo, p.Outputs.Parameter, p.Outputs.Normal)
	}
	if p.Has(ActionConvert) {
		paths = append(paths, p.Outputs.Other)
	}
	return paths
}

// InputPaths lists every file the plan reads, in the same order as
// OutputPaths.
func (p *Plan) InputPaths() []string {
	var paths []string
	if p.Has(ActionComposite) {
		paths = append(paths, p.Inputs.Albedo, p.Inputs.Parameter, p.Inputs.Normal)
	}
	if p.Has(ActionConvert) {
		paths = append(paths, p.Inputs.Other)
	}
	return paths
}
