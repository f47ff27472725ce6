package planner

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/backmassage/texbake/internal/bundle"
	"github.com/backmassage/texbake/internal/config"
	"github.com/backmassage/texbake/internal/naming"
)

// --- Helper builders ---

func dirCfg(in, out string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.InputDir = in
	cfg.OutputDir = out
	return &cfg
}

func group(t *testing.T, names ...string) bundle.Bundle {
	t.Helper()
	bundles, errs := bundle.Group(names)
	if len(errs) != 0 || len(bundles) != 1 {
		t.Fatalf("Group(%v) = %v, %v; want one bundle", names, bundles, errs)
	}
	return bundles[0]
}

func TestBuildPlan_Complete(t *testing.T) {
	b := group(t, "Map1_Albedo.TGA", "map1_parameter.tga", "map1_normal.tga")
	plan := BuildPlan(dirCfg("/in/body", "/out/body"), b)

	if !slices.Equal(plan.Actions, []Action{ActionComposite}) {
		t.Fatalf("Actions = %v, want [composite]", plan.Actions)
	}
	wantIn := Channels{
		Albedo:    filepath.Join("/in/body", "Map1_Albedo.TGA"),
		Parameter: filepath.Join("/in/body", "map1_parameter.tga"),
		Normal:    filepath.Join("/in/body", "map1_normal.tga"),
	}
	wantOut := Channels{
		Albedo:    filepath.Join("/out/body", "map1_albedo.png"),
		Parameter: filepath.Join("/out/body", "map1_parameter.png"),
		Normal:    filepath.Join("/out/body", "map1_normal.png"),
	}
	if diff := cmp.Diff(wantIn, plan.Inputs); diff != "" {
		t.Errorf("Inputs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantOut, plan.Outputs); diff != "" {
		t.Errorf("Outputs mismatch (-want +got):\n%s", diff)
	}
	if plan.Label != "map1" || plan.OutputDir != "/out/body" {
		t.Errorf("Label=%q OutputDir=%q", plan.Label, plan.OutputDir)
	}
	if plan.Note != "" || plan.Partial != nil {
		t.Errorf("complete bundle has note %q partial %v", plan.Note, plan.Partial)
	}
}

func TestBuildPlan_Single(t *testing.T) {
	b := group(t, "decal.tga")
	plan := BuildPlan(dirCfg("/in", "/in"), b)

	if !slices.Equal(plan.Actions, []Action{ActionConvert}) {
		t.Fatalf("Actions = %v, want [convert]", plan.Actions)
	}
	if plan.Inputs.Other != filepath.Join("/in", "decal.tga") {
		t.Errorf("Inputs.Other = %q", plan.Inputs.Other)
	}
	if plan.Outputs.Other != filepath.Join("/in", "decal.png") {
		t.Errorf("Outputs.Other = %q", plan.Outputs.Other)
	}
	if got := plan.OutputPaths(); !slices.Equal(got, []string{filepath.Join("/in", "decal.png")}) {
		t.Errorf("OutputPaths() = %v", got)
	}
}

func TestBuildPlan_CompleteWithTwin(t *testing.T) {
	b := group(t, "map1.tga", "map1_albedo.tga", "map1_parameter.tga", "map1_normal.tga")
	plan := BuildPlan(dirCfg("/in", "/out"), b)

	if !plan.Has(ActionComposite) || !plan.Has(ActionConvert) {
		t.Fatalf("Actions = %v, want composite and convert", plan.Actions)
	}
	want := []string{
		filepath.Join("/out", "map1_albedo.png"),
		filepath.Join("/out", "map1_parameter.png"),
		filepath.Join("/out", "map1_normal.png"),
		filepath.Join("/out", "map1.png"),
	}
	if diff := cmp.Diff(want, plan.OutputPaths()); diff != "" {
		t.Errorf("OutputPaths mismatch (-want +got):\n%s", diff)
	}
	if len(plan.InputPaths()) != len(want) {
		t.Errorf("InputPaths() = %v", plan.InputPaths())
	}
}

func TestBuildPlan_PartialWithTwin(t *testing.T) {
	b := group(t, "map1.tga", "map1_albedo.tga", "map1_normal.tga")
	plan := BuildPlan(dirCfg("/in", "/out"), b)

	if !slices.Equal(plan.Actions, []Action{ActionConvert}) {
		t.Fatalf("Actions = %v, want [convert]", plan.Actions)
	}
	if diff := cmp.Diff([]naming.Role{naming.RoleAlbedo, naming.RoleNormal}, plan.Partial); diff != "" {
		t.Errorf("Partial mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(plan.Note, "albedo, normal") || !strings.Contains(plan.Note, "map1.tga") {
		t.Errorf("Note = %q", plan.Note)
	}
	if plan.Outputs.Albedo != "" || plan.Inputs.Normal != "" {
		t.Errorf("partial roles must not be planned: in=%+v out=%+v", plan.Inputs, plan.Outputs)
	}
}

func TestAction_String(t *testing.T) {
	if ActionComposite.String() != "composite" || ActionConvert.String() != "convert" {
		t.Errorf("got %q, %q", ActionComposite, ActionConvert)
	}
}
