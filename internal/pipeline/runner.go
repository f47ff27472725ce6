package pipeline

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/texbake/internal/bundle"
	"github.com/backmassage/texbake/internal/compositor"
	"github.com/backmassage/texbake/internal/config"
	"github.com/backmassage/texbake/internal/display"
	"github.com/backmassage/texbake/internal/logging"
	"github.com/backmassage/texbake/internal/naming"
	"github.com/backmassage/texbake/internal/planner"
	"github.com/backmassage/texbake/internal/scheduler"
)

// Run is the top-level batch entry point. It walks cfg.InputDir, processes
// every directory in turn, prints the summary table and returns aggregate
// stats. cfg must be validated.
func Run(cfg *config.Config, log *logging.Logger) RunStats {
	start := time.Now()
	var stats RunStats

	dirs, err := Directories(cfg.InputDir, nestedOutput(cfg)...)
	for _, err := range walkErrors(err) {
		log.Error("Skipping unreadable directory: %v", err)
	}

	proc := compositor.NewProcessor(cfg.SharpenSigma)
	for _, dir := range dirs {
		scoped, err := cfg.ForDirectory(dir)
		if err != nil {
			log.Error("%v", err)
			continue
		}
		if ds, ok := processDirectory(&scoped, proc, log); ok {
			stats.Directories = append(stats.Directories, ds)
		}
	}
	stats.Elapsed = time.Since(start)

	if table := display.RenderSummary(stats.Rows()); table != "" {
		log.Print(table)
	}
	log.Info("DONE Elapsed time: %s", display.FormatElapsed(stats.Elapsed))
	return stats
}

// walkErrors splits the joined error from Directories.
func walkErrors(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

// nestedOutput returns the output root, spelled relative to the input root,
// when it lies inside the input tree, so the walk never picks up its own
// results.
func nestedOutput(cfg *config.Config) []string {
	inAbs, err := filepath.Abs(cfg.InputDir)
	if err != nil {
		return nil
	}
	outAbs, err := filepath.Abs(cfg.OutputDir)
	if err != nil || !config.NestedOutput(inAbs, outAbs) {
		return nil
	}
	rel, err := filepath.Rel(inAbs, outAbs)
	if err != nil {
		return nil
	}
	return []string{filepath.Join(cfg.InputDir, rel)}
}

// processDirectory handles one directory: list → group → plan → schedule.
// The bool is false when the directory held nothing worth reporting.
func processDirectory(cfg *config.Config, proc *compositor.Processor, log *logging.Logger) (DirStats, bool) {
	start := time.Now()
	ds := DirStats{Directory: cfg.InputDir}

	listing, err := ListSources(cfg.InputDir, cfg.SourceExtensions)
	if err != nil {
		log.Error("Cannot list %s: %v", cfg.InputDir, err)
		return ds, false
	}
	ds.Bytes = listing.Bytes

	bundles, errs := bundle.Group(listing.Files)
	for _, err := range errs {
		log.Warn("Skipping %v in %s", err, cfg.InputDir)
	}
	ds.Unparsed = len(errs)
	ds.Bundles = len(bundles)
	if len(bundles) == 0 {
		ds.Elapsed = time.Since(start)
		return ds, ds.Unparsed > 0
	}

	log.Info("Number of bundles: %d", len(bundles))
	log.Info("Input directory: %s", cfg.InputDir)
	log.Info("Output directory: %s", cfg.OutputDir)

	plans := planDirectory(cfg, bundles, log, &ds)

	report := scheduler.Run(plans, cfg.Workers,
		func(plan *planner.Plan) error {
			log.Info("PROCESSING %s", plan.Label)
			if err := proc.Process(plan); err != nil {
				return err
			}
			log.Success("%s -> %s", plan.Label, strings.Join(baseNames(plan.OutputPaths()), ", "))
			return nil
		},
		scheduler.OnError(func(plan *planner.Plan, err error) {
			log.Error("%s: %v", plan.Label, err)
		}),
	)

	ds.Processed = report.Processed()
	ds.Failed += report.Failed()
	ds.Elapsed = time.Since(start)
	log.Debug(cfg.Verbose, "%s: %d workers, %d done, %d failed",
		cfg.InputDir, len(report.Workers), ds.Processed, ds.Failed)
	return ds, true
}

// planDirectory builds a plan per bundle. A bundle whose outputs are already
// claimed by an earlier bundle of the same directory (map1_albedo.tga and
// map1_albedo.png both producing map1_albedo.png) is logged, counted as
// failed and left out.
func planDirectory(cfg *config.Config, bundles []bundle.Bundle, log *logging.Logger, ds *DirStats) []*planner.Plan {
	claims := naming.NewClaimRegistry()
	plans := make([]*planner.Plan, 0, len(bundles))
	for _, b := range bundles {
		plan := planner.BuildPlan(cfg, b)
		log.Debug(cfg.Verbose, "%s: %v", plan.Label, plan.Actions)
		if plan.Note != "" {
			log.Warn("%s: %s", plan.Label, plan.Note)
		}

		owner := filepath.Base(plan.InputPaths()[0])
		if err := claims.Claim(owner, plan.OutputPaths()...); err != nil {
			log.Error("%s: %v", plan.Label, err)
			ds.Failed++
			continue
		}
		plans = append(plans, plan)
	}
	return plans
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}
