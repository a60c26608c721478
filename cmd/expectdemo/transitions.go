package main

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/bstamour/std-expected/pkg/expected"
	"github.com/bstamour/std-expected/pkg/expected/probe"
)

type transitionOptions struct {
	failClone bool
	failMove  bool
	failBuild bool
}

type step struct {
	Name  string
	Err   error
	State string
}

type transitionReport struct {
	Steps          []step
	Live           int
	Builds         int
	Releases       int
	DoubleReleases int
}

// runTransitions walks instrumented payloads through a copy assignment, an
// in-place build and a cross-state swap, injecting the requested failures.
func runTransitions(log *zap.Logger, opts transitionOptions) transitionReport {
	l := probe.NewLedger(probe.WithLogger(log))
	var report transitionReport

	record := func(name string, err error, e *expected.Expected[probe.Sturdy, probe.Fragile]) {
		report.Steps = append(report.Steps, step{Name: name, Err: err, State: e.String()})
		if err != nil {
			log.Warn("transition rolled back", zap.String("step", name), zap.Stringer("state", e), zap.Error(err))
			return
		}
		log.Info("transition applied", zap.String("step", name), zap.Stringer("state", e))
	}

	a := expected.Success[probe.Sturdy, probe.Fragile](l.NewSturdy(1))
	b := expected.Failure[probe.Sturdy](expected.MakeUnexpected(l.NewFragile(2)))

	if opts.failClone {
		l.FailNextClone()
	}
	record("copy error onto value", a.Assign(&b), &a)

	if opts.failBuild {
		l.FailNextBuild()
	}
	record("build value in place", a.AssignWith(l.BuildSturdy(3)), &a)

	c := expected.Success[probe.Sturdy, probe.Fragile](l.NewSturdy(4))
	d := expected.Failure[probe.Sturdy](expected.MakeUnexpected(l.NewFragile(5)))
	if opts.failMove {
		l.FailNextMove()
	}
	record("swap value with error", c.Swap(&d), &c)

	for _, e := range []*expected.Expected[probe.Sturdy, probe.Fragile]{&a, &b, &c, &d} {
		e.Release()
	}

	report.Live = l.Live()
	report.Builds = l.Builds()
	report.Releases = l.Releases()
	report.DoubleReleases = l.DoubleReleases()
	return report
}

func cmdTransitions(c *cli.Context) error {
	log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	report := runTransitions(log, transitionOptions{
		failClone: c.Bool("fail-clone"),
		failMove:  c.Bool("fail-move"),
		failBuild: c.Bool("fail-build"),
	})

	log.Info("ledger",
		zap.Int("builds", report.Builds),
		zap.Int("releases", report.Releases),
		zap.Int("leaked", report.Live),
		zap.Int("double_releases", report.DoubleReleases))
	return nil
}
