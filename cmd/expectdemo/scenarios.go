package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/bstamour/std-expected/pkg/expected"
	"github.com/bstamour/std-expected/pkg/expected/probe"
)

type outcome struct {
	Name string
	Err  error
}

type scenario struct {
	name string
	run  func() error
}

var scenarios = []scenario{
	{"value construction", func() error {
		a := expected.Success[int, int](42)
		if !a.HasValue() || a.Deref() != 42 {
			return fmt.Errorf("got %v", &a)
		}
		return nil
	}},
	{"error construction", func() error {
		a := expected.Failure[int](expected.MakeUnexpected(7))
		if a.HasValue() || a.Err() != 7 {
			return fmt.Errorf("got %v", &a)
		}
		_, err := a.Value()
		var fault *expected.BadAccessOf[int]
		if !errors.As(err, &fault) || fault.Err() != 7 {
			return fmt.Errorf("checked access returned %v", err)
		}
		return nil
	}},
	{"swap value with error", func() error {
		a := expected.Success[int, int](1)
		b := expected.Failure[int](expected.MakeUnexpected(2))
		if err := a.Swap(&b); err != nil {
			return err
		}
		if a.HasValue() || a.Err() != 2 || !b.HasValue() || b.Deref() != 1 {
			return fmt.Errorf("got a=%v b=%v", &a, &b)
		}
		return nil
	}},
	{"assign error onto value", func() error {
		l := probe.NewLedger()
		c := expected.Success[probe.Sturdy, int](l.NewSturdy(5))
		c.AssignUnexpected(expected.MakeUnexpected(9))
		if c.HasValue() || c.Err() != 9 {
			return fmt.Errorf("got %v", &c)
		}
		if l.Releases() != 1 || l.DoubleReleases() != 0 {
			return fmt.Errorf("value released %d times", l.Releases()+l.DoubleReleases())
		}
		return nil
	}},
	{"void lifecycle", func() error {
		var v expected.Void[int]
		if !v.HasValue() || v.Value() != nil {
			return fmt.Errorf("got %v", &v)
		}
		v.AssignUnexpected(expected.MakeUnexpected(3))
		var fault *expected.BadAccessOf[int]
		if v.HasValue() || !errors.As(v.Value(), &fault) || fault.Err() != 3 {
			return fmt.Errorf("got %v", &v)
		}
		return nil
	}},
}

func runScenarios() []outcome {
	out := make([]outcome, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, outcome{Name: s.name, Err: s.run()})
	}
	return out
}

func cmdScenarios(c *cli.Context) error {
	log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	failed := 0
	for _, o := range runScenarios() {
		if o.Err != nil {
			failed++
			log.Error("scenario failed", zap.String("scenario", o.Name), zap.Error(o.Err))
			continue
		}
		log.Info("scenario passed", zap.String("scenario", o.Name))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(scenarios))
	}
	return nil
}
