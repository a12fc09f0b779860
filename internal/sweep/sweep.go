// Package sweep runs the desert world headless across a grid of decay and
// growth rates and ranks the outcomes.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"data-desert/internal/sims/desert"
)

// Scenario is one point of the sweep.
type Scenario struct {
	Decay  float64 `yaml:"decay_rate"`
	Growth float64 `yaml:"growth_rate"`
	Seed   int64   `yaml:"seed"`
}

func (s Scenario) String() string {
	return fmt.Sprintf("decay=%.4f growth=%.4f seed=%d", s.Decay, s.Growth, s.Seed)
}

// Result is the final state of one scenario.
type Result struct {
	Scenario `yaml:",inline"`

	Generation int     `yaml:"generation"`
	Population int     `yaml:"population"`
	Decaying   int     `yaml:"decaying"`
	MeanAge    float64 `yaml:"mean_age"`
	PeakPop    int     `yaml:"peak_population"`
}

// Options configures a sweep.
type Options struct {
	Base    desert.Config
	Steps   int
	Workers int
	Decays  []float64
	Growths []float64
	Seeds   []int64
}

// Scenarios expands the option lists into the full cross product.
func (o Options) Scenarios() []Scenario {
	seeds := o.Seeds
	if len(seeds) == 0 {
		seeds = []int64{o.Base.Seed}
	}
	var out []Scenario
	for _, d := range o.Decays {
		for _, g := range o.Growths {
			for _, s := range seeds {
				out = append(out, Scenario{Decay: d, Growth: g, Seed: s})
			}
		}
	}
	return out
}

// Run simulates every scenario and returns results sorted by final
// population, largest first. Ties keep scenario order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	scenarios := opts.Scenarios()
	results := make([]Result, len(scenarios))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(ctx, opts.Base, sc, opts.Steps)
			if err != nil {
				return fmt.Errorf("%s: %w", sc, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Population > results[j].Population
	})
	return results, nil
}

func runScenario(ctx context.Context, base desert.Config, sc Scenario, steps int) (Result, error) {
	cfg := base
	cfg.Seed = sc.Seed
	cfg.Params.DecayRate = sc.Decay
	cfg.Params.GrowthRate = sc.Growth

	w, err := desert.NewWithConfig("sweep", cfg)
	if err != nil {
		return Result{}, err
	}
	w.Reset(sc.Seed)
	peak := w.Stats().Population
	for i := 0; i < steps; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		w.Step()
		if pop := w.Stats().Population; pop > peak {
			peak = pop
		}
	}
	s := w.Stats()
	return Result{
		Scenario:   sc,
		Generation: s.Generation,
		Population: s.Population,
		Decaying:   s.Decaying,
		MeanAge:    s.MeanAge,
		PeakPop:    peak,
	}, nil
}
