package generator

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/mrsinham/bignumgen/internal/log"
	"github.com/mrsinham/bignumgen/internal/output"
	"github.com/mrsinham/bignumgen/internal/testcase"
	"github.com/mrsinham/bignumgen/internal/util"
)

// SuiteOptions configures a suite run
type SuiteOptions struct {
	Dir     string
	Range   util.IndexRange
	Mode    testcase.Mode
	Seed    int64
	Workers int
	// ProgressCallback is called after each case with (completed, total)
	ProgressCallback func(completed, total int)
}

// SuiteCase describes one generated case of a suite
type SuiteCase struct {
	Index        int
	Kind         testcase.Kind
	InPath       string
	OutPath      string
	ResultDigits int
}

// SuiteResult is returned by GenerateSuite
type SuiteResult struct {
	Seed  int64
	Cases []SuiteCase
}

type caseTask struct {
	index int
	seed  uint64
}

// GenerateSuite writes <Dir>/NNN.in and <Dir>/NNN.out for every index in
// Range. Cases are returned in index order. With a fixed Seed the output is
// identical across runs regardless of Workers.
func GenerateSuite(ctx context.Context, opts SuiteOptions) (SuiteResult, error) {
	if err := opts.Range.Validate(); err != nil {
		return SuiteResult{}, err
	}
	if opts.Dir == "" {
		return SuiteResult{}, fmt.Errorf("suite directory is required")
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return SuiteResult{}, fmt.Errorf("creating suite directory: %w", err)
	}

	seed, auto := util.ResolveSeed(opts.Seed)
	log.Suite.Info().Int64("seed", seed).Bool("auto_seed", auto).
		Str("range", opts.Range.String()).Str("mode", opts.Mode.String()).
		Msg("generating suite")

	indices := opts.Range.Indices()
	tasks := make([]caseTask, len(indices))
	for i, index := range indices {
		tasks[i] = caseTask{index: index, seed: util.CaseSeed(seed, index)}
	}

	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(tasks) {
		numWorkers = len(tasks)
	}

	taskChan := make(chan int, len(tasks))
	resultChan := make(chan struct {
		pos int
		sc  SuiteCase
		err error
	}, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pos := range taskChan {
				var sc SuiteCase
				err := ctx.Err()
				if err == nil {
					sc, err = generateCase(opts.Dir, opts.Mode, tasks[pos])
				}
				resultChan <- struct {
					pos int
					sc  SuiteCase
					err error
				}{pos, sc, err}
			}
		}()
	}

	for pos := range tasks {
		taskChan <- pos
	}
	close(taskChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	cases := make([]SuiteCase, len(tasks))
	completed := 0
	var firstErr error
	for result := range resultChan {
		if result.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("generate case %d: %w", tasks[result.pos].index, result.err)
		}
		cases[result.pos] = result.sc
		completed++
		if opts.ProgressCallback != nil {
			opts.ProgressCallback(completed, len(tasks))
		}
	}
	if firstErr != nil {
		return SuiteResult{}, firstErr
	}

	total := 0
	for _, c := range cases {
		total += c.ResultDigits
	}
	log.Suite.Info().Int("cases", len(cases)).Str("digits", humanize.Comma(int64(total))).
		Str("dir", opts.Dir).Msg("suite written")

	return SuiteResult{Seed: seed, Cases: cases}, nil
}

func generateCase(dir string, mode testcase.Mode, task caseTask) (SuiteCase, error) {
	rng := testcase.NewRand(task.seed)
	o, err := testcase.Generate(task.index, mode, rng)
	if err != nil {
		return SuiteCase{}, err
	}
	if err := output.WriteCase(dir, task.index, o.X, o.Y, o.Value); err != nil {
		return SuiteCase{}, err
	}
	in, out := output.SuitePaths(dir, task.index)
	log.Suite.Debug().Int("index", task.index).Str("kind", string(o.Case.Kind)).Msg("case written")
	return SuiteCase{
		Index:        task.index,
		Kind:         o.Case.Kind,
		InPath:       in,
		OutPath:      out,
		ResultDigits: len(o.Value.String()),
	}, nil
}
