package archive

import (
	"context"
	"sync"
)

const defaultWorkers = 4

// Runner checks all files below an archive root.
type Runner struct {
	Workers int // number of concurrent checks, default 4
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Checked   int `json:"checked"`
	Valid     int `json:"valid"`
	Invalid   int `json:"invalid"`
	Misplaced int `json:"misplaced"`
	Warnings  int `json:"warnings"`
}

// Run walks root and checks every file, fanning out over the configured
// number of workers. The per-file checks share no state, so they run in
// any order; the returned results keep the walk order. Run returns the
// context error when ctx is cancelled before all files are done.
func (r *Runner) Run(ctx context.Context, root string) (Summary, []Result, error) {
	files, err := Walk(root)
	if err != nil {
		return Summary{}, nil, err
	}
	results, err := r.checkAll(ctx, files)
	if err != nil {
		return Summary{}, nil, err
	}
	return summarize(results), results, nil
}

func (r *Runner) checkAll(ctx context.Context, files []string) ([]Result, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > len(files) {
		workers = len(files)
	}

	// Workers write to distinct indices, keeping the walk order without
	// further coordination.
	results := make([]Result, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = CheckPath(files[i])
			}
		}()
	}

feed:
	for i := range files {
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func summarize(results []Result) Summary {
	s := Summary{Checked: len(results)}
	for _, res := range results {
		if res.Valid() {
			s.Valid++
		} else {
			s.Invalid++
		}
		if res.Location == LocationMismatch {
			s.Misplaced++
		}
		s.Warnings += len(res.Warnings)
	}
	return s
}
