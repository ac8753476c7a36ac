package pipeline

import (
	"context"
	"runtime"
	"sync"
)

// BatchConfig holds configuration for batch detection.
type BatchConfig struct {
	MaxWorkers int // Number of parallel workers (0 = runtime.NumCPU())
}

// DefaultBatchConfig returns sensible defaults for batch detection.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{MaxWorkers: runtime.NumCPU()}
}

// textJob is a single detection job.
type textJob struct {
	index int
	text  string
}

// textResult is the outcome of one detection job.
type textResult struct {
	index  int
	result Result
	err    error
}

// DetectAll detects every text independently and returns the results in
// input order.
func (p *Pipeline) DetectAll(texts []string) ([]Result, error) {
	return p.DetectAllContext(context.Background(), texts, DefaultBatchConfig())
}

// DetectAllContext detects every text independently using a worker pool,
// preserving input order. Parallelism across elements is safe because the
// model store is read-only after first population. Cancelling the context
// discards unscheduled texts; detections already in flight run to
// completion. The first detection or context error is returned.
func (p *Pipeline) DetectAllContext(ctx context.Context, texts []string, cfg BatchConfig) ([]Result, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = runtime.NumCPU()
	}

	// A single text or worker degenerates to the sequential path.
	if len(texts) == 1 || cfg.MaxWorkers == 1 {
		return p.detectSequential(ctx, texts)
	}

	jobs := make(chan textJob, len(texts))
	results := make(chan textResult, len(texts))

	var wg sync.WaitGroup
	for i := 0; i < cfg.MaxWorkers; i++ {
		wg.Add(1)
		go p.worker(jobs, results, &wg)
	}

	go func() {
		defer close(jobs)
		for i, text := range texts {
			select {
			case jobs <- textJob{index: i, text: text}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]Result, len(texts))
	var firstErr error
	scheduled := 0
	for r := range results {
		out[r.index] = r.result
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
		scheduled++
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if scheduled < len(texts) {
		return nil, ctx.Err()
	}
	return out, nil
}

func (p *Pipeline) worker(jobs <-chan textJob, results chan<- textResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for job := range jobs {
		result, err := p.Detect(job.text)
		results <- textResult{index: job.index, result: result, err: err}
	}
}

func (p *Pipeline) detectSequential(ctx context.Context, texts []string) ([]Result, error) {
	out := make([]Result, len(texts))
	for i, text := range texts {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		result, err := p.Detect(text)
		if err != nil {
			return nil, err
		}
		out[i] = result
	}
	return out, nil
}
