package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/pipeline"
)

// Scanner analyzes one source reference
type Scanner interface {
	ScanSource(ctx context.Context, ref string) (*model.Report, error)
}

// SourceJob analyzes one source of a batch
type SourceJob struct {
	Index   int
	Ref     string
	Scanner Scanner
	Limiter *Limiter // nil disables throttling
}

// Execute executes the job. URL sources wait on their host's limiter first.
func (j *SourceJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil && pipeline.IsURL(j.Ref) {
		if err := j.Limiter.Wait(ctx, j.Ref); err != nil {
			return &SourceResult{Index: j.Index, Ref: j.Ref, Error: fmt.Errorf("rate limit: %w", err)}
		}
	}

	report, err := j.Scanner.ScanSource(ctx, j.Ref)
	return &SourceResult{
		Index:  j.Index,
		Ref:    j.Ref,
		Report: report,
		Error:  err,
	}
}

// SourceResult represents the result of a source job
type SourceResult struct {
	Index  int
	Ref    string
	Report *model.Report
	Error  error
}

// GetError returns the error from the source result
func (r *SourceResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple sources concurrently
type BatchProcessor struct {
	scanner     Scanner
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor. A non-positive
// requestsPerSecond disables per-host throttling.
func NewBatchProcessor(scanner Scanner, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	b := &BatchProcessor{
		scanner:     scanner,
		concurrency: concurrency,
	}
	if requestsPerSecond > 0 {
		b.limiter = NewLimiter(requestsPerSecond, burst)
	}
	return b
}

// ProcessSources analyzes the sources concurrently and returns one result
// per source, in input order
func (b *BatchProcessor) ProcessSources(ctx context.Context, refs []string) []*SourceResult {
	if len(refs) == 0 {
		return []*SourceResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for i, ref := range refs {
		pool.Submit(&SourceJob{
			Index:   i,
			Ref:     ref,
			Scanner: b.scanner,
			Limiter: b.limiter,
		})
	}

	results := pool.Wait()

	sourceResults := make([]*SourceResult, 0, len(refs))
	done := make(map[int]bool, len(results))
	for _, result := range results {
		sr := result.(*SourceResult)
		done[sr.Index] = true
		sourceResults = append(sourceResults, sr)
	}

	// Jobs dropped by cancellation still get a result
	for i, ref := range refs {
		if !done[i] {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			sourceResults = append(sourceResults, &SourceResult{Index: i, Ref: ref, Error: err})
		}
	}
	sort.Slice(sourceResults, func(i, j int) bool {
		return sourceResults[i].Index < sourceResults[j].Index
	})

	return sourceResults
}

// ProcessFile reads sources from a file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*SourceResult, error) {
	refs, err := ReadSourcesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}

	return b.ProcessSources(ctx, refs), nil
}

// ReadSourcesFromFile reads source references from a file (one per line).
// Blank lines and # comments are skipped; duplicates keep their first position.
func ReadSourcesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var refs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			refs = append(refs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return refs, nil
}
