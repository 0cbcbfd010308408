package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ppiankov/actornet/internal/model"
)

// MockScanner implements Scanner
type MockScanner struct {
	ShouldError bool

	mu   sync.Mutex
	seen []string
}

func (m *MockScanner) ScanSource(ctx context.Context, ref string) (*model.Report, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	m.mu.Lock()
	m.seen = append(m.seen, ref)
	m.mu.Unlock()

	if m.ShouldError {
		return nil, errors.New("scan error")
	}
	return &model.Report{
		Subject: "Test Subject",
		Source:  ref,
	}, nil
}

func writeSources(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBatchProcessor_ProcessSources(t *testing.T) {
	scanner := &MockScanner{}
	processor := NewBatchProcessor(scanner, 2, 0, 0)

	refs := []string{"http://example.com/a", "cases/b.txt", "http://example.org/c", "-"}
	results := processor.ProcessSources(context.Background(), refs)

	if len(results) != len(refs) {
		t.Fatalf("expected %d results, got %d", len(refs), len(results))
	}

	for i, res := range results {
		if res.Ref != refs[i] {
			t.Errorf("result %d: expected %s, got %s (results must keep input order)", i, refs[i], res.Ref)
		}
		if res.Error != nil {
			t.Errorf("unexpected error for %s: %v", res.Ref, res.Error)
		}
		if res.Report == nil || res.Report.Source != refs[i] {
			t.Errorf("expected report for %s", res.Ref)
		}
	}
}

func TestBatchProcessor_ProcessSources_Error(t *testing.T) {
	scanner := &MockScanner{ShouldError: true}
	processor := NewBatchProcessor(scanner, 2, 0, 0)

	results := processor.ProcessSources(context.Background(), []string{"http://example.com"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Report != nil {
		t.Error("expected nil report on error")
	}
}

func TestBatchProcessor_ProcessSources_Empty(t *testing.T) {
	processor := NewBatchProcessor(&MockScanner{}, 2, 0, 0)

	results := processor.ProcessSources(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestBatchProcessor_Throttled(t *testing.T) {
	scanner := &MockScanner{}
	// One token per host, refilled every 100ms
	processor := NewBatchProcessor(scanner, 4, 10, 1)

	refs := []string{"http://example.com/1", "http://example.com/2", "http://example.com/3", "local.txt"}
	start := time.Now()
	results := processor.ProcessSources(context.Background(), refs)
	elapsed := time.Since(start)

	for _, res := range results {
		if res.Error != nil {
			t.Errorf("unexpected error for %s: %v", res.Ref, res.Error)
		}
	}
	// Three requests to one host need at least two refills
	if elapsed < 150*time.Millisecond {
		t.Errorf("expected throttling to take >= 150ms, got %v", elapsed)
	}
	if processor.limiter.Hosts() != 1 {
		t.Errorf("expected file sources to bypass the limiter, got %d hosts", processor.limiter.Hosts())
	}
}

func TestBatchProcessor_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	processor := NewBatchProcessor(&MockScanner{}, 2, 0, 0)
	refs := []string{"a.txt", "b.txt", "c.txt"}
	results := processor.ProcessSources(ctx, refs)

	if len(results) != len(refs) {
		t.Fatalf("expected one result per source, got %d", len(results))
	}
	for i, res := range results {
		if res.Ref != refs[i] {
			t.Errorf("result %d: expected %s, got %s", i, refs[i], res.Ref)
		}
	}
}

func TestReadSourcesFromFile(t *testing.T) {
	path := writeSources(t, `http://example.com
# comment
cases/county.txt
   
http://example.com
-   `)

	refs, err := ReadSourcesFromFile(path)
	if err != nil {
		t.Fatalf("ReadSourcesFromFile failed: %v", err)
	}

	expected := []string{"http://example.com", "cases/county.txt", "-"}
	if len(refs) != len(expected) {
		t.Fatalf("expected %d sources, got %d: %v", len(expected), len(refs), refs)
	}
	for i, ref := range refs {
		if ref != expected[i] {
			t.Errorf("expected source %s at index %d, got %s", expected[i], i, ref)
		}
	}
}

func TestReadSourcesFromFile_NonExistent(t *testing.T) {
	if _, err := ReadSourcesFromFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestSourceResult_GetError(t *testing.T) {
	r1 := &SourceResult{Ref: "a.txt"}
	if r1.GetError() != nil {
		t.Errorf("expected nil error, got %v", r1.GetError())
	}

	expected := errors.New("scan failed")
	r2 := &SourceResult{Ref: "a.txt", Error: expected}
	if r2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r2.GetError())
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	path := writeSources(t, "http://example.com\ncases/a.txt\n# comment\n\nhttp://example.org\n")

	results, err := NewBatchProcessor(&MockScanner{}, 2, 0, 0).ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFile_Empty(t *testing.T) {
	path := writeSources(t, "")

	results, err := NewBatchProcessor(&MockScanner{}, 2, 0, 0).ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results for empty file, got %d", len(results))
	}
}
