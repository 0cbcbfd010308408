package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/actornet/internal/extract/adapters"
	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/util"
)

// StdinSource is the source reference for standard input
const StdinSource = "-"

// ErrDisallowed marks a URL source excluded by robots.txt
var ErrDisallowed = errors.New("disallowed by robots.txt")

// Source is a loaded document before decoding
type Source struct {
	Ref         string // As given on the command line
	Location    string // Final URL or cleaned path
	Subject     string
	ContentType string
	Content     []byte
}

// SourceLoader reads sources from stdin, files and URLs
type SourceLoader struct {
	fetcher  *Fetcher
	robots   *util.RobotsChecker // nil when robots.txt is ignored
	stdin    io.Reader
	maxBytes int64
}

// NewSourceLoader creates a loader from the HTTP configuration
func NewSourceLoader(cfg model.HTTPConfig) *SourceLoader {
	l := &SourceLoader{
		fetcher:  NewFetcher(cfg.Timeout, cfg.UserAgent, cfg.MaxBodyBytes, cfg.InsecureTLS, cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
		stdin:    os.Stdin,
		maxBytes: cfg.MaxBodyBytes,
	}
	if cfg.RespectRobots {
		l.robots = util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout, util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy))
	}
	return l
}

// IsURL reports whether a source reference is an http(s) URL
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Load reads a source
func (l *SourceLoader) Load(ctx context.Context, ref string) (*Source, error) {
	switch {
	case ref == StdinSource:
		data, err := io.ReadAll(io.LimitReader(l.stdin, l.maxBytes))
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return &Source{Ref: ref, Location: ref, Subject: "stdin", Content: data}, nil

	case IsURL(ref):
		if l.robots != nil && !l.robots.IsAllowed(ctx, ref) {
			return nil, fmt.Errorf("%s: %w", ref, ErrDisallowed)
		}
		result, err := l.fetcher.FetchWithRetry(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", ref, err)
		}
		return &Source{
			Ref:         ref,
			Location:    result.FinalURL,
			Subject:     result.Subject,
			ContentType: result.ContentType,
			Content:     []byte(result.Body),
		}, nil

	default:
		path := filepath.Clean(ref)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return &Source{Ref: ref, Location: path, Subject: fileSubject(path), Content: data}, nil
	}
}

// Decode turns a loaded source into analyzer input. HTML documents become
// narratives; everything else goes through model.DecodeInput, so JSON
// decides its own variant by shape.
func Decode(registry *adapters.Registry, src *Source) (model.Input, error) {
	adapter := registry.FindAdapter(src.Location, src.ContentType)
	text, err := adapter.Narrative(src.Content, src.Location)
	if err != nil {
		return nil, fmt.Errorf("%s adapter: %w", adapter.Name(), err)
	}

	if adapter.Name() != "plain" {
		return model.TextInput{Text: text}, nil
	}
	return model.DecodeInput([]byte(text))
}

func fileSubject(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.ReplaceAll(base, "_", " ")
	return strings.ReplaceAll(base, "-", " ")
}
