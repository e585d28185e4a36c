package readtime

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-readtime/internal/logging"
	"github.com/goliatone/go-readtime/internal/scanner"
	"github.com/goliatone/go-readtime/pkg/interfaces"
)

// ErrBasePathRequired indicates the service was built without a content root.
var ErrBasePathRequired = errors.New("readtime service: base path is required")

// ServiceConfig controls how the Service discovers and estimates content
// files.
type ServiceConfig struct {
	// BasePath is the root directory where Markdown content lives.
	BasePath string
	// Pattern limits discovered files to those matching the supplied glob
	// against the base name (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// Speed is the speed model applied to every file. The zero value falls
	// back to DefaultSpeed.
	Speed ReadSpeed
	// Scanner overrides the default goldmark scanner.
	Scanner interfaces.Scanner
	// Logger receives per-file progress. When nil every entry is dropped.
	Logger interfaces.Logger
}

// Service estimates read times for filesystem-backed Markdown content. It is
// the surface publishing pipelines embed when labelling whole content trees;
// the service reads files but stores nothing.
type Service struct {
	fsys      fs.FS
	basePath  string
	pattern   string
	recursive bool
	speed     ReadSpeed
	scanner   interfaces.Scanner
	logger    interfaces.Logger
}

// FileReadTime pairs an estimate with the file it was computed from. Path is
// relative to the service base path, slash separated.
type FileReadTime struct {
	Path string `json:"path"`
	ReadTime
}

// NewService constructs a Service rooted at cfg.BasePath.
func NewService(cfg ServiceConfig) (*Service, error) {
	basePath := strings.TrimSpace(cfg.BasePath)
	if basePath == "" {
		return nil, ErrBasePathRequired
	}
	basePath = filepath.Clean(basePath)
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("readtime service: stat base path %s: %w", basePath, err)
	}

	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}

	speed := cfg.Speed
	if speed == (ReadSpeed{}) {
		speed = DefaultSpeed()
	}

	sc := cfg.Scanner
	if sc == nil {
		sc = scanner.NewGoldmark()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Service{
		fsys:      os.DirFS(basePath),
		basePath:  basePath,
		pattern:   pattern,
		recursive: cfg.Recursive,
		speed:     speed,
		scanner:   sc,
		logger:    logger,
	}, nil
}

// Estimate loads a single Markdown file relative to the base path and
// estimates its read time.
func (s *Service) Estimate(ctx context.Context, path string) (*FileReadTime, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rel, err := s.makeRelative(path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	data, err := fs.ReadFile(s.fsys, rel)
	if err != nil {
		return nil, fmt.Errorf("readtime service: read %s: %w", rel, err)
	}

	rt := estimate(s.scanner, data, s.speed)
	s.logger.Debug("estimated content file",
		"path", rel,
		"words", rt.WordCount,
		"seconds", rt.TotalSeconds,
	)

	return &FileReadTime{Path: rel, ReadTime: rt}, nil
}

// EstimateDirectory estimates every matching Markdown file within dir,
// returning results sorted by path. Cancellation is honoured between files.
func (s *Service) EstimateDirectory(ctx context.Context, dir string) ([]*FileReadTime, error) {
	root, err := s.makeRelative(dir)
	if err != nil {
		return nil, err
	}
	root = filepath.ToSlash(filepath.Clean(root))

	var results []*FileReadTime

	walkErr := fs.WalkDir(s.fsys, root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			if !s.recursive && path != root {
				return fs.SkipDir
			}
			return nil
		}

		matched, err := filepath.Match(s.pattern, d.Name())
		if err != nil {
			return fmt.Errorf("readtime service: match pattern %q: %w", s.pattern, err)
		}
		if !matched {
			return nil
		}

		result, err := s.Estimate(ctx, path)
		if err != nil {
			return err
		}
		results = append(results, result)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("readtime service: walk %s: %w", root, walkErr)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	s.logger.Info("estimated content directory", "dir", root, "files", len(results))
	return results, nil
}

func (s *Service) makeRelative(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ".", nil
	}
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		return clean, nil
	}
	rel, err := filepath.Rel(s.basePath, clean)
	if err != nil {
		return "", fmt.Errorf("readtime service: make relative %s: %w", path, err)
	}
	return rel, nil
}
