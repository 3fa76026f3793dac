// Package codegen is the offline generation pipeline: it fetches the space's
// component schemas from the management API, detects drift against the stored
// schema hash, and emits the generated artifacts in internal/schema from one
// shared field representation.
package codegen

import (
	"bytes"
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/mlehtin/storykit/internal/errors"
	"github.com/mlehtin/storykit/internal/logging"
)

// Package-level logger specific to the codegen pipeline
var (
	logger          *slog.Logger
	serviceLevelVar = new(slog.LevelVar) // Dynamic level control
	closeLogger     func() error
)

func init() {
	var err error
	logFilePath := filepath.Join("logs", "codegen.log")
	serviceLevelVar.Set(slog.LevelDebug)

	logger, closeLogger, err = logging.NewFileLogger(logFilePath, "codegen", serviceLevelVar)
	if err != nil {
		log.Printf("Failed to initialize codegen file logger at %s: %v. Service logging disabled.", logFilePath, err)
		logger = logging.NewDiscardLogger("codegen", serviceLevelVar)
		closeLogger = func() error { return nil }
	}
}

// Options controls one generator run.
type Options struct {
	OutputDir string // package directory for the generated files
	HashFile  string // hash marker filename, relative to OutputDir
	Force     bool   // regenerate even when the hash matches
	DryRun    bool   // render but write nothing
}

// DefaultOptions returns the standard artifact locations.
func DefaultOptions() Options {
	return Options{
		OutputDir: filepath.Join("internal", "schema"),
		HashFile:  "schema.sha256",
	}
}

// Result summarizes a generator run.
type Result struct {
	Components int
	Hash       string
	Skipped    bool     // hash matched, nothing regenerated
	Files      []string // paths written (or that would be, on dry run)
}

// Generator runs the schema-to-artifacts pipeline.
type Generator struct {
	client *ManagementClient
	opts   Options
}

// NewGenerator wires a management client to the artifact writer.
func NewGenerator(client *ManagementClient, opts Options) *Generator {
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOptions().OutputDir
	}
	if opts.HashFile == "" {
		opts.HashFile = DefaultOptions().HashFile
	}
	return &Generator{client: client, opts: opts}
}

// generated file names inside the schema package.
const (
	componentsFile = "components.gen.go"
	typesFile      = "types.gen.go"
	mocksFile      = "mocks.gen.go"
)

// Run executes the pipeline: fetch, normalize, hash, and either skip (no
// drift) or render and write all artifacts plus the new hash marker.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	components, err := g.client.FetchComponents(ctx)
	if err != nil {
		return nil, err
	}

	defs := buildDefinitions(components)
	hash, err := hashDefinitions(defs)
	if err != nil {
		return nil, err
	}

	markerPath := filepath.Join(g.opts.OutputDir, g.opts.HashFile)
	stored, err := readHashMarker(markerPath)
	if err != nil {
		return nil, err
	}
	if stored == hash && !g.opts.Force {
		logger.Info("Component schemas unchanged, skipping generation", "hash", hash)
		return &Result{Components: len(defs), Hash: hash, Skipped: true}, nil
	}

	model := buildRenderModel(defs)
	outputs := []struct {
		name string
		tmpl *template.Template
	}{
		{componentsFile, componentsTemplate},
		{typesFile, typesTemplate},
		{mocksFile, mocksTemplate},
	}

	result := &Result{Components: len(defs), Hash: hash}
	for _, out := range outputs {
		src, err := renderFile(out.tmpl, model)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(g.opts.OutputDir, out.name)
		result.Files = append(result.Files, path)
		if g.opts.DryRun {
			continue
		}
		if err := writeGenerated(path, src); err != nil {
			return nil, err
		}
	}

	result.Files = append(result.Files, markerPath)
	if !g.opts.DryRun {
		if err := writeHashMarker(markerPath, hash); err != nil {
			return nil, err
		}
	}

	logger.Info("Generated schema artifacts",
		"components", len(defs), "hash", hash, "dry_run", g.opts.DryRun)
	return result, nil
}

// writeGenerated writes src only when it differs from what is on disk, so
// unchanged artifacts keep their timestamps.
func writeGenerated(path string, src []byte) error {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, src) {
		logger.Debug("Generated file unchanged", "path", path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Component("codegen").
			Context("operation", "write_generated").
			Context("path", path).
			Build()
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Component("codegen").
			Context("operation", "write_generated").
			Context("path", path).
			Build()
	}
	logger.Debug("Wrote generated file", "path", path, "bytes", len(src))
	return nil
}

// CloseLogger releases the pipeline's log file. The generate command calls
// this on exit.
func CloseLogger() error {
	if closeLogger != nil {
		return closeLogger()
	}
	return nil
}
