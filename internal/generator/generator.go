// Package generator produces the SPRESENSE version header from the bootloader
// manifest and the repository history.
package generator

import (
	"context"

	"github.com/spf13/afero"

	"github.com/altuslabsxyz/generate-version/internal/header"
	"github.com/altuslabsxyz/generate-version/internal/manifest"
	"github.com/altuslabsxyz/generate-version/internal/output"
	"github.com/altuslabsxyz/generate-version/internal/vcs"
)

// Generator writes version headers.
type Generator struct {
	resolver vcs.ReferenceDateResolver
	fs       afero.Fs
	logger   output.LoggerInterface
	ref      string
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRef sets the reference whose commit date is used. Defaults to vcs.DefaultRef.
func WithRef(ref string) Option {
	return func(g *Generator) {
		if ref != "" {
			g.ref = ref
		}
	}
}

// WithFs sets the filesystem the header is written to. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// New creates a Generator.
func New(resolver vcs.ReferenceDateResolver, logger output.LoggerInterface, opts ...Option) *Generator {
	g := &Generator{
		resolver: resolver,
		fs:       afero.NewOsFs(),
		logger:   logger,
		ref:      vcs.DefaultRef,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result describes a generated header.
type Result struct {
	OutputPath        string
	RevisionDate      RevisionDate
	BootloaderVersion string
	Content           []byte
}

// ResolveRevisionDate looks up the commit date of the configured reference.
// Failures are logged as warnings and yield a fallback date.
func (g *Generator) ResolveRevisionDate(ctx context.Context) RevisionDate {
	date, err := g.resolver.ResolveReferenceDate(ctx, g.ref)
	if err != nil {
		g.logger.Warn("Failed to get git date: %v", err)
		return FallbackDate(err)
	}

	g.logger.Debug("Resolved %s commit date: %s", g.ref, date)
	return ResolvedDate(date)
}

// Run generates the header for manifestPath and writes it to outputPath.
//
// The manifest is loaded first, so a broken manifest fails before git runs.
// The revision date lookup never fails the run. Manifest and write errors are
// returned. The output file is not opened until the header is fully rendered.
func (g *Generator) Run(ctx context.Context, manifestPath, outputPath string) (*Result, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Loaded %s from %s: %s", manifest.LoaderVersionKey, manifestPath, m.LoaderVersion)

	date := g.ResolveRevisionDate(ctx)

	content := header.Render(header.Fields{
		SpresenseVersion:  date.String(),
		BootloaderVersion: m.LoaderVersion,
	})

	if err := header.Write(g.fs, outputPath, content); err != nil {
		return nil, err
	}

	g.logger.Success("Generated %s with version %s", outputPath, m.LoaderVersion)

	return &Result{
		OutputPath:        outputPath,
		RevisionDate:      date,
		BootloaderVersion: m.LoaderVersion,
		Content:           content,
	}, nil
}
