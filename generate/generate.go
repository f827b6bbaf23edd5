// SPDX-License-Identifier: MIT

// Package generate runs the two-stage K_n pipeline: build the adjacency
// matrix in full, then serialize it to grafo_<n>.txt.
//
// Each failure is tagged with its stage (ErrBuildStage or ErrWriteStage) and
// still matches the underlying sentinel, e.g.
//
//	errors.Is(err, generate.ErrBuildStage) && errors.Is(err, builder.ErrInvalidInput)
//
// A build failure never touches the filesystem.
package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/katalvlaran/kngen/builder"
	"github.com/katalvlaran/kngen/matrix"
	"github.com/katalvlaran/kngen/textio"
)

var (
	// ErrBuildStage marks failures while constructing the matrix.
	ErrBuildStage = errors.New("generate: build stage failed")

	// ErrWriteStage marks failures while writing the output document.
	ErrWriteStage = errors.New("generate: write stage failed")
)

// Request describes one generation run.
type Request struct {
	// Vertices is the vertex count N (must be >= 0).
	Vertices int

	// Dir is the output directory; empty means the current directory.
	Dir string

	// Delimiter overrides textio.DefaultDelimiter when non-empty.
	Delimiter string

	// Logger receives stage transitions; nil disables logging.
	Logger *zap.Logger

	// OnBuilt, when set, receives the matrix after the build stage and
	// before the output file is opened.
	OnBuilt func(m *matrix.Dense)
}

// Result reports what a successful run produced.
type Result struct {
	// Path is the file that was written.
	Path string

	// Matrix is the adjacency matrix that was serialized.
	Matrix *matrix.Dense
}

// Run builds K_n and writes it to Dir/grafo_<n>.txt. ctx is checked before
// each stage; the stages themselves are bounded and not interruptible.
func Run(ctx context.Context, req Request) (Result, error) {
	log := req.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.Int("vertices", req.Vertices))

	// Stage 1: build. Nothing touches the filesystem before this succeeds.
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrBuildStage, err)
	}
	log.Debug("building adjacency matrix")
	m, err := builder.Complete(req.Vertices)
	if err != nil {
		log.Error("build failed", zap.Error(err))
		return Result{}, fmt.Errorf("%w: %w", ErrBuildStage, err)
	}

	if req.OnBuilt != nil {
		req.OnBuilt(m)
	}

	// Stage 2: write. Delimiter "" keeps the textio default.
	if err = ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrWriteStage, err)
	}
	var opts []textio.Option
	if req.Delimiter != "" {
		opts = append(opts, textio.WithDelimiter(req.Delimiter))
	}
	path := filepath.Join(req.Dir, textio.FileName(req.Vertices))
	log.Debug("writing matrix", zap.String("path", path))
	if err = textio.WriteFile(path, m, opts...); err != nil {
		log.Error("write failed", zap.String("path", path), zap.Error(err))
		return Result{}, fmt.Errorf("%w: %w", ErrWriteStage, err)
	}

	log.Info("matrix written", zap.String("path", path), zap.Int("edges", m.Ones()/2))

	return Result{Path: path, Matrix: m}, nil
}
