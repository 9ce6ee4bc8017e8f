// Package dfs defines types and options for path enumeration,
// including cancellation, a per-path hook, result and depth caps, and logging.
package dfs

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Default endpoint names.
const (
	DefaultStart = "start"
	DefaultEnd   = "end"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to AllPaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrMissingEndpoint indicates the start or end node does not exist in the graph.
	ErrMissingEndpoint = errors.New("dfs: missing endpoint")

	// ErrPathLimit indicates more paths exist than the caller allowed with WithMaxPaths.
	ErrPathLimit = errors.New("dfs: path limit exceeded")

	// ErrDepthLimit indicates a branch grew longer than the caller allowed with WithMaxDepth.
	ErrDepthLimit = errors.New("dfs: depth limit exceeded")
)

// Option configures optional behavior of AllPaths.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked before every branch expansion.
	Ctx context.Context

	// Start and End name the path endpoints. Defaults are "start" and "end".
	Start string
	End   string

	// MaxPaths, if positive, caps the number of distinct paths. Finding one
	// more aborts with ErrPathLimit. Default 0 (no cap).
	MaxPaths int

	// MaxDepth, if positive, caps the number of nodes on a branch. A branch
	// that would exceed it aborts with ErrDepthLimit. Default 0 (no cap).
	MaxDepth int

	// OnPath, if non-nil, is invoked once per newly recorded path.
	// The path is owned by the result set and must not be modified.
	// Returning an error aborts enumeration with that error.
	OnPath func(p Path) error

	// Logger receives debug events; defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - "start" / "end" endpoints
//   - No result or depth cap
//   - No per-path hook
//   - A no-op logger
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Start:    DefaultStart,
		End:      DefaultEnd,
		MaxPaths: 0,
		MaxDepth: 0,
		OnPath:   nil,
		Logger:   zap.NewNop(),
	}
}

// WithContext returns an Option that sets the Context for enumeration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart overrides the start node name.
func WithStart(name string) Option {
	return func(o *Options) {
		o.Start = name
	}
}

// WithEnd overrides the end node name.
func WithEnd(name string) Option {
	return func(o *Options) {
		o.End = name
	}
}

// WithMaxPaths caps the number of distinct paths; n <= 0 disables the cap.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		o.MaxPaths = n
	}
}

// WithMaxDepth caps the number of nodes on any branch; n <= 0 disables the cap.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		o.MaxDepth = n
	}
}

// WithOnPath installs fn as a hook called for every newly recorded path.
func WithOnPath(fn func(p Path) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
