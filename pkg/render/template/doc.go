// Package template defines the renderer-agnostic template contract the
// architecture renderers program against, keeping the concrete engine
// swappable behind options.
package template
