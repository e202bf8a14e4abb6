// Package orchestrator wires schema normalization to the renderer
// registry, providing a single entry point that turns an entity
// description into the file map of its target architecture.
package orchestrator
