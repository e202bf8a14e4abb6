// Package model defines the typed entity schema consumed by renderers.
// Construction helpers reside in internal/model but operate on the types
// re-exported here. Validation rules carry their payloads as strings so
// numeric thresholds and regex sources embed into generated ArkTS exactly
// as supplied, without float round-tripping, and schemas can be snapshot
// as deterministic JSON.
package model
