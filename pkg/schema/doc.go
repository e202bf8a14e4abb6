// Package schema parses caller-facing entity descriptions: the
// comma-separated property DSL accepted by CLI flags and the JSON/YAML
// manifest files that can additionally express validation rules.
package schema
