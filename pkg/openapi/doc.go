// Package openapi imports OpenAPI component schemas as entity schemas,
// mapping property types and the common string/number constraints onto
// the validation rule set the generators understand.
package openapi
