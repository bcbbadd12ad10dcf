// Package shared provides common utilities and test helpers used
// across the survey service. It is a home for functionality that does
// not belong to any specific domain or architectural layer.
//
// The testutil subpackage provides a buffered slog handler for
// asserting on log output in tests. Code here must stay free of
// business logic and of dependencies on other internal packages.
package shared
