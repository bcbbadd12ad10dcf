// Package app wires the survey service together: configuration,
// logging, OpenTelemetry, middleware, services and HTTP routes, plus
// graceful startup and shutdown of the server.
package app
