// Package config holds the startup plumbing shared by the commands:
// environment defaults, the slog logger and the OpenTelemetry providers.
package config
