// Package version holds the build version, set at link time via
// -ldflags "-X github.com/ljacquet/patrimoine-backend/internal/version.Version=...".
package version

// Version is the build version string.
var Version = "dev"
