// Package driving defines the interfaces exposed to user-facing
// surfaces (CLI, TUI, watcher). The core services implement these
// ports.
package driving
