// Package driven defines the interfaces the core services consume.
// Adapters under internal/adapters/driven implement these ports.
package driven
