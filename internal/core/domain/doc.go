// Package domain contains the core business entities for the Polyglot CLI.
// These types have no dependencies on adapters or external services.
package domain
