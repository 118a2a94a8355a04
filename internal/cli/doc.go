// Package cli defines the Cobra command tree for the packsmith CLI. Each file
// in this package registers one top-level command (new, validate, config,
// version) with the root command. Commands delegate to internal packages for
// the actual generation work and only handle flags, prompts, and output.
package cli
