// Package app wires application dependencies for the CLI.
//
// It loads configuration, builds the pipeline store, validator and services
// from Config, and exposes them via the Wire struct for commands to use.
package app
