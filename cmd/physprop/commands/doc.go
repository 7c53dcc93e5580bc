// Package commands defines the physprop CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - form      Interactive prediction form (the main interface)
//   - predict   One-shot prediction from flags
//   - train     Fit pipelines from the dataset directory and write the model file
//   - targets   List the targets in the model file with their metrics
//   - version   Print the build version
//
// # Implementation
//
// The root command loads configuration, builds the logger and wires the
// dependency graph (store, validator, services) before any subcommand runs,
// so handlers share one app context.
package commands
