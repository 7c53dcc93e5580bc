// Package predictor evaluates a validated request against every matching
// trained pipeline and collects the results.
//
// The service holds the immutable pipeline store it was wired with. When the
// store failed to load at startup the service stays constructible and every
// Predict call reports ErrModelNotLoaded instead of crashing the interface.
package predictor
