// Package pipeline implements the trained regression pipelines the predictor
// evaluates: median imputation, standardisation, polynomial feature expansion
// and ridge regression, with an optional log transform on the target.
//
// A fitted Pipeline serialises to JSON with every learned parameter, so the
// training step and the prediction service share one on-disk schema.
// Inference is deterministic: the same input vector always produces the same
// value.
package pipeline
