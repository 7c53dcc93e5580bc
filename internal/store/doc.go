// Package store persists the trained pipelines as a single JSON document on
// disk, mapping target name to pipeline plus display metadata.
//
// The document is written only by the training step (atomically, via a temp
// file and rename) and loaded once at startup into an immutable Store the
// prediction service reads for the life of the process.
package store
