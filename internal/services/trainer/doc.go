// Package trainer implements the offline training step: it fits one
// regression pipeline per dataset CSV, evaluates it on a held-out split and
// writes the persisted pipeline store the predictor loads at startup.
package trainer
