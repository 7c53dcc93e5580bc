// Package form is the presentation layer: a line-oriented terminal form
// that collects the inputs, runs them through the validator and the
// prediction service, and renders either the result rows or the failing
// stage's message. Errors never terminate the loop; identical submissions
// render identical results.
package form
