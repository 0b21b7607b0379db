// Package validate implements the composable validation chain: a
// Validator evaluates (intent, node) and returns one of
// Valid/Invalid/Ignore/Redirect; Chain composes any number of them in
// ascending-priority order per the combination rules in the specification.
// Composition is a plain sorted slice of an interface value, not dynamic
// reflection, per the design notes' call to avoid reflective composition.
package validate
