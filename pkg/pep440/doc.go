// Package pep440 parses Python version numbers and rewrites them in to the
// canonical form defined by PEP 440 -- Version Identification and Dependency
// Specification.
//
// https://www.python.org/dev/peps/pep-0440/
//
// The package is deliberately asymmetric: the grammar that it accepts is the
// *permissive* one from PEP 440 Appendix B (alternate pre-release spellings,
// loose separators, a leading "v", surrounding whitespace), while the strings
// that it emits are always in the single canonical spelling.  Comparing or
// ordering versions is out of scope; for that you want a full implementation
// of the version scheme, not a normalizer.
package pep440
