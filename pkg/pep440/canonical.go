package pep440

import (
	"regexp"
)

// The strict canonical-form check from PEP 440 Appendix B::
//
//	import re
//	def is_canonical(version):
//	    return re.match(r'^([1-9][0-9]*!)?(0|[1-9][0-9]*)(\.(0|[1-9][0-9]*))*((a|b|rc)(0|[1-9][0-9]*))?(\.post(0|[1-9][0-9]*))?(\.dev(0|[1-9][0-9]*))?$', version) is not None
//
// extended here with the canonical spelling of the local version label
// (dot-separated alphanumeric segments, numeric segments without leading
// zeros).
//
//nolint:lll // long regexp in source specification
var reCanonical = regexp.MustCompile(`^([1-9][0-9]*!)?(0|[1-9][0-9]*)(\.(0|[1-9][0-9]*))*((a|b|rc)(0|[1-9][0-9]*))?(\.post(0|[1-9][0-9]*))?(\.dev(0|[1-9][0-9]*))?(\+(0|[1-9][0-9]*|[0-9]*[a-z][a-z0-9]*)(\.(0|[1-9][0-9]*|[0-9]*[a-z][a-z0-9]*))*)?$`)

// IsCanonical reports whether str is already the canonical spelling of a
// version identifier.
//
// This is a stricter test than a fixed point of Normalize: the permissive
// grammar admits a few spellings (an explicitly written ``0!`` epoch, for
// one) that Normalize preserves even though the canonical scheme would
// never produce them.
func IsCanonical(str string) bool {
	return reCanonical.MatchString(str)
}
