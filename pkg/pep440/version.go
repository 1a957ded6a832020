package pep440

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/intstr"
)

// A Version is the decomposition of a version identifier in to the five
// public segments plus the local version label:
//
//	[N!]N(.N)*[{a|b|rc}N][.postN][.devN][+<local>]
//
// A Version produced by Parse always holds the canonical representation of
// each segment, no matter how the input spelled it; Version.String is
// therefore the canonical form of the input.
type Version struct {
	// Epoch segment: ``N!``.  nil means the input carried no epoch at
	// all; an explicitly written ``0!`` is preserved as a pointer to 0.
	Epoch *int
	// Release segment: ``N(.N)*``.  Never empty for a parsed version.
	Release []int
	// Pre-release segment: ``{a|b|rc}N``.
	Pre *PreRelease
	// Post-release segment: ``.postN``.
	Post *int
	// Development release segment: ``.devN``.
	Dev *int
	// Local version label: ``+seg(.seg)*``, where each segment is either
	// a non-negative integer or an alphanumeric string.
	Local []intstr.IntOrString
}

// A PreRelease is a pre-release phase letter together with its serial number
// within that phase.
type PreRelease struct {
	L string // "a", "b", or "rc"
	N int
}

// GoString implements fmt.GoStringer.
func (ver Version) GoString() string {
	epoch := "nil"
	if ver.Epoch != nil {
		epoch = fmt.Sprintf("intPtr(%#v)", *ver.Epoch)
	}
	pre := "nil"
	if ver.Pre != nil {
		pre = fmt.Sprintf("&%#v", *ver.Pre)
	}
	post := "nil"
	if ver.Post != nil {
		post = fmt.Sprintf("intPtr(%#v)", *ver.Post)
	}
	dev := "nil"
	if ver.Dev != nil {
		dev = fmt.Sprintf("intPtr(%#v)", *ver.Dev)
	}
	return fmt.Sprintf("pep440.Version{Epoch:%s, Release:%#v, Pre:%s, Post:%s, Dev:%s, Local:%#v}",
		epoch, ver.Release, pre, post, dev, ver.Local)
}

// String emits the canonical spelling of the version, segment by segment.
//
// The emission rules follow the "Normalization" section of PEP 440:
//
//   - All integers are interpreted via the ``int()`` built in and normalize
//     to the string form of the output; ``09000`` emits as ``9000``.  This
//     does not hold true for integers inside of an alphanumeric segment of a
//     local version such as ``1.0+foo0100`` which is already in its
//     normalized form.
//   - The normal form of the pre-release segment uses no separator and one
//     of the spellings ``a``, ``b``, or ``rc``; the numeral is always
//     explicit (``1.2a`` emits as ``1.2a0``).
//   - The normal form of the post-release and development release segments
//     is with a ``.`` separator and an explicit numeral: ``.postN`` and
//     ``.devN``.
//   - The normal form of the local version label separates segments with
//     the ``.`` character.
func (ver Version) String() string {
	var ret strings.Builder
	if ver.Epoch != nil {
		fmt.Fprintf(&ret, "%d!", *ver.Epoch)
	}
	if len(ver.Release) == 0 {
		panic("invalid version: no release segments")
	}
	fmt.Fprintf(&ret, "%d", ver.Release[0])
	for _, segment := range ver.Release[1:] {
		fmt.Fprintf(&ret, ".%d", segment)
	}
	if ver.Pre != nil {
		fmt.Fprintf(&ret, "%s%d", ver.Pre.L, ver.Pre.N)
	}
	if ver.Post != nil {
		fmt.Fprintf(&ret, ".post%d", *ver.Post)
	}
	if ver.Dev != nil {
		fmt.Fprintf(&ret, ".dev%d", *ver.Dev)
	}
	sep := "+"
	for _, local := range ver.Local {
		ret.WriteString(sep)
		ret.WriteString(local.String())
		sep = "."
	}
	return ret.String()
}

func (ver Version) releaseSegment(n int) int {
	if n < len(ver.Release) {
		return ver.Release[n]
	}
	return 0
}

// Major, Minor, and Micro return the first three release segments, reading
// an absent segment as 0 (``X.Y`` and ``X.Y.0`` are not considered distinct
// release numbers).

func (ver Version) Major() int { return ver.releaseSegment(0) }
func (ver Version) Minor() int { return ver.releaseSegment(1) }
func (ver Version) Micro() int { return ver.releaseSegment(2) }

// IsFinal reports whether the version is a "final release": solely a release
// segment and optionally an epoch.
func (ver Version) IsFinal() bool {
	return ver.Pre == nil && ver.Post == nil && ver.Dev == nil && len(ver.Local) == 0
}

// IsPreRelease reports whether the version carries a pre-release or
// development release segment.
func (ver Version) IsPreRelease() bool {
	return ver.Pre != nil || ver.Dev != nil
}

// Public returns a copy of the version with the local version label removed;
// the "public version identifier" of PEP 440.
func (ver Version) Public() Version {
	ver.Local = nil
	return ver
}
