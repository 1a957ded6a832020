package pep440

import (
	"regexp"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/intstr"
)

// The permissive grammar, as given in PEP 440 Appendix B (it is the same
// pattern that the PyPA "packaging" project ships as VERSION_PATTERN)::
//
//	VERSION_PATTERN = r"""
//	    v?
//	    (?:
//	        (?:(?P<epoch>[0-9]+)!)?                           # epoch
//	        (?P<release>[0-9]+(?:\.[0-9]+)*)                  # release segment
//	        (?P<pre>                                          # pre-release
//	            [-_\.]?
//	            (?P<pre_l>(a|b|c|rc|alpha|beta|pre|preview))
//	            [-_\.]?
//	            (?P<pre_n>[0-9]+)?
//	        )?
//	        (?P<post>                                         # post release
//	            (?:-(?P<post_n1>[0-9]+))
//	            |
//	            (?:
//	                [-_\.]?
//	                (?P<post_l>post|rev|r)
//	                [-_\.]?
//	                (?P<post_n2>[0-9]+)?
//	            )
//	        )?
//	        (?P<dev>                                          # dev release
//	            [-_\.]?
//	            (?P<dev_l>dev)
//	            [-_\.]?
//	            (?P<dev_n>[0-9]+)?
//	        )?
//	    )
//	    (?:\+(?P<local>[a-z0-9]+(?:[-_\.][a-z0-9]+)*))?       # local version
//	"""
//
//	_regex = re.compile(
//	    r"^\s*" + VERSION_PATTERN + r"\s*$",
//	    re.VERBOSE | re.IGNORECASE,
//	)
var reVersion = regexp.MustCompile(`(?i)^\s*` + regexp.MustCompile(`(?:\s+|#.*)`).ReplaceAllString(`
		v?
		(?:
		    (?:(?P<epoch>[0-9]+)!)?                           # epoch
		    (?P<release>[0-9]+(?:\.[0-9]+)*)                  # release segment
		    (?P<pre>                                          # pre-release
		        [-_\.]?
		        (?P<pre_l>(a|b|c|rc|alpha|beta|pre|preview))
		        [-_\.]?
		        (?P<pre_n>[0-9]+)?
		    )?
		    (?P<post>                                         # post release
		        (?:-(?P<post_n1>[0-9]+))
		        |
		        (?:
		            [-_\.]?
		            (?P<post_l>post|rev|r)
		            [-_\.]?
		            (?P<post_n2>[0-9]+)?
		        )
		    )?
		    (?P<dev>                                          # dev release
		        [-_\.]?
		        (?P<dev_l>dev)
		        [-_\.]?
		        (?P<dev_n>[0-9]+)?
		    )?
		)
		(?:\+(?P<local>[a-z0-9]+(?:[-_\.][a-z0-9]+)*))?       # local version
	`, ``) + `\s*$`)

// preSpellings maps each pre-release phase spelling that the permissive
// grammar accepts to the canonical spelling.
//
//nolint:gochecknoglobals // Would be 'const'.
var preSpellings = map[string]string{
	"a":     "a",
	"alpha": "a",

	"b":    "b",
	"beta": "b",

	"rc":      "rc",
	"c":       "rc",
	"pre":     "rc",
	"preview": "rc",
}

// parseNumeral interprets the numeral attached to a segment tag, reading an
// omitted numeral as the implicit 0 ("1.2a" means "1.2a0", "1.2.post" means
// "1.2.post0").  Numerals too large for an int are rejected rather than
// mangled.
func parseNumeral(str string) (int, bool) {
	if str == "" {
		return 0, true
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Parse matches str end-to-end against the permissive PEP 440 grammar and
// decomposes it in to its segments.  Matching is case-insensitive, and
// surrounding whitespace and a leading "v" are tolerated.
//
// On no-match the returned error is a *InvalidVersionError; there are no
// other failure modes.
func Parse(str string) (*Version, error) {
	match := reVersion.FindStringSubmatch(str)
	if match == nil {
		return nil, &InvalidVersionError{Version: str}
	}

	var ver Version

	if epochStr := match[reVersion.SubexpIndex("epoch")]; epochStr != "" {
		epoch, ok := parseNumeral(epochStr)
		if !ok {
			return nil, &InvalidVersionError{Version: str}
		}
		ver.Epoch = &epoch
	}

	for _, segStr := range strings.Split(match[reVersion.SubexpIndex("release")], ".") {
		seg, ok := parseNumeral(segStr)
		if !ok {
			return nil, &InvalidVersionError{Version: str}
		}
		ver.Release = append(ver.Release, seg)
	}

	if preL := strings.ToLower(match[reVersion.SubexpIndex("pre_l")]); preL != "" {
		preN, ok := parseNumeral(match[reVersion.SubexpIndex("pre_n")])
		if !ok {
			return nil, &InvalidVersionError{Version: str}
		}
		ver.Pre = &PreRelease{
			L: preSpellings[preL],
			N: preN,
		}
	}

	// The post-release segment has two surface forms: the implicit "-N"
	// shorthand, and an explicit "post"/"rev"/"r" tag.  The grammar only
	// ever matches one of them; both canonicalize to ".postN".
	if postN1 := match[reVersion.SubexpIndex("post_n1")]; postN1 != "" {
		postN, ok := parseNumeral(postN1)
		if !ok {
			return nil, &InvalidVersionError{Version: str}
		}
		ver.Post = &postN
	} else if match[reVersion.SubexpIndex("post_l")] != "" {
		postN, ok := parseNumeral(match[reVersion.SubexpIndex("post_n2")])
		if !ok {
			return nil, &InvalidVersionError{Version: str}
		}
		ver.Post = &postN
	}

	if match[reVersion.SubexpIndex("dev_l")] != "" {
		devN, ok := parseNumeral(match[reVersion.SubexpIndex("dev_n")])
		if !ok {
			return nil, &InvalidVersionError{Version: str}
		}
		ver.Dev = &devN
	}

	localParts := strings.FieldsFunc(match[reVersion.SubexpIndex("local")], func(r rune) bool {
		return strings.ContainsRune("-_.", r)
	})
	for _, part := range localParts {
		ver.Local = append(ver.Local, intstr.Parse(strings.ToLower(part)))
	}

	return &ver, nil
}
