package pep440

import (
	"context"
	"fmt"
	"strings"

	"github.com/datawire/dlib/dlog"
)

// InvalidVersionError indicates that a version number does not match even
// the permissive PEP 440 grammar.  It is the only error kind this package
// produces.
type InvalidVersionError struct {
	// Version is the offending input, exactly as the caller supplied it.
	Version string
}

func (err *InvalidVersionError) Error() string {
	return fmt.Sprintf("version number %q does not match PEP 440 rules", err.Version)
}

// Options adjusts the behavior of NormalizeWithOptions.  Both knobs are
// owned by the caller's configuration layer; this package never reads
// ambient state such as environment variables.
type Options struct {
	// AllowInvalid substitutes best-effort passthrough for the hard
	// failure: an input that does not match the grammar is returned
	// lowercased but otherwise unchanged, with an advisory warning
	// instead of an error.
	AllowInvalid bool
}

// Normalize rewrites a version number in to PEP 440 canonical form, failing
// with a *InvalidVersionError if the input does not match the permissive
// grammar.
//
// Whenever the result differs textually from the input, an advisory warning
// reporting the rewrite is logged via dlog; callers that care about these
// diagnostics supply a logger with dlog.WithLogger.
func Normalize(ctx context.Context, version string) (string, error) {
	return NormalizeWithOptions(ctx, version, Options{})
}

// NormalizeWithOptions is Normalize with explicit Options.
func NormalizeWithOptions(ctx context.Context, version string, opts Options) (string, error) {
	lowered := strings.ToLower(version)
	ver, err := Parse(lowered)
	if err != nil {
		if opts.AllowInvalid {
			dlog.Warnf(ctx, "invalid version number %q allowed", version)
			return lowered, nil
		}
		return "", &InvalidVersionError{Version: version}
	}
	normalized := ver.String()
	if normalized != version {
		dlog.Warnf(ctx, "version number normalized: %q -> %q (see PEP 440)", version, normalized)
	}
	return normalized, nil
}
