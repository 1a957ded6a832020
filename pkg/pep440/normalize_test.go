package pep440_test

import (
	"errors"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vernorm/vernorm/pkg/pep440"
	"github.com/vernorm/vernorm/pkg/testutil"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Input      string
		Normalized string // empty for InvalidVersionError
	}
	testcases := map[string]TestCase{
		// the normalization rules, rule by rule
		"case-sensitivity":                    {"1.1RC1", "1.1rc1"},
		"integer-normalization-1":             {"00", "0"},
		"integer-normalization-2":             {"09000", "9000"},
		"integer-normalization-3":             {"1.0+foo0100", "1.0+foo0100"},
		"pre-release-separators-1":            {"1.1.a1", "1.1a1"},
		"pre-release-separators-2":            {"1.1-a1", "1.1a1"},
		"pre-release-separators-3":            {"1.0a.1", "1.0a1"},
		"pre-release-spelling-1":              {"1.1alpha1", "1.1a1"},
		"pre-release-spelling-2":              {"1.1beta2", "1.1b2"},
		"pre-release-spelling-3":              {"1.1c3", "1.1rc3"},
		"pre-release-spelling-4":              {"1.1pre3", "1.1rc3"},
		"pre-release-spelling-5":              {"1.1preview3", "1.1rc3"},
		"implicit-pre-release-number":         {"1.2a", "1.2a0"},
		"post-release-separators-1":           {"1.2-post2", "1.2.post2"},
		"post-release-separators-2":           {"1.2post2", "1.2.post2"},
		"post-release-separators-3":           {"1.2.post.2", "1.2.post2"},
		"post-release-spelling-1":             {"1.0-r4", "1.0.post4"},
		"post-release-spelling-2":             {"1.0rev1", "1.0.post1"},
		"implicit-post-release-number":        {"1.2.post", "1.2.post0"},
		"implicit-post-releases-1":            {"1.0-1", "1.0.post1"},
		"implicit-post-releases-2":            {"1.0-", ""},
		"implicit-post-releases-extra":        {"1.0_1", ""},
		"development-release-separators-1":    {"1.2-dev2", "1.2.dev2"},
		"development-release-separators-2":    {"1.2dev2", "1.2.dev2"},
		"implicit-development-release-number": {"1.2.dev", "1.2.dev0"},
		"local-version-segments":              {"1.0+ubuntu-1", "1.0+ubuntu.1"},
		"local-version-case-and-zeros":        {"1.0+ABC_123.4", "1.0+abc.123.4"},
		"preceding-v-character":               {"v1.0", "1.0"},
		"leading-and-trailing-whitespace":     {"  V1.0  ", "1.0"},
		// whole versions
		"bare-release":         {"1.0", "1.0"},
		"zero-padding-removal": {"1.01.0", "1.1.0"},
		"explicit-zero-epoch":  {"0!1.0", "0!1.0"},
		"every-segment":        {"1!2.0a1.post3.dev4+local.7", "1!2.0a1.post3.dev4+local.7"},
		"not-a-version":        {"not-a-version", ""},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			ctx := dlog.NewTestContext(t, false)
			t.Logf("input: %q", tcData.Input)
			normalized, err := pep440.Normalize(ctx, tcData.Input)
			if tcData.Normalized == "" {
				var invalidErr *pep440.InvalidVersionError
				require.True(t, errors.As(err, &invalidErr))
				assert.Equal(t, tcData.Input, invalidErr.Version)
				assert.Equal(t, "", normalized)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tcData.Normalized, normalized)

				// normalization must be idempotent
				again, err := pep440.Normalize(ctx, normalized)
				require.NoError(t, err)
				assert.Equal(t, normalized, again)
			}
		})
	}
}

func TestNormalizeAllowInvalid(t *testing.T) {
	t.Parallel()
	opts := pep440.Options{AllowInvalid: true}
	testcases := map[string]struct {
		Input  string
		Output string
	}{
		"passthrough":           {"not-a-version", "not-a-version"},
		"passthrough-lowercase": {"NOT-a-Version", "not-a-version"},
		"valid-still-rewritten": {"1.0Alpha1", "1.0a1"},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			ctx := dlog.NewTestContext(t, false)
			output, err := pep440.NormalizeWithOptions(ctx, tcData.Input, opts)
			require.NoError(t, err)
			assert.Equal(t, tcData.Output, output)
		})
	}
}

// Every string that Normalize emits for a well-formed version must be a
// fixed point of Normalize.
func TestNormalizeFixedPoint(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, false)
	testutil.QuickCheck(t,
		// test function
		func(ver pep440.Version) bool {
			str := ver.String()
			normalized, err := pep440.Normalize(ctx, str)
			if err != nil {
				t.Logf("failing: %q: %v", str, err)
				return false
			}
			if normalized != str {
				t.Logf("failing: %q normalized to %q", str, normalized)
				return false
			}
			return true
		},
		// dynamic inputs
		testutil.QuickConfig{},
		// static inputs
		[]interface{}{mustParseVersion(t, "1!2.0a1.post3.dev4+local.7")},
		[]interface{}{mustParseVersion(t, "0!0")},
		[]interface{}{mustParseVersion(t, "1.0+foo0100")},
	)
}
