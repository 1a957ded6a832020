package pep440_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vernorm/vernorm/pkg/pep440"
)

func TestIsCanonical(t *testing.T) {
	t.Parallel()
	testcases := map[string]struct {
		Input     string
		Canonical bool
	}{
		"bare-release":      {"1.0", true},
		"single-zero":       {"0", true},
		"epoch":             {"1!1.0", true},
		"pre":               {"1.0a1", true},
		"pre-zero":          {"1.0rc0", true},
		"post-dev":          {"1.0.post1.dev2", true},
		"local":             {"1.0+abc.7", true},
		"local-alnum":       {"1.0+foo0100", true},
		"everything":        {"1!2.0a1.post3.dev4+local.7", true},
		"zero-epoch":        {"0!1.0", false},
		"leading-v":         {"v1.0", false},
		"upper-case":        {"1.0RC1", false},
		"leading-zeros":     {"1.01", false},
		"post-shorthand":    {"1.0-1", false},
		"alpha-spelling":    {"1.0alpha1", false},
		"pre-no-number":     {"1.0a", false},
		"local-zero-padded": {"1.0+007", false},
		"local-underscore":  {"1.0+abc_7", false},
		"whitespace":        {"1.0\n", false},
		"garbage":           {"not-a-version", false},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tcData.Canonical, pep440.IsCanonical(tcData.Input))
		})
	}
}
