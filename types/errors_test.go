package types_test

import (
	"testing"

	"github.com/cottand/tyra/registry"
	"github.com/cottand/tyra/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("boom"), "boom"},
		{"coded", &types.InvalidRankError{Rank: -2}, "(E005) array rank must not be negative, got -2"},
		{
			"wrapped",
			errors.Wrap(&types.UnrelatedTypesError{Type: registry.String, Reference: registry.List}, "left hand side"),
			"(E001) left hand side: java.lang.String is not assignable to java.util.List",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tc.expected, types.FormatWithCode(tc.err))
			})
		})
	}
}
