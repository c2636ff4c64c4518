package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePrompt(t *testing.T) {
	assert.NoError(t, ValidatePrompt("Write a blog post."))

	for _, in := range []string{"", "   ", "\n\t"} {
		err := ValidatePrompt(in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyPrompt)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, ValidateQuery("cat"))
	assert.ErrorIs(t, ValidateQuery(" "), ErrEmptyQuery)
}

func TestParseSearchMode(t *testing.T) {
	tests := []struct {
		in   string
		want SearchMode
		err  bool
	}{
		{"", ModeRanked, false},
		{"ranked", ModeRanked, false},
		{"threshold", ModeThreshold, false},
		{"semantic", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSearchMode(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
