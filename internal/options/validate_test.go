package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasfidelity/oaserrors"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []InputSource
		wantErr string
	}{
		{
			name:    "exactly one",
			sources: []InputSource{{"WithText", false}, {"WithBytes", true}},
		},
		{
			name:    "none",
			sources: []InputSource{{"WithText", false}, {"WithBytes", false}, {"WithReader", false}},
			wantErr: "configuration error for input: must specify an input source (use WithText, WithBytes, or WithReader)",
		},
		{
			name:    "two",
			sources: []InputSource{{"WithText", true}, {"WithBytes", true}, {"WithReader", false}},
			wantErr: "configuration error for input: must specify exactly one input source, got WithText, WithBytes",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource(tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig))
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	assert.NoError(t, ValidateNonNegative("WithMaxDepth", 0))
	assert.NoError(t, ValidateNonNegative("WithMaxInputSize", int64(1<<20)))

	err := ValidateNonNegative("WithMaxDepth", -1)
	assert.EqualError(t, err, "configuration error for WithMaxDepth (value: -1): must not be negative")
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))

	err = ValidateNonNegative("WithMaxInputSize", int64(-5))
	assert.EqualError(t, err, "configuration error for WithMaxInputSize (value: -5): must not be negative")
}
