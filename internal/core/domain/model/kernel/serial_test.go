package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

func TestNewSerial(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{name: "valid serial", value: "78532608-69"},
		{name: "valid serial all zeros", value: "00000000-00"},
		{name: "empty string", value: "", wantErr: errs.ErrValueIsRequired},
		{name: "missing dash", value: "7853260869", wantErr: errs.ErrValueIsInvalid},
		{name: "too few leading digits", value: "1234567-89", wantErr: errs.ErrValueIsInvalid},
		{name: "too many trailing digits", value: "12345678-901", wantErr: errs.ErrValueIsInvalid},
		{name: "letters", value: "abcdefgh-ij", wantErr: errs.ErrValueIsInvalid},
		{name: "trailing garbage", value: "12345678-90x", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serial, err := kernel.NewSerial(tt.value)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NoError(t, serial.Validate())
			assert.Equal(t, tt.value, serial.String())
		})
	}
}

func TestSerialValidate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var serial kernel.Serial
		require.ErrorIs(t, serial.Validate(), errs.ErrValueIsRequired)
	})
}

func TestSerialIsEqual(t *testing.T) {
	a, err := kernel.NewSerial("12345678-01")
	require.NoError(t, err)
	b, err := kernel.NewSerial("12345678-01")
	require.NoError(t, err)
	c, err := kernel.NewSerial("12345678-02")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
