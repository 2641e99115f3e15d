package kernel_test

import (
	"encoding/json"
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()

	require.NoError(t, a.Validate())
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsZero())
}

func TestUUIDFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "canonical form", input: "0b6d2c3e-4a9f-4a53-9d0e-2b1c5f7a8e91"},
		{name: "upper case", input: "0B6D2C3E-4A9F-4A53-9D0E-2B1C5F7A8E91"},
		{name: "garbage", input: "not-a-uuid", wantErr: errs.ErrValueIsInvalid},
		{name: "empty", input: "", wantErr: errs.ErrValueIsInvalid},
		{name: "nil uuid", input: uuid.Nil.String(), wantErr: errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "0b6d2c3e-4a9f-4a53-9d0e-2b1c5f7a8e91", id.String())
		})
	}
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("all zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, zero.Validate())
	assert.NoError(t, kernel.NewUUID().Validate())
}

func TestUUID_MarshalJSON(t *testing.T) {
	id, err := kernel.UUIDFromString("6f1c1b2a-9d1e-4a7a-8b57-2a3c4d5e6f70")
	require.NoError(t, err)

	raw, err := json.Marshal(struct {
		ID  kernel.UUID  `json:"id"`
		Ref *kernel.UUID `json:"ref,omitempty"`
	}{ID: id})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"6f1c1b2a-9d1e-4a7a-8b57-2a3c4d5e6f70"}`, string(raw))
}
