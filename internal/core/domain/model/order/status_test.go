package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTo(t *testing.T) {
	tests := []struct {
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{order.Pending, order.Processing, true},
		{order.Pending, order.Cancelled, true},
		{order.Pending, order.Shipped, false},
		{order.Processing, order.Shipped, true},
		{order.Processing, order.Cancelled, true},
		{order.Shipped, order.Complete, true},
		{order.Shipped, order.Cancelled, false},
		{order.Complete, order.Pending, false},
		{order.Cancelled, order.Pending, false},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
			got, err := tc.from.TransitionTo(tc.to)

			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, got)
				return
			}
			require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
	require.NoError(t, order.Cancelled.Validate())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("Shipped")
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, s)

	_, err = order.ParseStatus("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, []order.Status{order.Processing, order.Cancelled}, order.Pending.Next())
}
