package shipping

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// WeightBand charges a flat amount for any basket up to UpperLimit kg.
type WeightBand struct {
	id         kernel.UUID
	upperLimit decimal.Decimal
	charge     decimal.Decimal
}

func NewWeightBand(id kernel.UUID, upperLimit decimal.Decimal, charge decimal.Decimal) (*WeightBand, error) {
	var limitErr error
	if !upperLimit.IsPositive() {
		limitErr = errs.NewValueIsOutOfRangeError("upper limit", upperLimit.String(), "0 (exclusive)", "∞")
	}
	if err := errors.Join(id.Validate(), limitErr, nonNegative("charge", charge)); err != nil {
		return nil, err
	}
	return &WeightBand{id: id, upperLimit: upperLimit, charge: charge}, nil
}

func (w *WeightBand) ID() kernel.UUID             { return w.id }
func (w *WeightBand) UpperLimit() decimal.Decimal { return w.upperLimit }
func (w *WeightBand) Charge() decimal.Decimal     { return w.charge }
