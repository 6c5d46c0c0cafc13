package dashboard

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/carbonledger/internal/emissions"
	apperrors "github.com/louisbranch/carbonledger/internal/platform/errors"
	"github.com/louisbranch/carbonledger/internal/storage"
)

var (
	errInvalidAmount = apperrors.New(apperrors.CodeEmissionInvalidAmount, "amount must be a number")
	errTypeRequired  = apperrors.New(apperrors.CodeEmissionTypeRequired, "emission type is required")
)

type service struct {
	emissions storage.EmissionStore
	now       func() time.Time
}

// totalsFor sums the viewer's log into per-gas kilogram totals.
func (s service) totalsFor(ctx context.Context, userID int64) (emissions.Totals, error) {
	records, err := s.emissions.ListEmissions(ctx)
	if err != nil {
		return nil, err
	}
	return emissions.TotalsForUser(records, userID), nil
}

// logEmission validates form input and appends a record. Amounts and units
// are stored as submitted; unit conversion happens when totals are read.
func (s service) logEmission(ctx context.Context, userID int64, gasType, rawAmount, unit string) error {
	gasType = strings.TrimSpace(gasType)
	if gasType == "" {
		return errTypeRequired
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(rawAmount), 64)
	if err != nil {
		return errInvalidAmount
	}
	_, err = s.emissions.AddEmission(ctx, emissions.Record{
		UserID:    userID,
		Type:      gasType,
		Amount:    amount,
		Unit:      unit,
		CreatedAt: s.now().UTC(),
	})
	return err
}
