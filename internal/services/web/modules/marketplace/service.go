package marketplace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/carbonledger/internal/leaderboard"
	"github.com/louisbranch/carbonledger/internal/storage"
)

var tracer trace.Tracer = otel.Tracer("carbonledger/web/marketplace")

type service struct {
	users     storage.UserStore
	emissions storage.EmissionStore
	market    storage.MarketStore
}

// loggedBoards builds leaderboards from the live emissions log.
func (s service) loggedBoards(ctx context.Context) (hospitals, manufacturers []leaderboard.Entry, err error) {
	ctx, span := tracer.Start(ctx, "marketplace.logged_boards")
	defer span.End()

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.emissions.ListEmissions(ctx)
	if err != nil {
		return nil, nil, err
	}
	hospitals, manufacturers = leaderboard.FromEmissions(users, records)
	span.SetAttributes(
		attribute.Int("hospital_entries", len(hospitals)),
		attribute.Int("manufacturer_entries", len(manufacturers)),
	)
	return hospitals, manufacturers, nil
}

// referenceBoards builds leaderboards from the bundled reference dataset.
// A missing dataset yields empty boards.
func (s service) referenceBoards(ctx context.Context) (hospitals, manufacturers []leaderboard.Entry, err error) {
	ctx, span := tracer.Start(ctx, "marketplace.reference_boards")
	defer span.End()

	data, err := s.market.LoadMarketData(ctx)
	if err != nil {
		return nil, nil, err
	}
	hospitals, manufacturers = leaderboard.FromMarketData(data)
	span.SetAttributes(
		attribute.Int("hospital_entries", len(hospitals)),
		attribute.Int("manufacturer_entries", len(manufacturers)),
	)
	return hospitals, manufacturers, nil
}
