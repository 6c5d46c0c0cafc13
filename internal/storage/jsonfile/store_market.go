package jsonfile

import (
	"context"
	"encoding/json"
	"os"

	"github.com/louisbranch/carbonledger/internal/market"
)

// LoadMarketData reads the reference dataset. An absent or malformed file
// yields nil with no error, which downstream builders render as empty boards.
func (s *Store) LoadMarketData(_ context.Context) (*market.Data, error) {
	raw, err := os.ReadFile(s.marketPath)
	if err != nil {
		return nil, nil
	}
	var data market.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, nil
	}
	return &data, nil
}
