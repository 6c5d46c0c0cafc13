package jsonfile

import (
	"context"
	"encoding/json"
	"os"

	"github.com/louisbranch/carbonledger/internal/emissions"
)

// emissionsFile mirrors the on-disk shape of emissions.json.
type emissionsFile struct {
	Emissions []emissions.Record `json:"emissions"`
}

// loadEmissions reads the full log, applying the defaulting policy.
func (s *Store) loadEmissions() []emissions.Record {
	raw, err := os.ReadFile(s.emissionsPath)
	if err != nil {
		return nil
	}
	var file emissionsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil
	}
	return file.Emissions
}

func (s *Store) saveEmissions(records []emissions.Record) error {
	if records == nil {
		records = []emissions.Record{}
	}
	return writeFile(s.emissionsPath, emissionsFile{Emissions: records})
}

// AddEmission appends a record with the next ID.
func (s *Store) AddEmission(_ context.Context, record emissions.Record) (emissions.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.loadEmissions()
	var maxID int64
	for _, existing := range records {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	record.ID = maxID + 1
	records = append(records, record)
	if err := s.saveEmissions(records); err != nil {
		return emissions.Record{}, err
	}
	return record, nil
}

// ListEmissions returns the full emissions log.
func (s *Store) ListEmissions(_ context.Context) ([]emissions.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadEmissions(), nil
}
