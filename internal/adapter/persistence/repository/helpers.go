package repository

import (
	"encoding/json"
	"fmt"
	"sort"

	"insurance_designer/internal/domain/entities"
)

func encodeOutcomes(outcomes []entities.ItemOutcome) (string, error) {
	if len(outcomes) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(outcomes)
	if err != nil {
		return "", fmt.Errorf("encode item outcomes: %w", err)
	}
	return string(raw), nil
}

func decodeOutcomes(raw string) ([]entities.ItemOutcome, error) {
	if raw == "" {
		return []entities.ItemOutcome{}, nil
	}
	var outcomes []entities.ItemOutcome
	if err := json.Unmarshal([]byte(raw), &outcomes); err != nil {
		return nil, fmt.Errorf("decode item outcomes: %w", err)
	}
	return outcomes, nil
}

// sortRunsByCreatedAt orders runs newest first; GSI queries return them unordered.
func sortRunsByCreatedAt(runs []entities.DesignRun) {
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
}
