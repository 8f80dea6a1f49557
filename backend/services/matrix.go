// ABOUTME: Recommendation matrix covering every facility, threat, and coverage triple
// ABOUTME: Fans engine calls out over a bounded errgroup

package services

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Atlas00000/terra-client/backend/models"
)

// AllConfigurations enumerates every valid input triple in display order
func AllConfigurations() []models.ConfigurationInput {
	configs := make([]models.ConfigurationInput, 0,
		len(models.AllFacilityTypes)*len(models.AllThreatLevels)*len(models.AllCoverageAreas))
	for _, f := range models.AllFacilityTypes {
		for _, t := range models.AllThreatLevels {
			for _, c := range models.AllCoverageAreas {
				configs = append(configs, models.ConfigurationInput{FacilityType: f, ThreatLevel: t, CoverageArea: c})
			}
		}
	}
	return configs
}

// BuildMatrix generates a summary entry for every configuration.
// Entries keep the order of AllConfigurations regardless of completion order.
// Per-configuration warnings are counted in the entries and logged once as a summary.
func (e *Engine) BuildMatrix(ctx context.Context, concurrency int) ([]models.MatrixEntry, error) {
	configs := AllConfigurations()
	entries := make([]models.MatrixEntry, len(configs))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, cfg := range configs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec := e.generate(cfg.FacilityType, cfg.ThreatLevel, cfg.CoverageArea)
			entries[i] = matrixEntry(rec)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	invalid, warnings := 0, 0
	for _, entry := range entries {
		if !entry.IsValid {
			invalid++
		}
		warnings += entry.WarningCount
	}
	slog.Info("Built recommendation matrix", "entries", len(entries), "invalid", invalid, "warnings", warnings)
	return entries, nil
}

func matrixEntry(rec models.ProductRecommendation) models.MatrixEntry {
	entry := models.MatrixEntry{
		FacilityType: rec.FacilityType,
		ThreatLevel:  rec.ThreatLevel,
		CoverageArea: rec.CoverageArea,
		TotalUnits:   rec.TotalUnits(false),
		ProductTypes: len(rec.Products) - 1,
	}
	if rec.Score != nil {
		entry.OverallScore = rec.Score.Overall
		entry.ScoreConfidence = rec.Score.Confidence
	}
	if rec.Explanation != nil {
		entry.ExplainConfidence = rec.Explanation.Confidence
	}
	if rec.Validation != nil {
		entry.IsValid = rec.Validation.IsValid
		entry.WarningCount = len(rec.Validation.Warnings)
	}
	return entry
}
