// Package usecase orchestrates the corpus build: fetch each work, segment
// and chunk it into units, score them, then tier and write the whole batch.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"ProseCorpusBuilder/internal/config"
	"ProseCorpusBuilder/internal/domain"
	"ProseCorpusBuilder/internal/ports"
	"ProseCorpusBuilder/internal/scoring"
	"ProseCorpusBuilder/internal/source"
	"ProseCorpusBuilder/internal/textproc"
	"ProseCorpusBuilder/internal/tiering"
)

// PipelineDeps wires the source registry and output adapter into the
// orchestration pipeline.
type PipelineDeps struct {
	Registry *source.Registry
	Writer   ports.UnitWriter
	Units    config.UnitConfig
	Logger   *slog.Logger
}

// Pipeline implements the batch corpus-build workflow. Works are processed
// strictly one at a time; the only shared state is the accumulated unit
// list handed to the tier assigner.
type Pipeline struct {
	registry *source.Registry
	writer   ports.UnitWriter
	units    config.UnitConfig
	logger   *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		registry: deps.Registry,
		writer:   deps.Writer,
		units:    deps.Units,
		logger:   deps.Logger,
	}
}

// Run builds, tiers, and writes the corpus for the given works. Zero units
// across the whole corpus is fatal: there is nothing to output.
func (p *Pipeline) Run(ctx context.Context, works []domain.WorkSpec) (domain.TieredCorpus, []ports.TierFile, error) {
	units, err := p.BuildUnits(ctx, works)
	if err != nil {
		return domain.TieredCorpus{}, nil, err
	}
	if len(units) == 0 {
		return domain.TieredCorpus{}, nil, fmt.Errorf("no units produced from %d works", len(works))
	}

	if p.units.ShuffleSeed != nil {
		rng := rand.New(rand.NewSource(*p.units.ShuffleSeed))
		rng.Shuffle(len(units), func(i, j int) {
			units[i], units[j] = units[j], units[i]
		})
	}

	tiered := tiering.AssignTiers(units)

	files := make([]ports.TierFile, 0, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		file, err := p.writer.WriteTier(tier, tiered.Band(tier))
		if err != nil {
			return domain.TieredCorpus{}, nil, fmt.Errorf("write %s tier: %w", tier, err)
		}
		p.info("tier written", "tier", tier, "rows", file.Rows, "bytes", file.Bytes, "path", file.Path)
		files = append(files, file)
	}

	return tiered, files, nil
}

// BuildUnits fetches and segments every work into scored units. A work
// whose text cannot be fetched, or that yields no paragraphs, is skipped
// with a diagnostic; the run continues with the remaining works.
func (p *Pipeline) BuildUnits(ctx context.Context, works []domain.WorkSpec) ([]domain.Unit, error) {
	var units []domain.Unit

	for _, work := range works {
		p.info("loading work", "author", work.Author, "title", work.Title, "work_id", work.WorkID)

		src, err := p.registry.Resolve(work.Source.Type)
		if err != nil {
			return nil, fmt.Errorf("work %s: %w", work.WorkID, err)
		}

		raw, err := src.Load(ctx, work)
		if err != nil {
			p.error("work fetch failed, skipping", "work_id", work.WorkID, "error", err)
			continue
		}

		built, err := p.buildWorkUnits(work, raw)
		if err != nil {
			return nil, err
		}
		p.info("units built", "work_id", work.WorkID, "count", len(built))
		units = append(units, built...)
	}

	return units, nil
}

func (p *Pipeline) buildWorkUnits(work domain.WorkSpec, raw string) ([]domain.Unit, error) {
	paragraphs := textproc.Paragraphs(textproc.Normalize(raw))
	if len(paragraphs) == 0 {
		p.warn("no paragraphs after normalization, skipping", "work_id", work.WorkID)
		return nil, nil
	}

	sections, err := textproc.SplitSections(paragraphs, work.SplitMode, p.units.MinSectionWords)
	if err != nil {
		return nil, fmt.Errorf("work %s: %w", work.WorkID, err)
	}

	limits := textproc.ChunkLimits{
		TargetWords: p.units.TargetWords,
		MaxWords:    p.units.MaxWords,
		MinWords:    p.units.MinWords,
	}

	var units []domain.Unit
	unitIndex := 1
	for _, section := range sections {
		for _, chunk := range textproc.ChunkSection(section.Name, section.Paragraphs, limits) {
			wc := textproc.CountWords(chunk.Text)
			if wc < p.units.MinUnitWords {
				continue
			}

			units = append(units, domain.Unit{
				Title:         fmt.Sprintf("%s - %s - %s (%d)", work.Author, work.Title, chunk.Section, unitIndex),
				Text:          chunk.Text,
				Domain:        work.Domain,
				FKGrade:       round(scoring.FleschKincaidGrade(chunk.Text), 1),
				Words:         wc,
				Sentences:     textproc.CountSentences(chunk.Text),
				Author:        work.Author,
				WorkTitle:     work.Title,
				WorkID:        work.WorkID,
				UnitType:      work.UnitType,
				Tags:          work.Tags,
				Section:       chunk.Section,
				PctPoly:       round(scoring.PctPolysyllabic(chunk.Text), 4),
				FactualBurden: round(scoring.FactualBurden(chunk.Text), 4),
			})
			unitIndex++
		}
	}
	return units, nil
}

func round(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p *Pipeline) error(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Error(msg, args...)
	}
}
