// Package output serializes tiered drill units into line-delimited JSON
// corpus files.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ProseCorpusBuilder/internal/domain"
	"ProseCorpusBuilder/internal/ports"
)

// record fixes the output field set and order of the reader app contract.
// The scoring annotations pct_poly/factual_burden and the transient
// difficulty never serialize.
type record struct {
	Title     string   `json:"title"`
	Text      string   `json:"text"`
	Domain    string   `json:"domain"`
	FKGrade   float64  `json:"fk_grade"`
	Words     int      `json:"words"`
	Sentences int      `json:"sentences"`
	Author    string   `json:"author"`
	WorkTitle string   `json:"work_title"`
	WorkID    string   `json:"work_id"`
	UnitType  string   `json:"unit_type"`
	Tags      []string `json:"tags"`
	Section   string   `json:"section"`
}

// JSONLWriter writes one `<prefix>-<tier>.jsonl` file per tier under dir.
type JSONLWriter struct {
	dir    string
	prefix string
}

var _ ports.UnitWriter = (*JSONLWriter)(nil)

// NewJSONLWriter wires the output directory and file prefix.
func NewJSONLWriter(dir, prefix string) *JSONLWriter {
	return &JSONLWriter{dir: dir, prefix: prefix}
}

// WriteTier serializes one tier, one JSON object per line, UTF-8 with HTML
// escaping disabled.
func (w *JSONLWriter) WriteTier(tier domain.Tier, units []domain.Unit) (ports.TierFile, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return ports.TierFile{}, fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("%s-%s.jsonl", w.prefix, tier))
	f, err := os.Create(path)
	if err != nil {
		return ports.TierFile{}, fmt.Errorf("create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	for _, unit := range units {
		tags := unit.Tags
		if tags == nil {
			tags = []string{}
		}
		if err := enc.Encode(record{
			Title:     unit.Title,
			Text:      unit.Text,
			Domain:    unit.Domain,
			FKGrade:   unit.FKGrade,
			Words:     unit.Words,
			Sentences: unit.Sentences,
			Author:    unit.Author,
			WorkTitle: unit.WorkTitle,
			WorkID:    unit.WorkID,
			UnitType:  unit.UnitType,
			Tags:      tags,
			Section:   unit.Section,
		}); err != nil {
			f.Close()
			return ports.TierFile{}, fmt.Errorf("encode unit %q: %w", unit.Title, err)
		}
	}

	if err := f.Close(); err != nil {
		return ports.TierFile{}, fmt.Errorf("close %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return ports.TierFile{}, fmt.Errorf("stat %s: %w", path, err)
	}

	return ports.TierFile{Tier: tier, Path: path, Rows: len(units), Bytes: info.Size()}, nil
}
