// Package manifest loads and validates the JSON work manifest. Any
// malformed entry fails the whole load: the run never proceeds on a partial
// manifest.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"ProseCorpusBuilder/internal/domain"
)

const (
	defaultDomain    = "Prose"
	defaultUnitType  = "prose"
	defaultSplitMode = domain.SplitHeadings
)

type manifestFile struct {
	Works *[]workEntry `json:"works"`
}

// workID accepts both JSON strings and bare numbers; manifests in the
// wild write numeric ids for Gutenberg-derived entries.
type workID string

func (w *workID) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*w = workID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("id must be a string or number")
	}
	*w = workID(n.String())
	return nil
}

type workEntry struct {
	ID        workID      `json:"id"`
	Author    string      `json:"author"`
	Title     string      `json:"title"`
	Source    sourceEntry `json:"source"`
	Domain    string      `json:"domain"`
	UnitType  string      `json:"unit_type"`
	Tags      []string    `json:"tags"`
	SplitMode string      `json:"split_mode"`
}

type sourceEntry struct {
	Type string `json:"type"`
	ID   int    `json:"id"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Load reads the manifest file and returns its ordered validated works.
func Load(path string) ([]domain.WorkSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw manifest JSON.
func Parse(raw []byte) ([]domain.WorkSpec, error) {
	var file manifestFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if file.Works == nil {
		return nil, fmt.Errorf("manifest must be an object with a 'works' array")
	}

	works := make([]domain.WorkSpec, 0, len(*file.Works))
	for i, entry := range *file.Works {
		work, err := entry.toWorkSpec()
		if err != nil {
			return nil, fmt.Errorf("manifest work %d: %w", i, err)
		}
		works = append(works, work)
	}
	return works, nil
}

func (e workEntry) toWorkSpec() (domain.WorkSpec, error) {
	if e.ID == "" {
		return domain.WorkSpec{}, fmt.Errorf("missing id")
	}
	if e.Author == "" {
		return domain.WorkSpec{}, fmt.Errorf("missing author")
	}
	if e.Title == "" {
		return domain.WorkSpec{}, fmt.Errorf("missing title")
	}

	source, err := e.Source.toSourceSpec()
	if err != nil {
		return domain.WorkSpec{}, err
	}

	splitMode := domain.SplitMode(e.SplitMode)
	if e.SplitMode == "" {
		splitMode = defaultSplitMode
	}
	if splitMode != domain.SplitHeadings && splitMode != domain.SplitNone {
		return domain.WorkSpec{}, fmt.Errorf("unsupported split_mode: %s", e.SplitMode)
	}

	workDomain := e.Domain
	if workDomain == "" {
		workDomain = defaultDomain
	}
	unitType := e.UnitType
	if unitType == "" {
		unitType = defaultUnitType
	}
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.WorkSpec{
		WorkID:    string(e.ID),
		Author:    e.Author,
		Title:     e.Title,
		Source:    source,
		Domain:    workDomain,
		UnitType:  unitType,
		Tags:      tags,
		SplitMode: splitMode,
	}, nil
}

func (e sourceEntry) toSourceSpec() (domain.SourceSpec, error) {
	switch domain.SourceType(e.Type) {
	case domain.SourceGutenberg:
		if e.ID <= 0 {
			return domain.SourceSpec{}, fmt.Errorf("gutenberg source requires a positive id")
		}
		return domain.SourceSpec{Type: domain.SourceGutenberg, GutenbergID: e.ID}, nil
	case domain.SourceFile:
		if e.Path == "" {
			return domain.SourceSpec{}, fmt.Errorf("file source requires a path")
		}
		return domain.SourceSpec{Type: domain.SourceFile, FilePath: e.Path}, nil
	case domain.SourceURL:
		if e.URL == "" {
			return domain.SourceSpec{}, fmt.Errorf("url source requires a url")
		}
		return domain.SourceSpec{Type: domain.SourceURL, URL: e.URL}, nil
	default:
		return domain.SourceSpec{}, fmt.Errorf("unsupported source.type: %q", e.Type)
	}
}
