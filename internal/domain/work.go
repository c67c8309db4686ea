package domain

// SourceType enumerates supported text source kinds.
type SourceType string

const (
	SourceGutenberg SourceType = "gutenberg"
	SourceFile      SourceType = "file"
	SourceURL       SourceType = "url"
)

// SplitMode selects how a work's paragraphs are partitioned into sections.
type SplitMode string

const (
	SplitHeadings SplitMode = "headings"
	SplitNone     SplitMode = "none"
)

// SourceSpec describes where the raw text of a work comes from.
// Exactly one of GutenbergID, FilePath, or URL is meaningful per Type.
type SourceSpec struct {
	Type        SourceType
	GutenbergID int
	FilePath    string
	URL         string
}

// WorkSpec is a static descriptor of one manifest work. It is read-only
// input to the pipeline; the core never mutates it.
type WorkSpec struct {
	WorkID    string
	Author    string
	Title     string
	Source    SourceSpec
	Domain    string
	UnitType  string
	Tags      []string
	SplitMode SplitMode
}

// Section pairs a detected or synthetic section name with its paragraphs.
type Section struct {
	Name       string
	Paragraphs []string
}
