package ports

import (
	"context"

	"ProseCorpusBuilder/internal/domain"
)

// TextSource loads the raw text of a single manifest work. Implementations
// are registered per source type and called sequentially, one work at a time.
type TextSource interface {
	Name() string
	Load(ctx context.Context, work domain.WorkSpec) (string, error)
}

// TextCache persists fetched source text across runs so repeated builds do
// not hammer upstream mirrors. Cache failures are never fatal to a run.
type TextCache interface {
	Get(ctx context.Context, key string) (body string, ok bool, err error)
	Put(ctx context.Context, key, body string) error
	Close() error
}

// TierFile reports where one tier landed on disk.
type TierFile struct {
	Tier  domain.Tier
	Path  string
	Rows  int
	Bytes int64
}

// UnitWriter serializes one tier of drill units to its output file.
type UnitWriter interface {
	WriteTier(tier domain.Tier, units []domain.Unit) (TierFile, error)
}
