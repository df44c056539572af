package dedupe

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

// realDateBonus dominates every achievable payload-size score so an entity
// with a genuinely extracted date always beats one carrying a fallback date.
const realDateBonus int64 = 1 << 40

// Candidate is one entity inside a duplicate group, reduced to the fields
// survivor selection needs. Groups are transient; nothing here is persisted.
type Candidate struct {
	EntityID         uuid.UUID
	FileID           uuid.UUID
	FallbackDateUsed bool
	PayloadSize      int
	CreatedAt        time.Time
}

// Score ranks a candidate: real extracted date first, then serialized
// payload size as a completeness proxy. Recency breaks remaining ties in
// PickSurvivor, not here, so the score stays stable across runs.
func Score(c Candidate) int64 {
	s := int64(c.PayloadSize)
	if !c.FallbackDateUsed {
		s += realDateBonus
	}
	return s
}

// PickSurvivor returns the single highest-scoring candidate and the rest.
// Ties on score fall to the most recent entity, then to the entity id so
// the outcome is deterministic for identical inputs.
func PickSurvivor(group []Candidate) (Candidate, []Candidate) {
	sorted := make([]Candidate, len(group))
	copy(sorted, group)
	sort.Slice(sorted, func(i, j int) bool {
		si, sj := Score(sorted[i]), Score(sorted[j])
		if si != sj {
			return si > sj
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].EntityID.String() < sorted[j].EntityID.String()
	})
	return sorted[0], sorted[1:]
}

// EntityPurger is the slice of the entity repository cleanup needs.
type EntityPurger interface {
	// DuplicateGroups returns entities grouped by shared file id, only for
	// files referenced by more than one entity.
	DuplicateGroups(ctx context.Context) ([][]Candidate, error)
	// DeleteWithItems removes the given entities and their child items in
	// one transaction.
	DeleteWithItems(ctx context.Context, ids []uuid.UUID) error
}

// Cleaner sweeps historical duplicate entities, keeping one survivor per
// file. Duplicates predate the pre-insert guard or slipped through a race;
// steady state finds nothing to do.
type Cleaner struct {
	entities EntityPurger
	logger   *slog.Logger
}

func NewCleaner(entities EntityPurger, logger *slog.Logger) *Cleaner {
	return &Cleaner{entities: entities, logger: logger}
}

// Run resolves every duplicate group. It returns how many survivors were
// kept and how many losers were deleted.
func (c *Cleaner) Run(ctx context.Context) (kept, deleted int, err error) {
	groups, err := c.entities.DuplicateGroups(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("load duplicate groups: %w", err)
	}

	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		survivor, losers := PickSurvivor(group)

		ids := make([]uuid.UUID, len(losers))
		for i, l := range losers {
			ids[i] = l.EntityID
		}
		if err := c.entities.DeleteWithItems(ctx, ids); err != nil {
			return kept, deleted, fmt.Errorf("delete duplicates of file %s: %w", survivor.FileID, err)
		}

		c.logger.Info("resolved duplicate group",
			"file_id", survivor.FileID,
			"survivor", survivor.EntityID,
			"deleted", len(losers),
		)
		kept++
		deleted += len(losers)
	}
	return kept, deleted, nil
}
