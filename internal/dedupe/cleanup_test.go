package dedupe

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
)

type purgerFake struct {
	groups  [][]Candidate
	deleted [][]uuid.UUID
}

func (f *purgerFake) DuplicateGroups(context.Context) ([][]Candidate, error) {
	return f.groups, nil
}

func (f *purgerFake) DeleteWithItems(_ context.Context, ids []uuid.UUID) error {
	f.deleted = append(f.deleted, ids)
	return nil
}

func candidate(fallback bool, size int, age time.Duration) Candidate {
	return Candidate{
		EntityID:         uuid.New(),
		FileID:           uuid.New(),
		FallbackDateUsed: fallback,
		PayloadSize:      size,
		CreatedAt:        time.Now().Add(-age),
	}
}

func TestPickSurvivorPrefersRealDate(t *testing.T) {
	// the fallback-date entity has a far bigger payload and is newer, but a
	// genuinely extracted date still wins
	real := candidate(false, 120, 48*time.Hour)
	fallback := candidate(true, 90000, time.Hour)

	survivor, losers := PickSurvivor([]Candidate{fallback, real})
	if survivor.EntityID != real.EntityID {
		t.Fatal("real-date candidate must survive")
	}
	if len(losers) != 1 || losers[0].EntityID != fallback.EntityID {
		t.Fatalf("losers = %v", losers)
	}
}

func TestPickSurvivorPayloadSizeThenRecency(t *testing.T) {
	small := candidate(false, 100, time.Hour)
	big := candidate(false, 5000, 72*time.Hour)

	survivor, _ := PickSurvivor([]Candidate{small, big})
	if survivor.EntityID != big.EntityID {
		t.Fatal("larger payload must win when both dates are real")
	}

	old := candidate(false, 500, 72*time.Hour)
	fresh := candidate(false, 500, time.Hour)
	survivor, _ = PickSurvivor([]Candidate{old, fresh})
	if survivor.EntityID != fresh.EntityID {
		t.Fatal("recency must break payload-size ties")
	}
}

func TestPickSurvivorIsDeterministic(t *testing.T) {
	ts := time.Now()
	a := Candidate{EntityID: uuid.New(), PayloadSize: 10, CreatedAt: ts}
	b := Candidate{EntityID: uuid.New(), PayloadSize: 10, CreatedAt: ts}

	first, _ := PickSurvivor([]Candidate{a, b})
	second, _ := PickSurvivor([]Candidate{b, a})
	if first.EntityID != second.EntityID {
		t.Fatal("survivor must not depend on input order")
	}
}

func TestCleanerDeletesOnlyLosers(t *testing.T) {
	fileID := uuid.New()
	survivor := Candidate{EntityID: uuid.New(), FileID: fileID, PayloadSize: 900, CreatedAt: time.Now()}
	loserA := Candidate{EntityID: uuid.New(), FileID: fileID, PayloadSize: 100, CreatedAt: time.Now()}
	loserB := Candidate{EntityID: uuid.New(), FileID: fileID, FallbackDateUsed: true, PayloadSize: 5000, CreatedAt: time.Now()}

	fake := &purgerFake{groups: [][]Candidate{{loserA, survivor, loserB}}}
	cleaner := NewCleaner(fake, slog.New(slog.NewTextHandler(io.Discard, nil)))

	kept, deleted, err := cleaner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if kept != 1 || deleted != 2 {
		t.Fatalf("kept=%d deleted=%d", kept, deleted)
	}
	if len(fake.deleted) != 1 {
		t.Fatalf("deletes = %d batches", len(fake.deleted))
	}
	for _, id := range fake.deleted[0] {
		if id == survivor.EntityID {
			t.Fatal("survivor must never be deleted")
		}
	}
}

func TestCleanerSkipsSingletonGroups(t *testing.T) {
	fake := &purgerFake{groups: [][]Candidate{{candidate(false, 10, 0)}}}
	cleaner := NewCleaner(fake, slog.New(slog.NewTextHandler(io.Discard, nil)))

	kept, deleted, err := cleaner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if kept != 0 || deleted != 0 || len(fake.deleted) != 0 {
		t.Fatal("singleton groups must be untouched")
	}
}

func TestHashBytesMatchesHashReader(t *testing.T) {
	content := []byte("same bytes, same hash")
	sumA, hexA := HashBytes(content)

	sumB, hexB, err := HashReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("HashReader: %v", err)
	}
	if hexA != hexB || len(sumA) != 32 || string(sumA) != string(sumB) {
		t.Fatalf("hash mismatch: %s vs %s", hexA, hexB)
	}
}
