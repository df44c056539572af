package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/internal/ai"
	"github.com/papervault/papervault/internal/classify"
	"github.com/papervault/papervault/internal/extract"
)

// ErrMetadataExpired means the chain key is gone: consumed by a finished
// chain or aged out by TTL. Callers must treat this as a safe no-op
// condition, not a failure; concurrent retries race on it by design.
var ErrMetadataExpired = errors.New("chain metadata expired or consumed")

// Metadata is the durable inter-stage state of one chain, keyed by chain
// id in the TTL store. Everything a stage needs travels here; workers hold
// no in-process state between stages.
type Metadata struct {
	ChainID  string                 `json:"chain_id"`
	TaskID   string                 `json:"task_id"`
	FileID   uuid.UUID              `json:"file_id"`
	OwnerID  uuid.UUID              `json:"owner_id"`
	Category constants.FileCategory `json:"category"`

	StoragePath string `json:"storage_path"`
	FileExt     string `json:"file_ext"`
	LocalPath   string `json:"local_path,omitempty"`

	ProviderFile   *ai.FileRef      `json:"provider_file,omitempty"`
	Classification *classify.Result `json:"classification,omitempty"`
	Extraction     *extract.Result  `json:"extraction,omitempty"`

	TagIDs []string `json:"tag_ids,omitempty"`
	Note   string   `json:"note,omitempty"`

	// EntityID is set by the finalize stage once the entity is persisted.
	EntityID *uuid.UUID `json:"entity_id,omitempty"`

	Progress  int       `json:"progress"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdvanceProgress moves progress upward only; regressions from concurrent
// or replayed stages are ignored.
func (m *Metadata) AdvanceProgress(p int) {
	if p > 100 {
		p = 100
	}
	if p > m.Progress {
		m.Progress = p
	}
}

// MetadataStore is the durable keyed store with TTL semantics used for
// inter-stage handoff.
type MetadataStore interface {
	Get(ctx context.Context, chainID string) (*Metadata, error)
	Put(ctx context.Context, meta *Metadata) error
	Forget(ctx context.Context, chainID string) error
}

// RedisMetadataStore keeps chain metadata under `chain:<id>` with a
// bounded TTL as the safety net for crashed workers.
type RedisMetadataStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisMetadataStore(client *redis.Client, ttl time.Duration) *RedisMetadataStore {
	return &RedisMetadataStore{client: client, ttl: ttl}
}

func metadataKey(chainID string) string {
	return "chain:" + chainID
}

func (s *RedisMetadataStore) Get(ctx context.Context, chainID string) (*Metadata, error) {
	raw, err := s.client.Get(ctx, metadataKey(chainID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMetadataExpired
	}
	if err != nil {
		return nil, fmt.Errorf("get chain metadata %s: %w", chainID, err)
	}
	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("decode chain metadata %s: %w", chainID, err)
	}
	return &meta, nil
}

func (s *RedisMetadataStore) Put(ctx context.Context, meta *Metadata) error {
	meta.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode chain metadata %s: %w", meta.ChainID, err)
	}
	// every write renews the TTL; a live chain never expires mid-flight
	if err := s.client.Set(ctx, metadataKey(meta.ChainID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("put chain metadata %s: %w", meta.ChainID, err)
	}
	return nil
}

func (s *RedisMetadataStore) Forget(ctx context.Context, chainID string) error {
	if err := s.client.Del(ctx, metadataKey(chainID)).Err(); err != nil {
		return fmt.Errorf("forget chain metadata %s: %w", chainID, err)
	}
	return nil
}
