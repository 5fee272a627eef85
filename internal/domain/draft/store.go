package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"venuehub/internal/storage/kv"
)

const (
	draftKeyPrefix = "draft:"
	indexKeyPrefix = "drafts:index:"
)

// KVStore keeps each draft under its own key plus a per-owner index of ids,
// so listing never needs a scan over the backend.
type KVStore struct {
	kv kv.Store
}

func NewKVStore(store kv.Store) *KVStore {
	return &KVStore{kv: store}
}

func draftKey(id string) string { return draftKeyPrefix + id }

func indexKey(ownerID int64) string { return indexKeyPrefix + strconv.FormatInt(ownerID, 10) }

func (s *KVStore) Save(ctx context.Context, d *Draft) error {
	if d == nil || d.ID == "" {
		return ErrInvalidID
	}

	// A draft moving to another owner must leave the old index.
	if prev, err := s.Load(ctx, d.ID); err == nil && prev.OwnerID != d.OwnerID {
		if err := s.removeFromIndex(ctx, prev.OwnerID, d.ID); err != nil {
			return err
		}
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.kv.Set(ctx, draftKey(d.ID), b); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return s.addToIndex(ctx, d.OwnerID, d.ID)
}

func (s *KVStore) Load(ctx context.Context, id string) (*Draft, error) {
	b, err := s.kv.Get(ctx, draftKey(id))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}

	var d Draft
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", id, err)
	}
	return &d, nil
}

// List returns the owner's drafts, most recently updated first. Index
// entries whose draft is gone are skipped.
func (s *KVStore) List(ctx context.Context, ownerID int64) ([]*Draft, error) {
	ids, err := s.index(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]*Draft, 0, len(ids))
	for _, id := range ids {
		d, err := s.Load(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastUpdated.After(out[j].LastUpdated)
	})
	return out, nil
}

// Delete removes the draft. Deleting a missing draft is not an error.
func (s *KVStore) Delete(ctx context.Context, id string) error {
	d, err := s.Load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.kv.Remove(ctx, draftKey(id)); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return s.removeFromIndex(ctx, d.OwnerID, id)
}

func (s *KVStore) index(ctx context.Context, ownerID int64) ([]string, error) {
	b, err := s.kv.Get(ctx, indexKey(ownerID))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load draft index: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return nil, fmt.Errorf("decode draft index: %w", err)
	}
	return ids, nil
}

func (s *KVStore) writeIndex(ctx context.Context, ownerID int64, ids []string) error {
	if len(ids) == 0 {
		return s.kv.Remove(ctx, indexKey(ownerID))
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, indexKey(ownerID), b)
}

func (s *KVStore) addToIndex(ctx context.Context, ownerID int64, id string) error {
	ids, err := s.index(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return s.writeIndex(ctx, ownerID, append(ids, id))
}

func (s *KVStore) removeFromIndex(ctx context.Context, ownerID int64, id string) error {
	ids, err := s.index(ctx, ownerID)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return s.writeIndex(ctx, ownerID, kept)
}
