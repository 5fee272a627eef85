package draft

import "context"

// Store persists drafts. Save is last-write-wins.
type Store interface {
	Save(ctx context.Context, d *Draft) error
	Load(ctx context.Context, id string) (*Draft, error)
	List(ctx context.Context, ownerID int64) ([]*Draft, error)
	Delete(ctx context.Context, id string) error
}
