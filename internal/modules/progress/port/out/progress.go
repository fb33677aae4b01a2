package out

import "context"

// RecordStore persists the progress record as a single opaque blob.
// Load returns apperrors.ErrNotFound when nothing has been stored yet.
type RecordStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, raw []byte) error
}
