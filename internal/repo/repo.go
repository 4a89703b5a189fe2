package repo

import (
	"context"

	"github.com/mkarren/noteserv/internal/model"
)

// NoteRepo is the storage contract for notes. Implementations assign IDs
// from a monotonic counter and preserve insertion order on List.
type NoteRepo interface {
	List(ctx context.Context) ([]model.Note, error)
	Get(ctx context.Context, id int64) (*model.Note, error)
	Insert(ctx context.Context, note *model.Note) error
	Replace(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, id int64) error
}
