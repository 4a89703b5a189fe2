package repo

import (
	"context"
	"sync"

	"github.com/mkarren/noteserv/internal/model"
	appErr "github.com/mkarren/noteserv/internal/pkg/errors"
)

// MemoryNoteRepo keeps notes in a process-local map. Nothing survives a
// restart: the collection and the ID counter both start over.
type MemoryNoteRepo struct {
	mu     sync.RWMutex
	notes  map[int64]*model.Note
	order  []int64
	nextID int64
}

func NewMemoryNoteRepo() *MemoryNoteRepo {
	return &MemoryNoteRepo{
		notes:  make(map[int64]*model.Note),
		nextID: 1,
	}
}

func (r *MemoryNoteRepo) List(ctx context.Context) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Note, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.notes[id].Clone())
	}
	return out, nil
}

func (r *MemoryNoteRepo) Get(ctx context.Context, id int64) (*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	note, ok := r.notes[id]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	return note.Clone(), nil
}

func (r *MemoryNoteRepo) Insert(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	note.ID = r.nextID
	r.nextID++
	r.notes[note.ID] = note.Clone()
	r.order = append(r.order, note.ID)
	return nil
}

func (r *MemoryNoteRepo) Replace(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[note.ID]; !ok {
		return appErr.ErrNotFound
	}
	r.notes[note.ID] = note.Clone()
	return nil
}

func (r *MemoryNoteRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[id]; !ok {
		return appErr.ErrNotFound
	}
	delete(r.notes, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
