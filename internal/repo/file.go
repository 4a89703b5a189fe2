package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mkarren/noteserv/internal/model"
	appErr "github.com/mkarren/noteserv/internal/pkg/errors"
)

// FileNoteRepo mirrors the collection in memory and rewrites a single
// JSON file wholesale on every mutation. The mirror is only updated
// after the file has been written, so a failed save leaves both sides
// on the previous state.
type FileNoteRepo struct {
	mu     sync.RWMutex
	path   string
	notes  map[int64]*model.Note
	order  []int64
	nextID int64
}

type fileLayout struct {
	NextID int64        `json:"next_id"`
	Notes  []model.Note `json:"notes"`
}

func NewFileNoteRepo(path string) (*FileNoteRepo, error) {
	r := &FileNoteRepo{
		path:   path,
		notes:  make(map[int64]*model.Note),
		nextID: 1,
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileNoteRepo) load() error {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read store file: %w", err)
	}
	var layout fileLayout
	if err := json.Unmarshal(raw, &layout); err != nil {
		return fmt.Errorf("decode store file %s: %w", r.path, err)
	}
	for i := range layout.Notes {
		note := layout.Notes[i]
		r.notes[note.ID] = note.Clone()
		r.order = append(r.order, note.ID)
		if note.ID >= r.nextID {
			r.nextID = note.ID + 1
		}
	}
	// next_id written by a previous run wins unless it lags the data.
	if layout.NextID > r.nextID {
		r.nextID = layout.NextID
	}
	return nil
}

func (r *FileNoteRepo) save(layout fileLayout) error {
	raw, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// snapshotLocked builds the file layout for the state a mutation is
// about to commit, before that state is applied to the mirror.
func (r *FileNoteRepo) snapshotLocked(nextID int64, order []int64, notes map[int64]*model.Note) fileLayout {
	layout := fileLayout{NextID: nextID, Notes: make([]model.Note, 0, len(order))}
	for _, id := range order {
		layout.Notes = append(layout.Notes, *notes[id].Clone())
	}
	return layout
}

func (r *FileNoteRepo) List(ctx context.Context) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Note, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.notes[id].Clone())
	}
	return out, nil
}

func (r *FileNoteRepo) Get(ctx context.Context, id int64) (*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	note, ok := r.notes[id]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	return note.Clone(), nil
}

func (r *FileNoteRepo) Insert(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate := note.Clone()
	candidate.ID = r.nextID

	pending := make(map[int64]*model.Note, len(r.notes)+1)
	for id, existing := range r.notes {
		pending[id] = existing
	}
	pending[candidate.ID] = candidate
	order := append(append([]int64(nil), r.order...), candidate.ID)

	if err := r.save(r.snapshotLocked(r.nextID+1, order, pending)); err != nil {
		return err
	}
	note.ID = candidate.ID
	r.notes[candidate.ID] = candidate
	r.order = order
	r.nextID++
	return nil
}

func (r *FileNoteRepo) Replace(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[note.ID]; !ok {
		return appErr.ErrNotFound
	}
	candidate := note.Clone()
	pending := make(map[int64]*model.Note, len(r.notes))
	for id, existing := range r.notes {
		pending[id] = existing
	}
	pending[candidate.ID] = candidate

	if err := r.save(r.snapshotLocked(r.nextID, r.order, pending)); err != nil {
		return err
	}
	r.notes[candidate.ID] = candidate
	return nil
}

func (r *FileNoteRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[id]; !ok {
		return appErr.ErrNotFound
	}
	pending := make(map[int64]*model.Note, len(r.notes))
	for existingID, existing := range r.notes {
		if existingID == id {
			continue
		}
		pending[existingID] = existing
	}
	order := make([]int64, 0, len(r.order))
	for _, existing := range r.order {
		if existing != id {
			order = append(order, existing)
		}
	}

	if err := r.save(r.snapshotLocked(r.nextID, order, pending)); err != nil {
		return err
	}
	delete(r.notes, id)
	r.order = order
	return nil
}
