package repo

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkarren/noteserv/internal/model"
	appErr "github.com/mkarren/noteserv/internal/pkg/errors"
)

func newFileRepo(t *testing.T) (*FileNoteRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.json")
	r, err := NewFileNoteRepo(path)
	require.NoError(t, err)
	return r, path
}

func TestFileRepoPersistsAcrossReopen(t *testing.T) {
	r, path := newFileRepo(t)
	ctx := context.Background()

	note := &model.Note{Title: "Groceries", Content: "milk", Tags: []string{"home"}}
	require.NoError(t, r.Insert(ctx, note))

	reopened, err := NewFileNoteRepo(path)
	require.NoError(t, err)
	notes, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, note.ID, notes[0].ID)
	require.Equal(t, "Groceries", notes[0].Title)
	require.Equal(t, []string{"home"}, notes[0].Tags)
}

func TestFileRepoNeverReusesIDsAcrossRestart(t *testing.T) {
	r, path := newFileRepo(t)
	ctx := context.Background()

	note := &model.Note{Title: "only", Tags: []string{}}
	require.NoError(t, r.Insert(ctx, note))
	require.NoError(t, r.Delete(ctx, note.ID))

	reopened, err := NewFileNoteRepo(path)
	require.NoError(t, err)
	next := &model.Note{Title: "next", Tags: []string{}}
	require.NoError(t, reopened.Insert(ctx, next))
	require.Greater(t, next.ID, note.ID)
}

func TestFileRepoRewritesFileWholesale(t *testing.T) {
	r, path := newFileRepo(t)
	ctx := context.Background()

	first := &model.Note{Title: "a", Tags: []string{}}
	second := &model.Note{Title: "b", Tags: []string{}}
	require.NoError(t, r.Insert(ctx, first))
	require.NoError(t, r.Insert(ctx, second))
	require.NoError(t, r.Delete(ctx, first.ID))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var layout struct {
		NextID int64        `json:"next_id"`
		Notes  []model.Note `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(raw, &layout))
	require.Equal(t, int64(3), layout.NextID)
	require.Len(t, layout.Notes, 1)
	require.Equal(t, "b", layout.Notes[0].Title)
}

func TestFileRepoMissingFileStartsEmpty(t *testing.T) {
	r, _ := newFileRepo(t)
	notes, err := r.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestFileRepoRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err := NewFileNoteRepo(path)
	require.Error(t, err)
}

func TestFileRepoNotFound(t *testing.T) {
	r, _ := newFileRepo(t)
	ctx := context.Background()

	require.ErrorIs(t, r.Replace(ctx, &model.Note{ID: 9, Title: "x"}), appErr.ErrNotFound)
	require.ErrorIs(t, r.Delete(ctx, 9), appErr.ErrNotFound)
	_, err := r.Get(ctx, 9)
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestFileRepoRaisesStaleNextID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	seed := `{"next_id": 1, "notes": [{"id": 7, "title": "old", "content": "", "tags": []}]}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	r, err := NewFileNoteRepo(path)
	require.NoError(t, err)
	note := &model.Note{Title: "new", Tags: []string{}}
	require.NoError(t, r.Insert(context.Background(), note))
	require.Equal(t, int64(8), note.ID)
}
