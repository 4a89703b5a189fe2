package service

import (
	"context"

	"github.com/mkarren/noteserv/internal/model"
	appErr "github.com/mkarren/noteserv/internal/pkg/errors"
	"github.com/mkarren/noteserv/internal/pkg/timeutil"
	"github.com/mkarren/noteserv/internal/repo"
)

type NoteService struct {
	notes repo.NoteRepo
}

func NewNoteService(notes repo.NoteRepo) *NoteService {
	return &NoteService{notes: notes}
}

type CreateNoteInput struct {
	Title   string
	Content string
	Tags    []string
}

// UpdateNoteInput carries partial updates: nil means the field was not
// supplied and the stored value is kept.
type UpdateNoteInput struct {
	Title   *string
	Content *string
	Tags    *[]string
}

func (s *NoteService) List(ctx context.Context) ([]model.Note, error) {
	return s.notes.List(ctx)
}

func (s *NoteService) Create(ctx context.Context, input CreateNoteInput) (*model.Note, error) {
	if input.Title == "" {
		return nil, appErr.ErrInvalid
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	now := timeutil.NowUnix()
	note := &model.Note{
		Title:     input.Title,
		Content:   input.Content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.notes.Insert(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, id int64, input UpdateNoteInput) (*model.Note, error) {
	// Unknown IDs fail with not-found before any field validation.
	note, err := s.notes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Title != nil && *input.Title == "" {
		return nil, appErr.ErrInvalid
	}
	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.Tags != nil {
		note.Tags = *input.Tags
		if note.Tags == nil {
			note.Tags = []string{}
		}
	}
	note.UpdatedAt = timeutil.NowUnix()
	if err := s.notes.Replace(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, id int64) error {
	return s.notes.Delete(ctx, id)
}
