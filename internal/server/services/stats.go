package services

import (
	"context"
	"database/sql"
	"errors"

	"notekeeper/internal/common"
	"notekeeper/internal/server/models"
	"notekeeper/internal/server/repositories/notes"
	"notekeeper/internal/server/repositories/tags"
	"notekeeper/internal/server/repositories/todos"
	"notekeeper/internal/server/repositories/users"
	"notekeeper/internal/server/session"
)

// StatsService assembles the per-user dashboard summary.
type StatsService struct {
	auth  authorizer
	notes notes.Repository
	tags  tags.Repository
	todos todos.Repository
}

func NewStatsService(db *sql.DB, sessions *session.Registry) *StatsService {
	return &StatsService{
		auth:  authorizer{sessions: sessions, users: users.NewSQLiteRepository(db)},
		notes: notes.NewSQLiteRepository(db),
		tags:  tags.NewSQLiteRepository(db),
		todos: todos.NewSQLiteRepository(db),
	}
}

// Get returns note/tag/todo counts and the most recently modified note.
// RecentNote is nil when the user has no notes yet.
func (s *StatsService) Get(ctx context.Context, token string) (*models.Stats, error) {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	stats := &models.Stats{}

	if stats.NoteCount, err = s.notes.CountByUser(ctx, u.ID); err != nil {
		return nil, err
	}
	if stats.TagCount, err = s.tags.DistinctCountForUser(ctx, u.ID); err != nil {
		return nil, err
	}
	if stats.TodoCount, err = s.todos.CountByUser(ctx, u.ID); err != nil {
		return nil, err
	}

	recent, err := s.notes.MostRecent(ctx, u.ID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	stats.RecentNote = recent

	return stats, nil
}
