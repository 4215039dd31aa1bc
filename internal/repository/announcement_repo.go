package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"hackathon-backend/internal/model"
)

type AnnouncementRepository struct {
	pool *pgxpool.Pool
}

func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{pool: pool}
}

func (r *AnnouncementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.announcement_id, a.title, a.content, a.author_user_id, u.username, a.created_at
		FROM announcements a
		LEFT JOIN users u ON u.user_id = a.author_user_id
		ORDER BY a.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	items := make([]model.Announcement, 0)
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(&a.AnnouncementID, &a.Title, &a.Content, &a.AuthorUserID, &a.AuthorUsername, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *AnnouncementRepository) Create(ctx context.Context, title string, content string, authorUserID int64) (model.Announcement, error) {
	var a model.Announcement
	err := r.pool.QueryRow(ctx, `
		INSERT INTO announcements (title, content, author_user_id)
		VALUES ($1, $2, $3)
		RETURNING announcement_id, title, content, author_user_id, created_at
	`, title, content, authorUserID).
		Scan(&a.AnnouncementID, &a.Title, &a.Content, &a.AuthorUserID, &a.CreatedAt)
	if err != nil {
		return model.Announcement{}, fmt.Errorf("create announcement: %w", err)
	}
	return a, nil
}
