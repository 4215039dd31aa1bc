package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"hackathon-backend/internal/model"
)

type TrackRepository struct {
	pool *pgxpool.Pool
}

func NewTrackRepository(pool *pgxpool.Pool) *TrackRepository {
	return &TrackRepository{pool: pool}
}

func (r *TrackRepository) List(ctx context.Context) ([]model.Track, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT track_id, name, description, max_teams FROM tracks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	defer rows.Close()

	tracks := make([]model.Track, 0)
	for rows.Next() {
		var t model.Track
		if err := rows.Scan(&t.TrackID, &t.Name, &t.Description, &t.MaxTeams); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

func (r *TrackRepository) Create(ctx context.Context, req model.CreateTrackRequest) (model.Track, error) {
	var t model.Track
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tracks (name, description, max_teams)
		VALUES ($1, $2, $3)
		RETURNING track_id, name, description, max_teams
	`, req.Name, req.Description, req.MaxTeams).
		Scan(&t.TrackID, &t.Name, &t.Description, &t.MaxTeams)
	if err != nil {
		return model.Track{}, fmt.Errorf("create track: %w", err)
	}
	return t, nil
}
