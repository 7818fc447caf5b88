package infra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/voicereplay/voice-replay/internal/ports"
)

var ErrClipNotFound = errors.New("clip not found")

type clipRepo struct {
	db *sql.DB
}

func NewClipRepo(db *sql.DB) ports.ClipRepo {
	return &clipRepo{db: db}
}

func (r *clipRepo) Create(ctx context.Context, clip ports.Clip) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clips (id, kind, filename, content_type, size_bytes, storage_key, url, text_content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, clip.ID, clip.Kind, clip.Filename, clip.ContentType, clip.SizeBytes, clip.StorageKey, clip.URL, clip.Text, clip.CreatedAt)
	return err
}

func (r *clipRepo) List(ctx context.Context) ([]ports.Clip, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, filename, content_type, size_bytes, storage_key, url, text_content, created_at
		FROM clips
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clips []ports.Clip
	for rows.Next() {
		var c ports.Clip
		if err := rows.Scan(
			&c.ID,
			&c.Kind,
			&c.Filename,
			&c.ContentType,
			&c.SizeBytes,
			&c.StorageKey,
			&c.URL,
			&c.Text,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		clips = append(clips, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return clips, nil
}

func (r *clipRepo) Get(ctx context.Context, id string) (ports.Clip, error) {
	var c ports.Clip
	err := r.db.QueryRowContext(ctx, `
		SELECT id, kind, filename, content_type, size_bytes, storage_key, url, text_content, created_at
		FROM clips
		WHERE id = $1
	`, id).Scan(
		&c.ID,
		&c.Kind,
		&c.Filename,
		&c.ContentType,
		&c.SizeBytes,
		&c.StorageKey,
		&c.URL,
		&c.Text,
		&c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.Clip{}, fmt.Errorf("%w: %s", ErrClipNotFound, id)
	}
	return c, err
}

func (r *clipRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clips WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrClipNotFound, id)
	}
	return nil
}
