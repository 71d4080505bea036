package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IdeaRepository defines the interface for idea persistence. Ideas are
// insert-only; there is no update or delete path.
type IdeaRepository interface {
	Create(ctx context.Context, idea entity.Idea) (*entity.Idea, error)
	Get(ctx context.Context, id string) (*entity.Idea, error)
	List(ctx context.Context) ([]*entity.Idea, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Idea, error)
}

var _ IdeaRepository = &IdeaPostgres{}

// IdeaPostgres implements IdeaRepository using PostgreSQL
type IdeaPostgres struct {
	db *pgxpool.Pool
}

func NewIdeaPostgres(db *pgxpool.Pool) *IdeaPostgres {
	return &IdeaPostgres{db: db}
}

const ideaColumns = "id, owner_id, name, tagline, industry, brief, tags, media_urls, created_at"

func (r *IdeaPostgres) Create(ctx context.Context, idea entity.Idea) (*entity.Idea, error) {
	ideaID, err := uuid.Parse(idea.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: idea id must be a UUID", entity.ErrInvalidParameter)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO ideas (id, owner_id, name, tagline, industry, brief, tags, media_urls)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+ideaColumns,
		ideaID, idea.OwnerID, idea.Name, idea.Tagline, idea.Industry, idea.Brief,
		idea.Tags, idea.MediaURLs,
	)

	created, err := scanIdea(row)
	if err != nil {
		return nil, classifyStoreError("create idea", err)
	}

	return created, nil
}

func (r *IdeaPostgres) Get(ctx context.Context, id string) (*entity.Idea, error) {
	ideaID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: idea id must be a UUID", entity.ErrInvalidParameter)
	}

	row := r.db.QueryRow(ctx, `
		SELECT `+ideaColumns+` FROM ideas WHERE id = $1`,
		ideaID,
	)

	idea, err := scanIdea(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrIdeaNotFound
		}
		return nil, classifyStoreError("get idea", err)
	}

	return idea, nil
}

func (r *IdeaPostgres) List(ctx context.Context) ([]*entity.Idea, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+ideaColumns+` FROM ideas ORDER BY created_at DESC`)
	if err != nil {
		return nil, classifyStoreError("list ideas", err)
	}
	defer rows.Close()

	return collectIdeas(rows)
}

func (r *IdeaPostgres) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Idea, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+ideaColumns+` FROM ideas WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, classifyStoreError("list ideas by owner", err)
	}
	defer rows.Close()

	return collectIdeas(rows)
}

func collectIdeas(rows pgx.Rows) ([]*entity.Idea, error) {
	ideas := make([]*entity.Idea, 0)
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStoreError("iterate ideas", err)
	}

	return ideas, nil
}
