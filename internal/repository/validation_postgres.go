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

// ValidationRepository defines the interface for validation persistence.
// Validations are insert-only: never mutated, never deleted.
type ValidationRepository interface {
	Create(ctx context.Context, validation entity.Validation) (*entity.Validation, error)
	ListByIdea(ctx context.Context, ideaID string) ([]*entity.Validation, error)
	FirstMCQs(ctx context.Context, ideaID string) ([]entity.MCQ, error)
	ExistsForValidator(ctx context.Context, ideaID, validatorID string) (bool, error)
}

var _ ValidationRepository = &ValidationPostgres{}

// ValidationPostgres implements ValidationRepository using PostgreSQL
type ValidationPostgres struct {
	db *pgxpool.Pool
}

func NewValidationPostgres(db *pgxpool.Pool) *ValidationPostgres {
	return &ValidationPostgres{db: db}
}

const validationColumns = "id, idea_id, validator_id, mcqs, mcq_answers, vote, opinion_text, created_at"

// validationOrder sorts oldest first. created_at comes from now() and two
// inserts can share an instant, so id breaks the tie to keep "first"
// stable across reads.
const validationOrder = "ORDER BY created_at, id"

func (r *ValidationPostgres) Create(ctx context.Context, validation entity.Validation) (*entity.Validation, error) {
	validationID, err := uuid.Parse(validation.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: validation id must be a UUID", entity.ErrInvalidParameter)
	}

	ideaID, err := uuid.Parse(validation.IdeaID)
	if err != nil {
		return nil, fmt.Errorf("%w: idea id must be a UUID", entity.ErrInvalidParameter)
	}

	mcqs, answers, err := encodeMCQData(validation.MCQs, validation.MCQAnswers)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO validations (id, idea_id, validator_id, mcqs, mcq_answers, vote, opinion_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+validationColumns,
		validationID, ideaID, validation.ValidatorID, mcqs, answers,
		string(validation.Vote), validation.OpinionText,
	)

	created, err := scanValidation(row)
	if err != nil {
		return nil, classifyStoreError("create validation", err)
	}

	return created, nil
}

func (r *ValidationPostgres) ListByIdea(ctx context.Context, ideaID string) ([]*entity.Validation, error) {
	id, err := uuid.Parse(ideaID)
	if err != nil {
		return nil, fmt.Errorf("%w: idea id must be a UUID", entity.ErrInvalidParameter)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+validationColumns+` FROM validations
		WHERE idea_id = $1 `+validationOrder,
		id,
	)
	if err != nil {
		return nil, classifyStoreError("list validations", err)
	}
	defer rows.Close()

	validations := make([]*entity.Validation, 0)
	for rows.Next() {
		validation, err := scanValidation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan validation: %w", err)
		}
		validations = append(validations, validation)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStoreError("iterate validations", err)
	}

	return validations, nil
}

// FirstMCQs returns the MCQ set stored on the idea's earliest validation,
// or nil when the idea has no validations yet. The first stored set is
// authoritative: later validators answer the identical questions.
func (r *ValidationPostgres) FirstMCQs(ctx context.Context, ideaID string) ([]entity.MCQ, error) {
	id, err := uuid.Parse(ideaID)
	if err != nil {
		return nil, fmt.Errorf("%w: idea id must be a UUID", entity.ErrInvalidParameter)
	}

	var raw []byte
	err = r.db.QueryRow(ctx, `
		SELECT mcqs FROM validations
		WHERE idea_id = $1 `+validationOrder+` LIMIT 1`,
		id,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyStoreError("get first MCQ set", err)
	}

	mcqs, err := decodeMCQs(raw)
	if err != nil {
		return nil, err
	}

	return mcqs, nil
}

func (r *ValidationPostgres) ExistsForValidator(ctx context.Context, ideaID, validatorID string) (bool, error) {
	id, err := uuid.Parse(ideaID)
	if err != nil {
		return false, fmt.Errorf("%w: idea id must be a UUID", entity.ErrInvalidParameter)
	}

	var exists bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM validations WHERE idea_id = $1 AND validator_id = $2
		)`,
		id, validatorID,
	).Scan(&exists)
	if err != nil {
		return false, classifyStoreError("check existing validation", err)
	}

	return exists, nil
}
