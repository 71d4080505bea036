package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/jackc/pgx/v5"
)

// The mcqs and mcq_answers columns are JSONB. The only legitimate shape for
// mcqs is the four-question array this pipeline generates; anything else in
// the column is a data error surfaced at decode time.

func encodeMCQData(mcqs []entity.MCQ, answers []int) ([]byte, []byte, error) {
	mcqJSON, err := json.Marshal(mcqs)
	if err != nil {
		return nil, nil, fmt.Errorf("encode mcqs: %w", err)
	}

	answerJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, nil, fmt.Errorf("encode mcq answers: %w", err)
	}

	return mcqJSON, answerJSON, nil
}

func decodeMCQs(raw []byte) ([]entity.MCQ, error) {
	var mcqs []entity.MCQ
	if err := json.Unmarshal(raw, &mcqs); err != nil {
		return nil, fmt.Errorf("decode stored mcqs: %w", err)
	}
	return mcqs, nil
}

func scanIdea(row pgx.Row) (*entity.Idea, error) {
	var (
		idea      entity.Idea
		id        uuid.UUID
		createdAt time.Time
	)

	err := row.Scan(&id, &idea.OwnerID, &idea.Name, &idea.Tagline, &idea.Industry,
		&idea.Brief, &idea.Tags, &idea.MediaURLs, &createdAt)
	if err != nil {
		return nil, err
	}

	idea.ID = id.String()
	idea.CreatedAt = createdAt

	return &idea, nil
}

func scanValidation(row pgx.Row) (*entity.Validation, error) {
	var (
		validation entity.Validation
		id         uuid.UUID
		ideaID     uuid.UUID
		vote       string
		mcqsRaw    []byte
		answersRaw []byte
		createdAt  time.Time
	)

	err := row.Scan(&id, &ideaID, &validation.ValidatorID, &mcqsRaw, &answersRaw,
		&vote, &validation.OpinionText, &createdAt)
	if err != nil {
		return nil, err
	}

	mcqs, err := decodeMCQs(mcqsRaw)
	if err != nil {
		return nil, err
	}

	var answers []int
	if err := json.Unmarshal(answersRaw, &answers); err != nil {
		return nil, fmt.Errorf("decode stored mcq answers: %w", err)
	}

	validation.ID = id.String()
	validation.IdeaID = ideaID.String()
	validation.MCQs = mcqs
	validation.MCQAnswers = answers
	validation.Vote = entity.Vote(vote)
	validation.CreatedAt = createdAt

	return &validation, nil
}
