package repository

import (
	"errors"
	"testing"

	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassifyStoreErrorByCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{"undefined table", "42P01", entity.ErrSchemaMissing},
		{"foreign key violation", "23503", entity.ErrInvalidReference},
		{"insufficient privilege", "42501", entity.ErrAccessDenied},
		{"unique violation", "23505", entity.ErrDuplicateValidation},
		{"unknown code", "57014", entity.ErrStoreUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyStoreError("create validation", &pgconn.PgError{Code: tt.code, Message: "driver detail"})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestClassifyStoreErrorByMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want error
	}{
		{"missing relation", `relation "validations" does not exist`, entity.ErrSchemaMissing},
		{"foreign key", "insert violates foreign key constraint", entity.ErrInvalidReference},
		{"row level security", "new row violates row-level security policy", entity.ErrAccessDenied},
		{"permission", "permission denied for table validations", entity.ErrAccessDenied},
		{"duplicate", "duplicate key value violates unique constraint", entity.ErrDuplicateValidation},
		{"anything else", "connection reset by peer", entity.ErrStoreUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyStoreError("create validation", errors.New(tt.msg))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestClassifiedErrorKeepsDriverDetailForLogs(t *testing.T) {
	err := classifyStoreError("create validation", errors.New("duplicate key value violates unique constraint"))

	if err.Error() == entity.ErrDuplicateValidation.Error() {
		t.Error("classified error should wrap the operation and driver detail")
	}
}
