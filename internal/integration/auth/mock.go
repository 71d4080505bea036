package auth

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ideanest/ideanest-backend/internal/entity"
	"go.uber.org/zap"
)

// MockConnector accepts every non-empty token and derives a stable fake user
// from it, so local runs don't need the auth service.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Introspect(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, entity.ErrUnauthorized
	}

	ctxzap.Info(ctx, "[MOCK] session introspected")

	return &entity.Session{
		UserID: fmt.Sprintf("mock-user-%s", token),
		Email:  fmt.Sprintf("%s@example.com", token),
	}, nil
}
