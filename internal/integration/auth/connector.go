// Package auth is the connector for the external session/auth service. The
// pipeline treats sessions as opaque: it only ever consumes the stable user
// identifier (and email) the service reports for a token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ideanest/ideanest-backend/internal/config"
	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/ideanest/ideanest-backend/internal/integration/common"
	pkghttp "github.com/ideanest/ideanest-backend/pkg/http"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.AuthConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.AuthConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Introspect resolves a bearer token to the session it represents.
func (c *Connector) Introspect(ctx context.Context, token string) (*entity.Session, error) {
	var resp introspectResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.IntrospectEndpoint,
		&introspectRequest{Token: token}, &resp)
	if err != nil {
		var httpErr *pkghttp.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusUnauthorized {
			return nil, entity.ErrUnauthorized
		}
		return nil, fmt.Errorf("introspect token: %w", err)
	}

	if !resp.Active || resp.UserID == "" {
		return nil, entity.ErrSessionDenied
	}

	ctxzap.Debug(ctx, "session introspected", zap.String("user_id", resp.UserID))

	return &entity.Session{
		UserID: resp.UserID,
		Email:  resp.Email,
	}, nil
}
