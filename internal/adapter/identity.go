package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/config"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/metrics"
	"github.com/MarkAnthonyM/BlockPlot/internal/utils"
	"github.com/MarkAnthonyM/BlockPlot/models"
)

const tokenPath = "/oauth/token"

type identityProvider struct {
	client       *utils.HTTPClient
	clientID     string
	clientSecret string
	redirectURL  string
	logger       *logger.Logger
}

// NewIdentityProvider returns an [IdentityProvider] posting to the token
// endpoint under client's base URL (https://{domain}).
func NewIdentityProvider(client *utils.HTTPClient, cfg config.Auth, log *logger.Logger) IdentityProvider {
	return &identityProvider{
		client:       client,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURL:  cfg.RedirectURL,
		logger:       log,
	}
}

// ExchangeCode implements [IdentityProvider]. It POSTs the code with the
// client credentials as a JSON body to /oauth/token.
func (p *identityProvider) ExchangeCode(ctx context.Context, code string) (models.TokenResponse, error) {
	start := time.Now()
	defer func() {
		metrics.TokenExchangeDuration.Observe(time.Since(start).Seconds())
	}()

	var tokens models.TokenResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRequest{
			GrantType:    "authorization_code",
			ClientID:     p.clientID,
			ClientSecret: p.clientSecret,
			Code:         code,
			RedirectURI:  p.redirectURL,
		}).
		SetResult(&tokens).
		Post(tokenPath)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: token request: %w", ErrExternalService, err)
	}
	if err = mapHTTPError(resp); err != nil {
		p.logger.Err(err).Str("func", "identityProvider.ExchangeCode").Int("status", resp.StatusCode()).Msg("token exchange rejected")
		return models.TokenResponse{}, err
	}
	if tokens.IDToken == "" {
		return models.TokenResponse{}, fmt.Errorf("%w: token response carries no id_token", ErrMalformedPayload)
	}

	return tokens, nil
}
