package storefront

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/storekit/handler"
	"github.com/dmitrymomot/storekit/pkg/auth"
	"github.com/dmitrymomot/storekit/svc/account"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken      string         `json:"access_token"`
	RefreshToken     string         `json:"refresh_token"`
	TokenType        string         `json:"token_type"`
	ExpiresIn        int64          `json:"expires_in"`
	RefreshExpiresIn int64          `json:"refresh_expires_in"`
	Owner            *account.Owner `json:"owner,omitempty"`
}

func newTokenResponse(pair account.TokenPair, owner *account.Owner) tokenResponse {
	return tokenResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(pair.ExpiresIn.Seconds()),
		RefreshExpiresIn: int64(pair.RefreshExpiresIn.Seconds()),
		Owner:            owner,
	}
}

func (a *api) register(ctx handler.Context, req registerRequest) handler.Response {
	owner, err := a.accounts.Register(ctx, account.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(owner, handler.WithJSONStatus(http.StatusCreated))
}

func (a *api) login(ctx handler.Context, req loginRequest) handler.Response {
	pair, owner, err := a.accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		return handler.Error(err)
	}
	if err := a.setTokenCookies(ctx, pair); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(newTokenResponse(pair, owner))
}

func (a *api) refresh(ctx handler.Context, req refreshRequest) handler.Response {
	token := a.refreshToken(ctx, req)
	if token == "" {
		return handler.Error(ErrInvalidToken)
	}

	pair, err := a.accounts.Refresh(ctx, token)
	if err != nil {
		return handler.Error(err)
	}
	if err := a.setTokenCookies(ctx, pair); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(newTokenResponse(pair, nil))
}

func (a *api) logout(ctx handler.Context, req refreshRequest) handler.Response {
	token := a.refreshToken(ctx, req)
	if token == "" {
		return handler.Error(ErrInvalidToken)
	}

	if err := a.accounts.Logout(ctx, token); err != nil {
		return handler.Error(err)
	}
	a.cookies.ClearTokens(ctx.ResponseWriter())
	return handler.Empty()
}

func (a *api) me(ctx handler.Context, _ struct{}) handler.Response {
	p, _ := auth.PrincipalFromContext(ctx)
	owner, err := a.accounts.Me(ctx, p)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(owner)
}

// refreshToken prefers the JSON body and falls back to the refresh cookie.
func (a *api) refreshToken(ctx handler.Context, req refreshRequest) string {
	if token := strings.TrimSpace(req.RefreshToken); token != "" {
		return token
	}
	token, err := a.cookies.RefreshToken(ctx.Request())
	if err != nil {
		return ""
	}
	return token
}

func (a *api) setTokenCookies(ctx handler.Context, pair account.TokenPair) error {
	return a.cookies.SetTokens(ctx.ResponseWriter(),
		pair.AccessToken, pair.ExpiresIn,
		pair.RefreshToken, pair.RefreshExpiresIn,
	)
}
