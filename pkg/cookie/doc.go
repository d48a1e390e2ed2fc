// Package cookie writes the cookies that carry storefront access and refresh
// tokens.
//
// Every cookie is HttpOnly with SameSite=Strict and a fixed max-age equal to
// the lifetime of the token it holds. Secure defaults to true and can only be
// relaxed through Config for local development. Values are written as-is:
// tokens are signed JWTs and need no extra protection at the cookie layer.
//
// # Usage
//
//	m, err := cookie.NewFromConfig(cfg)
//	if err != nil {
//		return err
//	}
//	_ = m.SetTokens(w, pair.AccessToken, accessTTL, pair.RefreshToken, refreshTTL)
//
//	token, err := m.RefreshToken(r)
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		// fall back to the request body
//	}
//
//	m.ClearTokens(w) // on logout
package cookie
