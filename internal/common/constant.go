// Package common contains shared constants and sentinel errors used across
// sessionkeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RefreshTokenCookieName is the HTTP-only cookie holding the refresh token.
const RefreshTokenCookieName = "refresh_token"
