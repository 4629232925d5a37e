// Package client is the session keeper's client side.
//
// GRPCClient talks to the sessionkeeper.v1.SessionService over gRPC,
// attaches the access token to protected calls and, when the server
// answers Unauthenticated, refreshes the token pair once and retries.
// Concurrent callers that hit an expired access token share a single
// refresh call, so a refresh token is never presented twice.
//
// Tokens survive restarts in a SessionStore backed by the local sqlite
// database (see InitDatabase).
package client
