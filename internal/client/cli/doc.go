// Package cli provides the interactive session keeper command-line client.
//
// It wires configuration, the local session database and the gRPC client,
// then runs a REPL: register, login (password plus authenticator code),
// whoami, logout, forgot and reset. A background watcher pings the server
// and reports when it goes offline or comes back.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
