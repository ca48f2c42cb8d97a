// Package cli is the interactive SalesMatch dashboard.
//
// It wires configuration, the backend client, the session gate and the list
// controller behind a line-oriented REPL. Typical flow: prompt for
// credentials, load the account list, then search, filter, sort and tag
// accounts until logout.
//
// Commands:
//   - login / logout
//   - list (l), search, filter, sort
//   - status <id> <status> [<id> <status> ...]
//   - show <id>
//
// A background watcher pings the server and shows whether it is reachable.
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
