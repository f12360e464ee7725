// Package cli provides the interactive warnwave command-line client.
//
// It wires configuration, the local session store, the backend API client,
// the image-host driver, and an interactive REPL. Typical flow: restore the
// persisted session, render the shell, and execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - Change the profile image (two-phase upload: host, then associate)
//   - Show the current view (whoami)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
