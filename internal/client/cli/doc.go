// Package cli provides the interactive SkillSwap command-line client.
//
// It wires configuration, the catalog store, the session controller and the
// create-offer form behind an interactive REPL. The REPL shows one screen
// at a time: the login screen while signed out, then the home, create and
// profile tabs.
//
// Key features:
//   - Sign in / sign up / logout
//   - Browse, search and refresh the offer feed
//   - Offer details with a "Connect" action
//   - Post a new skill offer
//   - Profile view
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
