// Package app wires cipherchat's collaborators for the CLI.
//
// It turns a Config into a connected byte stream (listen-once or dial),
// hands that stream to a session and connects the session to the
// terminal. Commands build a Config and call Run.
package app
