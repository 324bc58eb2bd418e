// Package cli implements the interactive terminal front end of the notas
// client.
//
// The package is organised around a small App type that owns the wired
// services (session, notes) and a read-eval-print loop that dispatches
// typed commands to methods on App. Interactive input goes through the
// helpers in input.go so tests can stub the terminal.
package cli
