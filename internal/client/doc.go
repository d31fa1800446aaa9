// Package client implements the interactive application runtime.
//
// It wires configuration, the profile setup flow, the GitHub adapter, the
// git runner, and the local history store into a single process lifecycle
// behind the menu UI.
package client
