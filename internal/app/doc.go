// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the startup sequence (logging, plugin
// registration, manifest loading), decoupled from any specific entrypoint
// like a CLI.
package app
