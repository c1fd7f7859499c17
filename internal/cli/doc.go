// Package cli builds the modkit command tree.
//
// Every command loads configuration through viper (config file, MODKIT_*
// environment variables and flags), builds an app.App and renders what it
// finds with lipgloss tables and trees. Errors that should end the process
// with a particular status are returned as *ExitError.
package cli
