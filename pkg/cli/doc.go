// Package cli provides output formatting, styling and log capture helpers
// shared by the command line tools in cmd/.
package cli
