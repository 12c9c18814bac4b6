package commands

// Common constants used across command implementations
const (
	// Command usage patterns
	OptionsUsage = "[OPTIONS]"
)

// Exit codes for the draw pipeline, one per failing phase.
const (
	exitUsage = 1
	exitInit  = 2
	exitForge = 3
	exitPush  = 4
)
