package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	EnumerateError  = 4
	WriteError      = 5
	PartialSuccess  = 6
	LoadError       = 7

	// Interrupted follows the shell convention of 128 + SIGINT.
	Interrupted = 130
)
