package cli

// ExitCode is the process exit status.
type ExitCode int

const (
	// ExitSuccess covers every successful run, including a redundant activation.
	ExitSuccess ExitCode = 0
	// ExitGeneral covers every user-facing error, help and usage.
	ExitGeneral ExitCode = 1
)

// MapExitCode returns the exit code for the error returned by Run.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	return ExitGeneral
}
