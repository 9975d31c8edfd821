package internal

// Process exit statuses.
//
// Every failure (dependency installation, build command, missing build output,
// staging or archiving) is reported as [ExitFailure]. Callers distinguish the
// cause through the returned error, not the status.
const (
	ExitSuccess = 0
	ExitFailure = 1
)
