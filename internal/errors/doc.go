// Package errors provides typed errors with exit codes for rlctl.
//
// # Error Types
//
// RunloopError is the base error type that wraps an error with an exit code:
//
//	type RunloopError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess       = 0  // Success
//	ExitGeneralError  = 1  // General/unknown errors
//	ExitAuthError     = 2  // Missing or rejected API key
//	ExitAPIError      = 3  // Control-plane request failed
//	ExitNotFound      = 4  // Devbox/blueprint/object does not exist
//	ExitConfigError   = 5  // Configuration error
//	ExitSSHError      = 6  // SSH operation failed
//	ExitExecError     = 7  // Remote command execution failed
//	ExitDownloadError = 8  // Object download failed
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.MissingAPIKey()
//	errors.DevboxNotFound("dbx_123")
//	errors.APIError("devbox list", err)
//	errors.SSHError("connection failed", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
