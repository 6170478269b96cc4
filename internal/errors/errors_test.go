package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestRunloopError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *RunloopError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestRunloopError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause
	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestRunloopError_ExitCode(t *testing.T) {
	tests := []struct {
		code int
		name string
	}{
		{ExitSuccess, "success"},
		{ExitGeneralError, "general"},
		{ExitAuthError, "auth"},
		{ExitAPIError, "api"},
		{ExitNotFound, "not found"},
		{ExitConfigError, "config"},
		{ExitSSHError, "ssh"},
		{ExitExecError, "exec"},
		{ExitDownloadError, "download"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "test")
			if got := err.ExitCode(); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *RunloopError
		wantCode int
		wantSub  string
	}{
		{"MissingAPIKey", MissingAPIKey(), ExitAuthError, "RUNLOOP_API_KEY"},
		{"DevboxNotFound", DevboxNotFound("dbx_123"), ExitNotFound, "dbx_123"},
		{"BlueprintNotFound", BlueprintNotFound("bpt_1"), ExitNotFound, "bpt_1"},
		{"ObjectNotFound", ObjectNotFound("obj_1"), ExitNotFound, "obj_1"},
		{"APIError", APIError("devbox list", fmt.Errorf("boom")), ExitAPIError, "devbox list"},
		{"ConfigError", ConfigError("bad config", nil), ExitConfigError, "bad config"},
		{"SSHError", SSHError("handshake", nil), ExitSSHError, "handshake"},
		{"ExecError", ExecError("command failed", nil), ExitExecError, "command failed"},
		{"DownloadError", DownloadError("http 500", nil), ExitDownloadError, "http 500"},
		{"ValidationError", ValidationError("bad input"), ExitGeneralError, "bad input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if msg := tt.err.Error(); !strings.Contains(msg, tt.wantSub) {
				t.Errorf("Error() = %q, want substring %q", msg, tt.wantSub)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"runloop error", New(ExitSSHError, "ssh"), ExitSSHError},
		{"wrapped runloop error", fmt.Errorf("outer: %w", New(ExitAPIError, "api")), ExitAPIError},
		{"plain error", fmt.Errorf("plain"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
