package api

// Devbox is a cloud development sandbox.
type Devbox struct {
	ID           string            `json:"id"`
	Name         string            `json:"name,omitempty"`
	Status       string            `json:"status"`
	BlueprintID  string            `json:"blueprint_id,omitempty"`
	SnapshotID   string            `json:"snapshot_id,omitempty"`
	Entrypoint   string            `json:"entrypoint,omitempty"`
	EnvVars      map[string]string `json:"environment_variables,omitempty"`
	CreateTimeMs int64             `json:"create_time_ms,omitempty"`
}

// Devbox statuses reported by the control plane.
const (
	DevboxRunning   = "running"
	DevboxStopped   = "stopped"
	DevboxShutdown  = "shutdown"
	DevboxSuspended = "suspended"
)

// Blueprint is a reusable devbox image definition.
type Blueprint struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status,omitempty"`
	Dockerfile   string `json:"dockerfile,omitempty"`
	CreateTimeMs int64  `json:"create_time_ms,omitempty"`
}

// LaunchParameters configures the resources of devboxes launched from
// a blueprint.
type LaunchParameters struct {
	ResourceSize   string   `json:"resource_size_request,omitempty"`
	AvailablePorts []int    `json:"available_ports,omitempty"`
	Architecture   string   `json:"architecture,omitempty"`
	UserParameters *UserPrm `json:"user_parameters,omitempty"`
}

// UserPrm selects the account commands run as inside a devbox.
type UserPrm struct {
	Username string `json:"username"`
	UID      int    `json:"uid"`
}

// Object is a stored artifact (archive, file, dataset).
type Object struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	State       string `json:"state,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
	Public      bool   `json:"is_public,omitempty"`
}

// DiskSnapshot is a persisted devbox filesystem image.
type DiskSnapshot struct {
	ID           string `json:"id"`
	SourceID     string `json:"source_devbox_id,omitempty"`
	Name         string `json:"name,omitempty"`
	CreateTimeMs int64  `json:"create_time_ms,omitempty"`
}

// SnapshotStatusView reports progress of an asynchronous disk snapshot.
type SnapshotStatusView struct {
	Status       string        `json:"status"`
	ErrorDetails string        `json:"error_details,omitempty"`
	Snapshot     *DiskSnapshot `json:"snapshot,omitempty"`
}

// Invocation is a single function invocation record.
type Invocation struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
	Result any    `json:"result,omitempty"`
}

// LogEntry is one devbox or blueprint-build log line.
type LogEntry struct {
	TimestampMs int64  `json:"timestamp_ms,omitempty"`
	Source      string `json:"source,omitempty"`
	Level       string `json:"level,omitempty"`
	Cmd         string `json:"cmd,omitempty"`
	Message     string `json:"message,omitempty"`
	ExitCode    *int   `json:"exit_code,omitempty"`
}

// ExecResult is the outcome of a synchronous devbox command.
type ExecResult struct {
	DevboxID string `json:"devbox_id,omitempty"`
	Stdout   string `json:"stdout,omitempty"`
	Stderr   string `json:"stderr,omitempty"`
	ExitCode int    `json:"exit_status,omitempty"`
}

// SSHKey is an ephemeral devbox SSH credential.
type SSHKey struct {
	PrivateKey string `json:"ssh_private_key"`
	URL        string `json:"url"`
}
