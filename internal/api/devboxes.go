package api

import (
	"context"

	"github.com/runloopai/rlctl/internal/pager"
)

// DevboxListParams filters a devbox listing.
type DevboxListParams struct {
	Limit         int
	StartingAfter string
	Status        string
}

// DevboxList is one window of the devbox listing.
type DevboxList struct {
	Devboxes   []Devbox `json:"devboxes"`
	HasMore    bool     `json:"has_more"`
	TotalCount int      `json:"total_count"`
}

// ListDevboxes fetches one page of devboxes.
func (c *Client) ListDevboxes(ctx context.Context, params DevboxListParams) (*DevboxList, error) {
	q := listQuery(params.Limit, params.StartingAfter)
	if params.Status != "" {
		q.Set("status", params.Status)
	}

	var out DevboxList
	if err := c.get(ctx, "/v1/devboxes", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DevboxPageFunc adapts the devbox listing to the pagination engine.
// The status filter is fixed per engine; changing it means a new
// engine (or a reset-dependency change) on the caller's side.
func (c *Client) DevboxPageFunc(status string) pager.FetchFunc[Devbox] {
	return func(ctx context.Context, req pager.Request) (pager.Page[Devbox], error) {
		list, err := c.ListDevboxes(ctx, DevboxListParams{
			Limit:         req.Limit,
			StartingAfter: req.Cursor,
			Status:        status,
		})
		if err != nil {
			return pager.Page[Devbox]{}, err
		}
		return pager.Page[Devbox]{
			Items:      list.Devboxes,
			HasMore:    list.HasMore,
			TotalCount: list.TotalCount,
		}, nil
	}
}

// GetDevbox retrieves a single devbox.
func (c *Client) GetDevbox(ctx context.Context, id string) (*Devbox, error) {
	var out Devbox
	if err := c.get(ctx, "/v1/devboxes/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDevboxParams configures a new devbox.
type CreateDevboxParams struct {
	Entrypoint    string            `json:"entrypoint,omitempty"`
	EnvVars       map[string]string `json:"environment_variables,omitempty"`
	SetupCommands []string          `json:"setup_commands,omitempty"`
	BlueprintID   string            `json:"blueprint_id,omitempty"`
}

// CreateDevbox provisions a new devbox.
func (c *Client) CreateDevbox(ctx context.Context, params CreateDevboxParams) (*Devbox, error) {
	var out Devbox
	if err := c.post(ctx, "/v1/devboxes", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShutdownDevbox shuts a devbox down.
func (c *Client) ShutdownDevbox(ctx context.Context, id string) (*Devbox, error) {
	var out Devbox
	if err := c.post(ctx, "/v1/devboxes/"+id+"/shutdown", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SuspendDevbox suspends a running devbox, preserving its disk.
func (c *Client) SuspendDevbox(ctx context.Context, id string) (*Devbox, error) {
	var out Devbox
	if err := c.post(ctx, "/v1/devboxes/"+id+"/suspend", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResumeDevbox resumes a suspended devbox.
func (c *Client) ResumeDevbox(ctx context.Context, id string) (*Devbox, error) {
	var out Devbox
	if err := c.post(ctx, "/v1/devboxes/"+id+"/resume", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SnapshotDisk starts an asynchronous disk snapshot of a devbox.
func (c *Client) SnapshotDisk(ctx context.Context, id string) (*DiskSnapshot, error) {
	var out DiskSnapshot
	if err := c.post(ctx, "/v1/devboxes/"+id+"/snapshot_disk_async", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SnapshotStatus queries the progress of an asynchronous snapshot.
func (c *Client) SnapshotStatus(ctx context.Context, snapshotID string) (*SnapshotStatusView, error) {
	var out SnapshotStatusView
	if err := c.get(ctx, "/v1/devboxes/disk_snapshots/"+snapshotID+"/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExecuteSync runs a command on a devbox and waits for it to finish.
func (c *Client) ExecuteSync(ctx context.Context, id, command string) (*ExecResult, error) {
	body := map[string]string{"command": command}
	var out ExecResult
	if err := c.post(ctx, "/v1/devboxes/"+id+"/execute_sync", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSSHKey mints an ephemeral SSH key for a devbox.
func (c *Client) CreateSSHKey(ctx context.Context, id string) (*SSHKey, error) {
	var out SSHKey
	if err := c.post(ctx, "/v1/devboxes/"+id+"/create_ssh_key", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LogList is a window of devbox or blueprint-build logs.
type LogList struct {
	Logs       []LogEntry `json:"logs"`
	HasMore    bool       `json:"has_more"`
	TotalCount int        `json:"total_count"`
}

// DevboxLogs fetches a devbox's execution logs.
func (c *Client) DevboxLogs(ctx context.Context, id string, limit int, startingAfter string) (*LogList, error) {
	var out LogList
	if err := c.get(ctx, "/v1/devboxes/"+id+"/logs", listQuery(limit, startingAfter), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DevboxLogPageFunc adapts a devbox's log listing to the pagination
// engine. Log lines have no natural id, so the cursor is the line's
// timestamp rendered by the caller-supplied ItemID.
func (c *Client) DevboxLogPageFunc(id string) pager.FetchFunc[LogEntry] {
	return func(ctx context.Context, req pager.Request) (pager.Page[LogEntry], error) {
		list, err := c.DevboxLogs(ctx, id, req.Limit, req.Cursor)
		if err != nil {
			return pager.Page[LogEntry]{}, err
		}
		return pager.Page[LogEntry]{
			Items:      list.Logs,
			HasMore:    list.HasMore,
			TotalCount: list.TotalCount,
		}, nil
	}
}

// SnapshotList is one window of the disk snapshot listing.
type SnapshotList struct {
	Snapshots  []DiskSnapshot `json:"snapshots"`
	HasMore    bool           `json:"has_more"`
	TotalCount int            `json:"total_count"`
}

// ListSnapshots fetches one page of devbox disk snapshots.
func (c *Client) ListSnapshots(ctx context.Context, limit int, startingAfter string) (*SnapshotList, error) {
	var out SnapshotList
	if err := c.get(ctx, "/v1/devboxes/disk_snapshots", listQuery(limit, startingAfter), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SnapshotPageFunc adapts the snapshot listing to the pagination engine.
func (c *Client) SnapshotPageFunc() pager.FetchFunc[DiskSnapshot] {
	return func(ctx context.Context, req pager.Request) (pager.Page[DiskSnapshot], error) {
		list, err := c.ListSnapshots(ctx, req.Limit, req.Cursor)
		if err != nil {
			return pager.Page[DiskSnapshot]{}, err
		}
		return pager.Page[DiskSnapshot]{
			Items:      list.Snapshots,
			HasMore:    list.HasMore,
			TotalCount: list.TotalCount,
		}, nil
	}
}
