package api

import (
	"context"

	"github.com/runloopai/rlctl/internal/pager"
)

// BlueprintList is one window of the blueprint listing.
type BlueprintList struct {
	Blueprints []Blueprint `json:"blueprints"`
	HasMore    bool        `json:"has_more"`
	TotalCount int         `json:"total_count"`
}

// BlueprintListParams filters a blueprint listing.
type BlueprintListParams struct {
	Limit         int
	StartingAfter string
	Name          string
}

// ListBlueprints fetches one page of blueprints.
func (c *Client) ListBlueprints(ctx context.Context, params BlueprintListParams) (*BlueprintList, error) {
	q := listQuery(params.Limit, params.StartingAfter)
	if params.Name != "" {
		q.Set("name", params.Name)
	}

	var out BlueprintList
	if err := c.get(ctx, "/v1/blueprints", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BlueprintPageFunc adapts the blueprint listing to the pagination engine.
func (c *Client) BlueprintPageFunc(name string) pager.FetchFunc[Blueprint] {
	return func(ctx context.Context, req pager.Request) (pager.Page[Blueprint], error) {
		list, err := c.ListBlueprints(ctx, BlueprintListParams{
			Limit:         req.Limit,
			StartingAfter: req.Cursor,
			Name:          name,
		})
		if err != nil {
			return pager.Page[Blueprint]{}, err
		}
		return pager.Page[Blueprint]{
			Items:      list.Blueprints,
			HasMore:    list.HasMore,
			TotalCount: list.TotalCount,
		}, nil
	}
}

// GetBlueprint retrieves a single blueprint.
func (c *Client) GetBlueprint(ctx context.Context, id string) (*Blueprint, error) {
	var out Blueprint
	if err := c.get(ctx, "/v1/blueprints/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBlueprintParams configures a new blueprint.
type CreateBlueprintParams struct {
	Name                string            `json:"name"`
	Dockerfile          string            `json:"dockerfile,omitempty"`
	SystemSetupCommands []string          `json:"system_setup_commands,omitempty"`
	LaunchParameters    *LaunchParameters `json:"launch_parameters,omitempty"`
}

// CreateBlueprint builds a new blueprint.
func (c *Client) CreateBlueprint(ctx context.Context, params CreateBlueprintParams) (*Blueprint, error) {
	var out Blueprint
	if err := c.post(ctx, "/v1/blueprints", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PreviewBlueprint renders the Dockerfile a create call would build,
// without building it.
func (c *Client) PreviewBlueprint(ctx context.Context, params CreateBlueprintParams) (*Blueprint, error) {
	var out Blueprint
	if err := c.post(ctx, "/v1/blueprints/preview", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BlueprintLogs fetches a blueprint's build logs.
func (c *Client) BlueprintLogs(ctx context.Context, id string) (*LogList, error) {
	var out LogList
	if err := c.get(ctx, "/v1/blueprints/"+id+"/logs", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
