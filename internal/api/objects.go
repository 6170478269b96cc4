package api

import (
	"context"

	"github.com/runloopai/rlctl/internal/pager"
)

// ObjectListParams filters an object listing.
type ObjectListParams struct {
	Limit         int
	StartingAfter string
	Name          string
	ContentType   string
	State         string
	Search        string
	Public        bool
}

// ObjectList is one window of the object listing.
type ObjectList struct {
	Objects    []Object `json:"objects"`
	HasMore    bool     `json:"has_more"`
	TotalCount int      `json:"total_count"`
}

// ListObjects fetches one page of objects. With params.Public set it
// lists the public object store instead of the account's own.
func (c *Client) ListObjects(ctx context.Context, params ObjectListParams) (*ObjectList, error) {
	q := listQuery(params.Limit, params.StartingAfter)
	if params.Name != "" {
		q.Set("name", params.Name)
	}
	if params.ContentType != "" {
		q.Set("content_type", params.ContentType)
	}
	if params.State != "" {
		q.Set("state", params.State)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}

	path := "/v1/objects"
	if params.Public {
		path = "/v1/objects/list_public"
	}

	var out ObjectList
	if err := c.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ObjectPageFunc adapts the object listing to the pagination engine.
func (c *Client) ObjectPageFunc(params ObjectListParams) pager.FetchFunc[Object] {
	return func(ctx context.Context, req pager.Request) (pager.Page[Object], error) {
		p := params
		p.Limit = req.Limit
		p.StartingAfter = req.Cursor
		list, err := c.ListObjects(ctx, p)
		if err != nil {
			return pager.Page[Object]{}, err
		}
		return pager.Page[Object]{
			Items:      list.Objects,
			HasMore:    list.HasMore,
			TotalCount: list.TotalCount,
		}, nil
	}
}

// GetObject retrieves a single object.
func (c *Client) GetObject(ctx context.Context, id string) (*Object, error) {
	var out Object
	if err := c.get(ctx, "/v1/objects/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ObjectDownloadURL mints a presigned download URL valid for the given
// number of seconds.
func (c *Client) ObjectDownloadURL(ctx context.Context, id string, durationSeconds int) (string, error) {
	body := map[string]int{"duration_seconds": durationSeconds}
	var out struct {
		DownloadURL string `json:"download_url"`
	}
	if err := c.post(ctx, "/v1/objects/"+id+"/download_url", body, &out); err != nil {
		return "", err
	}
	return out.DownloadURL, nil
}
