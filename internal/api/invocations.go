package api

import "context"

// GetInvocation retrieves a single function invocation.
func (c *Client) GetInvocation(ctx context.Context, id string) (*Invocation, error) {
	var out Invocation
	if err := c.get(ctx, "/v1/functions/invocations/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
