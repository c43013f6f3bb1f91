package alor

import (
	"context"
	"net/http"
	"time"
)

// GetTime возвращает текущее время биржи. При любой ошибке — нулевое время.
func (c *Client) GetTime(ctx context.Context, auth bool) time.Time {
	if err := c.SendRequest(ctx, "/md/v2/time", nil, auth, http.MethodGet); err != nil {
		return time.Time{}
	}
	if !c.IsResponseStatusCode(http.StatusOK) {
		return time.Time{}
	}
	unix, err := c.ResponseAsInteger()
	if err != nil {
		return time.Time{}
	}
	return time.Unix(unix, 0)
}
