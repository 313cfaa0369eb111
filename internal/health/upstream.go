// SPDX-License-Identifier: MIT

package health

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// UpstreamChecker probes an upstream base URL. A transport failure marks
// the component unhealthy; any HTTP answer below 500 counts as reachable
// (the upstreams routinely 404 on bare roots).
type UpstreamChecker struct {
	name    string
	baseURL string
	client  *http.Client
}

// NewUpstreamChecker creates a reachability checker for an upstream.
func NewUpstreamChecker(name, baseURL string) *UpstreamChecker {
	return &UpstreamChecker{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *UpstreamChecker) Name() string {
	return c.name
}

func (c *UpstreamChecker) Check(ctx context.Context) CheckResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return CheckResult{Status: StatusUnhealthy, Error: err.Error()}
	}

	res, err := c.client.Do(req)
	if err != nil {
		return CheckResult{Status: StatusUnhealthy, Error: err.Error()}
	}
	defer res.Body.Close()

	if res.StatusCode >= 500 {
		return CheckResult{
			Status:  StatusDegraded,
			Message: fmt.Sprintf("upstream answered HTTP %d", res.StatusCode),
		}
	}
	return CheckResult{Status: StatusHealthy}
}

// StaticChecker reports a fixed result; used for feature toggles such as
// a video client running in degraded keyless mode.
type StaticChecker struct {
	name   string
	result CheckResult
}

// NewStaticChecker creates a checker with a fixed result.
func NewStaticChecker(name string, result CheckResult) *StaticChecker {
	return &StaticChecker{name: name, result: result}
}

func (c *StaticChecker) Name() string { return c.name }

func (c *StaticChecker) Check(context.Context) CheckResult { return c.result }
