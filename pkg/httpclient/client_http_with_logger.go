package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/snapfeedhq/snapfeed/pkg/ctxlogger"
)

type HTTPClientTransport struct {
	Transport http.RoundTripper
	ctx       context.Context
}

func NewHTTPClientTransport(ctx context.Context, transport http.RoundTripper) *HTTPClientTransport {
	if transport == nil {
		transport = &http.Transport{
			DisableKeepAlives:   false,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		}
	}
	return &HTTPClientTransport{
		Transport: transport,
		ctx:       ctx,
	}
}

func (t *HTTPClientTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := ctxlogger.GetLogger(t.ctx)

	logger.Info("outbound request started",
		"method", req.Method,
		"url", req.URL.String(),
	)

	resp, err := t.Transport.RoundTrip(req)

	elapsed := time.Since(start)

	if err != nil {
		logger.Error("outbound request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err.Error(),
			"elapsed_time", elapsed,
		)
		return nil, err
	}

	logger.Info("outbound request completed",
		"method", req.Method,
		"url", req.URL.String(),
		"status_code", resp.StatusCode,
		"elapsed_time", elapsed,
	)

	return resp, nil
}

// NewHTTPClientWithLogging returns an http.Client whose transport logs every
// request through the logger carried by ctx.
func NewHTTPClientWithLogging(ctx context.Context) *http.Client {
	transport := NewHTTPClientTransport(ctx, nil)
	return &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}
}
