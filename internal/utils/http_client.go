package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. It embeds the client to expose all of its
// methods directly while leaving room for application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient with its own connection
// pool and the given request timeout. A zero timeout means no limit.
//
//	client := utils.NewHTTPClient(15 * time.Second)
//	resp, err := client.R().Get(serverURL + "/api/version/")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
