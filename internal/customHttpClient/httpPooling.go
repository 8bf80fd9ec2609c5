package customHttpClient

import (
	"net/http"

	"github.com/YasinSaleem/legal-doc-ai/internal/config"
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

var pooledClient = &http.Client{Transport: customTransport}

// Pooled is the shared outbound client for AI backends: every generation
// request makes several model calls in a row, so connections must be reused.
func Pooled() *http.Client {
	return pooledClient
}
