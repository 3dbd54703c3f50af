package ratelimit

import "net/http"

// unlimited is returned for routes that are never throttled.
var unlimited = &EndpointConfig{Path: "/health", Method: http.MethodGet}

// MatchEndpoint returns the configuration for the route identified by method
// and path, or nil when the route should use the default limit. Routes match
// exactly. The health check is always unlimited.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == unlimited.Path && method == unlimited.Method {
		return unlimited
	}
	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}
	return nil
}
