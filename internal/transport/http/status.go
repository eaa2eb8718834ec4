package http

import "net/http"

const (
	StatusOK                 = http.StatusOK                 // 200
	StatusServiceUnavailable = http.StatusServiceUnavailable // 503
)
