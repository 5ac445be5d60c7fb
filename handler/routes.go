package handler

import (
	"github.com/lambda-feedback/sampleapp/internal/server"
)

// NewRootRoute mounts the handler on the catch-all pattern, so
// every method and path reaches it.
func NewRootRoute(handler *RequestHandler) server.HttpHandlerResult {
	return server.AsHttpHandler(server.CatchAllPattern, handler)
}
