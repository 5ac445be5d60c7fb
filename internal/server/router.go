package server

import "net/http"

// CatchAllPattern is the pattern matching every request.
const CatchAllPattern = "/"

// NewRouter returns the http handler for the handler group. A
// lone catch-all handler is served directly, since http.ServeMux
// redirects unclean paths such as //x or /a/../b instead of
// dispatching them.
func NewRouter(handlers []*HttpHandler) http.Handler {
	if len(handlers) == 1 && handlers[0].Name == CatchAllPattern {
		return handlers[0].Handler
	}

	mux := http.NewServeMux()

	for _, handler := range handlers {
		mux.Handle(handler.Name, handler.Handler)
	}

	return mux
}
