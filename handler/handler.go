package handler

import (
	"net"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/sampleapp/util/logging"
)

type RequestHandlerParams struct {
	fx.In

	Access *logging.AccessLogger
	Log    *zap.Logger
}

func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		access: params.Access,
		log:    params.Log,
	}
}

// RequestHandler answers every request with an empty 200 and
// records the peer address in the access log. Method, path,
// headers and body are ignored.
type RequestHandler struct {
	access *logging.AccessLogger
	log    *zap.Logger
}

func (h *RequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	peer := PeerAddress(r)

	h.log.Debug("request",
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.String("remote", r.RemoteAddr),
	)

	h.access.Request(peer)

	w.WriteHeader(http.StatusOK)
}

// PeerAddress returns the host part of the request's remote
// address. Addresses without a port are returned as is.
func PeerAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
