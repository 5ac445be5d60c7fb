package lambda

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/sampleapp/internal/server"
)

// LambdaHandlerParams represents the parameters required for
// the Lambda handler.
type LambdaHandlerParams struct {
	fx.In

	// Config is the configuration for the Lambda handler.
	Config Config

	// Handlers is a slice of HTTP handlers grouped together.
	Handlers []*server.HttpHandler `group:"handlers"`

	// Context is the context for the Lambda handler.
	Context context.Context

	// Logger is the logger for the Lambda handler.
	Logger *zap.Logger
}

// LambdaHandler serves the registered http handlers behind the
// AWS Lambda runtime interface client.
type LambdaHandler struct {
	config  Config
	ctx     context.Context
	cancel  context.CancelFunc
	handler http.Handler
	log     *zap.Logger
}

func NewLambdaHandler(params LambdaHandlerParams) *LambdaHandler {
	ctx, cancel := context.WithCancel(params.Context)

	return &LambdaHandler{
		config:  params.Config,
		ctx:     ctx,
		cancel:  cancel,
		handler: withSourceAddress(server.NewRouter(params.Handlers)),
		log:     params.Logger,
	}
}

// NewLifecycleHandler creates a LambdaHandler bound to the fx
// lifecycle.
func NewLifecycleHandler(params LambdaHandlerParams, lc fx.Lifecycle) *LambdaHandler {
	handler := NewLambdaHandler(params)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return handler.Start()
		},
		OnStop: func(context.Context) error {
			handler.Shutdown()
			return nil
		},
	})
	return handler
}

// Handler returns the http handler events are proxied to.
func (s *LambdaHandler) Handler() http.Handler {
	return s.handler
}

// Start runs the runtime interface client in a new goroutine.
// An error is returned if the proxy source is invalid.
func (s *LambdaHandler) Start() error {
	handler, err := s.proxyFunction()
	if err != nil {
		return err
	}

	s.log.Debug("using lambda event proxy", zap.Stringer("proxy_source", s.config.ProxySource))

	go lambda.StartWithOptions(handler, lambda.WithContext(s.ctx))

	return nil
}

// Shutdown cancels the runtime interface client.
func (s *LambdaHandler) Shutdown() {
	s.cancel()
}

func (s *LambdaHandler) proxyFunction() (any, error) {
	switch s.config.ProxySource {
	case ProxySourceApiGatewayV1:
		return httpadapter.New(s.handler).ProxyWithContext, nil
	case ProxySourceApiGatewayV2:
		return httpadapter.NewV2(s.handler).ProxyWithContext, nil
	case ProxySourceAlb:
		return httpadapter.NewALB(s.handler).ProxyWithContext, nil
	default:
		return nil, fmt.Errorf("invalid proxy source: %s", s.config.ProxySource)
	}
}

// withSourceAddress fills in the remote address of proxied
// requests from the event's request context, falling back to
// the first X-Forwarded-For hop.
func withSourceAddress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.RemoteAddr == "" {
			r.RemoteAddr = sourceAddress(r)
		}
		next.ServeHTTP(w, r)
	})
}

func sourceAddress(r *http.Request) string {
	ctx := r.Context()

	if rc, ok := core.GetAPIGatewayV2ContextFromContext(ctx); ok && rc.HTTP.SourceIP != "" {
		return rc.HTTP.SourceIP
	}

	if rc, ok := core.GetAPIGatewayContextFromContext(ctx); ok && rc.Identity.SourceIP != "" {
		return rc.Identity.SourceIP
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		hop, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(hop)
	}

	return ""
}
