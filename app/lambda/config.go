package lambda

import (
	"fmt"
	"strings"
)

// ProxySource is the kind of event the Lambda function is
// invoked with.
type ProxySource string

const (
	ProxySourceApiGatewayV1 ProxySource = "API_GW_V1"
	ProxySourceApiGatewayV2 ProxySource = "API_GW_V2"
	ProxySourceAlb          ProxySource = "ALB"
)

func (p ProxySource) String() string {
	return string(p)
}

// ParseProxySource parses s case-insensitively.
func ParseProxySource(s string) (ProxySource, error) {
	source := ProxySource(strings.ToUpper(strings.TrimSpace(s)))

	switch source {
	case ProxySourceApiGatewayV1, ProxySourceApiGatewayV2, ProxySourceAlb:
		return source, nil
	default:
		return "", fmt.Errorf("invalid proxy source: %q", s)
	}
}

type Config struct {
	// ProxySource is the source of the AWS Lambda event.
	ProxySource ProxySource `conf:"lambda_proxy_source"`
}

// Normalize validates the config and canonicalizes its values.
func (c Config) Normalize() (Config, error) {
	source, err := ParseProxySource(c.ProxySource.String())
	if err != nil {
		return c, err
	}

	c.ProxySource = source

	return c, nil
}
