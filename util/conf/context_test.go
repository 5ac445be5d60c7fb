package conf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-feedback/sampleapp/config"
	"github.com/lambda-feedback/sampleapp/util/conf"
)

func TestConfigFromContext(t *testing.T) {
	expected := config.Config{LogLevel: "debug", LogFormat: "development"}
	ctx := conf.ContextWithConfig(context.Background(), expected)

	actual, err := conf.GetConfigFromContext[config.Config](ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestConfigFromContext_Missing(t *testing.T) {
	_, err := conf.GetConfigFromContext[config.Config](context.Background())
	assert.ErrorIs(t, err, conf.ErrNoConfigInContext)
}

func TestConfigFromContext_WrongType(t *testing.T) {
	ctx := conf.ContextWithConfig(context.Background(), "not a config")

	_, err := conf.GetConfigFromContext[config.Config](ctx)
	assert.ErrorIs(t, err, conf.ErrInvalidConfigInContext)
}
