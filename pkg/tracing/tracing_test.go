package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func TestSetup_NoEndpointIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.Config{}, logger.NewNopLogger(), "portfolio-api")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Contains(t, Sampler(0).Description(), "root:AlwaysOffSampler")
	assert.Contains(t, Sampler(1.5).Description(), "root:AlwaysOnSampler")
	assert.Contains(t, Sampler(0.25).Description(), "root:TraceIDRatioBased{0.25}")
}

func TestNewResource(t *testing.T) {
	var cfg config.Config
	cfg.App.Version = "1.2.3"
	cfg.App.Env = "staging"

	res := NewResource(cfg, "portfolio-api")

	attrs := map[attribute.Key]string{}
	for _, kv := range res.Attributes() {
		attrs[kv.Key] = kv.Value.Emit()
	}
	assert.Equal(t, "portfolio-api", attrs["service.name"])
	assert.Equal(t, "1.2.3", attrs["service.version"])
	assert.Equal(t, "staging", attrs["deployment.environment.name"])
}
