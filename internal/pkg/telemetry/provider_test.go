package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/hol-api/internal/pkg/telemetry"
)

func TestSetupNoopWithoutEndpoint(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{
		ServiceName: "hol-api",
		Enabled:     true,
	})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupNoopWhenDisabled(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{
		ServiceName: "hol-api",
		Endpoint:    "http://localhost:4318",
	})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupRequiresServiceName(t *testing.T) {
	_, err := telemetry.Setup(context.Background(), telemetry.Config{
		Endpoint: "http://localhost:4318",
		Enabled:  true,
	})
	assert.Error(t, err)
}

func TestSetupCreatesProvider(t *testing.T) {
	// non-routable so nothing is exported
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{
		ServiceName: "hol-api",
		Endpoint:    "http://192.0.2.1:4318",
		Enabled:     true,
	})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
