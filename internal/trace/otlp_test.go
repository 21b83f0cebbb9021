package trace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOTLPExporter_EndpointForms(t *testing.T) {
	for _, endpoint := range []string{
		"http://localhost:4318",
		"https://collector.example:4318/v1/traces",
		"localhost:4318",
	} {
		exp, err := NewOTLPExporter(context.Background(), endpoint, "")
		require.NoError(t, err, endpoint)
		require.NotNil(t, exp, endpoint)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		assert.NoError(t, exp.Shutdown(ctx), endpoint)
		cancel()
	}
}

func TestNewOTLPExporter_RejectsBadURL(t *testing.T) {
	for _, endpoint := range []string{
		"ftp://localhost:4318",
		"http://",
		"http://[::1",
	} {
		exp, err := NewOTLPExporter(context.Background(), endpoint, "")
		assert.Error(t, err, endpoint)
		assert.Nil(t, exp, endpoint)
	}
}

func TestEndpointOptions(t *testing.T) {
	opts, err := endpointOptions("localhost:4318")
	require.NoError(t, err)
	assert.Len(t, opts, 2, "bare host:port is sent insecure")

	opts, err = endpointOptions("http://localhost:4318")
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}
