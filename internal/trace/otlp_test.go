package trace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EnvEndpoint, "")
	before := otel.GetTracerProvider()

	p, err := Setup(context.Background(), "test")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, before, otel.GetTracerProvider(), "global provider untouched")
}

func TestSetup_EnabledWithEndpointURL(t *testing.T) {
	t.Setenv(EnvEndpoint, "http://127.0.0.1:4318")
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	p, err := Setup(context.Background(), "test")
	require.NoError(t, err)
	require.True(t, p.Enabled())

	_, span := otel.Tracer("folio/test").Start(context.Background(), "page.mount")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	// Nothing listens on the endpoint; shutdown still returns once the
	// context is done.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Shutdown(ctx)
}

func TestSetup_ExporterHonoursEndpointURL(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/traces" {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Setenv(EnvEndpoint, srv.URL)
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	p, err := Setup(context.Background(), "test")
	require.NoError(t, err)

	_, span := otel.Tracer("folio/test").Start(context.Background(), "contact.submit")
	span.End()
	require.NoError(t, p.Shutdown(context.Background()))

	assert.Positive(t, hits.Load(), "spans should reach the collector at the configured URL")
}
