package httpclient

import (
	"context"
	"net/http"
)

type metadataKey int

const (
	requestIDKey metadataKey = iota
	correlationIDKey
)

// metadataHeaders maps each context key to the outbound header carrying it.
var metadataHeaders = map[metadataKey]string{
	requestIDKey:     "X-Request-ID",
	correlationIDKey: "X-Correlation-ID",
}

// WithRequestID stores the inbound request ID for outbound calls made with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithCorrelationID stores the correlation ID for outbound calls made with ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

func setMetadataHeaders(ctx context.Context, h http.Header) {
	for key, header := range metadataHeaders {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			h.Set(header, v)
		}
	}
}
