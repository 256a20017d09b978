package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

type ctxKey string

const (
	peerIPKey    ctxKey = "peerIP"
	userAgentKey ctxKey = "userAgent"
)

const (
	fallbackIP        = "127.0.0.1"
	fallbackUserAgent = "Unknown"
)

// fingerprintInterceptor captures the caller's network address and user agent
// so session-opening handlers can bind them when the request itself carries
// none.
func (s *GRPCServer) fingerprintInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		if host, _, err := net.SplitHostPort(p.Addr.String()); err == nil {
			ctx = context.WithValue(ctx, peerIPKey, host)
		}
	}

	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get("user-agent")
		if len(values) > 0 {
			ctx = context.WithValue(ctx, userAgentKey, values[0])
		}
	}

	return handler(ctx, req)
}

// fingerprint resolves the ip/user-agent pair for a request: explicit request
// fields win, then interceptor-captured values, then placeholders.
func fingerprint(ctx context.Context, reqIP, reqUserAgent string) (string, string) {
	ip, userAgent := reqIP, reqUserAgent

	if ip == "" {
		if v, ok := ctx.Value(peerIPKey).(string); ok && v != "" {
			ip = v
		} else {
			ip = fallbackIP
		}
	}
	if userAgent == "" {
		if v, ok := ctx.Value(userAgentKey).(string); ok && v != "" {
			userAgent = v
		} else {
			userAgent = fallbackUserAgent
		}
	}

	return ip, userAgent
}
