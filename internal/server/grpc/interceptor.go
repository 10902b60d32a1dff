package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	pb "github.com/dmitrijs2005/credkeeper/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const ownerEmailKey ctxKey = "ownerEmail"

const requestIDHeader = "x-request-id"

// protectedMethods require a valid bearer token.
var protectedMethods = map[string]bool{
	pb.AuthService_UpdateBiometric_FullMethodName: true,
	pb.AuthService_ListUsers_FullMethodName:       true,
	pb.AuthService_GetUser_FullMethodName:         true,
}

func ownerEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ownerEmailKey).(string)
	return email, ok && email != ""
}

func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 {
		return ""
	}
	v := strings.TrimSpace(values[0])
	if len(v) < len(common.BearerPrefix) || !strings.EqualFold(v[:len(common.BearerPrefix)], common.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(common.BearerPrefix):])
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if protectedMethods[info.FullMethod] {

		token := bearerToken(ctx)
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		claims, err := s.tokens.Parse(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}

		ctx = context.WithValue(ctx, ownerEmailKey, claims.Email)
	}

	return handler(ctx, req)
}

// observeInterceptor tags each call with a request id, logs its outcome and
// records metrics.
func (s *GRPCServer) observeInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	requestID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(requestIDHeader); len(v) > 0 {
			requestID = v[0]
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeader, requestID))

	resp, err := handler(ctx, req)

	code := status.Code(err)
	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.ObserveRPC(info.FullMethod, code.String(), elapsed)
	}

	s.logger.Debug(ctx, "rpc",
		"request_id", requestID,
		"method", info.FullMethod,
		"code", code.String(),
		"duration", elapsed,
	)

	return resp, err
}
