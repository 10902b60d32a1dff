package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	pb "github.com/dmitrijs2005/credkeeper/internal/proto"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toUser(id *models.Identity) *pb.User {
	return &pb.User{
		Id:        id.ID,
		Email:     id.Email,
		CreatedAt: timestamppb.New(id.CreatedAt),
		UpdatedAt: timestamppb.New(id.UpdatedAt),
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.UserResponse, error) {

	id, err := s.auth.Register(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", id.ID)
	return &pb.UserResponse{User: toUser(id)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	res, err := s.auth.Login(ctx, req.GetEmail(), req.GetPassword())
	s.observeAttempt("password", err == nil)
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return &pb.LoginResponse{Token: res.Token, User: toUser(&res.Identity)}, nil
}

func (s *GRPCServer) LoginWithBiometric(ctx context.Context, req *pb.BiometricLoginRequest) (*pb.LoginResponse, error) {

	res, err := s.auth.LoginWithBiometric(ctx, req.GetBiometricKey())
	s.observeAttempt("biometric", err == nil)
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return &pb.LoginResponse{Token: res.Token, User: toUser(&res.Identity)}, nil
}

func (s *GRPCServer) UpdateBiometric(ctx context.Context, req *pb.UpdateBiometricRequest) (*pb.UserResponse, error) {

	email, ok := ownerEmailFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	id, err := s.auth.UpdateBiometric(ctx, email, req.GetBiometricKey())
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	s.logger.Info(ctx, "Biometric key rotated", "user_id", id.ID)
	return &pb.UserResponse{User: toUser(id)}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, _ *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {

	ids, err := s.auth.ListUsers(ctx)
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	resp := &pb.ListUsersResponse{Users: make([]*pb.User, 0, len(ids))}
	for _, id := range ids {
		resp.Users = append(resp.Users, toUser(id))
	}
	return resp, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.UserResponse, error) {

	id, err := s.auth.GetUser(ctx, req.GetId())
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return &pb.UserResponse{User: toUser(id)}, nil
}

func (s *GRPCServer) observeAttempt(kind string, ok bool) {
	if s.metrics != nil {
		s.metrics.ObserveAttempt(kind, ok)
	}
}

// statusFromError maps core errors onto gRPC statuses. Anything unknown
// becomes a generic Internal status and its cause is logged, never returned.
func (s *GRPCServer) statusFromError(ctx context.Context, err error) error {
	for _, m := range []struct {
		target error
		code   codes.Code
		msg    string
	}{
		{common.ErrorInvalidCredentials, codes.Unauthenticated, common.ErrorInvalidCredentials.Error()},
		{common.ErrorNotFound, codes.NotFound, common.ErrorNotFound.Error()},
		{common.ErrorAlreadyInUse, codes.AlreadyExists, common.ErrorAlreadyInUse.Error()},
		{common.ErrorAlreadyExists, codes.AlreadyExists, common.ErrorAlreadyExists.Error()},
		{common.ErrorInvalidInput, codes.InvalidArgument, common.ErrorInvalidInput.Error()},
		{common.ErrorWeakPassword, codes.InvalidArgument, common.ErrorWeakPassword.Error()},
		{common.ErrInvalidToken, codes.Unauthenticated, "unauthorized"},
		{common.ErrTokenExpired, codes.Unauthenticated, "unauthorized"},
	} {
		if errors.Is(err, m.target) {
			return status.Error(m.code, m.msg)
		}
	}

	if op, cause, ok := common.InternalCause(err); ok {
		s.logger.Error(ctx, "internal fault", "op", op, "error", cause)
	} else {
		s.logger.Error(ctx, "unexpected error", "error", err)
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
