package client

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	pb "github.com/dmitrijs2005/credkeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	lastRegisterReq *pb.RegisterRequest
	lastLoginReq    *pb.LoginRequest
	lastBioReq      *pb.BiometricLoginRequest
	lastUpdateReq   *pb.UpdateBiometricRequest
	lastGetReq      *pb.GetUserRequest

	registerResp *pb.UserResponse
	registerErr  error
	loginResp    *pb.LoginResponse
	loginErr     error
	updateResp   *pb.UserResponse
	updateErr    error
	listResp     *pb.ListUsersResponse
	getResp      *pb.UserResponse
	dirErr       error
}

func (f *fakePB) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.UserResponse, error) {
	f.lastRegisterReq = in
	return f.registerResp, f.registerErr
}
func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}
func (f *fakePB) LoginWithBiometric(ctx context.Context, in *pb.BiometricLoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.lastBioReq = in
	return f.loginResp, f.loginErr
}
func (f *fakePB) UpdateBiometric(ctx context.Context, in *pb.UpdateBiometricRequest, opts ...grpc.CallOption) (*pb.UserResponse, error) {
	f.lastUpdateReq = in
	return f.updateResp, f.updateErr
}

func (f *fakePB) ListUsers(ctx context.Context, in *pb.ListUsersRequest, opts ...grpc.CallOption) (*pb.ListUsersResponse, error) {
	return f.listResp, f.dirErr
}
func (f *fakePB) GetUser(ctx context.Context, in *pb.GetUserRequest, opts ...grpc.CallOption) (*pb.UserResponse, error) {
	f.lastGetReq = in
	return f.getResp, f.dirErr
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_AttachesBearerToken(t *testing.T) {
	c := &GRPCClient{accessToken: "A1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AuthorizationHeaderName)
		require.Len(t, toks, 1)
		require.Equal(t, "Bearer A1", toks[0])
		return nil
	}

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AuthorizationHeaderName, "Bearer stale")
	require.NoError(t, c.accessTokenInterceptor(ctx, "/svc/Method", nil, nil, nil, invoker))
}

func TestInterceptor_NoTokenNoHeader(t *testing.T) {
	c := &GRPCClient{}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(common.AuthorizationHeaderName))
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker))
}

func TestInterceptor_PassesErrorsThrough(t *testing.T) {
	c := &GRPCClient{accessToken: "X"}
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Internal, "boom")
	}
	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

/*************
 * method tests
 *************/

func TestLogin_StoresToken(t *testing.T) {
	f := &fakePB{loginResp: &pb.LoginResponse{Token: "T", User: &pb.User{Id: "1", Email: "a@b.c"}}}
	c := &GRPCClient{client: f}

	tok, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "T", tok)
	assert.Equal(t, "T", c.Token())
	assert.True(t, proto.Equal(&pb.LoginRequest{Email: "a@b.c", Password: "pw"}, f.lastLoginReq))
}

func TestLogin_Error(t *testing.T) {
	f := &fakePB{loginErr: status.Error(codes.Unauthenticated, "invalid credentials")}
	c := &GRPCClient{client: f}

	_, err := c.Login(context.Background(), "a@b.c", "pw")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.Token())
}

func TestLoginWithBiometric(t *testing.T) {
	f := &fakePB{loginResp: &pb.LoginResponse{Token: "B"}}
	c := &GRPCClient{client: f}

	tok, err := c.LoginWithBiometric(context.Background(), "bio")
	require.NoError(t, err)
	assert.Equal(t, "B", tok)
	assert.Equal(t, "bio", f.lastBioReq.BiometricKey)
}

func TestRegister(t *testing.T) {
	f := &fakePB{registerResp: &pb.UserResponse{User: &pb.User{Id: "42", Email: "a@b.c"}}}
	c := &GRPCClient{client: f}

	u, err := c.Register(context.Background(), "a@b.c", "Str0ng!pw")
	require.NoError(t, err)
	assert.Equal(t, "42", u.GetId())
	assert.Equal(t, "Str0ng!pw", f.lastRegisterReq.Password)
}

func TestUpdateBiometric_RequiresLogin(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}

	_, err := c.UpdateBiometric(context.Background(), "k")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, f.lastUpdateReq)
}

func TestUpdateBiometric(t *testing.T) {
	f := &fakePB{updateResp: &pb.UserResponse{User: &pb.User{Id: "1"}}}
	c := &GRPCClient{client: f, accessToken: "T"}

	u, err := c.UpdateBiometric(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "1", u.GetId())
	assert.Equal(t, "k", f.lastUpdateReq.BiometricKey)
}

func TestListUsers(t *testing.T) {
	f := &fakePB{listResp: &pb.ListUsersResponse{Users: []*pb.User{{Id: "1", Email: "a@b.c"}, {Id: "2", Email: "d@e.f"}}}}

	_, err := (&GRPCClient{client: f}).ListUsers(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	users, err := (&GRPCClient{client: f, accessToken: "T"}).ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "d@e.f", users[1].GetEmail())
}

func TestGetUser(t *testing.T) {
	f := &fakePB{getResp: &pb.UserResponse{User: &pb.User{Id: "7", Email: "a@b.c"}}}
	c := &GRPCClient{client: f, accessToken: "T"}

	u, err := c.GetUser(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", u.GetEmail())
	assert.Equal(t, "7", f.lastGetReq.GetId())

	f.dirErr = status.Error(codes.NotFound, "user not found")
	_, err = c.GetUser(context.Background(), "8")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"unauthenticated", status.Error(codes.Unauthenticated, "x"), ErrUnauthorized},
		{"permission", status.Error(codes.PermissionDenied, "x"), ErrUnauthorized},
		{"unavailable", status.Error(codes.Unavailable, "x"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "x"), ErrUnavailable},
		{"not found", status.Error(codes.NotFound, "user not found"), ErrNotFound},
		{"exists", status.Error(codes.AlreadyExists, "biometric key already used"), ErrAlreadyExists},
		{"invalid", status.Error(codes.InvalidArgument, "invalid input"), ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, c.mapError(tt.in), tt.want)
		})
	}

	assert.NoError(t, c.mapError(nil))

	other := c.mapError(status.Error(codes.Internal, "internal error"))
	require.Error(t, other)
	assert.Contains(t, other.Error(), "rpc error")

	plain := c.mapError(errors.New("plain"))
	assert.Contains(t, plain.Error(), "plain")
}

/*************
 * wire test over bufconn
 *************/

type echoServer struct {
	pb.UnimplementedAuthServiceServer
	gotAuth []string
}

func (e *echoServer) Register(ctx context.Context, in *pb.RegisterRequest) (*pb.UserResponse, error) {
	return &pb.UserResponse{User: &pb.User{Id: "1", Email: in.GetEmail()}}, nil
}
func (e *echoServer) Login(ctx context.Context, in *pb.LoginRequest) (*pb.LoginResponse, error) {
	if in.GetPassword() != "pw" {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	return &pb.LoginResponse{Token: "wire-token", User: &pb.User{Id: "1", Email: in.GetEmail()}}, nil
}
func (e *echoServer) LoginWithBiometric(ctx context.Context, in *pb.BiometricLoginRequest) (*pb.LoginResponse, error) {
	return nil, status.Error(codes.Unauthenticated, "invalid credentials")
}
func (e *echoServer) UpdateBiometric(ctx context.Context, in *pb.UpdateBiometricRequest) (*pb.UserResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	e.gotAuth = md.Get(common.AuthorizationHeaderName)
	return &pb.UserResponse{User: &pb.User{Id: "1"}}, nil
}

func TestGRPCClient_OverBufconn(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	echo := &echoServer{}
	pb.RegisterAuthServiceServer(srv, echo)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()

	_, err = c.Login(ctx, "a@b.c", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)

	tok, err := c.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "wire-token", tok)

	_, err = c.UpdateBiometric(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer wire-token"}, echo.gotAuth)

	// Methods the server does not implement surface as plain rpc errors.
	_, err = c.ListUsers(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unimplemented")
}
