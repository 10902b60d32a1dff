package client

import (
	"context"

	pb "github.com/dmitrijs2005/credkeeper/internal/proto"
)

type Client interface {
	Close() error
	Register(ctx context.Context, email, password string) (*pb.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	LoginWithBiometric(ctx context.Context, key string) (string, error)
	UpdateBiometric(ctx context.Context, key string) (*pb.User, error)
	ListUsers(ctx context.Context) ([]*pb.User, error)
	GetUser(ctx context.Context, id string) (*pb.User, error)
}
