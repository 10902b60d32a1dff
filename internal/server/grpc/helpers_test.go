package grpc

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/dmitrijs2005/credkeeper/internal/server/services"
)

type nopLogger = logging.Nop

// recordingLogger keeps error-level messages with their attributes.
type recordingLogger struct {
	mu     sync.Mutex
	errors []string
}

func (r *recordingLogger) Debug(context.Context, string, ...any) {}
func (r *recordingLogger) Info(context.Context, string, ...any)  {}
func (r *recordingLogger) Warn(context.Context, string, ...any)  {}
func (r *recordingLogger) Error(_ context.Context, msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprint(append([]any{msg}, args...)...))
}
func (r *recordingLogger) With(...any) logging.Logger { return r }

func (r *recordingLogger) lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}

// ---- fakes ----

type fakeAuth struct {
	regResp *models.Identity
	regErr  error

	loginResp *services.LoginResult
	loginErr  error

	bioResp *services.LoginResult
	bioErr  error

	updResp *models.Identity
	updErr  error

	listResp []*models.Identity
	listErr  error

	getResp *models.Identity
	getErr  error
	gotID   string

	gotEmail string
	gotKey   string
}

func (f *fakeAuth) Register(ctx context.Context, email, password string) (*models.Identity, error) {
	f.gotEmail = email
	return f.regResp, f.regErr
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	f.gotEmail = email
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) LoginWithBiometric(ctx context.Context, key string) (*services.LoginResult, error) {
	f.gotKey = key
	return f.bioResp, f.bioErr
}

func (f *fakeAuth) UpdateBiometric(ctx context.Context, ownerEmail, key string) (*models.Identity, error) {
	f.gotEmail = ownerEmail
	f.gotKey = key
	return f.updResp, f.updErr
}

func (f *fakeAuth) ListUsers(ctx context.Context) ([]*models.Identity, error) {
	return f.listResp, f.listErr
}

func (f *fakeAuth) GetUser(ctx context.Context, id string) (*models.Identity, error) {
	f.gotID = id
	return f.getResp, f.getErr
}
