package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
)

// LoginResult is a signed token together with the identity it was issued for.
type LoginResult struct {
	Token    string
	Identity models.Identity
}

// AuthService is the entry point used by the transport layer.
type AuthService struct {
	validator *CredentialValidator
	matcher   *BiometricMatcher
	registrar *Registrar
	directory *Directory
	issuer    TokenIssuer
}

func NewAuthService(v *CredentialValidator, m *BiometricMatcher, r *Registrar, d *Directory, i TokenIssuer) *AuthService {
	return &AuthService{validator: v, matcher: m, registrar: r, directory: d, issuer: i}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*models.Identity, error) {
	return s.registrar.Register(ctx, email, password)
}

// Login validates email and password and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	id, err := s.validator.Validate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.result(*id)
}

// LoginWithBiometric matches key and issues a token.
func (s *AuthService) LoginWithBiometric(ctx context.Context, key string) (*LoginResult, error) {
	id, err := s.matcher.MatchByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.result(*id)
}

// UpdateBiometric rotates the biometric key of ownerEmail and returns the
// identity as it was before the change.
func (s *AuthService) UpdateBiometric(ctx context.Context, ownerEmail, key string) (*models.Identity, error) {
	return s.matcher.Rotate(ctx, ownerEmail, key)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*models.Identity, error) {
	return s.directory.ListUsers(ctx)
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*models.Identity, error) {
	return s.directory.GetUser(ctx, id)
}

// IssueToken signs a token for id. Any failure is an internal fault.
func (s *AuthService) IssueToken(id models.Identity) (string, error) {
	token, err := s.issuer.Issue(id)
	if err != nil {
		if errors.Is(err, common.ErrorInternal) {
			return "", err
		}
		return "", common.Internal("issue token", err)
	}
	return token, nil
}

func (s *AuthService) result(id models.Identity) (*LoginResult, error) {
	token, err := s.IssueToken(id)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Identity: id}, nil
}
