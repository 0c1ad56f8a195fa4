package devbackend

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"condoapp/internal/domain"
	"condoapp/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenAttempts = 5

type Service struct {
	repo *Repository
	jwt  *jwt.Service
}

func NewService(repo *Repository, jwtService *jwt.Service) *Service {
	return &Service{repo: repo, jwt: jwtService}
}

func (s *Service) Register(ctx context.Context, req registerRequest) (*userModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &userModel{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Role:         req.Role,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	log.Printf("backend_user_registered user_id=%d role=%s", u.ID, u.Role)
	return u, nil
}

func (s *Service) Login(ctx context.Context, req loginRequest) (loginResponse, error) {
	u, err := s.repo.UserByEmail(ctx, req.Email)
	if errors.Is(err, ErrUserNotFound) {
		return loginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return loginResponse{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return loginResponse{}, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Role)
	if err != nil {
		return loginResponse{}, fmt.Errorf("issue token: %w", err)
	}
	return loginResponse{Token: token, Email: u.Email, Name: u.Name, Role: u.Role}, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (domain.Me, error) {
	u, err := s.repo.UserByID(ctx, userID)
	if err != nil {
		return domain.Me{}, err
	}
	return domain.Me{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     domain.UserRole(u.Role),
		IsLinked: u.CondominiumID != nil,
	}, nil
}

// CreateCondominium registers a condominium owned by the caller under a fresh
// join token. The caller still has to link with that token.
func (s *Service) CreateCondominium(ctx context.Context, ownerID int64, name string) (domain.Condominium, error) {
	for attempt := 0; attempt < tokenAttempts; attempt++ {
		m := &condominiumModel{Name: strings.TrimSpace(name), Token: newJoinToken(), OwnerID: ownerID}
		err := s.repo.CreateCondominium(ctx, m)
		if err == nil {
			log.Printf("backend_condominium_created id=%d owner_id=%d", m.ID, ownerID)
			return toCondominium(*m), nil
		}
		if !isUniqueViolation(err) {
			return domain.Condominium{}, err
		}
	}
	return domain.Condominium{}, errors.New("could not allocate a condominium token")
}

func (s *Service) Link(ctx context.Context, userID int64, token string) (domain.Condominium, error) {
	c, err := s.repo.CondominiumByToken(ctx, token)
	if err != nil {
		return domain.Condominium{}, err
	}
	if err := s.repo.LinkUser(ctx, userID, c.ID); err != nil {
		return domain.Condominium{}, err
	}
	log.Printf("backend_user_linked user_id=%d condominium_id=%d", userID, c.ID)
	return toCondominium(*c), nil
}

// CondominiumOf returns the condominium id the user is linked to.
func (s *Service) CondominiumOf(ctx context.Context, userID int64) (int64, error) {
	u, err := s.repo.UserByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if u.CondominiumID == nil {
		return 0, ErrNotLinked
	}
	return *u.CondominiumID, nil
}

func newJoinToken() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}

func toCondominium(m condominiumModel) domain.Condominium {
	return domain.Condominium{ID: m.ID, Name: m.Name, Token: m.Token, OwnerID: m.OwnerID}
}
