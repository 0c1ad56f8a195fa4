package auth

import (
	"context"
	"fmt"
	"log"
	"strings"

	"condoapp/internal/domain"
	"condoapp/internal/pkg/validator"
	"condoapp/internal/session"
)

// Service drives login, registration and logout against the backend and
// keeps the session cache in step.
type Service struct {
	api       API
	store     SessionStore
	resetters []Resetter
}

func NewService(api API, store SessionStore, resetters ...Resetter) *Service {
	return &Service{api: api, store: store, resetters: resetters}
}

// Login authenticates, caches the session and asks the backend whether the
// user is already linked to a condominium. A failing /auth/me sends the user
// to the link screen.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	if errs := validator.Validate(req); errs != nil {
		return LoginResult{}, &ValidationError{Fields: errs}
	}

	var resp loginResponse
	if err := s.api.Post(ctx, "/auth/login", req, &resp); err != nil {
		log.Printf("auth_login_failed email=%s error=%q", req.Email, err.Error())
		return LoginResult{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	sess, err := s.store.Save(ctx, session.Record{
		Token:    resp.Token,
		Email:    resp.Email,
		Username: resp.Name,
		Role:     resp.Role,
	})
	if err != nil {
		return LoginResult{}, err
	}

	var me domain.Me
	if err := s.api.Get(ctx, "/auth/me", &me); err != nil {
		log.Printf("auth_me_failed email=%s error=%q", req.Email, err.Error())
		return LoginResult{Next: NextLinkCondominium, Session: viewOf(sess)}, nil
	}

	rec := sess.Record()
	if me.ID > 0 {
		rec.UserID = me.ID
	}
	rec.Linked = me.IsLinked
	if sess, err = s.store.Save(ctx, rec); err != nil {
		return LoginResult{}, err
	}

	next := NextLinkCondominium
	if me.IsLinked {
		next = NextHome
	}
	return LoginResult{Next: next, Session: viewOf(sess)}, nil
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (RegisterResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if errs := validator.Validate(req); errs != nil {
		return RegisterResult{}, &ValidationError{Fields: errs}
	}

	if err := s.api.Post(ctx, "/auth/register", req, nil); err != nil {
		log.Printf("auth_register_failed email=%s role=%s error=%q", req.Email, req.Role, err.Error())
		return RegisterResult{}, fmt.Errorf("%w: %w", ErrRegisterFailed, err)
	}

	return RegisterResult{Next: NextLogin, Message: "Conta criada com sucesso!"}, nil
}

// Current returns the cached session, if any.
func (s *Service) Current() (SessionView, bool) {
	sess, ok := s.store.Current()
	if !ok {
		return SessionView{}, false
	}
	return viewOf(sess), true
}

// Logout clears the session cache and every per-user screen.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	for _, r := range s.resetters {
		r.Reset()
	}
	return nil
}
