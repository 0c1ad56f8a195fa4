package auth

import (
	"condoapp/internal/domain"
	"condoapp/internal/session"
)

// Next screen after an auth step.
const (
	NextHome            = "home"
	NextLinkCondominium = "link_condominium"
	NextLogin           = "login"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
	Role     domain.UserRole `json:"role" validate:"required,oneof=syndic resident"`
}

// loginResponse is the backend's POST /auth/login payload.
type loginResponse struct {
	Token string          `json:"token"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  domain.UserRole `json:"role"`
}

// SessionView is what the shell may know about the logged-in user.
type SessionView struct {
	UserID      int64               `json:"user_id"`
	Username    string              `json:"username"`
	Email       string              `json:"email"`
	Role        domain.UserRole     `json:"role"`
	IsSyndic    bool                `json:"is_syndic"`
	Linked      bool                `json:"linked"`
	Condominium *domain.Condominium `json:"condominium,omitempty"`
}

type LoginResult struct {
	Next    string      `json:"next"`
	Session SessionView `json:"session"`
}

type RegisterResult struct {
	Next    string `json:"next"`
	Message string `json:"message"`
}

func viewOf(sess session.Context) SessionView {
	v := SessionView{
		UserID:   sess.UserID(),
		Username: sess.Username(),
		Email:    sess.Email(),
		Role:     sess.Role(),
		IsSyndic: sess.IsSyndic(),
		Linked:   sess.Linked(),
	}
	if cond, ok := sess.Condominium(); ok {
		v.Condominium = &cond
	}
	return v
}
