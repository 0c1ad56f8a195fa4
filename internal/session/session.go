package session

import (
	"strings"

	"condoapp/internal/domain"
	"condoapp/internal/pkg/jwt"
)

// Record is the cached user/session written at login and link time.
type Record struct {
	Token       string
	Email       string
	Username    string
	Role        domain.UserRole
	UserID      int64
	// Linked is set when the backend reports the user as linked even if the
	// condominium itself was never fetched.
	Linked      bool
	Condominium *domain.Condominium
}

// Context is the read-only view of a session that screens are built with.
// The zero value is an anonymous session.
type Context struct {
	rec Record
}

func NewContext(rec Record) Context {
	if rec.UserID == 0 && rec.Token != "" {
		if claims, err := jwt.Decode(rec.Token); err == nil {
			rec.UserID = claims.UserID
			if rec.Role == "" {
				rec.Role = domain.UserRole(claims.Role)
			}
		}
	}
	if rec.Condominium != nil {
		c := *rec.Condominium
		c.Token = strings.ToUpper(strings.TrimSpace(c.Token))
		rec.Condominium = &c
	}
	return Context{rec: rec}
}

func (c Context) Token() string { return c.rec.Token }
func (c Context) Email() string { return c.rec.Email }
func (c Context) Username() string { return c.rec.Username }
func (c Context) Role() domain.UserRole { return c.rec.Role }
func (c Context) UserID() int64 { return c.rec.UserID }
func (c Context) IsSyndic() bool { return c.rec.Role == domain.RoleSyndic }
func (c Context) Authenticated() bool { return c.rec.Token != "" }
func (c Context) Linked() bool {
	return c.rec.Linked || (c.rec.Condominium != nil && c.rec.Condominium.Token != "")
}

// Condominium returns a copy of the linked condominium, if any.
func (c Context) Condominium() (domain.Condominium, bool) {
	if c.rec.Condominium == nil {
		return domain.Condominium{}, false
	}
	return *c.rec.Condominium, true
}

// Record returns a copy of the underlying record.
func (c Context) Record() Record {
	rec := c.rec
	if rec.Condominium != nil {
		cond := *rec.Condominium
		rec.Condominium = &cond
	}
	return rec
}
