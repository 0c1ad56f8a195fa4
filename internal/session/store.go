package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"condoapp/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// slot is the primary key of the single cached session row.
const slot = 1

var ErrNoSession = errors.New("no active session")

type sessionModel struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	Token              string    `gorm:"column:token"`
	Email              string    `gorm:"column:email"`
	Username           string    `gorm:"column:username"`
	Role               string    `gorm:"column:role"`
	UserID             int64     `gorm:"column:user_id"`
	Linked             bool      `gorm:"column:linked"`
	CondominiumID      *int64    `gorm:"column:condominium_id"`
	CondominiumName    string    `gorm:"column:condominium_name"`
	CondominiumToken   string    `gorm:"column:condominium_token"`
	CondominiumOwnerID int64     `gorm:"column:condominium_owner_id"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (sessionModel) TableName() string { return "session_cache" }

func toRecord(m sessionModel) Record {
	rec := Record{
		Token:    m.Token,
		Email:    m.Email,
		Username: m.Username,
		Role:     domain.UserRole(m.Role),
		UserID:   m.UserID,
		Linked:   m.Linked,
	}
	if m.CondominiumID != nil {
		rec.Condominium = &domain.Condominium{
			ID:      *m.CondominiumID,
			Name:    m.CondominiumName,
			Token:   m.CondominiumToken,
			OwnerID: m.CondominiumOwnerID,
		}
	}
	return rec
}

func toModel(rec Record) sessionModel {
	m := sessionModel{
		ID:       slot,
		Token:    rec.Token,
		Email:    rec.Email,
		Username: rec.Username,
		Role:     string(rec.Role),
		UserID:   rec.UserID,
		Linked:   rec.Linked,
	}
	if rec.Condominium != nil {
		id := rec.Condominium.ID
		m.CondominiumID = &id
		m.CondominiumName = rec.Condominium.Name
		m.CondominiumToken = rec.Condominium.Token
		m.CondominiumOwnerID = rec.Condominium.OwnerID
	}
	return m
}

// Store is the process-wide session cache backed by a local database. It is
// the only writer of session state; screens read through Context.
type Store struct {
	db *gorm.DB

	mu  sync.RWMutex
	cur *Context
}

func NewStore(ctx context.Context, db *gorm.DB) (*Store, error) {
	if err := db.WithContext(ctx).AutoMigrate(&sessionModel{}); err != nil {
		return nil, fmt.Errorf("migrate session cache: %w", err)
	}

	s := &Store{db: db}

	var m sessionModel
	err := db.WithContext(ctx).Where("id = ?", slot).First(&m).Error
	switch {
	case err == nil:
		c := NewContext(toRecord(m))
		s.cur = &c
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, fmt.Errorf("load session cache: %w", err)
	}

	return s, nil
}

// Current returns the active session, or false when nobody is logged in.
func (s *Store) Current() (Context, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return Context{}, false
	}
	return *s.cur, true
}

// Token implements apiclient.TokenSource.
func (s *Store) Token(context.Context) string {
	c, _ := s.Current()
	return c.Token()
}

// Save replaces the cached session.
func (s *Store) Save(ctx context.Context, rec Record) (Context, error) {
	c := NewContext(rec)

	m := toModel(c.Record())
	m.UpdatedAt = time.Now()
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
	if err != nil {
		return Context{}, fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	s.cur = &c
	s.mu.Unlock()
	return c, nil
}

// LinkCondominium stores the condominium the current user is linked to.
func (s *Store) LinkCondominium(ctx context.Context, cond domain.Condominium) (Context, error) {
	cur, ok := s.Current()
	if !ok {
		return Context{}, ErrNoSession
	}
	rec := cur.Record()
	rec.Condominium = &cond
	rec.Linked = true
	return s.Save(ctx, rec)
}

// Clear drops the cached session.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("id = ?", slot).Delete(&sessionModel{}).Error; err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.mu.Lock()
	s.cur = nil
	s.mu.Unlock()
	return nil
}
