package condominium

import (
	"context"
	"fmt"
	"log"
	"strings"

	"condoapp/internal/domain"
	"condoapp/internal/session"
)

const nextHome = "home"

type Service struct {
	api   API
	store SessionStore
}

func NewService(api API, store SessionStore) *Service {
	return &Service{api: api, store: store}
}

// NormalizeToken trims and upper-cases a condominium token.
func NormalizeToken(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}

// Link attaches the user to the condominium identified by input. When the
// token is rejected and the user is a syndic, a condominium named after the
// input is created and linked instead.
func (s *Service) Link(ctx context.Context, sess session.Context, input string) (LinkResult, error) {
	if sess.Linked() {
		res := LinkResult{Next: nextHome}
		if cond, ok := sess.Condominium(); ok {
			res.Condominium = &cond
		}
		return res, nil
	}

	if NormalizeToken(input) == "" {
		return LinkResult{}, ErrTokenRequired
	}

	linked, err := s.link(ctx, sess, input)
	if err == nil {
		return s.finish(ctx, linked.Condominium, false, "Condomínio vinculado com sucesso!")
	}
	if !sess.IsSyndic() {
		return LinkResult{}, err
	}

	var created domain.CondominiumCreated
	if err := s.api.Post(ctx, "/condominium/create", createBody{Name: strings.TrimSpace(input)}, &created); err != nil {
		log.Printf("condominium_create_failed user_id=%d error=%q", sess.UserID(), err.Error())
		return LinkResult{}, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	linked, err = s.link(ctx, sess, created.Condominium.Token)
	if err != nil {
		return LinkResult{}, err
	}
	msg := fmt.Sprintf("Condomínio criado com sucesso! Não esqueça de salvar o token: %s", created.Condominium.Token)
	return s.finish(ctx, linked.Condominium, true, msg)
}

func (s *Service) link(ctx context.Context, sess session.Context, token string) (domain.CondominiumLinked, error) {
	var out domain.CondominiumLinked
	body := linkBody{UserToken: sess.Token(), CondominiumToken: NormalizeToken(token)}
	if err := s.api.Post(ctx, "/condominios/link", body, &out); err != nil {
		log.Printf("condominium_link_failed user_id=%d token=%s error=%q", sess.UserID(), body.CondominiumToken, err.Error())
		return out, fmt.Errorf("%w: %w", ErrLinkFailed, err)
	}
	return out, nil
}

func (s *Service) finish(ctx context.Context, cond domain.Condominium, created bool, msg string) (LinkResult, error) {
	sess, err := s.store.LinkCondominium(ctx, cond)
	if err != nil {
		return LinkResult{}, err
	}
	stored, _ := sess.Condominium()
	return LinkResult{Next: nextHome, Message: msg, Created: created, Condominium: &stored}, nil
}
