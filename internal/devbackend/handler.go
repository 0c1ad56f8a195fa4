package devbackend

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"condoapp/internal/domain"
	"condoapp/internal/middleware"
	"condoapp/internal/pkg/jwt"
	"condoapp/internal/pkg/response"
	"condoapp/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

const maxImageBytes = 10 << 20

type Handler struct {
	service *Service
	repo    *Repository
	jwt     *jwt.Service
}

func NewHandler(service *Service, repo *Repository, jwtService *jwt.Service) *Handler {
	return &Handler{service: service, repo: repo, jwt: jwtService}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
	rg.GET("/images/:id", h.Image)

	authed := rg.Group("")
	authed.Use(middleware.JWTAuth(h.jwt))
	authed.GET("/auth/me", h.Me)
	authed.POST("/condominium/create", middleware.SyndicOnly(), h.CreateCondominium)
	authed.POST("/condominios/link", h.Link)

	linked := authed.Group("")
	linked.Use(h.requireCondominium())
	linked.GET("/reservas", h.Resources)
	linked.POST("/reservas", middleware.SyndicOnly(), h.CreateResource)
	linked.GET("/reservas/logs/:id", h.BookingLogs)
	linked.POST("/reservas/logs", h.CreateBookingLog)
	linked.GET("/notices", h.Notices)
	linked.POST("/notices", middleware.SyndicOnly(), h.CreateNotice)
	linked.DELETE("/notices/:id", middleware.SyndicOnly(), h.DeleteNotice)
	linked.GET("/rules", h.Rules)
	linked.POST("/rules", middleware.SyndicOnly(), h.CreateRule)
	linked.GET("/ocorrencias", h.Occurrences)
	linked.POST("/ocorrencias", h.CreateOccurrence)
	linked.PUT("/ocorrencias/:id", middleware.SyndicOnly(), h.UpdateOccurrence)
	linked.DELETE("/ocorrencias/:id", middleware.SyndicOnly(), h.DeleteOccurrence)
	linked.GET("/financeiro", h.Installments)
	linked.POST("/financeiro", middleware.SyndicOnly(), h.CreateInstallment)
}

func (h *Handler) requireCondominium() gin.HandlerFunc {
	return func(c *gin.Context) {
		condoID, err := h.service.CondominiumOf(c.Request.Context(), c.GetInt64("user_id"))
		if err != nil {
			if errors.Is(err, ErrNotLinked) || errors.Is(err, ErrUserNotFound) {
				response.Abort(c, http.StatusForbidden, "NOT_LINKED", "Usuário não vinculado a um condomínio")
				return
			}
			log.Printf("backend_condominium_lookup_failed user_id=%d error=%q", c.GetInt64("user_id"), err.Error())
			response.Internal(c, "Erro interno")
			c.Abort()
			return
		}
		c.Set("condominium_id", condoID)
		c.Next()
	}
}

// bind decodes the JSON body and validates it. It writes the error response
// itself and reports whether the handler may continue.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return false
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Campos inválidos", errs)
		return false
	}
	return true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

func writeErr(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, ErrEmailTaken):
		response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email já cadastrado")
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email ou senha inválidos")
	case errors.Is(err, ErrCondominiumUnknown):
		response.Error(c, http.StatusNotFound, "CONDOMINIUM_NOT_FOUND", "Condomínio não encontrado")
	case errors.Is(err, ErrResourceNotFound), errors.Is(err, ErrRecordNotFound), errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Registro não encontrado")
	case errors.Is(err, ErrInvalidInterval):
		response.BadRequest(c, "O horário de fim deve ser após o início")
	case errors.Is(err, ErrOverlap):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Horário já reservado")
	default:
		log.Printf("backend_%s_failed error=%q", op, err.Error())
		response.Internal(c, "Erro interno")
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if !bind(c, &req) {
		return
	}
	if _, err := h.service.Register(c.Request.Context(), req); err != nil {
		writeErr(c, "register", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Usuário cadastrado com sucesso"})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeErr(c, "login", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Me(c *gin.Context) {
	me, err := h.service.Me(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		writeErr(c, "me", err)
		return
	}
	c.JSON(http.StatusOK, me)
}

func (h *Handler) CreateCondominium(c *gin.Context) {
	var req createCondominiumRequest
	if !bind(c, &req) {
		return
	}
	cond, err := h.service.CreateCondominium(c.Request.Context(), c.GetInt64("user_id"), req.Name)
	if err != nil {
		writeErr(c, "create_condominium", err)
		return
	}
	c.JSON(http.StatusCreated, domain.CondominiumCreated{Message: "Condomínio criado", Condominium: cond})
}

func (h *Handler) Link(c *gin.Context) {
	var req linkRequest
	if !bind(c, &req) {
		return
	}
	userID := c.GetInt64("user_id")
	if req.UserToken != "" {
		claims, err := h.jwt.ValidateToken(req.UserToken)
		if err != nil || claims.UserID != userID {
			response.Error(c, http.StatusForbidden, "TOKEN_MISMATCH", "Token de usuário inválido")
			return
		}
	}

	cond, err := h.service.Link(c.Request.Context(), userID, req.CondominiumToken)
	if err != nil {
		writeErr(c, "link", err)
		return
	}
	out := domain.CondominiumLinked{Message: "Vinculado ao condomínio " + cond.Name, Condominium: cond}
	out.User.ID = userID
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Image(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	img, err := h.repo.Image(c.Request.Context(), id)
	if err != nil {
		writeErr(c, "image", err)
		return
	}
	c.Data(http.StatusOK, img.ContentType, img.Data)
}

func (h *Handler) Resources(c *gin.Context) {
	list, err := h.repo.Resources(c.Request.Context(), c.GetInt64("condominium_id"))
	if err != nil {
		writeErr(c, "resources", err)
		return
	}
	out := make([]domain.Resource, 0, len(list))
	for _, m := range list {
		out = append(out, toResource(m))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateResource(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("nome"))
	if name == "" {
		response.BadRequest(c, "nome is required")
		return
	}
	res := &resourceModel{
		CondominiumID: c.GetInt64("condominium_id"),
		Name:          name,
		Description:   strings.TrimSpace(c.PostForm("descricao")),
	}

	var img *imageModel
	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			response.BadRequest(c, "Invalid image")
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
		f.Close()
		if err != nil || len(data) > maxImageBytes {
			response.BadRequest(c, "Image too large")
			return
		}
		img = &imageModel{ContentType: http.DetectContentType(data), Data: data}
	}

	if err := h.repo.CreateResource(c.Request.Context(), res, img); err != nil {
		writeErr(c, "create_resource", err)
		return
	}
	c.JSON(http.StatusCreated, toResource(*res))
}

func (h *Handler) BookingLogs(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.repo.Resource(ctx, c.GetInt64("condominium_id"), id); err != nil {
		writeErr(c, "booking_logs", err)
		return
	}
	logs, err := h.repo.BookingLogs(ctx, id)
	if err != nil {
		writeErr(c, "booking_logs", err)
		return
	}
	ids := make([]int64, 0, len(logs))
	for _, l := range logs {
		ids = append(ids, l.UserID)
	}
	names, err := h.repo.Usernames(ctx, ids)
	if err != nil {
		writeErr(c, "booking_logs", err)
		return
	}

	out := make([]domain.BookingLogEntry, 0, len(logs))
	for _, l := range logs {
		out = append(out, domain.BookingLogEntry{
			ID:         l.ID,
			Start:      l.Start.UTC(),
			End:        l.End.UTC(),
			UserID:     l.UserID,
			Username:   names[l.UserID],
			ResourceID: l.ResourceID,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateBookingLog(c *gin.Context) {
	var req createBookingLogRequest
	if !bind(c, &req) {
		return
	}
	start, err1 := time.Parse(time.RFC3339, req.Start)
	end, err2 := time.Parse(time.RFC3339, req.End)
	if err1 != nil || err2 != nil {
		response.BadRequest(c, "inicio and fim must be ISO-8601 instants")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.repo.Resource(ctx, c.GetInt64("condominium_id"), req.ResourceID); err != nil {
		writeErr(c, "create_booking_log", err)
		return
	}
	m := &bookingLogModel{
		ResourceID: req.ResourceID,
		UserID:     c.GetInt64("user_id"),
		Start:      start.UTC(),
		End:        end.UTC(),
	}
	if err := h.repo.CreateBookingLog(ctx, m); err != nil {
		writeErr(c, "create_booking_log", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Reserva criada", "id": m.ID})
}

func (h *Handler) Notices(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.repo.Notices(ctx, c.GetInt64("condominium_id"))
	if err != nil {
		writeErr(c, "notices", err)
		return
	}
	ids := make([]int64, 0, len(list))
	for _, n := range list {
		ids = append(ids, n.UserID)
	}
	names, err := h.repo.Usernames(ctx, ids)
	if err != nil {
		writeErr(c, "notices", err)
		return
	}

	out := make([]domain.Notice, 0, len(list))
	for _, n := range list {
		out = append(out, domain.Notice{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			CreatedAt:   n.CreatedAt.UTC(),
			User:        userRef(n.UserID, names),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateNotice(c *gin.Context) {
	var req noticeRequest
	if !bind(c, &req) {
		return
	}
	m := &noticeModel{
		CondominiumID: c.GetInt64("condominium_id"),
		UserID:        c.GetInt64("user_id"),
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
	}
	if err := h.repo.CreateNotice(c.Request.Context(), m); err != nil {
		writeErr(c, "create_notice", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Aviso criado", "id": m.ID})
}

func (h *Handler) DeleteNotice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteNotice(c.Request.Context(), c.GetInt64("condominium_id"), id); err != nil {
		writeErr(c, "delete_notice", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Aviso removido"})
}

func (h *Handler) Rules(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.repo.Rules(ctx, c.GetInt64("condominium_id"))
	if err != nil {
		writeErr(c, "rules", err)
		return
	}
	ids := make([]int64, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.UserID)
	}
	names, err := h.repo.Usernames(ctx, ids)
	if err != nil {
		writeErr(c, "rules", err)
		return
	}

	out := make([]domain.Rule, 0, len(list))
	for _, r := range list {
		out = append(out, domain.Rule{
			ID:          r.ID,
			Description: r.Description,
			CreatedAt:   r.CreatedAt.UTC(),
			User:        userRef(r.UserID, names),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateRule(c *gin.Context) {
	var req ruleRequest
	if !bind(c, &req) {
		return
	}
	m := &ruleModel{
		CondominiumID: c.GetInt64("condominium_id"),
		UserID:        c.GetInt64("user_id"),
		Description:   strings.TrimSpace(req.Description),
	}
	if err := h.repo.CreateRule(c.Request.Context(), m); err != nil {
		writeErr(c, "create_rule", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Regra criada", "id": m.ID})
}

func (h *Handler) Occurrences(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.repo.Occurrences(ctx, c.GetInt64("condominium_id"))
	if err != nil {
		writeErr(c, "occurrences", err)
		return
	}
	ids := make([]int64, 0, len(list))
	for _, o := range list {
		ids = append(ids, o.UserID)
	}
	names, err := h.repo.Usernames(ctx, ids)
	if err != nil {
		writeErr(c, "occurrences", err)
		return
	}

	out := make([]domain.Occurrence, 0, len(list))
	for _, o := range list {
		out = append(out, toOccurrence(o, names))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateOccurrence(c *gin.Context) {
	var req occurrenceRequest
	if !bind(c, &req) {
		return
	}
	m := &occurrenceModel{
		CondominiumID: c.GetInt64("condominium_id"),
		UserID:        c.GetInt64("user_id"),
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Status:        string(domain.OccurrenceOpen),
	}
	ctx := c.Request.Context()
	if err := h.repo.CreateOccurrence(ctx, m); err != nil {
		writeErr(c, "create_occurrence", err)
		return
	}
	names, _ := h.repo.Usernames(ctx, []int64{m.UserID})
	c.JSON(http.StatusCreated, toOccurrence(*m, names))
}

func (h *Handler) UpdateOccurrence(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req occurrenceStatusRequest
	if !bind(c, &req) {
		return
	}
	if err := h.repo.UpdateOccurrenceStatus(c.Request.Context(), c.GetInt64("condominium_id"), id, req.Status); err != nil {
		writeErr(c, "update_occurrence", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ocorrência atualizada"})
}

func (h *Handler) DeleteOccurrence(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteOccurrence(c.Request.Context(), c.GetInt64("condominium_id"), id); err != nil {
		writeErr(c, "delete_occurrence", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ocorrência removida"})
}

func (h *Handler) Installments(c *gin.Context) {
	list, err := h.repo.Installments(c.Request.Context(), c.GetInt64("condominium_id"))
	if err != nil {
		writeErr(c, "installments", err)
		return
	}
	out := make([]domain.Installment, 0, len(list))
	for _, m := range list {
		inst := domain.Installment{Code: m.Code, Value: m.Value, DueDate: m.DueDate.UTC()}
		if m.PaidAt != nil {
			paid := m.PaidAt.UTC()
			inst.PaidAt = &paid
		}
		out = append(out, inst)
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateInstallment(c *gin.Context) {
	var req installmentRequest
	if !bind(c, &req) {
		return
	}
	due, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		response.BadRequest(c, "vencimento must be YYYY-MM-DD")
		return
	}
	m := &installmentModel{
		CondominiumID: c.GetInt64("condominium_id"),
		Code:          due.Format("01/2006"),
		Value:         req.Value,
		DueDate:       due,
	}
	if err := h.repo.CreateInstallment(c.Request.Context(), m); err != nil {
		writeErr(c, "create_installment", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Cobrança criada", "code": m.Code})
}

func toResource(m resourceModel) domain.Resource {
	return domain.Resource{ID: m.ID, Name: m.Name, ImageID: m.ImageID, Description: m.Description}
}

func toOccurrence(m occurrenceModel, names map[int64]string) domain.Occurrence {
	return domain.Occurrence{
		ID:            m.ID,
		UserID:        m.UserID,
		CondominiumID: m.CondominiumID,
		Title:         m.Title,
		Description:   m.Description,
		Status:        domain.OccurrenceStatus(m.Status),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
		User:          userRef(m.UserID, names),
	}
}

func userRef(id int64, names map[int64]string) *domain.UserRef {
	name, ok := names[id]
	if !ok {
		return nil
	}
	return &domain.UserRef{ID: id, Username: name}
}
