package devbackend

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func (r *Repository) CreateUser(ctx context.Context, u *userModel) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (*userModel, error) {
	var m userModel
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m).Error
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &m, nil
}

func (r *Repository) UserByID(ctx context.Context, id int64) (*userModel, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &m, nil
}

// Usernames maps user ids to display names.
func (r *Repository) Usernames(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []userModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u.Name
	}
	return out, nil
}

func (r *Repository) LinkUser(ctx context.Context, userID, condominiumID int64) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", userID).
		Update("condominium_id", condominiumID).Error
}

func (r *Repository) CreateCondominium(ctx context.Context, c *condominiumModel) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) CondominiumByToken(ctx context.Context, token string) (*condominiumModel, error) {
	var m condominiumModel
	err := r.db.WithContext(ctx).
		Where("UPPER(token) = ?", strings.ToUpper(strings.TrimSpace(token))).
		First(&m).Error
	if err != nil {
		return nil, notFound(err, ErrCondominiumUnknown)
	}
	return &m, nil
}

// CreateResource stores the image and the resource in one transaction.
func (r *Repository) CreateResource(ctx context.Context, res *resourceModel, img *imageModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if img != nil {
			if err := tx.Create(img).Error; err != nil {
				return err
			}
			res.ImageID = img.ID
		}
		return tx.Create(res).Error
	})
}

func (r *Repository) Resources(ctx context.Context, condominiumID int64) ([]resourceModel, error) {
	var out []resourceModel
	err := r.db.WithContext(ctx).
		Where("condominium_id = ?", condominiumID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *Repository) Resource(ctx context.Context, condominiumID, id int64) (*resourceModel, error) {
	var m resourceModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND condominium_id = ?", id, condominiumID).
		First(&m).Error
	if err != nil {
		return nil, notFound(err, ErrResourceNotFound)
	}
	return &m, nil
}

func (r *Repository) Image(ctx context.Context, id int64) (*imageModel, error) {
	var m imageModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFound(err, ErrRecordNotFound)
	}
	return &m, nil
}

func (r *Repository) BookingLogs(ctx context.Context, resourceID int64) ([]bookingLogModel, error) {
	var out []bookingLogModel
	err := r.db.WithContext(ctx).
		Where("reserva_id = ?", resourceID).
		Order("inicio ASC").
		Find(&out).Error
	return out, err
}

// CreateBookingLog inserts the interval unless it overlaps an existing one
// of the same resource. Intervals are half-open.
func (r *Repository) CreateBookingLog(ctx context.Context, m *bookingLogModel) error {
	m.Start, m.End = m.Start.UTC(), m.End.UTC()
	if !m.End.After(m.Start) {
		return ErrInvalidInterval
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var overlapping int64
		err := tx.Model(&bookingLogModel{}).
			Where("reserva_id = ? AND inicio < ? AND fim > ?", m.ResourceID, m.End, m.Start).
			Count(&overlapping).Error
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrOverlap
		}
		return tx.Create(m).Error
	})
}

func (r *Repository) Notices(ctx context.Context, condominiumID int64) ([]noticeModel, error) {
	var out []noticeModel
	err := r.db.WithContext(ctx).
		Where("condominium_id = ?", condominiumID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *Repository) CreateNotice(ctx context.Context, m *noticeModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repository) DeleteNotice(ctx context.Context, condominiumID, id int64) error {
	return r.deleteScoped(ctx, &noticeModel{}, condominiumID, id)
}

func (r *Repository) Rules(ctx context.Context, condominiumID int64) ([]ruleModel, error) {
	var out []ruleModel
	err := r.db.WithContext(ctx).
		Where("condominium_id = ?", condominiumID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *Repository) CreateRule(ctx context.Context, m *ruleModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repository) Occurrences(ctx context.Context, condominiumID int64) ([]occurrenceModel, error) {
	var out []occurrenceModel
	err := r.db.WithContext(ctx).
		Where("condominium_id = ?", condominiumID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *Repository) CreateOccurrence(ctx context.Context, m *occurrenceModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repository) UpdateOccurrenceStatus(ctx context.Context, condominiumID, id int64, status string) error {
	tx := r.db.WithContext(ctx).Model(&occurrenceModel{}).
		Where("id = ? AND condominium_id = ?", id, condominiumID).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *Repository) DeleteOccurrence(ctx context.Context, condominiumID, id int64) error {
	return r.deleteScoped(ctx, &occurrenceModel{}, condominiumID, id)
}

func (r *Repository) Installments(ctx context.Context, condominiumID int64) ([]installmentModel, error) {
	var out []installmentModel
	err := r.db.WithContext(ctx).
		Where("condominium_id = ?", condominiumID).
		Order("vencimento DESC").
		Find(&out).Error
	return out, err
}

func (r *Repository) CreateInstallment(ctx context.Context, m *installmentModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repository) deleteScoped(ctx context.Context, model any, condominiumID, id int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND condominium_id = ?", id, condominiumID).
		Delete(model)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
