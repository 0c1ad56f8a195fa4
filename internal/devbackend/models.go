package devbackend

import (
	"time"

	"gorm.io/gorm"
)

type userModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Email         string    `gorm:"column:email;uniqueIndex"`
	PasswordHash  string    `gorm:"column:password_hash"`
	Name          string    `gorm:"column:name"`
	Role          string    `gorm:"column:role"`
	CondominiumID *int64    `gorm:"column:condominium_id;index"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type condominiumModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Token     string    `gorm:"column:token;uniqueIndex"`
	OwnerID   int64     `gorm:"column:owner_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (condominiumModel) TableName() string { return "condominiums" }

type imageModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ContentType string    `gorm:"column:content_type"`
	Data        []byte    `gorm:"column:data"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (imageModel) TableName() string { return "images" }

type resourceModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	CondominiumID int64     `gorm:"column:condominium_id;index"`
	Name          string    `gorm:"column:nome"`
	Description   string    `gorm:"column:descricao"`
	ImageID       int64     `gorm:"column:image_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (resourceModel) TableName() string { return "resources" }

type bookingLogModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	ResourceID int64     `gorm:"column:reserva_id;index"`
	UserID     int64     `gorm:"column:user_id"`
	Start      time.Time `gorm:"column:inicio"`
	End        time.Time `gorm:"column:fim"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (bookingLogModel) TableName() string { return "booking_logs" }

type noticeModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	CondominiumID int64     `gorm:"column:condominium_id;index"`
	UserID        int64     `gorm:"column:user_id"`
	Title         string    `gorm:"column:titulo"`
	Description   string    `gorm:"column:descricao"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (noticeModel) TableName() string { return "notices" }

type ruleModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	CondominiumID int64     `gorm:"column:condominium_id;index"`
	UserID        int64     `gorm:"column:user_id"`
	Description   string    `gorm:"column:descricao"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (ruleModel) TableName() string { return "rules" }

type occurrenceModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	CondominiumID int64     `gorm:"column:condominium_id;index"`
	UserID        int64     `gorm:"column:user_id"`
	Title         string    `gorm:"column:titulo"`
	Description   string    `gorm:"column:descricao"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (occurrenceModel) TableName() string { return "occurrences" }

type installmentModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	CondominiumID int64      `gorm:"column:condominium_id;index"`
	Code          string     `gorm:"column:code"`
	Value         float64    `gorm:"column:valor"`
	DueDate       time.Time  `gorm:"column:vencimento"`
	PaidAt        *time.Time `gorm:"column:pago_em"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
}

func (installmentModel) TableName() string { return "installments" }

// Migrate creates or updates every backend table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&condominiumModel{},
		&imageModel{},
		&resourceModel{},
		&bookingLogModel{},
		&noticeModel{},
		&ruleModel{},
		&occurrenceModel{},
		&installmentModel{},
	)
}
