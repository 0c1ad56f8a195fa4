package devbackend

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPassword is the password of every seeded account.
const SeedPassword = "condo123"

// SeedReport lists what Seed created.
type SeedReport struct {
	CondominiumToken string
	SyndicEmail      string
	ResidentEmails   []string
	OfficialUserID   int64
	ResourceIDs      []int64
}

// Seed wipes the backend tables and fills them with one demo condominium.
// The building-wide account is created with officialUserID so the schedule
// view marks its bookings as official.
func Seed(db *gorm.DB, officialUserID int64, now time.Time) (*SeedReport, error) {
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Println("Cleaning old data...")
	for _, table := range []string{"booking_logs", "resources", "images", "notices", "rules", "occurrences", "installments", "users", "condominiums"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return nil, fmt.Errorf("clean %s: %w", table, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	report := &SeedReport{CondominiumToken: "SOL123", OfficialUserID: officialUserID}
	err = db.Transaction(func(tx *gorm.DB) error {
		log.Println("Creating users...")
		official := userModel{ID: officialUserID, Email: "administracao@condo.local", PasswordHash: string(hash), Name: "Administração", Role: "syndic"}
		syndic := userModel{Email: "sindico@condo.local", PasswordHash: string(hash), Name: "Síndico", Role: "syndic"}
		if err := tx.Create(&official).Error; err != nil {
			return err
		}
		if err := tx.Create(&syndic).Error; err != nil {
			return err
		}
		report.SyndicEmail = syndic.Email

		cond := condominiumModel{Name: "Edifício Sol", Token: report.CondominiumToken, OwnerID: syndic.ID}
		if err := tx.Create(&cond).Error; err != nil {
			return err
		}
		if err := tx.Model(&userModel{}).Where("id IN ?", []int64{official.ID, syndic.ID}).
			Update("condominium_id", cond.ID).Error; err != nil {
			return err
		}

		var residents []userModel
		for i, name := range []string{"Mariana", "Paulo"} {
			u := userModel{
				Email:         fmt.Sprintf("morador%d@condo.local", i+1),
				PasswordHash:  string(hash),
				Name:          name,
				Role:          "resident",
				CondominiumID: &cond.ID,
			}
			if err := tx.Create(&u).Error; err != nil {
				return err
			}
			residents = append(residents, u)
			report.ResidentEmails = append(report.ResidentEmails, u.Email)
		}

		log.Println("Creating resources...")
		for _, r := range []resourceModel{
			{Name: "Salão de festas", Description: "Capacidade para 60 pessoas"},
			{Name: "Churrasqueira", Description: "Área externa, cobertura"},
			{Name: "Quadra", Description: "Poliesportiva"},
		} {
			r.CondominiumID = cond.ID
			if err := tx.Create(&r).Error; err != nil {
				return err
			}
			report.ResourceIDs = append(report.ResourceIDs, r.ID)
		}

		log.Println("Creating booking logs...")
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		logs := []bookingLogModel{
			{ResourceID: report.ResourceIDs[0], UserID: official.ID, Start: day.AddDate(0, 0, 2).Add(8 * time.Hour), End: day.AddDate(0, 0, 2).Add(12 * time.Hour)},
			{ResourceID: report.ResourceIDs[0], UserID: residents[0].ID, Start: day.AddDate(0, 0, 2).Add(18 * time.Hour), End: day.AddDate(0, 0, 2).Add(23 * time.Hour)},
			{ResourceID: report.ResourceIDs[1], UserID: residents[1].ID, Start: day.AddDate(0, 0, 5).Add(12 * time.Hour), End: day.AddDate(0, 0, 5).Add(16 * time.Hour)},
			{ResourceID: report.ResourceIDs[2], UserID: official.ID, Start: day.AddDate(0, 0, 7).Add(7 * time.Hour), End: day.AddDate(0, 0, 7).Add(9 * time.Hour)},
		}
		if err := tx.Create(&logs).Error; err != nil {
			return err
		}

		log.Println("Creating notices, rules and occurrences...")
		if err := tx.Create(&[]noticeModel{
			{CondominiumID: cond.ID, UserID: syndic.ID, Title: "Manutenção do elevador", Description: "O elevador social ficará parado na quinta-feira.", CreatedAt: now.AddDate(0, 0, -3)},
			{CondominiumID: cond.ID, UserID: syndic.ID, Title: "Assembleia", Description: "Assembleia geral no salão às 19h.", CreatedAt: now},
		}).Error; err != nil {
			return err
		}
		if err := tx.Create(&[]ruleModel{
			{CondominiumID: cond.ID, UserID: syndic.ID, Description: "Silêncio após as 22h."},
			{CondominiumID: cond.ID, UserID: syndic.ID, Description: "Animais devem circular na coleira."},
		}).Error; err != nil {
			return err
		}
		if err := tx.Create(&occurrenceModel{
			CondominiumID: cond.ID, UserID: residents[0].ID,
			Title: "Lâmpada queimada", Description: "Corredor do 3º andar", Status: "aberto",
		}).Error; err != nil {
			return err
		}

		log.Println("Creating installments...")
		paid := now.AddDate(0, -1, -2)
		return tx.Create(&[]installmentModel{
			{CondominiumID: cond.ID, Code: "01", Value: 450, DueDate: now.AddDate(0, -1, 0), PaidAt: &paid},
			{CondominiumID: cond.ID, Code: "02", Value: 450, DueDate: now.AddDate(0, 0, -5)},
			{CondominiumID: cond.ID, Code: "03", Value: 450, DueDate: now.AddDate(0, 1, 0)},
		}).Error
	})
	if err != nil {
		return nil, err
	}

	if db.Dialector.Name() == "postgres" {
		// keep the users sequence ahead of the explicit official id
		if err := db.Exec(`SELECT setval(pg_get_serial_sequence('users', 'id'), (SELECT MAX(id) FROM users))`).Error; err != nil {
			return nil, fmt.Errorf("advance users sequence: %w", err)
		}
	}
	return report, nil
}
