package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
)

// TicketNumberGenerator hands out daily sequential ticket numbers.
// The per-day counter row is advanced under a SELECT ... FOR UPDATE
// lock, so concurrent creators never receive the same number.
type TicketNumberGenerator struct {
	db *gorm.DB
}

func NewTicketNumberGenerator(db *gorm.DB) *TicketNumberGenerator {
	return &TicketNumberGenerator{db: db}
}

func (g *TicketNumberGenerator) Next(ctx context.Context, day time.Time) (string, error) {
	dayKey := day.Format("20060102")
	tx := db.GetTxFromContext(ctx, g.db)

	var seq uint
	err := tx.Transaction(func(tx *gorm.DB) error {
		var row models.TicketSequenceModel
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("day = ?", dayKey).
			First(&row).Error

		switch {
		case err == nil:
			row.Value++
			if err := tx.
				Model(&models.TicketSequenceModel{}).
				Where("day = ?", dayKey).
				Update("value", row.Value).Error; err != nil {
				return fmt.Errorf("failed to advance ticket sequence: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = models.TicketSequenceModel{Day: dayKey, Value: 1}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create ticket sequence: %w", err)
			}
		default:
			return fmt.Errorf("failed to lock ticket sequence: %w", err)
		}

		seq = row.Value
		return nil
	})
	if err != nil {
		return "", err
	}

	return ticket.FormatNumber(day, seq), nil
}
