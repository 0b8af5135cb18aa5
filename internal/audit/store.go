package audit

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-chatbot/internal/models"
)

// Store persiste a trilha de auditoria em Postgres. Opcional: só entra no
// dispatcher quando há DATABASE_URL configurada.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Record(ev Event) error {
	row := models.AuditLog{
		EventID:    uuid.NewString(),
		UserID:     ev.UserID,
		Action:     ev.Action,
		BookingID:  ev.BookingID,
		Slot:       ev.Slot,
		ClientName: ev.ClientName,
		Service:    ev.Service,
	}

	return s.db.Create(&row).Error
}

var _ Sink = (*Store)(nil)
