package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-chatbot/internal/dto"
	"github.com/BruksfildServices01/barber-chatbot/internal/httpresp"
	"github.com/BruksfildServices01/barber-chatbot/internal/schedule"
)

type BookingHandler struct {
	ledger *schedule.Ledger
}

func NewBookingHandler(ledger *schedule.Ledger) *BookingHandler {
	return &BookingHandler{ledger: ledger}
}

// List devolve o snapshot da agenda do dia, em ordem de horário.
func (h *BookingHandler) List(c *gin.Context) {
	bookings := h.ledger.List()

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:         b.ID,
			Slot:       b.Slot.String(),
			ClientName: b.ClientName,
			Service:    b.Service.Label(),
			CreatedAt:  b.CreatedAt,
		})
	}

	httpresp.List(c, out)
}
