package dto

import "time"

type BookingListDTO struct {
	ID         string    `json:"id"`
	Slot       string    `json:"slot"`
	ClientName string    `json:"client_name"`
	Service    string    `json:"service"`
	CreatedAt  time.Time `json:"created_at"`
}
