package dialogue

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-chatbot/internal/schedule"
)

// Textos enviados ao cliente. O fraseado segue o atendimento da recepção.
const (
	msgAskName        = "Qual é o seu nome?"
	msgServiceMenu    = "Escolha o número do serviço desejado:\n1. Corte de cabelo\n2. Barba\n3. Corte e Barba"
	msgAskTime        = "Digite o horário entre as 09:00 até as 17:00"
	msgInvalidTime    = "Formato de horário inválido. O horário de funcionamento é entre as 09:00 até as 17:00"
	msgInvalidOption  = "Opção inválida. Por favor, escolha uma opção válida."
	msgClosing        = "Obrigado! Tenha um ótimo dia!"
	msgFollowup       = "De nada, deseja mais alguma ajuda?"
	msgFollowupMenu   = "Digite:\n1. Reagendar\n2. Falar com a recepção\n3. Finalizar"
	msgReceptionQueue = "Você está em espera. Um atendente da recepção entrará em contato em breve."
	msgNoBookings     = "Não há agendamentos em espera."
)

func msgBooked(b schedule.Booking) string {
	return fmt.Sprintf("Agendado: %s - %s às %s", b.ClientName, b.Service.Label(), b.Slot)
}

func msgSlotTaken(slot schedule.TimeSlot) string {
	return fmt.Sprintf("O horário %s já está ocupado. Por favor, escolha outro horário.", slot)
}

func msgGreeting(now time.Time) string {
	return fmt.Sprintf("%s, tudo bom?\n\nCaso queira agendar um serviço, digite \"agendar\".", saudacao(now))
}

// saudacao escolhe o cumprimento pelo relógio da barbearia.
func saudacao(now time.Time) string {
	switch h := now.Hour(); {
	case h <= 12:
		return "Bom dia"
	case h <= 17:
		return "Boa tarde"
	default:
		return "Boa noite"
	}
}

func msgBookingList(bookings []schedule.Booking) string {
	lines := make([]string, 0, len(bookings)+1)
	lines = append(lines, "Agendamentos do dia:")
	for _, b := range bookings {
		lines = append(lines, fmt.Sprintf("%s: %s - %s", b.Slot, b.ClientName, b.Service.Label()))
	}
	return strings.Join(lines, "\n")
}
