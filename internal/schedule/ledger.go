package schedule

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Booking é um agendamento confirmado para um slot do dia.
type Booking struct {
	ID         string
	Slot       TimeSlot
	ClientName string
	Service    ServiceCode
	CreatedAt  time.Time
}

// BookResult é o desfecho de uma tentativa de agendamento.
type BookResult int

const (
	Booked BookResult = iota
	Conflict
)

// BookOutcome descreve uma tentativa de agendamento: o resultado, o
// agendamento criado (quando Booked) e os agendamentos anteriores do
// cliente liberados antes da tentativa.
type BookOutcome struct {
	Result   BookResult
	Booking  Booking
	Released []Booking
}

// Ledger guarda os agendamentos confirmados do dia corrente: no máximo um
// por slot e um ativo por cliente. Vive só durante o processo — a virada
// do dia é responsabilidade de quem o possui.
type Ledger struct {
	mu       sync.Mutex
	bookings map[TimeSlot]Booking
	now      func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{
		bookings: make(map[TimeSlot]Booking),
		now:      time.Now,
	}
}

// TryBook tenta confirmar um agendamento.
//
// Primeiro libera qualquer slot que o cliente já ocupe, depois verifica
// conflito no slot pedido e só então insere. Toda a sequência roda sob o
// mesmo lock: duas tentativas para o mesmo slot nunca retornam Booked.
//
// A liberação acontece mesmo quando o resultado é Conflict — um cliente
// que tenta reagendar para um horário ocupado por outra pessoa perde o
// horário antigo. Comportamento observável do fluxo de reagendamento,
// preservado de propósito.
func (l *Ledger) TryBook(slot TimeSlot, clientName string, service ServiceCode) BookOutcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	var released []Booking
	for key, b := range l.bookings {
		if b.ClientName == clientName {
			released = append(released, b)
			delete(l.bookings, key)
		}
	}

	if _, taken := l.bookings[slot]; taken {
		return BookOutcome{Result: Conflict, Released: released}
	}

	booking := Booking{
		ID:         uuid.NewString(),
		Slot:       slot,
		ClientName: clientName,
		Service:    service,
		CreatedAt:  l.now(),
	}
	l.bookings[slot] = booking

	return BookOutcome{Result: Booked, Booking: booking, Released: released}
}

// List devolve um snapshot dos agendamentos em ordem ascendente de slot.
// Mutações posteriores na agenda não afetam um snapshot já devolvido.
func (l *Ledger) List() []Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Booking, 0, len(l.bookings))
	for _, b := range l.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Slot.Before(out[j].Slot)
	})
	return out
}

func (l *Ledger) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bookings) == 0
}
