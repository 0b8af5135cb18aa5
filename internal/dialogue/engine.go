// Package dialogue implementa a máquina de estados da conversa de
// agendamento: uma mensagem de entrada + o estágio atual da sessão
// produzem uma transição, no máximo uma escrita na agenda e as respostas
// a enviar, na ordem de envio.
package dialogue

import (
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-chatbot/internal/audit"
	"github.com/BruksfildServices01/barber-chatbot/internal/schedule"
	"github.com/BruksfildServices01/barber-chatbot/internal/session"
)

// Palavras de controle reconhecidas no estágio ocioso.
const (
	cmdSchedule     = "agendar"
	cmdThanks       = "obrigado"
	cmdListBookings = "ver agendamentos"
	cmdYes          = "sim"
)

// Engine dirige as conversas. Uma mensagem é processada até o fim antes
// da próxima, de qualquer usuário: o mutex serializa a leitura da sessão
// e a escrita na agenda.
type Engine struct {
	mu       sync.Mutex
	sessions *session.Store
	ledger   *schedule.Ledger
	audit    *audit.Dispatcher
	now      func() time.Time
}

// NewEngine monta o engine. clock define o relógio da saudação; nil usa
// time.Now.
func NewEngine(sessions *session.Store, ledger *schedule.Ledger, dispatcher *audit.Dispatcher, clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		sessions: sessions,
		ledger:   ledger,
		audit:    dispatcher,
		now:      clock,
	}
}

// HandleMessage processa uma mensagem e devolve as respostas em ordem de
// emissão. Entrada inválida em qualquer estágio nunca derruba o engine:
// reemite o mesmo estágio com um aviso.
func (e *Engine) HandleMessage(userID, text string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	text = strings.ToLower(strings.TrimSpace(text))
	sess := e.sessions.Get(userID)

	switch sess.Stage {
	case session.StageIdle:
		return e.handleIdle(sess, text)
	case session.StageAwaitingName:
		return e.handleName(sess, text)
	case session.StageAwaitingService:
		return e.handleService(sess, text)
	case session.StageAwaitingTime:
		return e.handleTime(userID, sess, text)
	case session.StageAwaitingFollowup:
		return e.handleFollowup(sess, text)
	case session.StageAwaitingFollowupOption:
		return e.handleFollowupOption(userID, sess, text)
	default:
		// Estágio desconhecido não deve existir; recupera para o ocioso.
		sess.Reset()
		return []string{msgGreeting(e.now())}
	}
}

func (e *Engine) handleIdle(sess *session.Session, text string) []string {
	switch text {
	case cmdSchedule:
		sess.Stage = session.StageAwaitingName
		return []string{msgAskName}

	case cmdThanks:
		sess.Stage = session.StageAwaitingFollowup
		return []string{msgFollowup}

	case cmdListBookings:
		if e.ledger.IsEmpty() {
			return []string{msgNoBookings}
		}
		return []string{msgBookingList(e.ledger.List())}

	default:
		return []string{msgGreeting(e.now())}
	}
}

func (e *Engine) handleName(sess *session.Session, text string) []string {
	if text == "" {
		return []string{msgAskName}
	}

	sess.ClientName = text
	sess.Stage = session.StageAwaitingService
	return []string{msgServiceMenu}
}

func (e *Engine) handleService(sess *session.Session, text string) []string {
	service, ok := schedule.ParseServiceOption(text)
	if !ok {
		return []string{msgInvalidOption}
	}

	sess.Service = service
	sess.Stage = session.StageAwaitingTime
	return []string{msgAskTime}
}

func (e *Engine) handleTime(userID string, sess *session.Session, text string) []string {
	slot, ok := schedule.Normalize(text)
	if !ok {
		return []string{msgInvalidTime}
	}

	outcome := e.ledger.TryBook(slot, sess.ClientName, sess.Service)

	for _, old := range outcome.Released {
		e.audit.Dispatch(audit.Event{
			UserID:     userID,
			Action:     audit.ActionBookingSuperseded,
			BookingID:  old.ID,
			Slot:       old.Slot.String(),
			ClientName: old.ClientName,
			Service:    string(old.Service),
		})
	}

	if outcome.Result == schedule.Conflict {
		e.audit.Dispatch(audit.Event{
			UserID:     userID,
			Action:     audit.ActionBookingConflict,
			Slot:       slot.String(),
			ClientName: sess.ClientName,
			Service:    string(sess.Service),
		})
		return []string{msgSlotTaken(slot)}
	}

	e.audit.Dispatch(audit.Event{
		UserID:     userID,
		Action:     audit.ActionBookingCreated,
		BookingID:  outcome.Booking.ID,
		Slot:       slot.String(),
		ClientName: outcome.Booking.ClientName,
		Service:    string(outcome.Booking.Service),
	})

	sess.Reset()
	return []string{msgBooked(outcome.Booking), msgClosing}
}

func (e *Engine) handleFollowup(sess *session.Session, text string) []string {
	if text == cmdYes {
		sess.Stage = session.StageAwaitingFollowupOption
		return []string{msgFollowupMenu}
	}

	sess.Reset()
	return []string{msgClosing}
}

func (e *Engine) handleFollowupOption(userID string, sess *session.Session, text string) []string {
	switch text {
	case "1":
		sess.Stage = session.StageAwaitingName
		return []string{msgAskName}

	case "2":
		e.audit.Dispatch(audit.Event{
			UserID:     userID,
			Action:     audit.ActionReceptionHandoff,
			ClientName: sess.ClientName,
		})
		sess.Reset()
		return []string{msgReceptionQueue}

	case "3":
		sess.Reset()
		return []string{msgClosing}

	default:
		return []string{msgInvalidOption}
	}
}
