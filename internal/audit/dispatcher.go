package audit

import "go.uber.org/zap"

// Ações registradas na trilha de auditoria.
const (
	ActionBookingCreated    = "booking_created"
	ActionBookingSuperseded = "booking_superseded"
	ActionBookingConflict   = "booking_conflict"
	ActionReceptionHandoff  = "reception_handoff"
)

// Event é um fato do atendimento registrado fora do caminho da resposta.
type Event struct {
	UserID     string
	Action     string
	BookingID  string
	Slot       string
	ClientName string
	Service    string
}

// Sink recebe eventos já fora do fluxo de atendimento.
type Sink interface {
	Record(Event) error
}

type Dispatcher struct {
	sinks []Sink
	queue chan Event
	done  chan struct{}
	log   *zap.Logger
}

func NewDispatcher(log *zap.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Event, 100), // buffer seguro
		done:  make(chan struct{}),
		log:   log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			if err := s.Record(ev); err != nil {
				d.log.Warn("audit sink error",
					zap.String("action", ev.Action),
					zap.Error(err),
				)
			}
		}
	}
}

// Dispatch enfileira o evento sem bloquear o atendimento. Fila cheia
// descarta o evento: auditoria nunca derruba o bot.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drena a fila e espera o worker terminar. Dispatch após Close é
// um erro de programação.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
