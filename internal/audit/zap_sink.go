package audit

import "go.uber.org/zap"

// ZapSink escreve a trilha no log estruturado do processo.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

func (s *ZapSink) Record(ev Event) error {
	s.log.Info("audit",
		zap.String("action", ev.Action),
		zap.String("user_id", ev.UserID),
		zap.String("booking_id", ev.BookingID),
		zap.String("slot", ev.Slot),
		zap.String("client", ev.ClientName),
		zap.String("service", ev.Service),
	)
	return nil
}

var _ Sink = (*ZapSink)(nil)
