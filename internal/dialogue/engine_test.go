package dialogue

import (
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-chatbot/internal/audit"
	"github.com/BruksfildServices01/barber-chatbot/internal/schedule"
	"github.com/BruksfildServices01/barber-chatbot/internal/session"
)

type captureSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *captureSink) Record(ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *captureSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.Action
	}
	return out
}

type testRig struct {
	engine     *Engine
	sessions   *session.Store
	ledger     *schedule.Ledger
	sink       *captureSink
	dispatcher *audit.Dispatcher
}

func newTestRig(clock func() time.Time) *testRig {
	if clock == nil {
		clock = func() time.Time {
			return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC) // manhã
		}
	}

	sessions := session.NewStore()
	ledger := schedule.NewLedger()
	sink := &captureSink{}
	dispatcher := audit.NewDispatcher(zap.NewNop(), sink)

	return &testRig{
		engine:     NewEngine(sessions, ledger, dispatcher, clock),
		sessions:   sessions,
		ledger:     ledger,
		sink:       sink,
		dispatcher: dispatcher,
	}
}

func (r *testRig) send(t *testing.T, userID string, texts ...string) []string {
	t.Helper()
	var last []string
	for _, text := range texts {
		last = r.engine.HandleMessage(userID, text)
		if len(last) == 0 {
			t.Fatalf("mensagem %q não produziu resposta", text)
		}
	}
	return last
}

func (r *testRig) stage(userID string) session.Stage {
	return r.sessions.Get(userID).Stage
}

func TestScheduleFlowBooksSlot(t *testing.T) {
	rig := newTestRig(nil)

	if got := rig.send(t, "u1", "agendar"); got[0] != msgAskName {
		t.Fatalf("agendar: got %q, want %q", got[0], msgAskName)
	}
	if rig.stage("u1") != session.StageAwaitingName {
		t.Fatalf("stage = %v, want awaiting_name", rig.stage("u1"))
	}

	if got := rig.send(t, "u1", "Maria"); got[0] != msgServiceMenu {
		t.Fatalf("nome: got %q, want menu de serviços", got[0])
	}
	if rig.stage("u1") != session.StageAwaitingService {
		t.Fatalf("stage = %v, want awaiting_service", rig.stage("u1"))
	}

	if got := rig.send(t, "u1", "2"); got[0] != msgAskTime {
		t.Fatalf("serviço: got %q, want pedido de horário", got[0])
	}
	if rig.stage("u1") != session.StageAwaitingTime {
		t.Fatalf("stage = %v, want awaiting_time", rig.stage("u1"))
	}

	got := rig.send(t, "u1", "10")
	if len(got) != 2 {
		t.Fatalf("confirmação deveria emitir 2 mensagens, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], "Agendado: maria - Barba às 10:00") {
		t.Errorf("confirmação inesperada: %q", got[0])
	}
	if got[1] != msgClosing {
		t.Errorf("segunda mensagem = %q, want despedida", got[1])
	}

	if rig.stage("u1") != session.StageIdle {
		t.Errorf("sessão deveria voltar ao ocioso, got %v", rig.stage("u1"))
	}

	bookings := rig.ledger.List()
	if len(bookings) != 1 {
		t.Fatalf("ledger com %d agendamentos, want 1", len(bookings))
	}
	b := bookings[0]
	if b.Slot != (schedule.TimeSlot{Hour: 10}) || b.ClientName != "maria" || b.Service != schedule.ServiceBeard {
		t.Errorf("agendamento inesperado: %+v", b)
	}
}

func TestConflictKeepsAwaitingTime(t *testing.T) {
	rig := newTestRig(nil)

	rig.send(t, "u1", "agendar", "Maria", "2", "10")

	got := rig.send(t, "u2", "agendar", "João", "1", "10")
	if !strings.Contains(got[0], "já está ocupado") {
		t.Fatalf("conflito: got %q", got[0])
	}
	if rig.stage("u2") != session.StageAwaitingTime {
		t.Errorf("conflito deveria manter awaiting_time, got %v", rig.stage("u2"))
	}

	// o joão consegue outro horário na sequência
	got = rig.send(t, "u2", "11")
	if !strings.Contains(got[0], "Agendado: joão") {
		t.Fatalf("horário livre após conflito: got %q", got[0])
	}
	if len(rig.ledger.List()) != 2 {
		t.Errorf("ledger com %d agendamentos, want 2", len(rig.ledger.List()))
	}
}

func TestRebookingReleasesOldSlot(t *testing.T) {
	rig := newTestRig(nil)

	rig.send(t, "u1", "agendar", "Maria", "2", "10")
	rig.send(t, "u1", "agendar", "Maria", "3", "14")

	bookings := rig.ledger.List()
	if len(bookings) != 1 {
		t.Fatalf("ledger com %d agendamentos, want só o novo", len(bookings))
	}
	b := bookings[0]
	if b.Slot != (schedule.TimeSlot{Hour: 14}) || b.Service != schedule.ServiceHaircutAndBeard {
		t.Errorf("agendamento inesperado após reagendar: %+v", b)
	}

	// 10:00 voltou a ficar livre
	got := rig.send(t, "u2", "agendar", "João", "1", "10")
	if !strings.Contains(got[0], "Agendado: joão") {
		t.Errorf("slot liberado deveria aceitar agendamento, got %q", got[0])
	}
}

func TestIdleIgnoresTimeInput(t *testing.T) {
	rig := newTestRig(nil)

	got := rig.send(t, "u1", "9")
	if !strings.Contains(got[0], "tudo bom?") {
		t.Fatalf("entrada solta no ocioso deveria responder a saudação, got %q", got[0])
	}
	if rig.stage("u1") != session.StageIdle {
		t.Errorf("stage = %v, want idle", rig.stage("u1"))
	}
	if !rig.ledger.IsEmpty() {
		t.Error("nenhuma mutação de ledger esperada no ocioso")
	}
}

func TestInvalidServiceOptionKeepsStage(t *testing.T) {
	rig := newTestRig(nil)

	rig.send(t, "u1", "agendar", "Maria")

	got := rig.send(t, "u1", "9")
	if got[0] != msgInvalidOption {
		t.Fatalf("opção inválida: got %q", got[0])
	}
	if rig.stage("u1") != session.StageAwaitingService {
		t.Errorf("stage = %v, want awaiting_service", rig.stage("u1"))
	}

	// opção válida na sequência segue o fluxo
	if got := rig.send(t, "u1", "1"); got[0] != msgAskTime {
		t.Errorf("got %q, want pedido de horário", got[0])
	}
}

func TestInvalidTimeKeepsStage(t *testing.T) {
	rig := newTestRig(nil)

	rig.send(t, "u1", "agendar", "Maria", "2")

	for _, raw := range []string{"8", "17:30", "meio-dia", "10:5:0"} {
		got := rig.send(t, "u1", raw)
		if got[0] != msgInvalidTime {
			t.Fatalf("horário %q: got %q, want aviso de formato", raw, got[0])
		}
		if rig.stage("u1") != session.StageAwaitingTime {
			t.Fatalf("stage = %v, want awaiting_time", rig.stage("u1"))
		}
	}

	if !rig.ledger.IsEmpty() {
		t.Error("horário inválido não pode tocar o ledger")
	}
}

func TestListBookingsCommand(t *testing.T) {
	rig := newTestRig(nil)

	if got := rig.send(t, "u9", "ver agendamentos"); got[0] != msgNoBookings {
		t.Fatalf("agenda vazia: got %q", got[0])
	}

	rig.send(t, "u1", "agendar", "Maria", "2", "14")
	rig.send(t, "u2", "agendar", "João", "1", "9:30")

	got := rig.send(t, "u9", "ver agendamentos")
	want := "Agendamentos do dia:\n09:30: joão - Corte de cabelo\n14:00: maria - Barba"
	if got[0] != want {
		t.Errorf("listagem:\ngot  %q\nwant %q", got[0], want)
	}
	if rig.stage("u9") != session.StageIdle {
		t.Errorf("listar não pode mudar o estágio, got %v", rig.stage("u9"))
	}
}

func TestFollowupFlow(t *testing.T) {
	rig := newTestRig(nil)

	if got := rig.send(t, "u1", "obrigado"); got[0] != msgFollowup {
		t.Fatalf("obrigado: got %q", got[0])
	}
	if rig.stage("u1") != session.StageAwaitingFollowup {
		t.Fatalf("stage = %v, want awaiting_followup", rig.stage("u1"))
	}

	if got := rig.send(t, "u1", "sim"); got[0] != msgFollowupMenu {
		t.Fatalf("sim: got %q", got[0])
	}
	if rig.stage("u1") != session.StageAwaitingFollowupOption {
		t.Fatalf("stage = %v, want awaiting_followup_option", rig.stage("u1"))
	}

	// opção inválida mantém o estágio
	if got := rig.send(t, "u1", "4"); got[0] != msgInvalidOption {
		t.Fatalf("opção inválida: got %q", got[0])
	}
	if rig.stage("u1") != session.StageAwaitingFollowupOption {
		t.Fatalf("stage = %v, want awaiting_followup_option", rig.stage("u1"))
	}

	// opção 1 reinicia o agendamento
	if got := rig.send(t, "u1", "1"); got[0] != msgAskName {
		t.Fatalf("reagendar: got %q", got[0])
	}
	if rig.stage("u1") != session.StageAwaitingName {
		t.Fatalf("stage = %v, want awaiting_name", rig.stage("u1"))
	}
}

func TestFollowupDeclineResets(t *testing.T) {
	rig := newTestRig(nil)

	rig.send(t, "u1", "obrigado")
	if got := rig.send(t, "u1", "não"); got[0] != msgClosing {
		t.Fatalf("recusa: got %q", got[0])
	}
	if rig.stage("u1") != session.StageIdle {
		t.Errorf("stage = %v, want idle", rig.stage("u1"))
	}
}

func TestFollowupReceptionHandoff(t *testing.T) {
	rig := newTestRig(nil)

	rig.send(t, "u1", "obrigado", "sim")
	if got := rig.send(t, "u1", "2"); got[0] != msgReceptionQueue {
		t.Fatalf("recepção: got %q", got[0])
	}
	if rig.stage("u1") != session.StageIdle {
		t.Errorf("stage = %v, want idle", rig.stage("u1"))
	}

	rig.dispatcher.Close()
	actions := rig.sink.actions()
	if len(actions) != 1 || actions[0] != audit.ActionReceptionHandoff {
		t.Errorf("auditoria = %v, want [reception_handoff]", actions)
	}
}

func TestFollowupFinishResets(t *testing.T) {
	rig := newTestRig(nil)

	rig.send(t, "u1", "obrigado", "sim")
	if got := rig.send(t, "u1", "3"); got[0] != msgClosing {
		t.Fatalf("finalizar: got %q", got[0])
	}
	if rig.stage("u1") != session.StageIdle {
		t.Errorf("stage = %v, want idle", rig.stage("u1"))
	}
}

func TestControlWordsCaseInsensitiveAndTrimmed(t *testing.T) {
	rig := newTestRig(nil)

	if got := rig.send(t, "u1", "  AGENDAR  "); got[0] != msgAskName {
		t.Fatalf("controle com maiúsculas/espaços: got %q", got[0])
	}
}

func TestGreetingFollowsClock(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{8, "Bom dia"},
		{12, "Bom dia"},
		{13, "Boa tarde"},
		{17, "Boa tarde"},
		{18, "Boa noite"},
		{23, "Boa noite"},
	}

	for _, tc := range cases {
		clock := func() time.Time {
			return time.Date(2024, 3, 5, tc.hour, 0, 0, 0, time.UTC)
		}
		rig := newTestRig(clock)

		got := rig.send(t, "u1", "oi")
		if !strings.HasPrefix(got[0], tc.want) {
			t.Errorf("hora %d: saudação %q, want prefixo %q", tc.hour, got[0], tc.want)
		}
	}
}

func TestBookingAuditTrail(t *testing.T) {
	rig := newTestRig(nil)

	rig.send(t, "u1", "agendar", "Maria", "2", "10")
	rig.send(t, "u2", "agendar", "João", "1", "10") // conflito
	rig.send(t, "u1", "agendar", "Maria", "3", "14") // reagendamento

	rig.dispatcher.Close()
	actions := rig.sink.actions()

	want := []string{
		audit.ActionBookingCreated,
		audit.ActionBookingConflict,
		audit.ActionBookingSuperseded,
		audit.ActionBookingCreated,
	}
	if len(actions) != len(want) {
		t.Fatalf("auditoria = %v, want %v", actions, want)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Fatalf("auditoria[%d] = %q, want %q (%v)", i, actions[i], want[i], actions)
		}
	}
}
