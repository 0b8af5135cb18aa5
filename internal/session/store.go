// Package session mantém o estado de conversa de cada usuário do bot:
// exatamente uma sessão por identidade, criada sob demanda na primeira
// mensagem e nunca removida, apenas reiniciada.
package session

import (
	"sync"

	"github.com/BruksfildServices01/barber-chatbot/internal/schedule"
)

// Stage é o passo atual da conversa.
type Stage int

const (
	StageIdle Stage = iota
	StageAwaitingName
	StageAwaitingService
	StageAwaitingTime
	StageAwaitingFollowup
	StageAwaitingFollowupOption
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageAwaitingName:
		return "awaiting_name"
	case StageAwaitingService:
		return "awaiting_service"
	case StageAwaitingTime:
		return "awaiting_time"
	case StageAwaitingFollowup:
		return "awaiting_followup"
	case StageAwaitingFollowupOption:
		return "awaiting_followup_option"
	default:
		return "unknown"
	}
}

// Session guarda o estágio da conversa e os dados parciais do agendamento.
// Só o dono da conversa (via engine) escreve aqui.
type Session struct {
	Stage      Stage
	ClientName string
	Service    schedule.ServiceCode
}

// Reset volta a sessão para o estágio ocioso, descartando dados parciais.
func (s *Session) Reset() {
	*s = Session{}
}

// Store mapeia a identidade opaca do usuário para a sua sessão.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get devolve a sessão do usuário, criando-a ociosa na primeira mensagem.
func (s *Store) Get(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session{}
		s.sessions[userID] = sess
	}
	return sess
}

// Len é o número de sessões já criadas (ociosas incluídas).
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
