package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Expediente da barbearia (cadeira única). 17:00 é o último horário do dia.
const (
	OpeningHour = 9
	ClosingHour = 17
)

// TimeSlot é um horário canônico do dia de atendimento. É a chave da
// agenda: igualdade é por (Hour, Minute).
type TimeSlot struct {
	Hour   int
	Minute int
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

// Before ordena slots de forma ascendente dentro do dia.
func (s TimeSlot) Before(other TimeSlot) bool {
	if s.Hour != other.Hour {
		return s.Hour < other.Hour
	}
	return s.Minute < other.Minute
}

// Normalize converte texto livre (já em minúsculas e sem espaços nas
// bordas) em um TimeSlot canônico.
//
// Formatos aceitos:
//   - hora inteira: "9".."17", normalizada para HH:00
//   - "HH:MM" com exatamente duas partes numéricas
//
// Qualquer entrada fora do expediente ou malformada devolve ok=false,
// nunca um slot parcial.
func Normalize(raw string) (TimeSlot, bool) {
	if isDigits(raw) {
		hour, err := strconv.Atoi(raw)
		if err != nil || hour < OpeningHour || hour > ClosingHour {
			return TimeSlot{}, false
		}
		return TimeSlot{Hour: hour}, true
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 2 || !isDigits(parts[0]) || !isDigits(parts[1]) {
		return TimeSlot{}, false
	}

	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return TimeSlot{}, false
	}

	if hour < OpeningHour || hour > ClosingHour || minute > 59 {
		return TimeSlot{}, false
	}

	// O fechamento só é inclusivo na hora cheia.
	if hour == ClosingHour && minute != 0 {
		return TimeSlot{}, false
	}

	return TimeSlot{Hour: hour, Minute: minute}, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
