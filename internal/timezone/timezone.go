package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Location resolve o nome do fuso, caindo no padrão quando inválido.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// NowIn é o relógio de parede no fuso da barbearia.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
