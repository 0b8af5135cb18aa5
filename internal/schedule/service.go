package schedule

// ServiceCode identifica um serviço do catálogo fixo da barbearia.
type ServiceCode string

const (
	ServiceHaircut         ServiceCode = "haircut"
	ServiceBeard           ServiceCode = "beard"
	ServiceHaircutAndBeard ServiceCode = "haircut_and_beard"
)

// Opções do menu do bot, na ordem apresentada ao cliente.
var serviceByOption = map[string]ServiceCode{
	"1": ServiceHaircut,
	"2": ServiceBeard,
	"3": ServiceHaircutAndBeard,
}

var serviceLabels = map[ServiceCode]string{
	ServiceHaircut:         "Corte de cabelo",
	ServiceBeard:           "Barba",
	ServiceHaircutAndBeard: "Corte e Barba",
}

// ParseServiceOption traduz a opção digitada ("1", "2" ou "3") no serviço.
func ParseServiceOption(text string) (ServiceCode, bool) {
	code, ok := serviceByOption[text]
	return code, ok
}

// Label é o nome do serviço exibido ao cliente.
func (s ServiceCode) Label() string {
	return serviceLabels[s]
}
