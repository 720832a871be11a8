package models

import "github.com/shopspring/decimal"

// ServiceCategory is one of the fixed services offered to walk-ins.
type ServiceCategory string

const (
	ServiceCut   ServiceCategory = "corte"
	ServiceBeard ServiceCategory = "barba"
	ServiceBoth  ServiceCategory = "ambos"
)

// Service describes a category with its fixed duration.
type Service struct {
	Category     ServiceCategory `json:"categoria"`
	Label        string          `json:"nombre"`
	Minutes      int             `json:"minutos"`
	DefaultPrice decimal.Decimal `json:"-"`
}

var Services = []Service{
	{Category: ServiceCut, Label: "Corte", Minutes: 30, DefaultPrice: decimal.NewFromInt(8000)},
	{Category: ServiceBeard, Label: "Barba", Minutes: 15, DefaultPrice: decimal.NewFromInt(4000)},
	{Category: ServiceBoth, Label: "Corte + Barba", Minutes: 45, DefaultPrice: decimal.NewFromInt(10000)},
}

func LookupService(c ServiceCategory) (Service, bool) {
	for _, s := range Services {
		if s.Category == c {
			return s, true
		}
	}
	return Service{}, false
}

// Barber is static descriptive metadata. Wait counters are derived from the
// queue, never stored here.
type Barber struct {
	Name      string `json:"nombre"`
	Specialty string `json:"especialidad"`
	Bio       string `json:"bio"`
	Emoji     string `json:"emoji"`
}

var Barbers = []Barber{
	{
		Name:      "Gonzalo",
		Specialty: "Degradados Clásicos y Perfiles",
		Bio:       "Con 15 años de experiencia, Gonzalo es el maestro de la perfección estructural.",
		Emoji:     "💇‍♂️",
	},
	{
		Name:      "Lautaro",
		Specialty: "Esculpido de Barba y Textura Moderna",
		Bio:       "Lautaro aporta un toque contemporáneo a cada corte, especializándose en texturas de cabello largo.",
		Emoji:     "🧔",
	},
	{
		Name:      "Julián",
		Specialty: "Corte Ejecutivo y Estilismo Funcional",
		Bio:       "Julián es nuestro especialista en cortes clásicos renovados, enfocado en la armonía facial y el detalle.",
		Emoji:     "✂️",
	},
}

func LookupBarber(name string) (Barber, bool) {
	for _, b := range Barbers {
		if b.Name == name {
			return b, true
		}
	}
	return Barber{}, false
}
