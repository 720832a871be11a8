package models

// Shop is the public information about the venue.
type Shop struct {
	Name      string   `json:"nombre"`
	Address   string   `json:"direccion"`
	City      string   `json:"ciudad"`
	MapsURL   string   `json:"mapa"`
	Instagram string   `json:"instagram"`
	Hours     []string `json:"horarios"`
}

var ShopInfo = Shop{
	Name:      "TuLook Barbería",
	Address:   "Sarmiento 68",
	City:      "Colón, Entre Ríos, CP 3280",
	MapsURL:   "https://maps.app.goo.gl/uXCvu2xt6fTwb5g16",
	Instagram: "https://www.instagram.com/tulook_colon",
	Hours: []string{
		"Lunes: 16:00 - 21:00",
		"Mar - Jue: 09:30 - 13:00",
		"Viernes: 10:00 - 22:00",
		"Sábados: 10:00 - 22:00",
		"Domingos: Cerrado",
	},
}
