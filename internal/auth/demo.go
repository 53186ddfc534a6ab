package auth

// Canned profiles for sales demos. Logging in with one of these addresses
// succeeds with any password; that shortcut is intentional product behavior
// and lives only in this file and the demo branch of Login.

// Bono is the remaining/total state of a session bundle.
type Bono struct {
	Sesiones int `json:"sesiones"`
	Total    int `json:"total"`
}

// Reserva is a booked class as shown on the client dashboard.
type Reserva struct {
	ID   int    `json:"id"`
	Date string `json:"date"`
	Time string `json:"time"`
	Type string `json:"type"`
}

// DemoData drives the dashboard rendering branches for a demo session.
type DemoData struct {
	Bono      *Bono     `json:"bono,omitempty"`
	Reservas  []Reserva `json:"reservas"`
	HasOnline bool      `json:"hasOnline"`
}

type demoProfile struct {
	Name string
	Role Role
	Data DemoData
}

// demoProfileFor resolves a reserved demo address. The three bundles show a
// brand-new client, a mid-bundle in-person client, and a premium client with
// online access.
func demoProfileFor(email string) (demoProfile, bool) {
	switch email {
	case "nuevo@demo.com":
		return demoProfile{
			Name: "Usuario Nuevo",
			Role: RoleClient,
			Data: DemoData{
				Reservas:  []Reserva{},
				HasOnline: false,
			},
		}, true
	case "presencial@demo.com":
		return demoProfile{
			Name: "Cliente Presencial",
			Role: RoleClient,
			Data: DemoData{
				Bono: &Bono{Sesiones: 3, Total: 10},
				Reservas: []Reserva{
					{ID: 1, Date: "12 Oct", Time: "18:00", Type: "Pilates Máquina"},
				},
				HasOnline: false,
			},
		}, true
	case "full@demo.com":
		return demoProfile{
			Name: "Cliente Premium",
			Role: RoleClient,
			Data: DemoData{
				Bono: &Bono{Sesiones: 8, Total: 10},
				Reservas: []Reserva{
					{ID: 1, Date: "12 Oct", Time: "18:00", Type: "Pilates Máquina"},
					{ID: 2, Date: "20 Oct", Time: "19:00", Type: "Suelo Pélvico"},
				},
				HasOnline: true,
			},
		}, true
	}
	return demoProfile{}, false
}
