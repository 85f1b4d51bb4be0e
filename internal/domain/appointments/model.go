package appointments

import "time"

// Appointment es una consulta: un veterinario atiende a una mascota en un horario.
type Appointment struct {
	ID             int64
	VeterinarianID int64
	PetID          int64
	At             time.Time
	Fee            *float64 // valor; nil si no se informó
}

// View es la fila del listado: la consulta junto con datos de veterinario,
// mascota y tutor (alcanzado vía la mascota).
type View struct {
	ID        int64
	CRMV      string
	VetName   string
	CPF       string
	TutorName string
	PetName   string
	At        time.Time
	Fee       *float64
}
