package tutors

import (
	"time"

	"clinica-pet-feliz/internal/domain/registry"
)

// Tutor es el responsable (dueño) de una o más mascotas.
type Tutor struct {
	ID int64

	Name      string
	CPF       string
	BirthDate *time.Time

	registry.Contact
}
