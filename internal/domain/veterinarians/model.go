package veterinarians

import (
	"time"

	"clinica-pet-feliz/internal/domain/registry"
)

// Veterinarian representa un veterinario de la clínica.
type Veterinarian struct {
	ID int64

	Name      string
	CRMV      string
	BirthDate *time.Time

	registry.Contact
}
