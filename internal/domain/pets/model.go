package pets

import "time"

// Pet representa una mascota registrada en la clínica.
// TutorID se fija al crear; el update de perfil no lo cambia.
type Pet struct {
	ID      int64
	TutorID int64

	Name      string
	BirthDate *time.Time
	Species   string // especie, texto libre ("Cachorro", "Gato"...)
	Breed     string
}
