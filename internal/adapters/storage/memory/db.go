package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"clinica-pet-feliz/internal/domain/appointments"
	"clinica-pet-feliz/internal/domain/pets"
	"clinica-pet-feliz/internal/domain/tutors"
	"clinica-pet-feliz/internal/domain/veterinarians"
)

// DB es el store en memoria (modo dev y tests). Las cuatro tablas viven juntas
// para que los deletes en cascada vean el mismo estado.
type DB struct {
	mu sync.Mutex

	vets         map[int64]veterinarians.Veterinarian
	tutors       map[int64]tutors.Tutor
	pets         map[int64]pets.Pet
	appointments map[int64]appointments.Appointment

	// Las secuencias no vuelven atrás con el rollback: un id nunca se reusa.
	seq struct{ vet, tutor, pet, appointment int64 }
}

func NewDB() *DB {
	return &DB{
		vets:         make(map[int64]veterinarians.Veterinarian),
		tutors:       make(map[int64]tutors.Tutor),
		pets:         make(map[int64]pets.Pet),
		appointments: make(map[int64]appointments.Appointment),
	}
}

type snapshot struct {
	vets         map[int64]veterinarians.Veterinarian
	tutors       map[int64]tutors.Tutor
	pets         map[int64]pets.Pet
	appointments map[int64]appointments.Appointment
}

func (db *DB) snapshot() snapshot {
	return snapshot{
		vets:         maps.Clone(db.vets),
		tutors:       maps.Clone(db.tutors),
		pets:         maps.Clone(db.pets),
		appointments: maps.Clone(db.appointments),
	}
}

func (db *DB) restore(s snapshot) {
	db.vets = s.vets
	db.tutors = s.tutors
	db.pets = s.pets
	db.appointments = s.appointments
}

// inTx corre fn con el lock tomado. Si fn devuelve error (o hace panic)
// las tablas vuelven al estado previo.
func (db *DB) inTx(ctx context.Context, fn func() error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	before := db.snapshot()
	defer func() {
		if p := recover(); p != nil {
			db.restore(before)
			panic(p)
		}
		if err != nil {
			db.restore(before)
		}
	}()

	return fn()
}

// sortedByID devuelve los valores ordenados por id (orden de inserción).
func sortedByID[T any](m map[int64]T) []T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]T, 0, len(m))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

func (db *DB) countAppointments(match func(appointments.Appointment) bool) int {
	n := 0
	for _, a := range db.appointments {
		if match(a) {
			n++
		}
	}
	return n
}

func (db *DB) deleteAppointments(match func(appointments.Appointment) bool) {
	maps.DeleteFunc(db.appointments, func(_ int64, a appointments.Appointment) bool {
		return match(a)
	})
}

func byVet(vetID int64) func(appointments.Appointment) bool {
	return func(a appointments.Appointment) bool { return a.VeterinarianID == vetID }
}

func byPet(petID int64) func(appointments.Appointment) bool {
	return func(a appointments.Appointment) bool { return a.PetID == petID }
}
