package memory

import (
	"context"
	"fmt"
	"time"

	"clinica-pet-feliz/internal/domain/appointments"
	"clinica-pet-feliz/internal/domain/registry"
)

type AppointmentStore struct {
	db *DB
}

func NewAppointmentStore(db *DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

func (s *AppointmentStore) InTx(ctx context.Context, fn func(repo appointments.Repository) error) error {
	return s.db.inTx(ctx, func() error {
		return fn(&appointmentRepo{db: s.db})
	})
}

type appointmentRepo struct {
	db *DB
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	if _, ok := r.db.pets[a.PetID]; !ok {
		return appointments.Appointment{}, fmt.Errorf("%w: pet %d", registry.ErrReference, a.PetID)
	}
	if _, ok := r.db.vets[a.VeterinarianID]; !ok {
		return appointments.Appointment{}, fmt.Errorf("%w: veterinario %d", registry.ErrReference, a.VeterinarianID)
	}
	r.db.seq.appointment++
	a.ID = r.db.seq.appointment
	r.db.appointments[a.ID] = a
	return a, nil
}

// List arma la vista igual que el JOIN de Postgres.
func (r *appointmentRepo) List(ctx context.Context) ([]appointments.View, error) {
	items := sortedByID(r.db.appointments)
	out := make([]appointments.View, 0, len(items))
	for _, a := range items {
		vet := r.db.vets[a.VeterinarianID]
		pet := r.db.pets[a.PetID]
		tutor := r.db.tutors[pet.TutorID]
		out = append(out, appointments.View{
			ID:        a.ID,
			CRMV:      vet.CRMV,
			VetName:   vet.Name,
			CPF:       tutor.CPF,
			TutorName: tutor.Name,
			PetName:   pet.Name,
			At:        a.At,
			Fee:       a.Fee,
		})
	}
	return out, nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	a, ok := r.db.appointments[id]
	if !ok {
		return appointments.Appointment{}, fmt.Errorf("%w: consulta %d", registry.ErrNotFound, id)
	}
	return a, nil
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	current, err := r.GetByID(ctx, a.ID)
	if err != nil {
		return appointments.Appointment{}, err
	}
	current.At = a.At
	current.Fee = a.Fee
	r.db.appointments[a.ID] = current
	return current, nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id int64) (appointments.Appointment, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return appointments.Appointment{}, err
	}
	delete(r.db.appointments, id)
	return a, nil
}

func (r *appointmentRepo) PetExists(ctx context.Context, petID int64) (bool, error) {
	_, ok := r.db.pets[petID]
	return ok, nil
}

func (r *appointmentRepo) VeterinarianExists(ctx context.Context, vetID int64) (bool, error) {
	_, ok := r.db.vets[vetID]
	return ok, nil
}

func (r *appointmentRepo) SlotTaken(ctx context.Context, vetID int64, at time.Time, exceptID int64) (bool, error) {
	for id, a := range r.db.appointments {
		if id != exceptID && a.VeterinarianID == vetID && a.At.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}
