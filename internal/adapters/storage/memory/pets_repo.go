package memory

import (
	"context"
	"fmt"

	"clinica-pet-feliz/internal/domain/pets"
	"clinica-pet-feliz/internal/domain/registry"
)

type PetStore struct {
	db *DB
}

func NewPetStore(db *DB) *PetStore {
	return &PetStore{db: db}
}

func (s *PetStore) InTx(ctx context.Context, fn func(repo pets.Repository) error) error {
	return s.db.inTx(ctx, func() error {
		return fn(&petRepo{db: s.db})
	})
}

type petRepo struct {
	db *DB
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	// Misma FK que el schema de Postgres.
	if _, ok := r.db.tutors[p.TutorID]; !ok {
		return pets.Pet{}, fmt.Errorf("%w: tutor %d", registry.ErrReference, p.TutorID)
	}
	r.db.seq.pet++
	p.ID = r.db.seq.pet
	r.db.pets[p.ID] = p
	return p, nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return sortedByID(r.db.pets), nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	p, ok := r.db.pets[id]
	if !ok {
		return pets.Pet{}, fmt.Errorf("%w: pet %d", registry.ErrNotFound, id)
	}
	return p, nil
}

func (r *petRepo) UpdateProfile(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	current, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return pets.Pet{}, err
	}
	current.Name = p.Name
	current.BirthDate = p.BirthDate
	current.Species = p.Species
	current.Breed = p.Breed
	r.db.pets[p.ID] = current
	return current, nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) (pets.Pet, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return pets.Pet{}, err
	}
	delete(r.db.pets, id)
	return p, nil
}

func (r *petRepo) TutorExists(ctx context.Context, tutorID int64) (bool, error) {
	_, ok := r.db.tutors[tutorID]
	return ok, nil
}

func (r *petRepo) CountAppointments(ctx context.Context, petID int64) (int, error) {
	return r.db.countAppointments(byPet(petID)), nil
}

func (r *petRepo) DeleteAppointments(ctx context.Context, petID int64) error {
	r.db.deleteAppointments(byPet(petID))
	return nil
}
