package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"clinica-pet-feliz/internal/domain/pets"
	"clinica-pet-feliz/internal/domain/registry"
	"clinica-pet-feliz/internal/domain/tutors"
)

type TutorStore struct {
	db *DB
}

func NewTutorStore(db *DB) *TutorStore {
	return &TutorStore{db: db}
}

func (s *TutorStore) InTx(ctx context.Context, fn func(repo tutors.Repository) error) error {
	return s.db.inTx(ctx, func() error {
		return fn(&tutorRepo{db: s.db})
	})
}

type tutorRepo struct {
	db *DB
}

func (r *tutorRepo) Create(ctx context.Context, t tutors.Tutor) (tutors.Tutor, error) {
	r.db.seq.tutor++
	t.ID = r.db.seq.tutor
	r.db.tutors[t.ID] = t
	return t, nil
}

func (r *tutorRepo) List(ctx context.Context) ([]tutors.Tutor, error) {
	return sortedByID(r.db.tutors), nil
}

func (r *tutorRepo) GetByID(ctx context.Context, id int64) (tutors.Tutor, error) {
	t, ok := r.db.tutors[id]
	if !ok {
		return tutors.Tutor{}, fmt.Errorf("%w: tutor %d", registry.ErrNotFound, id)
	}
	return t, nil
}

func (r *tutorRepo) Update(ctx context.Context, t tutors.Tutor) (tutors.Tutor, error) {
	if _, ok := r.db.tutors[t.ID]; !ok {
		return tutors.Tutor{}, fmt.Errorf("%w: tutor %d", registry.ErrNotFound, t.ID)
	}
	r.db.tutors[t.ID] = t
	return t, nil
}

func (r *tutorRepo) Delete(ctx context.Context, id int64) (tutors.Tutor, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return tutors.Tutor{}, err
	}
	delete(r.db.tutors, id)
	return t, nil
}

func (r *tutorRepo) CPFTaken(ctx context.Context, cpf string, exceptID int64) (bool, error) {
	for id, t := range r.db.tutors {
		if id != exceptID && t.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (r *tutorRepo) PetIDs(ctx context.Context, tutorID int64) ([]int64, error) {
	ids := make([]int64, 0)
	for id, p := range r.db.pets {
		if p.TutorID == tutorID {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (r *tutorRepo) CountPetAppointments(ctx context.Context, petID int64) (int, error) {
	return r.db.countAppointments(byPet(petID)), nil
}

func (r *tutorRepo) DeletePetAppointments(ctx context.Context, petID int64) error {
	r.db.deleteAppointments(byPet(petID))
	return nil
}

func (r *tutorRepo) DeletePets(ctx context.Context, tutorID int64) error {
	maps.DeleteFunc(r.db.pets, func(_ int64, p pets.Pet) bool {
		return p.TutorID == tutorID
	})
	return nil
}
