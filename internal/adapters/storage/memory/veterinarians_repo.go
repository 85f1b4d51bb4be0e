package memory

import (
	"context"
	"fmt"

	"clinica-pet-feliz/internal/domain/registry"
	"clinica-pet-feliz/internal/domain/veterinarians"
)

type VeterinarianStore struct {
	db *DB
}

func NewVeterinarianStore(db *DB) *VeterinarianStore {
	return &VeterinarianStore{db: db}
}

func (s *VeterinarianStore) InTx(ctx context.Context, fn func(repo veterinarians.Repository) error) error {
	return s.db.inTx(ctx, func() error {
		return fn(&vetRepo{db: s.db})
	})
}

// vetRepo solo se usa dentro de inTx (lock tomado).
type vetRepo struct {
	db *DB
}

func (r *vetRepo) Create(ctx context.Context, v veterinarians.Veterinarian) (veterinarians.Veterinarian, error) {
	r.db.seq.vet++
	v.ID = r.db.seq.vet
	r.db.vets[v.ID] = v
	return v, nil
}

func (r *vetRepo) List(ctx context.Context) ([]veterinarians.Veterinarian, error) {
	return sortedByID(r.db.vets), nil
}

func (r *vetRepo) GetByID(ctx context.Context, id int64) (veterinarians.Veterinarian, error) {
	v, ok := r.db.vets[id]
	if !ok {
		return veterinarians.Veterinarian{}, fmt.Errorf("%w: veterinario %d", registry.ErrNotFound, id)
	}
	return v, nil
}

func (r *vetRepo) Update(ctx context.Context, v veterinarians.Veterinarian) (veterinarians.Veterinarian, error) {
	if _, ok := r.db.vets[v.ID]; !ok {
		return veterinarians.Veterinarian{}, fmt.Errorf("%w: veterinario %d", registry.ErrNotFound, v.ID)
	}
	r.db.vets[v.ID] = v
	return v, nil
}

func (r *vetRepo) Delete(ctx context.Context, id int64) (veterinarians.Veterinarian, error) {
	v, err := r.GetByID(ctx, id)
	if err != nil {
		return veterinarians.Veterinarian{}, err
	}
	delete(r.db.vets, id)
	return v, nil
}

func (r *vetRepo) CRMVTaken(ctx context.Context, crmv string, exceptID int64) (bool, error) {
	for id, v := range r.db.vets {
		if id != exceptID && v.CRMV == crmv {
			return true, nil
		}
	}
	return false, nil
}

func (r *vetRepo) CountAppointments(ctx context.Context, vetID int64) (int, error) {
	return r.db.countAppointments(byVet(vetID)), nil
}

func (r *vetRepo) DeleteAppointments(ctx context.Context, vetID int64) error {
	r.db.deleteAppointments(byVet(vetID))
	return nil
}
