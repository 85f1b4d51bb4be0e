package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinica-pet-feliz/internal/domain/registry"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ProfileInput son los campos editables de la mascota.
type ProfileInput struct {
	Name      string     `label:"nome"`
	BirthDate *time.Time `label:"data_nascimento" validate:"required"`
	Species   string     `label:"especie" validate:"required"`
	Breed     string     `label:"raca"`
}

type CreateInput struct {
	ProfileInput
	TutorID int64 `label:"id_tutor" validate:"required"`
}

func (in ProfileInput) normalized() ProfileInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Species = strings.TrimSpace(in.Species)
	in.Breed = strings.TrimSpace(in.Breed)
	return in
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	in.ProfileInput = in.ProfileInput.normalized()
	if err := registry.Validate(in); err != nil {
		return Pet{}, err
	}

	var out Pet
	err := s.store.InTx(ctx, func(repo Repository) error {
		ok, err := repo.TutorExists(ctx, in.TutorID)
		if err != nil {
			return registry.Store("check tutor", err)
		}
		if !ok {
			return registry.Reference("tutor does not exist")
		}

		created, err := repo.Create(ctx, Pet{
			TutorID:   in.TutorID,
			Name:      in.Name,
			BirthDate: in.BirthDate,
			Species:   in.Species,
			Breed:     in.Breed,
		})
		if err != nil {
			return registry.Store("create pet", err)
		}
		out = created
		return nil
	})
	if err != nil {
		return Pet{}, registry.Store("create pet", err)
	}
	return out, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	var out []Pet
	err := s.store.InTx(ctx, func(repo Repository) error {
		items, err := repo.List(ctx)
		out = items
		return err
	})
	if err != nil {
		return nil, registry.Store("list pets", err)
	}
	return out, nil
}

// UpdateProfile no toca el tutor de la mascota.
func (s *Service) UpdateProfile(ctx context.Context, id int64, in ProfileInput) (Pet, error) {
	in = in.normalized()

	var out Pet
	err := s.store.InTx(ctx, func(repo Repository) error {
		current, err := load(ctx, repo, id)
		if err != nil {
			return err
		}
		if err := registry.Validate(in); err != nil {
			return err
		}

		current.Name = in.Name
		current.BirthDate = in.BirthDate
		current.Species = in.Species
		current.Breed = in.Breed

		updated, err := repo.UpdateProfile(ctx, current)
		if err != nil {
			return registry.Store("update pet", err)
		}
		out = updated
		return nil
	})
	if err != nil {
		return Pet{}, registry.Store("update pet", err)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (Pet, error) {
	var out Pet
	err := s.store.InTx(ctx, func(repo Repository) error {
		if _, err := load(ctx, repo, id); err != nil {
			return err
		}

		n, err := repo.CountAppointments(ctx, id)
		if err != nil {
			return registry.Store("count appointments", err)
		}
		if n > 0 {
			if err := repo.DeleteAppointments(ctx, id); err != nil {
				return registry.Store("delete appointments", err)
			}
		}

		deleted, err := repo.Delete(ctx, id)
		if err != nil {
			return registry.Store("delete pet", err)
		}
		out = deleted
		return nil
	})
	if err != nil {
		return Pet{}, registry.Store("delete pet", err)
	}
	return out, nil
}

func load(ctx context.Context, repo Repository, id int64) (Pet, error) {
	p, err := repo.GetByID(ctx, id)
	if errors.Is(err, registry.ErrNotFound) {
		return Pet{}, registry.NotFound("pet not found")
	}
	if err != nil {
		return Pet{}, registry.Store("get pet", err)
	}
	return p, nil
}
