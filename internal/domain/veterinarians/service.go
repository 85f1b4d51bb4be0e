package veterinarians

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

// Input es el set completo de campos; Update reemplaza todo (lo ausente queda vacío).
type Input struct {
	Name      string     `label:"nome" validate:"required"`
	CRMV      string     `label:"crmv" validate:"required,max=8"`
	BirthDate *time.Time `label:"data_nascimento"`
	Contact   registry.Contact
}

func (in Input) normalized() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.CRMV = strings.TrimSpace(in.CRMV)
	in.Contact = in.Contact.Normalized()
	return in
}

func (in Input) toVeterinarian(id int64) Veterinarian {
	return Veterinarian{
		ID:        id,
		Name:      in.Name,
		CRMV:      in.CRMV,
		BirthDate: in.BirthDate,
		Contact:   in.Contact,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (Veterinarian, error) {
	in = in.normalized()
	if err := registry.Validate(in); err != nil {
		return Veterinarian{}, err
	}

	var out Veterinarian
	err := s.store.InTx(ctx, func(repo Repository) error {
		if err := checkCRMV(ctx, repo, in.CRMV, 0); err != nil {
			return err
		}

		created, err := repo.Create(ctx, in.toVeterinarian(0))
		if err != nil {
			return registry.Store("create veterinarian", err)
		}
		out = created
		return nil
	})
	if err != nil {
		return Veterinarian{}, registry.Store("create veterinarian", err)
	}
	return out, nil
}

func (s *Service) List(ctx context.Context) ([]Veterinarian, error) {
	var out []Veterinarian
	err := s.store.InTx(ctx, func(repo Repository) error {
		items, err := repo.List(ctx)
		if err != nil {
			return err
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, registry.Store("list veterinarians", err)
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Veterinarian, error) {
	in = in.normalized()

	var out Veterinarian
	err := s.store.InTx(ctx, func(repo Repository) error {
		if _, err := load(ctx, repo, id); err != nil {
			return err
		}
		if err := registry.Validate(in); err != nil {
			return err
		}
		if err := checkCRMV(ctx, repo, in.CRMV, id); err != nil {
			return err
		}

		updated, err := repo.Update(ctx, in.toVeterinarian(id))
		if err != nil {
			return registry.Store("update veterinarian", err)
		}
		out = updated
		return nil
	})
	if err != nil {
		return Veterinarian{}, registry.Store("update veterinarian", err)
	}
	return out, nil
}

// Delete borra primero las consultas del veterinario (si tiene) y después el registro.
// Devuelve los valores que tenía antes de borrarse.
func (s *Service) Delete(ctx context.Context, id int64) (Veterinarian, error) {
	var out Veterinarian
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
			return registry.Store("delete veterinarian", err)
		}
		out = deleted
		return nil
	})
	if err != nil {
		return Veterinarian{}, registry.Store("delete veterinarian", err)
	}
	return out, nil
}

func load(ctx context.Context, repo Repository, id int64) (Veterinarian, error) {
	v, err := repo.GetByID(ctx, id)
	if errors.Is(err, registry.ErrNotFound) {
		return Veterinarian{}, registry.NotFound("veterinarian not found")
	}
	if err != nil {
		return Veterinarian{}, registry.Store("get veterinarian", err)
	}
	return v, nil
}

func checkCRMV(ctx context.Context, repo Repository, crmv string, exceptID int64) error {
	taken, err := repo.CRMVTaken(ctx, crmv, exceptID)
	if err != nil {
		return registry.Store("check crmv", err)
	}
	if taken {
		return registry.Conflict("crmv already registered")
	}
	return nil
}
