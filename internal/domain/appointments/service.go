package appointments

import (
	"context"
	"errors"
	"time"

	"clinica-pet-feliz/internal/domain/registry"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type CreateInput struct {
	VeterinarianID int64      `label:"id_vet" validate:"required"`
	PetID          int64      `label:"id_pet" validate:"required"`
	At             *time.Time `label:"data_hora" validate:"required"`
	Fee            *float64   `label:"valor" validate:"omitempty,gte=0"`
}

type UpdateInput struct {
	At  *time.Time `label:"data_hora" validate:"required"`
	Fee *float64   `label:"valor" validate:"omitempty,gte=0"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if err := registry.Validate(in); err != nil {
		return Appointment{}, err
	}
	at := in.At.UTC()

	var out Appointment
	err := s.store.InTx(ctx, func(repo Repository) error {
		// La mascota se chequea antes que el veterinario.
		ok, err := repo.PetExists(ctx, in.PetID)
		if err != nil {
			return registry.Store("check pet", err)
		}
		if !ok {
			return registry.Reference("pet does not exist")
		}

		ok, err = repo.VeterinarianExists(ctx, in.VeterinarianID)
		if err != nil {
			return registry.Store("check veterinarian", err)
		}
		if !ok {
			return registry.Reference("veterinarian does not exist")
		}

		if err := checkSlot(ctx, repo, in.VeterinarianID, at, 0); err != nil {
			return err
		}

		created, err := repo.Create(ctx, Appointment{
			VeterinarianID: in.VeterinarianID,
			PetID:          in.PetID,
			At:             at,
			Fee:            in.Fee,
		})
		if err != nil {
			return registry.Store("create appointment", err)
		}
		out = created
		return nil
	})
	if err != nil {
		return Appointment{}, registry.Store("create appointment", err)
	}
	return out, nil
}

func (s *Service) List(ctx context.Context) ([]View, error) {
	var out []View
	err := s.store.InTx(ctx, func(repo Repository) error {
		items, err := repo.List(ctx)
		out = items
		return err
	})
	if err != nil {
		return nil, registry.Store("list appointments", err)
	}
	return out, nil
}

// Update usa el veterinario ya asignado a la consulta para el chequeo de horario.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Appointment, error) {
	var out Appointment
	err := s.store.InTx(ctx, func(repo Repository) error {
		current, err := load(ctx, repo, id)
		if err != nil {
			return err
		}
		if err := registry.Validate(in); err != nil {
			return err
		}

		at := in.At.UTC()
		if err := checkSlot(ctx, repo, current.VeterinarianID, at, id); err != nil {
			return err
		}

		current.At = at
		current.Fee = in.Fee
		updated, err := repo.Update(ctx, current)
		if err != nil {
			return registry.Store("update appointment", err)
		}
		out = updated
		return nil
	})
	if err != nil {
		return Appointment{}, registry.Store("update appointment", err)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (Appointment, error) {
	var out Appointment
	err := s.store.InTx(ctx, func(repo Repository) error {
		if _, err := load(ctx, repo, id); err != nil {
			return err
		}

		deleted, err := repo.Delete(ctx, id)
		if err != nil {
			return registry.Store("delete appointment", err)
		}
		out = deleted
		return nil
	})
	if err != nil {
		return Appointment{}, registry.Store("delete appointment", err)
	}
	return out, nil
}

func load(ctx context.Context, repo Repository, id int64) (Appointment, error) {
	a, err := repo.GetByID(ctx, id)
	if errors.Is(err, registry.ErrNotFound) {
		return Appointment{}, registry.NotFound("appointment not found")
	}
	if err != nil {
		return Appointment{}, registry.Store("get appointment", err)
	}
	return a, nil
}

func checkSlot(ctx context.Context, repo Repository, vetID int64, at time.Time, exceptID int64) error {
	taken, err := repo.SlotTaken(ctx, vetID, at, exceptID)
	if err != nil {
		return registry.Store("check schedule", err)
	}
	if taken {
		return registry.Conflict("veterinarian already has an appointment at this time")
	}
	return nil
}
