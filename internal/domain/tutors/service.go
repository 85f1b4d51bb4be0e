package tutors

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

type Input struct {
	Name      string     `label:"nome" validate:"required"`
	CPF       string     `label:"cpf" validate:"required,max=15"`
	BirthDate *time.Time `label:"data_nascimento"`
	Contact   registry.Contact
}

func (in Input) normalized() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.CPF = strings.TrimSpace(in.CPF)
	in.Contact = in.Contact.Normalized()
	return in
}

func (in Input) toTutor(id int64) Tutor {
	return Tutor{
		ID:        id,
		Name:      in.Name,
		CPF:       in.CPF,
		BirthDate: in.BirthDate,
		Contact:   in.Contact,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (Tutor, error) {
	in = in.normalized()
	if err := registry.Validate(in); err != nil {
		return Tutor{}, err
	}

	var out Tutor
	err := s.store.InTx(ctx, func(repo Repository) error {
		if err := checkCPF(ctx, repo, in.CPF, 0); err != nil {
			return err
		}

		created, err := repo.Create(ctx, in.toTutor(0))
		if err != nil {
			return registry.Store("create tutor", err)
		}
		out = created
		return nil
	})
	if err != nil {
		return Tutor{}, registry.Store("create tutor", err)
	}
	return out, nil
}

func (s *Service) List(ctx context.Context) ([]Tutor, error) {
	var out []Tutor
	err := s.store.InTx(ctx, func(repo Repository) error {
		items, err := repo.List(ctx)
		out = items
		return err
	})
	if err != nil {
		return nil, registry.Store("list tutors", err)
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Tutor, error) {
	in = in.normalized()

	var out Tutor
	err := s.store.InTx(ctx, func(repo Repository) error {
		if _, err := load(ctx, repo, id); err != nil {
			return err
		}
		if err := registry.Validate(in); err != nil {
			return err
		}
		if err := checkCPF(ctx, repo, in.CPF, id); err != nil {
			return err
		}

		updated, err := repo.Update(ctx, in.toTutor(id))
		if err != nil {
			return registry.Store("update tutor", err)
		}
		out = updated
		return nil
	})
	if err != nil {
		return Tutor{}, registry.Store("update tutor", err)
	}
	return out, nil
}

// Delete baja en dos niveles: consultas de cada mascota del tutor, las mascotas
// y por último el tutor. Todo en la misma transacción.
func (s *Service) Delete(ctx context.Context, id int64) (Tutor, error) {
	var out Tutor
	err := s.store.InTx(ctx, func(repo Repository) error {
		if _, err := load(ctx, repo, id); err != nil {
			return err
		}

		petIDs, err := repo.PetIDs(ctx, id)
		if err != nil {
			return registry.Store("list tutor pets", err)
		}
		for _, petID := range petIDs {
			n, err := repo.CountPetAppointments(ctx, petID)
			if err != nil {
				return registry.Store("count appointments", err)
			}
			if n == 0 {
				continue
			}
			if err := repo.DeletePetAppointments(ctx, petID); err != nil {
				return registry.Store("delete appointments", err)
			}
		}
		if len(petIDs) > 0 {
			if err := repo.DeletePets(ctx, id); err != nil {
				return registry.Store("delete pets", err)
			}
		}

		deleted, err := repo.Delete(ctx, id)
		if err != nil {
			return registry.Store("delete tutor", err)
		}
		out = deleted
		return nil
	})
	if err != nil {
		return Tutor{}, registry.Store("delete tutor", err)
	}
	return out, nil
}

func load(ctx context.Context, repo Repository, id int64) (Tutor, error) {
	t, err := repo.GetByID(ctx, id)
	if errors.Is(err, registry.ErrNotFound) {
		return Tutor{}, registry.NotFound("tutor not found")
	}
	if err != nil {
		return Tutor{}, registry.Store("get tutor", err)
	}
	return t, nil
}

func checkCPF(ctx context.Context, repo Repository, cpf string, exceptID int64) error {
	taken, err := repo.CPFTaken(ctx, cpf, exceptID)
	if err != nil {
		return registry.Store("check cpf", err)
	}
	if taken {
		return registry.Conflict("cpf already registered")
	}
	return nil
}
