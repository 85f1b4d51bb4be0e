package tutors

import "context"

type Repository interface {
	Create(ctx context.Context, t Tutor) (Tutor, error)
	List(ctx context.Context) ([]Tutor, error)
	GetByID(ctx context.Context, id int64) (Tutor, error)
	Update(ctx context.Context, t Tutor) (Tutor, error)
	Delete(ctx context.Context, id int64) (Tutor, error)

	// CPFTaken indica si otro tutor (id != exceptID) ya usa el CPF.
	CPFTaken(ctx context.Context, cpf string, exceptID int64) (bool, error)

	// Cascada del delete: mascotas del tutor y consultas de cada mascota.
	PetIDs(ctx context.Context, tutorID int64) ([]int64, error)
	CountPetAppointments(ctx context.Context, petID int64) (int, error)
	DeletePetAppointments(ctx context.Context, petID int64) error
	DeletePets(ctx context.Context, tutorID int64) error
}

type Store interface {
	InTx(ctx context.Context, fn func(repo Repository) error) error
}
