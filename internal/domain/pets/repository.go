package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	// UpdateProfile reemplaza nome, data_nascimento, especie y raca.
	UpdateProfile(ctx context.Context, p Pet) (Pet, error)
	Delete(ctx context.Context, id int64) (Pet, error)

	TutorExists(ctx context.Context, tutorID int64) (bool, error)

	CountAppointments(ctx context.Context, petID int64) (int, error)
	DeleteAppointments(ctx context.Context, petID int64) error
}

type Store interface {
	InTx(ctx context.Context, fn func(repo Repository) error) error
}
