package appointments

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Appointment) (Appointment, error)
	List(ctx context.Context) ([]View, error)
	GetByID(ctx context.Context, id int64) (Appointment, error)
	// Update cambia data_hora y valor; veterinario y mascota quedan como estaban.
	Update(ctx context.Context, a Appointment) (Appointment, error)
	Delete(ctx context.Context, id int64) (Appointment, error)

	PetExists(ctx context.Context, petID int64) (bool, error)
	VeterinarianExists(ctx context.Context, vetID int64) (bool, error)

	// SlotTaken indica si el veterinario ya tiene otra consulta (id != exceptID) en at.
	SlotTaken(ctx context.Context, vetID int64, at time.Time, exceptID int64) (bool, error)
}

type Store interface {
	InTx(ctx context.Context, fn func(repo Repository) error) error
}
