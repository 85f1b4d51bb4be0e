package veterinarians

import "context"

// Repository son las operaciones que el servicio necesita del store.
// GetByID devuelve registry.ErrNotFound (envuelto) si no existe.
type Repository interface {
	Create(ctx context.Context, v Veterinarian) (Veterinarian, error)
	List(ctx context.Context) ([]Veterinarian, error)
	GetByID(ctx context.Context, id int64) (Veterinarian, error)
	Update(ctx context.Context, v Veterinarian) (Veterinarian, error)
	Delete(ctx context.Context, id int64) (Veterinarian, error)

	// CRMVTaken indica si otro veterinario (id != exceptID) ya usa el CRMV.
	CRMVTaken(ctx context.Context, crmv string, exceptID int64) (bool, error)

	CountAppointments(ctx context.Context, vetID int64) (int, error)
	DeleteAppointments(ctx context.Context, vetID int64) error
}

// Store es el handle inyectado. Cada operación del servicio corre completa
// (lecturas, chequeos y escritura) dentro de un InTx: commit solo si fn devuelve nil.
type Store interface {
	InTx(ctx context.Context, fn func(repo Repository) error) error
}
