package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"clinica-pet-feliz/internal/domain/veterinarians"
	"clinica-pet-feliz/internal/platform/logger"
)

var vetColumns = fmt.Sprintf(personColumns, "crmv")

type VeterinarianStore struct {
	db  *sql.DB
	log logger.Logger
}

func NewVeterinarianStore(db *sql.DB, log logger.Logger) *VeterinarianStore {
	return &VeterinarianStore{db: db, log: log.With(map[string]any{"store": "veterinario"})}
}

func (s *VeterinarianStore) InTx(ctx context.Context, fn func(repo veterinarians.Repository) error) error {
	return runInTx(ctx, s.db, s.log, func(tx *sql.Tx) error {
		return fn(&vetRepo{tx: tx})
	})
}

type vetRepo struct {
	tx *sql.Tx
}

func (r *vetRepo) Create(ctx context.Context, v veterinarians.Veterinarian) (veterinarians.Veterinarian, error) {
	row := r.tx.QueryRowContext(ctx, `
		INSERT INTO veterinario (`+vetColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, `+vetColumns,
		fromVeterinarian(v).args()...,
	)
	return scanVeterinarian(row)
}

func (r *vetRepo) List(ctx context.Context) ([]veterinarians.Veterinarian, error) {
	rows, err := r.tx.QueryContext(ctx, `SELECT id, `+vetColumns+` FROM veterinario ORDER BY id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]veterinarians.Veterinarian, 0)
	for rows.Next() {
		v, err := scanVeterinarian(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, mapError(rows.Err())
}

func (r *vetRepo) GetByID(ctx context.Context, id int64) (veterinarians.Veterinarian, error) {
	row := r.tx.QueryRowContext(ctx, `SELECT id, `+vetColumns+` FROM veterinario WHERE id = $1`, id)
	return scanVeterinarian(row)
}

func (r *vetRepo) Update(ctx context.Context, v veterinarians.Veterinarian) (veterinarians.Veterinarian, error) {
	args := append([]any{v.ID}, fromVeterinarian(v).args()...)
	row := r.tx.QueryRowContext(ctx, `
		UPDATE veterinario
		SET
			nome = $2,
			crmv = $3,
			data_nascimento = $4,
			logradouro = $5,
			numero = $6,
			bairro = $7,
			cep = $8,
			cidade = $9,
			uf = $10,
			telefone = $11,
			email = $12
		WHERE id = $1
		RETURNING id, `+vetColumns,
		args...,
	)
	return scanVeterinarian(row)
}

func (r *vetRepo) Delete(ctx context.Context, id int64) (veterinarians.Veterinarian, error) {
	row := r.tx.QueryRowContext(ctx, `DELETE FROM veterinario WHERE id = $1 RETURNING id, `+vetColumns, id)
	return scanVeterinarian(row)
}

func (r *vetRepo) CRMVTaken(ctx context.Context, crmv string, exceptID int64) (bool, error) {
	var taken bool
	err := r.tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM veterinario WHERE crmv = $1 AND id <> $2)`,
		crmv, exceptID,
	).Scan(&taken)
	return taken, mapError(err)
}

func (r *vetRepo) CountAppointments(ctx context.Context, vetID int64) (int, error) {
	var n int
	err := r.tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM consulta WHERE id_vet = $1`, vetID).Scan(&n)
	return n, mapError(err)
}

func (r *vetRepo) DeleteAppointments(ctx context.Context, vetID int64) error {
	_, err := r.tx.ExecContext(ctx, `DELETE FROM consulta WHERE id_vet = $1`, vetID)
	return mapError(err)
}

func fromVeterinarian(v veterinarians.Veterinarian) person {
	return person{name: v.Name, document: v.CRMV, birthDate: v.BirthDate, contact: v.Contact}
}

func scanVeterinarian(row scanner) (veterinarians.Veterinarian, error) {
	p, err := scanPerson(row)
	if err != nil {
		return veterinarians.Veterinarian{}, mapError(err)
	}
	return veterinarians.Veterinarian{
		ID:        p.id,
		Name:      p.name,
		CRMV:      p.document,
		BirthDate: p.birthDate,
		Contact:   p.contact,
	}, nil
}
