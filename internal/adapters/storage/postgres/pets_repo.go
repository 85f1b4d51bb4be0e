package postgres

import (
	"context"
	"database/sql"

	"clinica-pet-feliz/internal/domain/pets"
	"clinica-pet-feliz/internal/platform/logger"
)

const petColumns = `id, nome, data_nascimento, especie, raca, id_tutor`

type PetStore struct {
	db  *sql.DB
	log logger.Logger
}

func NewPetStore(db *sql.DB, log logger.Logger) *PetStore {
	return &PetStore{db: db, log: log.With(map[string]any{"store": "pet"})}
}

func (s *PetStore) InTx(ctx context.Context, fn func(repo pets.Repository) error) error {
	return runInTx(ctx, s.db, s.log, func(tx *sql.Tx) error {
		return fn(&petRepo{tx: tx})
	})
}

type petRepo struct {
	tx *sql.Tx
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.tx.QueryRowContext(ctx, `
		INSERT INTO pet (nome, data_nascimento, especie, raca, id_tutor)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING `+petColumns,
		p.Name,
		toNullDate(p.BirthDate),
		p.Species,
		p.Breed,
		p.TutorID,
	)
	return scanPet(row)
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.tx.QueryContext(ctx, `SELECT `+petColumns+` FROM pet ORDER BY id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, mapError(rows.Err())
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.tx.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pet WHERE id = $1`, id)
	return scanPet(row)
}

func (r *petRepo) UpdateProfile(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.tx.QueryRowContext(ctx, `
		UPDATE pet
		SET
			nome = $2,
			data_nascimento = $3,
			especie = $4,
			raca = $5
		WHERE id = $1
		RETURNING `+petColumns,
		p.ID,
		p.Name,
		toNullDate(p.BirthDate),
		p.Species,
		p.Breed,
	)
	return scanPet(row)
}

func (r *petRepo) Delete(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.tx.QueryRowContext(ctx, `DELETE FROM pet WHERE id = $1 RETURNING `+petColumns, id)
	return scanPet(row)
}

func (r *petRepo) TutorExists(ctx context.Context, tutorID int64) (bool, error) {
	var ok bool
	err := r.tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM tutor WHERE id = $1)`, tutorID).Scan(&ok)
	return ok, mapError(err)
}

func (r *petRepo) CountAppointments(ctx context.Context, petID int64) (int, error) {
	var n int
	err := r.tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM consulta WHERE id_pet = $1`, petID).Scan(&n)
	return n, mapError(err)
}

func (r *petRepo) DeleteAppointments(ctx context.Context, petID int64) error {
	_, err := r.tx.ExecContext(ctx, `DELETE FROM consulta WHERE id_pet = $1`, petID)
	return mapError(err)
}

func scanPet(row scanner) (pets.Pet, error) {
	var p pets.Pet
	var bd sql.NullTime
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&bd,
		&p.Species,
		&p.Breed,
		&p.TutorID,
	); err != nil {
		return pets.Pet{}, mapError(err)
	}
	p.BirthDate = fromNullDate(bd)
	return p, nil
}
