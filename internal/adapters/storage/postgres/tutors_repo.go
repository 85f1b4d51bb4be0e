package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"clinica-pet-feliz/internal/domain/tutors"
	"clinica-pet-feliz/internal/platform/logger"
)

var tutorColumns = fmt.Sprintf(personColumns, "cpf")

type TutorStore struct {
	db  *sql.DB
	log logger.Logger
}

func NewTutorStore(db *sql.DB, log logger.Logger) *TutorStore {
	return &TutorStore{db: db, log: log.With(map[string]any{"store": "tutor"})}
}

func (s *TutorStore) InTx(ctx context.Context, fn func(repo tutors.Repository) error) error {
	return runInTx(ctx, s.db, s.log, func(tx *sql.Tx) error {
		return fn(&tutorRepo{tx: tx})
	})
}

type tutorRepo struct {
	tx *sql.Tx
}

func (r *tutorRepo) Create(ctx context.Context, t tutors.Tutor) (tutors.Tutor, error) {
	row := r.tx.QueryRowContext(ctx, `
		INSERT INTO tutor (`+tutorColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, `+tutorColumns,
		fromTutor(t).args()...,
	)
	return scanTutor(row)
}

func (r *tutorRepo) List(ctx context.Context) ([]tutors.Tutor, error) {
	rows, err := r.tx.QueryContext(ctx, `SELECT id, `+tutorColumns+` FROM tutor ORDER BY id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]tutors.Tutor, 0)
	for rows.Next() {
		t, err := scanTutor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, mapError(rows.Err())
}

func (r *tutorRepo) GetByID(ctx context.Context, id int64) (tutors.Tutor, error) {
	row := r.tx.QueryRowContext(ctx, `SELECT id, `+tutorColumns+` FROM tutor WHERE id = $1`, id)
	return scanTutor(row)
}

func (r *tutorRepo) Update(ctx context.Context, t tutors.Tutor) (tutors.Tutor, error) {
	args := append([]any{t.ID}, fromTutor(t).args()...)
	row := r.tx.QueryRowContext(ctx, `
		UPDATE tutor
		SET
			nome = $2,
			cpf = $3,
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
		RETURNING id, `+tutorColumns,
		args...,
	)
	return scanTutor(row)
}

func (r *tutorRepo) Delete(ctx context.Context, id int64) (tutors.Tutor, error) {
	row := r.tx.QueryRowContext(ctx, `DELETE FROM tutor WHERE id = $1 RETURNING id, `+tutorColumns, id)
	return scanTutor(row)
}

func (r *tutorRepo) CPFTaken(ctx context.Context, cpf string, exceptID int64) (bool, error) {
	var taken bool
	err := r.tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM tutor WHERE cpf = $1 AND id <> $2)`,
		cpf, exceptID,
	).Scan(&taken)
	return taken, mapError(err)
}

func (r *tutorRepo) PetIDs(ctx context.Context, tutorID int64) ([]int64, error) {
	rows, err := r.tx.QueryContext(ctx, `SELECT id FROM pet WHERE id_tutor = $1 ORDER BY id`, tutorID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, mapError(rows.Err())
}

func (r *tutorRepo) CountPetAppointments(ctx context.Context, petID int64) (int, error) {
	var n int
	err := r.tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM consulta WHERE id_pet = $1`, petID).Scan(&n)
	return n, mapError(err)
}

func (r *tutorRepo) DeletePetAppointments(ctx context.Context, petID int64) error {
	_, err := r.tx.ExecContext(ctx, `DELETE FROM consulta WHERE id_pet = $1`, petID)
	return mapError(err)
}

func (r *tutorRepo) DeletePets(ctx context.Context, tutorID int64) error {
	_, err := r.tx.ExecContext(ctx, `DELETE FROM pet WHERE id_tutor = $1`, tutorID)
	return mapError(err)
}

func fromTutor(t tutors.Tutor) person {
	return person{name: t.Name, document: t.CPF, birthDate: t.BirthDate, contact: t.Contact}
}

func scanTutor(row scanner) (tutors.Tutor, error) {
	p, err := scanPerson(row)
	if err != nil {
		return tutors.Tutor{}, mapError(err)
	}
	return tutors.Tutor{
		ID:        p.id,
		Name:      p.name,
		CPF:       p.document,
		BirthDate: p.birthDate,
		Contact:   p.contact,
	}, nil
}
