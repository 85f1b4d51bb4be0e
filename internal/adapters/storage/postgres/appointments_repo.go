package postgres

import (
	"context"
	"database/sql"
	"time"

	"clinica-pet-feliz/internal/domain/appointments"
	"clinica-pet-feliz/internal/platform/logger"
)

// valor es NUMERIC(10,2); se lee como float8.
const appointmentColumns = `id, id_vet, id_pet, data_hora, valor::float8`

type AppointmentStore struct {
	db  *sql.DB
	log logger.Logger
}

func NewAppointmentStore(db *sql.DB, log logger.Logger) *AppointmentStore {
	return &AppointmentStore{db: db, log: log.With(map[string]any{"store": "consulta"})}
}

func (s *AppointmentStore) InTx(ctx context.Context, fn func(repo appointments.Repository) error) error {
	return runInTx(ctx, s.db, s.log, func(tx *sql.Tx) error {
		return fn(&appointmentRepo{tx: tx})
	})
}

type appointmentRepo struct {
	tx *sql.Tx
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	row := r.tx.QueryRowContext(ctx, `
		INSERT INTO consulta (id_vet, id_pet, data_hora, valor)
		VALUES ($1,$2,$3,$4)
		RETURNING `+appointmentColumns,
		a.VeterinarianID,
		a.PetID,
		a.At,
		toNullFloat(a.Fee),
	)
	return scanAppointment(row)
}

func (r *appointmentRepo) List(ctx context.Context) ([]appointments.View, error) {
	rows, err := r.tx.QueryContext(ctx, `
		SELECT
			c.id,
			v.crmv, v.nome,
			t.cpf, t.nome,
			p.nome,
			c.data_hora, c.valor::float8
		FROM consulta c
		JOIN veterinario v ON v.id = c.id_vet
		JOIN pet p ON p.id = c.id_pet
		JOIN tutor t ON t.id = p.id_tutor
		ORDER BY c.id
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]appointments.View, 0)
	for rows.Next() {
		var v appointments.View
		var fee sql.NullFloat64
		if err := rows.Scan(
			&v.ID,
			&v.CRMV,
			&v.VetName,
			&v.CPF,
			&v.TutorName,
			&v.PetName,
			&v.At,
			&fee,
		); err != nil {
			return nil, mapError(err)
		}
		v.At = v.At.UTC()
		v.Fee = fromNullFloat(fee)
		out = append(out, v)
	}
	return out, mapError(rows.Err())
}

func (r *appointmentRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	row := r.tx.QueryRowContext(ctx, `SELECT `+appointmentColumns+` FROM consulta WHERE id = $1`, id)
	return scanAppointment(row)
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	row := r.tx.QueryRowContext(ctx, `
		UPDATE consulta
		SET
			data_hora = $2,
			valor = $3
		WHERE id = $1
		RETURNING `+appointmentColumns,
		a.ID,
		a.At,
		toNullFloat(a.Fee),
	)
	return scanAppointment(row)
}

func (r *appointmentRepo) Delete(ctx context.Context, id int64) (appointments.Appointment, error) {
	row := r.tx.QueryRowContext(ctx, `DELETE FROM consulta WHERE id = $1 RETURNING `+appointmentColumns, id)
	return scanAppointment(row)
}

func (r *appointmentRepo) PetExists(ctx context.Context, petID int64) (bool, error) {
	var ok bool
	err := r.tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM pet WHERE id = $1)`, petID).Scan(&ok)
	return ok, mapError(err)
}

func (r *appointmentRepo) VeterinarianExists(ctx context.Context, vetID int64) (bool, error) {
	var ok bool
	err := r.tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM veterinario WHERE id = $1)`, vetID).Scan(&ok)
	return ok, mapError(err)
}

// SlotTaken compara id_vet (no el id de la consulta) y el instante exacto.
func (r *appointmentRepo) SlotTaken(ctx context.Context, vetID int64, at time.Time, exceptID int64) (bool, error) {
	var taken bool
	err := r.tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM consulta WHERE id_vet = $1 AND data_hora = $2 AND id <> $3)`,
		vetID, at, exceptID,
	).Scan(&taken)
	return taken, mapError(err)
}

func scanAppointment(row scanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var fee sql.NullFloat64
	if err := row.Scan(
		&a.ID,
		&a.VeterinarianID,
		&a.PetID,
		&a.At,
		&fee,
	); err != nil {
		return appointments.Appointment{}, mapError(err)
	}
	a.At = a.At.UTC()
	a.Fee = fromNullFloat(fee)
	return a, nil
}
