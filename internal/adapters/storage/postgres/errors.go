package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"clinica-pet-feliz/internal/domain/registry"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// Mensajes por constraint (nombres fijados en la migración). Son los mismos
// que producen los chequeos de los servicios, para cuando dos requests compiten.
var constraintMessages = map[string]string{
	"veterinario_crmv_key":     "crmv already registered",
	"tutor_cpf_key":            "cpf already registered",
	"consulta_vet_horario_key": "veterinarian already has an appointment at this time",
	"pet_id_tutor_fkey":        "tutor does not exist",
	"consulta_id_vet_fkey":     "veterinarian does not exist",
	"consulta_id_pet_fkey":     "pet does not exist",
}

// mapError traduce errores del driver a los tipos de registry.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", registry.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return &registry.Error{Kind: registry.ErrConflict, Msg: constraintMessage(pgErr, "record already exists"), Err: err}
		case foreignKeyViolationCode:
			return &registry.Error{Kind: registry.ErrReference, Msg: constraintMessage(pgErr, "referenced record does not exist"), Err: err}
		}
	}

	return err
}

func constraintMessage(pgErr *pgconn.PgError, fallback string) string {
	if msg, ok := constraintMessages[pgErr.ConstraintName]; ok {
		return msg
	}
	return fallback
}
