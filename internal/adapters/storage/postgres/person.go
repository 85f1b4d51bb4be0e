package postgres

import (
	"database/sql"
	"time"

	"clinica-pet-feliz/internal/domain/registry"
)

// veterinario y tutor tienen las mismas columnas salvo el documento (crmv / cpf).
const personColumns = `nome, %s, data_nascimento, logradouro, numero, bairro, cep, cidade, uf, telefone, email`

type person struct {
	id        int64
	name      string
	document  string
	birthDate *time.Time
	contact   registry.Contact
}

func scanPerson(row scanner) (person, error) {
	var (
		p   person
		bd  sql.NullTime
		num sql.NullInt64
		c   = &p.contact
	)
	if err := row.Scan(
		&p.id,
		&p.name,
		&p.document,
		&bd,
		&c.Street,
		&num,
		&c.District,
		&c.ZipCode,
		&c.City,
		&c.State,
		&c.Phone,
		&c.Email,
	); err != nil {
		return person{}, err
	}
	p.birthDate = fromNullDate(bd)
	c.Number = fromNullInt(num)
	return p, nil
}

// args en el orden de personColumns.
func (p person) args() []any {
	c := p.contact
	return []any{
		p.name,
		p.document,
		toNullDate(p.birthDate),
		c.Street,
		toNullInt(c.Number),
		c.District,
		c.ZipCode,
		c.City,
		c.State,
		c.Phone,
		c.Email,
	}
}
