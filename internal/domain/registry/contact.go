package registry

import "strings"

// Contact agrupa endereço y contacto; lo comparten veterinario y tutor.
type Contact struct {
	Street   string // logradouro
	Number   *int   // numero
	District string // bairro
	ZipCode  string // cep
	City     string // cidade
	State    string // uf
	Phone    string // telefone
	Email    string
}

func (c Contact) Normalized() Contact {
	return Contact{
		Street:   strings.TrimSpace(c.Street),
		Number:   c.Number,
		District: strings.TrimSpace(c.District),
		ZipCode:  strings.TrimSpace(c.ZipCode),
		City:     strings.TrimSpace(c.City),
		State:    strings.TrimSpace(c.State),
		Phone:    strings.TrimSpace(c.Phone),
		Email:    strings.TrimSpace(c.Email),
	}
}

// ContactPayload es la forma JSON de Contact, con los nombres de columna de la clínica.
// Se embebe en los request/response de veterinario y tutor.
type ContactPayload struct {
	Street   string `json:"logradouro" example:"Rua das Flores"`
	Number   *int   `json:"numero" example:"100"`
	District string `json:"bairro" example:"Centro"`
	ZipCode  string `json:"cep" example:"12345-678"`
	City     string `json:"cidade" example:"São Paulo"`
	State    string `json:"uf" example:"SP"`
	Phone    string `json:"telefone" example:"(11) 99999-9999"`
	Email    string `json:"email" example:"joao@clinica.com"`
}

func (p ContactPayload) Contact() Contact {
	return Contact{
		Street:   p.Street,
		Number:   p.Number,
		District: p.District,
		ZipCode:  p.ZipCode,
		City:     p.City,
		State:    p.State,
		Phone:    p.Phone,
		Email:    p.Email,
	}.Normalized()
}

func PayloadOf(c Contact) ContactPayload {
	return ContactPayload{
		Street:   c.Street,
		Number:   c.Number,
		District: c.District,
		ZipCode:  c.ZipCode,
		City:     c.City,
		State:    c.State,
		Phone:    c.Phone,
		Email:    c.Email,
	}
}
