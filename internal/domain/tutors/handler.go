package tutors

import (
	"net/http"

	"clinica-pet-feliz/internal/domain/registry"
	"clinica-pet-feliz/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	log = log.With(map[string]any{"module": "tutor"})

	r.Route("/tutor", func(tr chi.Router) {
		tr.Post("/", createTutorHandler(svc, log))
		tr.Get("/", listTutorsHandler(svc, log))
		tr.Put("/{id}", updateTutorHandler(svc, log))
		tr.Delete("/{id}", deleteTutorHandler(svc, log))
	})
}

type tutorRequest struct {
	Name      string `json:"nome" example:"Maria"`
	CPF       string `json:"cpf" example:"123.456.789-00"`
	BirthDate string `json:"data_nascimento" example:"1990-01-20"`
	registry.ContactPayload
}

type tutorResponse struct {
	ID        int64   `json:"id" example:"1"`
	Name      string  `json:"nome"`
	CPF       string  `json:"cpf"`
	BirthDate *string `json:"data_nascimento"`
	registry.ContactPayload
}

func (req tutorRequest) toInput() (Input, error) {
	bd, err := registry.ParseDate("data_nascimento", req.BirthDate)
	if err != nil {
		return Input{}, err
	}
	return Input{
		Name:      req.Name,
		CPF:       req.CPF,
		BirthDate: bd,
		Contact:   req.ContactPayload.Contact(),
	}, nil
}

// createTutorHandler godoc
// @Summary Registrar tutor
// @Description Crea un tutor. `nome` y `cpf` son obligatorios; el CPF tiene hasta 15 caracteres y es único.
// @Tags tutor
// @Accept json
// @Produce json
// @Param payload body tutorRequest true "Datos del tutor"
// @Success 200 {object} tutorResponse
// @Failure 400 {string} string "invalid json / campo obligatorio"
// @Failure 409 {string} string "cpf already registered"
// @Failure 500 {string} string "internal error"
// @Router /tutor [post]
func createTutorHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tutorRequest
		if err := registry.DecodeJSON(r, &req); err != nil {
			registry.WriteError(w, r, log, err)
			return
		}
		in, err := req.toInput()
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		t, err := svc.Create(r.Context(), in)
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		registry.WriteJSON(w, http.StatusOK, toTutorResponse(t))
	}
}

// listTutorsHandler godoc
// @Summary Listar tutores
// @Tags tutor
// @Produce json
// @Success 200 {array} tutorResponse
// @Failure 500 {string} string "internal error"
// @Router /tutor [get]
func listTutorsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		out := make([]tutorResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTutorResponse(t))
		}
		registry.WriteJSON(w, http.StatusOK, out)
	}
}

// updateTutorHandler godoc
// @Summary Actualizar tutor
// @Description Reemplaza todos los campos del tutor.
// @Tags tutor
// @Accept json
// @Produce json
// @Param id path int true "ID del tutor"
// @Param payload body tutorRequest true "Datos completos del tutor"
// @Success 200 {object} tutorResponse
// @Failure 400 {string} string "invalid json / invalid id / campo obligatorio"
// @Failure 404 {string} string "tutor not found"
// @Failure 409 {string} string "cpf already registered"
// @Failure 500 {string} string "internal error"
// @Router /tutor/{id} [put]
func updateTutorHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := registry.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		var req tutorRequest
		if err := registry.DecodeJSON(r, &req); err != nil {
			registry.WriteError(w, r, log, err)
			return
		}
		in, err := req.toInput()
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		t, err := svc.Update(r.Context(), id, in)
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		registry.WriteJSON(w, http.StatusOK, toTutorResponse(t))
	}
}

// deleteTutorHandler godoc
// @Summary Eliminar tutor
// @Description Elimina el tutor, sus mascotas y las consultas de esas mascotas.
// @Tags tutor
// @Produce json
// @Param id path int true "ID del tutor"
// @Success 200 {object} tutorResponse
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "tutor not found"
// @Failure 500 {string} string "internal error"
// @Router /tutor/{id} [delete]
func deleteTutorHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := registry.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		t, err := svc.Delete(r.Context(), id)
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		log.Info("tutor deleted", map[string]any{"id": t.ID})
		registry.WriteJSON(w, http.StatusOK, toTutorResponse(t))
	}
}

func toTutorResponse(t Tutor) tutorResponse {
	return tutorResponse{
		ID:             t.ID,
		Name:           t.Name,
		CPF:            t.CPF,
		BirthDate:      registry.FormatDate(t.BirthDate),
		ContactPayload: registry.PayloadOf(t.Contact),
	}
}
