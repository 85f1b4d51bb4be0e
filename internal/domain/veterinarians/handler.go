package veterinarians

import (
	"net/http"

	"clinica-pet-feliz/internal/domain/registry"
	"clinica-pet-feliz/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	log = log.With(map[string]any{"module": "veterinario"})

	r.Route("/veterinario", func(vr chi.Router) {
		vr.Post("/", createVeterinarianHandler(svc, log))
		vr.Get("/", listVeterinariansHandler(svc, log))
		vr.Put("/{id}", updateVeterinarianHandler(svc, log))
		vr.Delete("/{id}", deleteVeterinarianHandler(svc, log))
	})
}

type veterinarianRequest struct {
	Name      string `json:"nome" example:"Dr. João"`
	CRMV      string `json:"crmv" example:"12345-SP"`
	BirthDate string `json:"data_nascimento" example:"1985-04-12"` // YYYY-MM-DD opcional
	registry.ContactPayload
}

type veterinarianResponse struct {
	ID        int64   `json:"id" example:"1"`
	Name      string  `json:"nome"`
	CRMV      string  `json:"crmv"`
	BirthDate *string `json:"data_nascimento"`
	registry.ContactPayload
}

func (req veterinarianRequest) toInput() (Input, error) {
	bd, err := registry.ParseDate("data_nascimento", req.BirthDate)
	if err != nil {
		return Input{}, err
	}
	return Input{
		Name:      req.Name,
		CRMV:      req.CRMV,
		BirthDate: bd,
		Contact:   req.ContactPayload.Contact(),
	}, nil
}

// createVeterinarianHandler godoc
// @Summary Registrar veterinario
// @Description Crea un veterinario. `nome` y `crmv` son obligatorios; el CRMV tiene hasta 8 caracteres y no puede repetirse.
// @Tags veterinario
// @Accept json
// @Produce json
// @Param payload body veterinarianRequest true "Datos del veterinario; data_nascimento en formato YYYY-MM-DD"
// @Success 200 {object} veterinarianResponse
// @Failure 400 {string} string "invalid json / campo obligatorio / crmv demasiado largo"
// @Failure 409 {string} string "crmv already registered"
// @Failure 500 {string} string "internal error"
// @Router /veterinario [post]
func createVeterinarianHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req veterinarianRequest
		if err := registry.DecodeJSON(r, &req); err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		in, err := req.toInput()
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		v, err := svc.Create(r.Context(), in)
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		registry.WriteJSON(w, http.StatusOK, toVeterinarianResponse(v))
	}
}

// listVeterinariansHandler godoc
// @Summary Listar veterinarios
// @Description Devuelve todos los veterinarios ordenados por id. Lista vacía si no hay registros.
// @Tags veterinario
// @Produce json
// @Success 200 {array} veterinarianResponse
// @Failure 500 {string} string "internal error"
// @Router /veterinario [get]
func listVeterinariansHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		out := make([]veterinarianResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVeterinarianResponse(v))
		}

		registry.WriteJSON(w, http.StatusOK, out)
	}
}

// updateVeterinarianHandler godoc
// @Summary Actualizar veterinario
// @Description Reemplaza todos los campos del veterinario. Los campos opcionales ausentes quedan vacíos.
// @Tags veterinario
// @Accept json
// @Produce json
// @Param id path int true "ID del veterinario"
// @Param payload body veterinarianRequest true "Datos completos del veterinario"
// @Success 200 {object} veterinarianResponse
// @Failure 400 {string} string "invalid json / invalid id / campo obligatorio"
// @Failure 404 {string} string "veterinarian not found"
// @Failure 409 {string} string "crmv already registered"
// @Failure 500 {string} string "internal error"
// @Router /veterinario/{id} [put]
func updateVeterinarianHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := registry.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		var req veterinarianRequest
		if err := registry.DecodeJSON(r, &req); err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		in, err := req.toInput()
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		v, err := svc.Update(r.Context(), id, in)
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		registry.WriteJSON(w, http.StatusOK, toVeterinarianResponse(v))
	}
}

// deleteVeterinarianHandler godoc
// @Summary Eliminar veterinario
// @Description Elimina el veterinario junto con todas sus consultas. Devuelve el registro tal como estaba.
// @Tags veterinario
// @Produce json
// @Param id path int true "ID del veterinario"
// @Success 200 {object} veterinarianResponse
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "veterinarian not found"
// @Failure 500 {string} string "internal error"
// @Router /veterinario/{id} [delete]
func deleteVeterinarianHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := registry.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		v, err := svc.Delete(r.Context(), id)
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		log.Info("veterinarian deleted", map[string]any{"id": v.ID, "crmv": v.CRMV})
		registry.WriteJSON(w, http.StatusOK, toVeterinarianResponse(v))
	}
}

func toVeterinarianResponse(v Veterinarian) veterinarianResponse {
	return veterinarianResponse{
		ID:             v.ID,
		Name:           v.Name,
		CRMV:           v.CRMV,
		BirthDate:      registry.FormatDate(v.BirthDate),
		ContactPayload: registry.PayloadOf(v.Contact),
	}
}
