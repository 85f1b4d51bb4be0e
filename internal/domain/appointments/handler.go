package appointments

import (
	"net/http"
	"time"

	"clinica-pet-feliz/internal/domain/registry"
	"clinica-pet-feliz/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	log = log.With(map[string]any{"module": "consulta"})

	r.Route("/consulta", func(cr chi.Router) {
		cr.Post("/", createAppointmentHandler(svc, log))
		cr.Get("/", listAppointmentsHandler(svc, log))
		cr.Put("/{id}", updateAppointmentHandler(svc, log))
		cr.Delete("/{id}", deleteAppointmentHandler(svc, log))
	})
}

type createAppointmentRequest struct {
	VeterinarianID int64    `json:"id_vet" example:"1"`
	PetID          int64    `json:"id_pet" example:"1"`
	At             string   `json:"data_hora" example:"2025-11-10T14:30:00Z"` // RFC3339
	Fee            *float64 `json:"valor" example:"150.5"`
}

// updateAppointmentRequest no permite reasignar veterinario ni mascota.
type updateAppointmentRequest struct {
	At  string   `json:"data_hora" example:"2025-11-10T16:00:00Z"`
	Fee *float64 `json:"valor" example:"180"`
}

type appointmentResponse struct {
	ID             int64     `json:"id" example:"1"`
	VeterinarianID int64     `json:"id_vet"`
	PetID          int64     `json:"id_pet"`
	At             time.Time `json:"data_hora"`
	Fee            *float64  `json:"valor"`
}

type appointmentViewResponse struct {
	ID        int64     `json:"id"`
	CRMV      string    `json:"crmv"`
	VetName   string    `json:"nome_vet"`
	CPF       string    `json:"cpf"`
	TutorName string    `json:"nome_tutor"`
	PetName   string    `json:"nome_pet"`
	At        time.Time `json:"data_hora"`
	Fee       *float64  `json:"valor"`
}

// createAppointmentHandler godoc
// @Summary Agendar consulta
// @Description Crea una consulta. El veterinario y la mascota deben existir y el veterinario no puede tener otra consulta en el mismo `data_hora`.
// @Tags consulta
// @Accept json
// @Produce json
// @Param payload body createAppointmentRequest true "Datos de la consulta; data_hora en formato RFC3339"
// @Success 200 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / data_hora inválido / campo obligatorio"
// @Failure 409 {string} string "veterinarian already has an appointment at this time"
// @Failure 422 {string} string "pet does not exist / veterinarian does not exist"
// @Failure 500 {string} string "internal error"
// @Router /consulta [post]
func createAppointmentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := registry.DecodeJSON(r, &req); err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		at, err := registry.ParseDateTime("data_hora", req.At)
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			VeterinarianID: req.VeterinarianID,
			PetID:          req.PetID,
			At:             at,
			Fee:            req.Fee,
		})
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		registry.WriteJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar consultas
// @Description Devuelve las consultas con CRMV y nombre del veterinario, CPF y nombre del tutor y nombre de la mascota.
// @Tags consulta
// @Produce json
// @Success 200 {array} appointmentViewResponse
// @Failure 500 {string} string "internal error"
// @Router /consulta [get]
func listAppointmentsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		out := make([]appointmentViewResponse, 0, len(items))
		for _, v := range items {
			out = append(out, appointmentViewResponse{
				ID:        v.ID,
				CRMV:      v.CRMV,
				VetName:   v.VetName,
				CPF:       v.CPF,
				TutorName: v.TutorName,
				PetName:   v.PetName,
				At:        v.At,
				Fee:       v.Fee,
			})
		}

		registry.WriteJSON(w, http.StatusOK, out)
	}
}

// updateAppointmentHandler godoc
// @Summary Reagendar consulta
// @Description Cambia data_hora y valor. El chequeo de horario usa el veterinario ya asignado a la consulta.
// @Tags consulta
// @Accept json
// @Produce json
// @Param id path int true "ID de la consulta"
// @Param payload body updateAppointmentRequest true "Nuevo horario y valor"
// @Success 200 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / invalid id / data_hora inválido"
// @Failure 404 {string} string "appointment not found"
// @Failure 409 {string} string "veterinarian already has an appointment at this time"
// @Failure 500 {string} string "internal error"
// @Router /consulta/{id} [put]
func updateAppointmentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := registry.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		var req updateAppointmentRequest
		if err := registry.DecodeJSON(r, &req); err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		at, err := registry.ParseDateTime("data_hora", req.At)
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		a, err := svc.Update(r.Context(), id, UpdateInput{At: at, Fee: req.Fee})
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		registry.WriteJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// deleteAppointmentHandler godoc
// @Summary Cancelar consulta
// @Tags consulta
// @Produce json
// @Param id path int true "ID de la consulta"
// @Success 200 {object} appointmentResponse
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "appointment not found"
// @Failure 500 {string} string "internal error"
// @Router /consulta/{id} [delete]
func deleteAppointmentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := registry.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		a, err := svc.Delete(r.Context(), id)
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		registry.WriteJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:             a.ID,
		VeterinarianID: a.VeterinarianID,
		PetID:          a.PetID,
		At:             a.At,
		Fee:            a.Fee,
	}
}
