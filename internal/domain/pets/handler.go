package pets

import (
	"net/http"

	"clinica-pet-feliz/internal/domain/registry"
	"clinica-pet-feliz/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	log = log.With(map[string]any{"module": "pet"})

	r.Route("/pet", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/", listPetsHandler(svc, log))
		pr.Put("/{id}", updatePetHandler(svc, log))
		pr.Delete("/{id}", deletePetHandler(svc, log))
	})
}

type petRequest struct {
	Name      string `json:"nome" example:"Rex"`
	BirthDate string `json:"data_nascimento" example:"2020-03-01"` // YYYY-MM-DD
	Species   string `json:"especie" example:"Cachorro"`
	Breed     string `json:"raca" example:"Vira-lata"`
	TutorID   int64  `json:"id_tutor" example:"1"` // ignorado en PUT
}

type petResponse struct {
	ID        int64   `json:"id" example:"1"`
	Name      string  `json:"nome"`
	BirthDate *string `json:"data_nascimento"`
	Species   string  `json:"especie"`
	Breed     string  `json:"raca"`
	TutorID   int64   `json:"id_tutor"`
}

func (req petRequest) toProfile() (ProfileInput, error) {
	bd, err := registry.ParseDate("data_nascimento", req.BirthDate)
	if err != nil {
		return ProfileInput{}, err
	}
	return ProfileInput{
		Name:      req.Name,
		BirthDate: bd,
		Species:   req.Species,
		Breed:     req.Breed,
	}, nil
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota para un tutor existente. `data_nascimento`, `especie` e `id_tutor` son obligatorios.
// @Tags pet
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / campo obligatorio"
// @Failure 422 {string} string "tutor does not exist"
// @Failure 500 {string} string "internal error"
// @Router /pet [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := registry.DecodeJSON(r, &req); err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		profile, err := req.toProfile()
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{ProfileInput: profile, TutorID: req.TutorID})
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		registry.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pet
// @Produce json
// @Success 200 {array} petResponse
// @Failure 500 {string} string "internal error"
// @Router /pet [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		registry.WriteJSON(w, http.StatusOK, out)
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza nome, data_nascimento, especie y raca. El tutor de la mascota no cambia.
// @Tags pet
// @Accept json
// @Produce json
// @Param id path int true "ID de la mascota"
// @Param payload body petRequest true "Perfil completo de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / invalid id / campo obligatorio"
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pet/{id} [put]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := registry.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		var req petRequest
		if err := registry.DecodeJSON(r, &req); err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		profile, err := req.toProfile()
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		p, err := svc.UpdateProfile(r.Context(), id, profile)
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		registry.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Elimina la mascota y sus consultas.
// @Tags pet
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pet/{id} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := registry.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		p, err := svc.Delete(r.Context(), id)
		if err != nil {
			registry.WriteError(w, r, log, err)
			return
		}

		log.Info("pet deleted", map[string]any{"id": p.ID, "tutor_id": p.TutorID})
		registry.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: registry.FormatDate(p.BirthDate),
		Species:   p.Species,
		Breed:     p.Breed,
		TutorID:   p.TutorID,
	}
}
