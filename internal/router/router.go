package router

import (
	"database/sql"
	"net/http"

	_ "clinica-pet-feliz/docs"
	mem "clinica-pet-feliz/internal/adapters/storage/memory"
	pg "clinica-pet-feliz/internal/adapters/storage/postgres"
	"clinica-pet-feliz/internal/domain/appointments"
	"clinica-pet-feliz/internal/domain/pets"
	"clinica-pet-feliz/internal/domain/tutors"
	"clinica-pet-feliz/internal/domain/veterinarians"
	"clinica-pet-feliz/internal/middleware"
	"clinica-pet-feliz/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const welcomeMessage = "Bem vindo à Clinica Pet Feliz!!!"

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger // nil => Nop
}

// stores agrupa los handles que recibe cada servicio. Postgres y memoria
// comparten la misma base entre los cuatro para que las cascadas se vean.
type stores struct {
	vets         veterinarians.Store
	tutors       tutors.Store
	pets         pets.Store
	appointments appointments.Store
}

func newStores(db *sql.DB, log logger.Logger) stores {
	if db != nil {
		return stores{
			vets:         pg.NewVeterinarianStore(db, log),
			tutors:       pg.NewTutorStore(db, log),
			pets:         pg.NewPetStore(db, log),
			appointments: pg.NewAppointmentStore(db, log),
		}
	}

	m := mem.NewDB()
	return stores{
		vets:         mem.NewVeterinarianStore(m),
		tutors:       mem.NewTutorStore(m),
		pets:         mem.NewPetStore(m),
		appointments: mem.NewAppointmentStore(m),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(welcomeMessage))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger UI en /api/index.html, spec en /api/doc.json
	r.Get("/api/*", httpSwagger.Handler(httpSwagger.URL("/api/doc.json")))

	s := newStores(opts.DB, log)

	// Services por módulo
	vetsSvc := veterinarians.NewService(s.vets)
	tutorsSvc := tutors.NewService(s.tutors)
	petsSvc := pets.NewService(s.pets)
	appointmentsSvc := appointments.NewService(s.appointments)

	// Rutas por módulo
	veterinarians.RegisterRoutes(r, vetsSvc, log)
	tutors.RegisterRoutes(r, tutorsSvc, log)
	pets.RegisterRoutes(r, petsSvc, log)
	appointments.RegisterRoutes(r, appointmentsSvc, log)

	return r
}
