package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_br_translations "github.com/go-playground/validator/v10/translations/pt_BR"

	"github.com/escalamed/plantao/backend/internal/config"
	"github.com/escalamed/plantao/backend/internal/events"
	"github.com/escalamed/plantao/backend/internal/pricing"
	"github.com/escalamed/plantao/backend/internal/roster"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	roster     *roster.Manager
	resolver   *pricing.Resolver
	publisher  *events.Publisher
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, manager *roster.Manager, resolver *pricing.Resolver, publisher *events.Publisher) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	pt := pt_BR.New()
	uni := ut.New(pt, pt)
	trans, _ := uni.GetTranslator("pt_BR")
	if err := pt_br_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		roster:     manager,
		resolver:   resolver,
		publisher:  publisher,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	h.Mux.Get("/locations", h.GetAllLocations)

	// a resolução de valor nunca falha, por isso fica fora do subtree que
	// exige uma escala existente
	h.Mux.Post("/shift-value/resolve", h.ResolveShiftValue)

	h.Mux.Route("/schedules", func(r chi.Router) {
		r.Get("/", h.GetAllSchedules)
		r.Post("/", h.CreateSchedule)
		r.Route("/{id}", func(r chi.Router) {
			// as remoções são idempotentes e não passam pelo middleware que
			// exige a escala no contexto
			r.Delete("/", h.DeleteSchedule)
			r.Delete("/extra-shifts/{extraShiftID}", h.RemoveExtraShift)

			r.Group(func(r chi.Router) {
				r.Use(h.schedule)
				r.Get("/", h.GetSchedule)
				r.Patch("/", h.UpdateSchedule)
				r.Post("/extra-shifts", h.AddExtraShift)
			})
		})
	})
}
