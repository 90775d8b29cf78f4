package routers

import (
	"telemed-service/internal/app/delivery/http/middlewares"
	"telemed-service/internal/app/services/core/doctors"
	"telemed-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.Get("/", doctorController.ListProfiles)
	router.Get("/{email}", doctorController.GetProfile)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleDoctor, constvars.ErrClientOnlyDoctorsCanEditProfile)).
		Put("/profile", doctorController.UpsertProfile)
}
