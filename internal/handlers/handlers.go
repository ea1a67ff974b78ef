package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/talmaprime/teaops/docs"
	"github.com/talmaprime/teaops/internal/domain"
	authhandlers "github.com/talmaprime/teaops/internal/handlers/auth"
	cashhandlers "github.com/talmaprime/teaops/internal/handlers/cash"
	peoplehandlers "github.com/talmaprime/teaops/internal/handlers/people"
	reporthandlers "github.com/talmaprime/teaops/internal/handlers/reports"
	timesheethandlers "github.com/talmaprime/teaops/internal/handlers/timesheets"
	userhandlers "github.com/talmaprime/teaops/internal/handlers/users"
	"github.com/talmaprime/teaops/internal/service"
	"github.com/talmaprime/teaops/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type UsersHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CashHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMonth(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DownloadVoucher(w http.ResponseWriter, r *http.Request)
}

type PeopleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	UpdateRate(w http.ResponseWriter, r *http.Request)
	ApproveRate(w http.ResponseWriter, r *http.Request)
	UpdateSalary(w http.ResponseWriter, r *http.Request)
	ApproveSalary(w http.ResponseWriter, r *http.Request)
	MarkLeft(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimesheetsHandler interface {
	GetDay(w http.ResponseWriter, r *http.Request)
	SaveDay(w http.ResponseWriter, r *http.Request)
	GetGrid(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ReportsHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	ExportDaily(w http.ResponseWriter, r *http.Request)
	ExportPeople(w http.ResponseWriter, r *http.Request)
	ExportTimesheets(w http.ResponseWriter, r *http.Request)
	ExportMatrix(w http.ResponseWriter, r *http.Request)
	ExportSummary(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	UsersHandler      UsersHandler
	CashHandler       CashHandler
	PeopleHandler     PeopleHandler
	TimesheetsHandler TimesheetsHandler
	ReportsHandler    ReportsHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		UsersHandler:      userhandlers.New(s.UsersService),
		CashHandler:       cashhandlers.New(s.CashService),
		PeopleHandler:     peoplehandlers.New(s.PeopleService),
		TimesheetsHandler: timesheethandlers.New(s.TimesheetsService),
		ReportsHandler:    reporthandlers.New(s.ReportsService),
		jwtService:        jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))

			r.Post("/password", h.AuthHandler.ChangePassword)
			r.Get("/summary", h.ReportsHandler.GetSummary)

			r.Route("/exports", func(r chi.Router) {
				r.Get("/daily", h.ReportsHandler.ExportDaily)
				r.Get("/people", h.ReportsHandler.ExportPeople)
				r.Get("/timesheets", h.ReportsHandler.ExportTimesheets)
				r.Get("/timesheets_matrix", h.ReportsHandler.ExportMatrix)
				r.Get("/summary", h.ReportsHandler.ExportSummary)
			})

			r.Route("/cash", func(r chi.Router) {
				r.Get("/", h.CashHandler.GetMonth)
				r.Post("/", h.CashHandler.Create)
				r.Get("/vouchers/{name}", h.CashHandler.DownloadVoucher)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRoles(domain.RoleAdmin, domain.RoleMD))
					r.Post("/{id}/approve", h.CashHandler.Approve)
					r.Post("/{id}/reset", h.CashHandler.Reset)
					r.Delete("/{id}", h.CashHandler.Delete)
				})
			})

			r.Route("/people", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRoles(domain.RoleManager, domain.RoleMD, domain.RoleAdmin))
					r.Get("/", h.PeopleHandler.List)
					r.Post("/", h.PeopleHandler.Add)
				})

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRoles(domain.RoleMD, domain.RoleAdmin))
					r.Post("/workers/{id}/rate", h.PeopleHandler.UpdateRate)
					r.Post("/workers/{id}/rate/approve", h.PeopleHandler.ApproveRate)
					r.Post("/workers/{id}/leave", h.PeopleHandler.MarkLeft)
					r.Post("/staff/{id}/salary", h.PeopleHandler.UpdateSalary)
					r.Post("/staff/{id}/salary/approve", h.PeopleHandler.ApproveSalary)
					r.Delete("/{kind}/{id}", h.PeopleHandler.Delete)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRoles(domain.RoleManager, domain.RoleMD, domain.RoleAdmin))
					r.Get("/", h.TimesheetsHandler.GetDay)
					r.Post("/", h.TimesheetsHandler.SaveDay)
					r.Get("/grid", h.TimesheetsHandler.GetGrid)
				})

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRoles(domain.RoleMD, domain.RoleAdmin))
					r.Post("/{id}/approve", h.TimesheetsHandler.Approve)
					r.Post("/{id}/reset", h.TimesheetsHandler.Reset)
					r.Delete("/{id}", h.TimesheetsHandler.Delete)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(auth.RequireRoles(domain.RoleMD, domain.RoleAdmin))
				r.Post("/", h.UsersHandler.Create)
				r.Get("/", h.UsersHandler.List)
				r.Delete("/{id}", h.UsersHandler.Delete)
			})
		})
	})

	return r
}
