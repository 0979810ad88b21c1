package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-shelter/internal/audit"
	"github.com/BruksfildServices01/pet-shelter/internal/config"
	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/appointment"
	"github.com/BruksfildServices01/pet-shelter/internal/handlers"
	infraRepo "github.com/BruksfildServices01/pet-shelter/internal/infra/repository"
	"github.com/BruksfildServices01/pet-shelter/internal/middleware"
	"github.com/BruksfildServices01/pet-shelter/internal/session"
	"github.com/BruksfildServices01/pet-shelter/internal/storage"
	"github.com/BruksfildServices01/pet-shelter/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/pet-shelter/internal/usecase/appointment"
	"github.com/BruksfildServices01/pet-shelter/internal/usecase/dashboard"
	ucPet "github.com/BruksfildServices01/pet-shelter/internal/usecase/pet"
	ucUser "github.com/BruksfildServices01/pet-shelter/internal/usecase/user"
	"github.com/BruksfildServices01/pet-shelter/internal/validators"
	"github.com/BruksfildServices01/pet-shelter/web"
)

// Deps are the long-lived resources main owns and closes.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Sessions session.Store
	Storage  storage.Storage
	Audit    *audit.Dispatcher

	// Now drives every booking decision; nil means time.Now.
	Now func() time.Time

	// DomainCheck overrides the DNS check enabled by VALIDATE_EMAIL_DOMAIN.
	DomainCheck ucUser.DomainCheck
}

func RegisterRoutes(r *gin.Engine, deps Deps) error {
	cfg := deps.Config
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	// ======================================================
	// BOOKING SCHEDULE + TEMPLATES
	// ======================================================
	loc, err := timezone.Fixed(cfg.BookingUTCOffset)
	if err != nil {
		return fmt.Errorf("booking offset: %w", err)
	}
	schedule, err := domain.NewSchedule(cfg.BookingSlots, cfg.BookingWindowStart, cfg.BookingWindowEnd, loc)
	if err != nil {
		return err
	}

	tmpl, err := web.Templates(loc)
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	sessions := session.NewManager(deps.Sessions, session.Options{
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Secure: cfg.CookieSecure,
	}, log)

	r.Use(
		middleware.RequestLogger(log),
		middleware.RateLimit(cfg.RateLimitPerMinute, log),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	petRepo := infraRepo.NewPetGormRepository(deps.DB, cfg.DBQueryTimeout)
	userRepo := infraRepo.NewUserGormRepository(deps.DB, cfg.DBQueryTimeout)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(deps.DB, cfg.DBQueryTimeout)

	auditLogger := audit.New(deps.DB)

	domainCheck := deps.DomainCheck
	if domainCheck == nil && cfg.ValidateEmailDomain {
		domainCheck = validators.NewEmailDomainChecker(nil, 0).IsEmailDomainValid
	}

	images := storage.ImageProcessor{
		MaxBytes:  cfg.UploadMaxBytes,
		MaxPixels: cfg.ImageMaxPixels,
		MaxWidth:  cfg.ImageMaxWidth,
		Quality:   float32(cfg.ImageQuality),
	}

	// ======================================================
	// USE CASES
	// ======================================================
	checker := ucAppointment.NewSlotChecker(appointmentRepo, schedule, deps.Now)

	bookSlotUC := ucAppointment.NewBookSlot(appointmentRepo, checker, deps.Audit)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, checker, deps.Audit)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, checker, deps.Audit)
	setStatusUC := ucAppointment.NewSetAppointmentStatus(appointmentRepo, checker, deps.Audit)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, deps.Audit)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	catalogUC := ucPet.NewCatalog(petRepo)
	managePetsUC := ucPet.NewManagePets(petRepo, deps.Storage, images, deps.Audit, log)

	authUC := ucUser.NewAuth(userRepo, deps.Audit, domainCheck)
	profileUC := ucUser.NewProfile(userRepo, deps.Audit, domainCheck)
	manageUsersUC := ucUser.NewManageUsers(userRepo, deps.Audit, domainCheck)

	overviewUC := dashboard.NewGetOverview(petRepo, userRepo, appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicWebHandler := handlers.NewPublicWebHandler(catalogUC, cfg.CookieSecure)
	authHandler := handlers.NewAuthHandler(authUC, sessions, cfg.CookieSecure)
	profileHandler := handlers.NewProfileHandler(profileUC, listAppointmentsUC, checker)
	appointmentHandler := handlers.NewAppointmentHandler(catalogUC, checker, bookSlotUC, cancelAppointmentUC)
	appWebHandler := handlers.NewAppWebHandler(overviewUC)
	adminPetsHandler := handlers.NewAdminPetsHandler(catalogUC, managePetsUC)
	adminUsersHandler := handlers.NewAdminUsersHandler(manageUsersUC)
	adminAppointmentsHandler := handlers.NewAdminAppointmentsHandler(
		listAppointmentsUC,
		updateAppointmentUC,
		setStatusUC,
		deleteAppointmentUC,
		checker,
		manageUsersUC,
		catalogUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, loc)

	// ======================================================
	// STATIC
	// ======================================================
	r.GET("/health", appWebHandler.Health)
	r.StaticFS("/static", http.FS(web.Static()))
	if local, ok := deps.Storage.(*storage.Local); ok {
		r.Static(local.Prefix(), local.Dir())
	}

	// Routes above are registered without sessions and never set a sid cookie.
	r.Use(sessions.Middleware())

	// ======================================================
	// PUBLIC PAGES
	// ======================================================
	r.GET("/", publicWebHandler.Home)
	r.GET("/pets", publicWebHandler.ListPets)
	r.GET("/pets/:id", publicWebHandler.ShowPet)

	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// ======================================================
	// SLOTS (JSON)
	// ======================================================
	slots := []gin.HandlerFunc{}
	if len(cfg.CORSAllowedOrigins) > 0 {
		cors := middleware.CORS(cfg.CORSAllowedOrigins)
		r.OPTIONS("/availableSlots", cors)
		slots = append(slots, cors)
	}
	slots = append(slots, middleware.RequireUser(), appointmentHandler.AvailableSlots)
	r.GET("/availableSlots", slots...)

	// ======================================================
	// CUSTOMER
	// ======================================================
	customer := r.Group("/")
	customer.Use(middleware.RequireCustomer())
	{
		customer.GET("/profile", profileHandler.Show)
		customer.POST("/profile/edit", profileHandler.Edit)

		customer.GET("/appointments/schedule/:petId", appointmentHandler.SchedulePage)
		customer.POST("/appointments/schedule/:petId", appointmentHandler.Schedule)
		customer.POST("/appointments/cancel/:id", appointmentHandler.Cancel)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := r.Group("/")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/dashboard", appWebHandler.Dashboard)

		admin.GET("/admin/pets", adminPetsHandler.List)
		admin.GET("/admin/pets/add", adminPetsHandler.AddPage)
		admin.POST("/admin/pets/add", adminPetsHandler.Add)
		admin.GET("/admin/pets/edit/:id", adminPetsHandler.EditPage)
		admin.POST("/admin/pets/edit/:id", adminPetsHandler.Edit)
		admin.POST("/admin/pets/delete/:id", adminPetsHandler.Delete)

		admin.GET("/admin/users", adminUsersHandler.List)
		admin.POST("/admin/users/add", adminUsersHandler.Add)
		admin.POST("/admin/users/edit/:id", adminUsersHandler.Edit)
		admin.POST("/admin/users/delete/:id", adminUsersHandler.Delete)

		admin.GET("/admin/appointments", adminAppointmentsHandler.List)
		admin.GET("/admin/appointments/edit/:id", adminAppointmentsHandler.EditPage)
		admin.POST("/admin/appointments/edit/:id", adminAppointmentsHandler.Edit)
		admin.POST("/admin/appointments/delete/:id", adminAppointmentsHandler.Delete)
		admin.POST("/admin/appointments/status/:id", adminAppointmentsHandler.SetStatus)

		admin.GET("/admin/audit-logs", auditLogsHandler.List)
	}

	return nil
}
