package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/omxqn/api-application/internal/config"
	httpx "github.com/omxqn/api-application/internal/http"
	"github.com/omxqn/api-application/internal/http/handlers"
	"github.com/omxqn/api-application/internal/http/middleware"
	"github.com/omxqn/api-application/internal/infrastructure/auth"
	"github.com/omxqn/api-application/internal/infrastructure/database"
	"github.com/omxqn/api-application/internal/infrastructure/notifications"
	"github.com/omxqn/api-application/internal/infrastructure/repositories"
	"github.com/omxqn/api-application/internal/services"
	"github.com/omxqn/api-application/internal/ws"
)

// Run wires the whole application and serves HTTP until the process
// exits.
func Run(cfg *config.Config, log *zap.Logger) error {
	applyGinMode(cfg.GinMode)

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services
	tokenSvc := auth.NewJWTService(cfg.SessionSecret, cfg.SessionIssuer, cfg.SessionTTL)
	notificationSvc := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom, log)

	// Repositories
	accountRepo := repositories.NewAccountRepository(gdb)
	profileRepo := repositories.NewProfileRepository(gdb)
	invitationRepo := repositories.NewInvitationRepository(gdb)
	fleetRepo := repositories.NewFleetRepository(gdb)
	tripRepo := repositories.NewTripRepository(gdb)
	contentRepo := repositories.NewContentRepository(gdb)
	otpStore := repositories.NewOTPRepository(rdb)
	locationStore := repositories.NewLocationRepository(rdb)

	// Live location fan-out
	hub := ws.NewHub(log)

	// Services
	otpSvc := services.NewOTPService(otpStore, notificationSvc, services.OTPConfig{
		Length: cfg.OTPLength,
		TTL:    cfg.OTPTTL,
	}, log)
	authSvc := services.NewAuthService(accountRepo, otpSvc, tokenSvc, log)
	authzSvc := services.NewAuthzService(accountRepo, log)
	regSvc := services.NewRegistrationService(accountRepo, profileRepo, tokenSvc, log)
	invSvc := services.NewInvitationService(invitationRepo, accountRepo, fleetRepo, log)
	fleetSvc := services.NewFleetService(fleetRepo, tripRepo, locationStore, hub, log)
	docSvc := services.NewDocumentService(accountRepo, profileRepo, log)
	policySvc := services.NewPolicyService(cas.E)

	// Handlers
	deps := httpx.RouterDeps{
		Auth:         handlers.NewAuthHandlers(authSvc, docSvc),
		Registration: handlers.NewRegistrationHandlers(regSvc),
		Invitations:  handlers.NewInvitationHandlers(invSvc),
		Fleet:        handlers.NewFleetHandlers(fleetSvc),
		Uploads:      handlers.NewUploadHandlers(docSvc, cfg.UploadDir),
		Admin:        handlers.NewAdminHandlers(authzSvc, policySvc),
		Content:      handlers.NewContentHandlers(contentRepo),
		Stream:       handlers.NewWSHandlers(hub, log),
		AuthMW:       middleware.NewAuthMW(authSvc, authzSvc),
		CasbinMW:     middleware.NewCasbinMW(cas.E),
	}
	r := httpx.BuildRouter(deps)

	seedPolicies(cas, log)

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

// applyGinMode switches gin between debug and release output. An empty
// value keeps gin's default.
func applyGinMode(mode string) {
	if mode != "" {
		gin.SetMode(mode)
	}
}

// seedPolicies installs the default rule set on an empty policy store.
func seedPolicies(cas *auth.CasbinService, log *zap.Logger) {
	policies, _ := cas.E.GetPolicy()
	if len(policies) > 0 {
		return
	}

	cas.E.AddPolicy("role_user", "/auth/logout", "POST")
	cas.E.AddPolicy("role_user", "/me", "GET")
	cas.E.AddPolicy("role_user", "/main-screen", "GET")
	cas.E.AddPolicy("role_user", "/uploads/*", "POST")
	cas.E.AddPolicy("role_user", "/buses*", "(GET|POST)")
	cas.E.AddPolicy("role_user", "/trips*", "(GET|POST)")
	cas.E.AddPolicy("role_user", "/invitations*", "(GET|POST)")
	cas.E.AddPolicy("role_admin", "/admin/*", "(GET|POST|PUT|DELETE)")

	// Higher roles inherit everything below them.
	cas.E.AddGroupingPolicy("role_admin", "role_user")
	cas.E.AddGroupingPolicy("role_super_admin", "role_admin")

	if err := cas.E.SavePolicy(); err != nil {
		log.Warn("failed to persist seeded policies", zap.Error(err))
		return
	}
	log.Info("casbin: seeded default policies")
}
