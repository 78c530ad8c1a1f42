// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	dashboardfeature "github.com/myvedaai/Admin-Dashboard/internal/app/features/dashboard"
	errorsfeature "github.com/myvedaai/Admin-Dashboard/internal/app/features/errors"
	healthfeature "github.com/myvedaai/Admin-Dashboard/internal/app/features/health"
	loginfeature "github.com/myvedaai/Admin-Dashboard/internal/app/features/login"
	logoutfeature "github.com/myvedaai/Admin-Dashboard/internal/app/features/logout"
	organizationsfeature "github.com/myvedaai/Admin-Dashboard/internal/app/features/organizations"
	orgdetailfeature "github.com/myvedaai/Admin-Dashboard/internal/app/features/orgdetail"
	usersfeature "github.com/myvedaai/Admin-Dashboard/internal/app/features/users"
	userstore "github.com/myvedaai/Admin-Dashboard/internal/app/store/users"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auditlog"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the repositories and screen registry bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The console applies session middleware globally and mounts one feature
// router per screen: login, dashboard, organizations, organization detail
// and organization users. Detail and users are mounted below an
// organization id ahead of the organizations router.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}
	remember := auth.NewRemember([]byte(appCfg.SessionKey), appCfg.RememberCookie, appCfg.SessionDomain, appCfg.RememberMaxAge, secure)
	lockout := ratelimit.NewLockout(appCfg.LockoutAttempts, appCfg.LockoutDuration)

	// Audit events go to zap, and to Mongo when that backend is in use.
	var sink auditlog.Sink
	if deps.Audit != nil {
		sink = deps.Audit
	}
	auditLog := auditlog.New(sink, logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
	})

	users := userstore.New(deps.Users, appCfg.BcryptCost)
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	if appCfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// Global auth middleware: loads the session record into context if present.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Backend, deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(users, sessionMgr, remember, lockout, auditLog, loginfeature.Delays{
		Login:    appCfg.LoginDelay,
		Register: appCfg.RegisterDelay,
	}, errLog, logger)
	r.Get("/", loginHandler.ServeEntry)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, deps.Screens, auditLog, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Error endpoints
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Dashboard
	dashboardHandler := dashboardfeature.NewHandler(deps.Institutions, deps.Students, deps.Teachers, errLog, logger)
	if deps.Audit != nil {
		dashboardHandler.Activity = deps.Audit
	}
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Organization screens
	detailHandler := orgdetailfeature.NewHandler(deps.Institutions, deps.Schools, deps.Screens, auditLog, errLog, logger)
	r.Mount("/organizations/{id}/detail", orgdetailfeature.Routes(detailHandler, sessionMgr))

	usersHandler := usersfeature.NewHandler(deps.Students, deps.Teachers, deps.Screens, auditLog, usersfeature.Options{
		LoadDelay: appCfg.LoadDelay,
		Debounce:  appCfg.SearchDebounce,
	}, errLog, logger)
	r.Mount("/organizations/{id}/users", usersfeature.Routes(usersHandler, sessionMgr))

	orgHandler := organizationsfeature.NewHandler(deps.Institutions, deps.Screens, auditLog, appCfg.SearchDebounce, errLog, logger)
	r.Mount("/organizations", organizationsfeature.Routes(orgHandler, sessionMgr))

	return r, nil
}
