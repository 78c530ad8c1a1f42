// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auditlog"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// appConfigKeys defines the configuration keys for the admin dashboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: store_backend, session_name, etc.
//   - Environment variables: ADMINDASH_STORE_BACKEND, ADMINDASH_SESSION_NAME, etc.
//   - Command-line flags: --store_backend, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "store_backend", Default: BackendMemory, Desc: "Store backend: 'memory' or 'mongo'"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "admin_dashboard", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 0, Desc: "MongoDB max connection pool size (0 keeps the driver default)"},
	{Name: "bcrypt_cost", Default: bcrypt.DefaultCost, Desc: "bcrypt cost for stored passwords"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "admin_session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "8h", Desc: "Session cookie lifetime"},
	{Name: "remember_cookie", Default: "admin_email", Desc: "Remember-me cookie name"},
	{Name: "remember_max_age", Default: "720h", Desc: "Remember-me cookie lifetime"},

	// Simulated latency
	{Name: "login_delay", Default: "800ms", Desc: "Delay before a login attempt is checked"},
	{Name: "register_delay", Default: "1000ms", Desc: "Delay before a registration is processed"},
	{Name: "load_delay", Default: "800ms", Desc: "Delay before the users screen loads"},
	{Name: "search_debounce", Default: "300ms", Desc: "Debounce interval for search inputs"},

	// Login lockout
	{Name: "lockout_attempts", Default: 3, Desc: "Failed logins before the form locks"},
	{Name: "lockout_duration", Default: "30s", Desc: "How long the login form stays locked"},
	{Name: "trust_proxy", Default: false, Desc: "Take the client address from X-Real-IP/X-Forwarded-For (only behind a proxy that sets them)"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: auditlog.ModeAll, Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_admin", Default: auditlog.ModeAll, Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Handler timeouts
	{Name: "timeout_short", Default: "", Desc: "Timeout for single-record operations (blank keeps the default)"},
	{Name: "timeout_medium", Default: "", Desc: "Timeout for list reads (blank keeps the default)"},

	// Screen state retention
	{Name: "screen_idle", Default: "30m", Desc: "Discard screen state idle for longer than this"},
	{Name: "screen_sweep", Default: "1m", Desc: "Interval of the idle screen sweep"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, ADMINDASH_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ADMINDASH", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		StoreBackend:     appValues.String("store_backend"),
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		BcryptCost:       appValues.Int("bcrypt_cost"),

		SessionKey:     appValues.String("session_key"),
		SessionName:    appValues.String("session_name"),
		SessionDomain:  appValues.String("session_domain"),
		SessionMaxAge:  appValues.Duration("session_max_age", 8*time.Hour),
		RememberCookie: appValues.String("remember_cookie"),
		RememberMaxAge: appValues.Duration("remember_max_age", 30*24*time.Hour),

		LoginDelay:     appValues.Duration("login_delay", 800*time.Millisecond),
		RegisterDelay:  appValues.Duration("register_delay", time.Second),
		LoadDelay:      appValues.Duration("load_delay", 800*time.Millisecond),
		SearchDebounce: appValues.Duration("search_debounce", 300*time.Millisecond),

		LockoutAttempts: appValues.Int("lockout_attempts"),
		LockoutDuration: appValues.Duration("lockout_duration", 30*time.Second),
		TrustProxy:      appValues.Bool("trust_proxy"),

		AuditLogAuth:  appValues.String("audit_log_auth"),
		AuditLogAdmin: appValues.String("audit_log_admin"),

		TimeoutShort:  appValues.Duration("timeout_short", 0),
		TimeoutMedium: appValues.Duration("timeout_medium", 0),

		ScreenIdle:  appValues.Duration("screen_idle", 30*time.Minute),
		ScreenSweep: appValues.Duration("screen_sweep", time.Minute),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI is only checked when the mongo backend is selected.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StoreBackend {
	case BackendMemory:
	case BackendMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return fmt.Errorf("mongo_database is required for the mongo backend")
		}
	default:
		return fmt.Errorf("store_backend must be %q or %q, got %q", BackendMemory, BackendMongo, appCfg.StoreBackend)
	}

	if appCfg.BcryptCost < bcrypt.MinCost || appCfg.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	delays := map[string]time.Duration{
		"login_delay":     appCfg.LoginDelay,
		"register_delay":  appCfg.RegisterDelay,
		"load_delay":      appCfg.LoadDelay,
		"search_debounce": appCfg.SearchDebounce,
	}
	for name, d := range delays {
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}

	if appCfg.LockoutAttempts < 1 {
		return fmt.Errorf("lockout_attempts must be at least 1")
	}
	if appCfg.LockoutDuration <= 0 {
		return fmt.Errorf("lockout_duration must be positive")
	}
	if appCfg.SessionMaxAge <= 0 {
		return fmt.Errorf("session_max_age must be positive")
	}

	if !auditlog.ValidMode(appCfg.AuditLogAuth) {
		return fmt.Errorf("audit_log_auth: unknown mode %q", appCfg.AuditLogAuth)
	}
	if !auditlog.ValidMode(appCfg.AuditLogAdmin) {
		return fmt.Errorf("audit_log_admin: unknown mode %q", appCfg.AuditLogAdmin)
	}

	if appCfg.ScreenSweep <= 0 || appCfg.ScreenIdle <= 0 {
		return fmt.Errorf("screen_idle and screen_sweep must be positive")
	}

	return nil
}
