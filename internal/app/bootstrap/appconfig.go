// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// Store backends.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (ADMINDASH_*), configuration
// files, or command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig
// covers ports, TLS, log level and request limits; everything specific to
// the console lives here.
type AppConfig struct {
	// Persistence
	StoreBackend     string // "memory" (seeded on every boot) or "mongo"
	MongoURI         string // MongoDB connection string, required for the mongo backend
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Zero keeps the driver default
	BcryptCost       int    // Cost used when hashing seeded and registered passwords

	// Session management
	SessionKey     string        // Secret key for signing session cookies (must be strong in production)
	SessionName    string        // Cookie name for sessions
	SessionDomain  string        // Cookie domain (blank means current host)
	SessionMaxAge  time.Duration // Lifetime of the session cookie
	RememberCookie string        // Cookie holding the remembered email
	RememberMaxAge time.Duration // Lifetime of the remember-me cookie

	// Simulated latency, mirroring the console's fixed delays
	LoginDelay     time.Duration
	RegisterDelay  time.Duration
	LoadDelay      time.Duration
	SearchDebounce time.Duration

	// Login lockout
	LockoutAttempts int
	LockoutDuration time.Duration
	TrustProxy      bool // Client address comes from the proxy's X-Real-IP/X-Forwarded-For

	// Audit logging: "all", "db", "log" or "off"
	AuditLogAuth  string
	AuditLogAdmin string

	// Handler timeouts (zero keeps the defaults)
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration

	// Screen state retention
	ScreenIdle  time.Duration // Idle screens older than this are discarded
	ScreenSweep time.Duration // How often the sweep worker runs
}
