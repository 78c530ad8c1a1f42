// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/audit"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/workers"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the backend dependencies shared by the lifecycle hooks.
//
// The repositories are backed by memstore or mongostore depending on
// AppConfig.StoreBackend. The Mongo client and the audit store are nil on
// the memory backend.
type DBDeps struct {
	Backend       string
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Institutions repository.Repository[int, models.Institution]
	Schools      repository.Repository[int, models.SchoolData]
	Students     repository.Repository[string, models.Student]
	Teachers     repository.Repository[int, models.Teacher]
	Users        repository.Repository[string, models.User]

	Audit *audit.Store

	// Screens holds per-session screen state; Sweeper discards idle entries.
	Screens *screens.Registry
	Sweeper *workers.ScreenSweep
}
