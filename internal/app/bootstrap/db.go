// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/audit"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/memstore"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/mongostore"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/seed"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/indexes"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/timeouts"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/workers"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Collection names on the mongo backend.
const (
	collInstitutions = "institutions"
	collSchools      = "schools"
	collStudents     = "students"
	collTeachers     = "teachers"
	collUsers        = "users"
)

func institutionKey(i models.Institution) int { return i.ID }
func schoolKey(s models.SchoolData) int       { return s.ID }
func studentKey(s models.Student) string      { return s.Email }
func teacherKey(t models.Teacher) int         { return t.ID }
func userKey(u models.User) string            { return u.ID }

// ConnectDB builds the repositories for the configured backend.
//
// The memory backend starts from the seed data on every boot. The mongo
// backend connects and pings the server; seeding happens in EnsureSchema.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	reg := screens.New()
	deps := DBDeps{
		Backend: appCfg.StoreBackend,
		Screens: reg,
		Sweeper: workers.NewScreenSweep(reg, logger, appCfg.ScreenSweep, appCfg.ScreenIdle),
	}

	if appCfg.StoreBackend != BackendMongo {
		users, err := seed.Users(appCfg.BcryptCost)
		if err != nil {
			return DBDeps{}, err
		}
		deps.Institutions = memstore.New(institutionKey, seed.Institutions())
		deps.Schools = memstore.New(schoolKey, seed.Schools()).WithClone(models.SchoolData.Clone)
		deps.Students = memstore.New(studentKey, seed.Students())
		deps.Teachers = memstore.New(teacherKey, seed.Teachers())
		deps.Users = memstore.New(userKey, users)
		logger.Info("using in-memory store", zap.Int("institutions", len(seed.Institutions())))
		return deps, nil
	}

	opts := options.Client().ApplyURI(appCfg.MongoURI)
	if appCfg.MongoMaxPoolSize > 0 {
		opts.SetMaxPoolSize(appCfg.MongoMaxPoolSize)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("mongo connect failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("mongodb connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		logger.Error("mongo ping failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("mongodb ping error: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	deps.MongoClient = client
	deps.MongoDatabase = db
	deps.Institutions = mongostore.New(db, collInstitutions, institutionKey)
	deps.Schools = mongostore.New(db, collSchools, schoolKey)
	deps.Students = mongostore.New(db, collStudents, studentKey)
	deps.Teachers = mongostore.New(db, collTeachers, teacherKey)
	deps.Users = mongostore.New(db, collUsers, userKey)
	deps.Audit = audit.New(db)

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return deps, nil
}

// EnsureSchema creates indexes and seeds empty collections. It is a no-op
// on the memory backend.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	db := deps.MongoDatabase

	users, err := seed.Users(appCfg.BcryptCost)
	if err != nil {
		return err
	}

	steps := []struct {
		name string
		run  func(context.Context) (bool, error)
	}{
		{collInstitutions, seeder(mongostore.New(db, collInstitutions, institutionKey), seed.Institutions())},
		{collSchools, seeder(mongostore.New(db, collSchools, schoolKey), seed.Schools())},
		{collStudents, seeder(mongostore.New(db, collStudents, studentKey), seed.Students())},
		{collTeachers, seeder(mongostore.New(db, collTeachers, teacherKey), seed.Teachers())},
		{collUsers, seeder(mongostore.New(db, collUsers, userKey), users)},
	}
	for _, s := range steps {
		seeded, err := s.run(ctx)
		if err != nil {
			logger.Error("ensure schema failed", zap.String("collection", s.name), zap.Error(err))
			return fmt.Errorf("ensure %s: %w", s.name, err)
		}
		if seeded {
			logger.Info("seeded collection", zap.String("collection", s.name))
		}
	}

	if err := indexes.EnsureAll(ctx, db, logger); err != nil {
		logger.Error("index setup failed", zap.Error(err))
		return fmt.Errorf("ensure indexes: %w", err)
	}
	if err := deps.Audit.EnsureIndexes(ctx); err != nil {
		logger.Error("audit index setup failed", zap.Error(err))
		return fmt.Errorf("ensure audit indexes: %w", err)
	}
	return nil
}

func seeder[K comparable, T any](s *mongostore.Store[K, T], items []T) func(context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		if err := s.EnsureIndexes(ctx); err != nil {
			return false, err
		}
		return s.SeedIfEmpty(ctx, items)
	}
}
