package mongostore_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/mongostore"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setupDB connects to ADMINDASH_TEST_MONGO_URI and returns a throwaway
// database that is dropped when the test ends.
func setupDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("ADMINDASH_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("ADMINDASH_TEST_MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	db := client.Database("admindash_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

func TestStore_RoundTripAndOrder(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := mongostore.New(db, "institutions", func(i models.Institution) int { return i.ID })

	seeded, err := s.SeedIfEmpty(ctx, []models.Institution{
		{ID: 2, Name: "Second"},
		{ID: 1, Name: "First"},
	})
	if err != nil || !seeded {
		t.Fatalf("SeedIfEmpty() = %v, %v", seeded, err)
	}

	all, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 2 || all[0].Name != "Second" || all[1].Name != "First" {
		t.Errorf("GetAll() = %+v, want insertion order", all)
	}

	if err := s.Insert(ctx, models.Institution{ID: 1, Name: "Again"}); !errors.Is(err, repository.ErrDuplicateID) {
		t.Errorf("Insert(dup) err = %v, want ErrDuplicateID", err)
	}

	n, err := s.Update(ctx, models.Institution{ID: 1, Name: "Renamed"})
	if err != nil || n != 1 {
		t.Fatalf("Update() = %d, %v", n, err)
	}
	got, err := s.GetByID(ctx, 1)
	if err != nil || got.Name != "Renamed" {
		t.Errorf("GetByID(1) = %+v, %v", got, err)
	}

	if n, _ := s.Delete(ctx, 1); n != 1 {
		t.Errorf("Delete(1) = %d, want 1", n)
	}
	if _, err := s.GetByID(ctx, 1); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByID after delete err = %v, want ErrNotFound", err)
	}
}
