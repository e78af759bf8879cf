// README: Postgres-backed store tests; skipped unless ROAMHAVEN_TEST_DSN is set.
package listing

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"roamhaven/internal/types"
)

func TestStore_CreateGetRoundTrip(t *testing.T) {
	store, db := setupTestStore(t)
	ctx := context.Background()

	ownerID := seedOwner(t, db)
	l := &Listing{
		ID:          types.ID(uuid.NewString()),
		Title:       "Lakeview Cottage",
		Description: "A cozy cottage overlooking the lake.",
		Price:       1200,
		Location:    "Nashik",
		Country:     "India",
		Category:    "rooms",
		Geometry:    PointGeometry(types.Point{Lng: 73.79, Lat: 19.99}),
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := store.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Geometry.Coordinates != [2]float64{73.79, 19.99} {
		t.Errorf("round-tripped coordinates = %v", got.Geometry.Coordinates)
	}
	if got.Image != nil {
		t.Errorf("listing without an upload must round-trip a nil Image")
	}
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := setupTestStore(t)

	if _, err := store.Get(context.Background(), types.ID(uuid.NewString())); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_SearchByLocation(t *testing.T) {
	store, db := setupTestStore(t)
	ctx := context.Background()

	ownerID := seedOwner(t, db)
	for _, loc := range []string{"Nashik", "Goa", "New York City"} {
		l := &Listing{
			ID:        types.ID(uuid.NewString()),
			Title:     "Stay in " + loc,
			Price:     1000,
			Location:  loc,
			Country:   "India",
			Geometry:  PointGeometry(types.Sentinel),
			OwnerID:   ownerID,
			CreatedAt: time.Now().UTC(),
		}
		if err := store.Create(ctx, l); err != nil {
			t.Fatalf("Create(%s): %v", loc, err)
		}
	}

	got, err := store.SearchByLocation(ctx, "nashik", 5)
	if err != nil {
		t.Fatalf("SearchByLocation: %v", err)
	}
	if len(got) != 1 || got[0].Location != "Nashik" {
		t.Errorf("case-insensitive search returned %v", got)
	}
}

// setupTestStore creates a real postgres-backed Store for integration tests.
// It skips the test when ROAMHAVEN_TEST_DSN is not set.
func setupTestStore(t *testing.T) (*Store, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("ROAMHAVEN_TEST_DSN")
	if dsn == "" {
		t.Skip("ROAMHAVEN_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigrations(ctx, db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	for _, table := range []string{"bookings", "reviews", "listings", "users"} {
		if _, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}

	return NewStore(db), db
}

func seedOwner(t *testing.T, db *pgxpool.Pool) types.ID {
	t.Helper()
	id := uuid.NewString()
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, email, username) VALUES ($1, $2, 'owner')",
		id, id+"@example.com",
	)
	if err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	return types.ID(id)
}

func applyMigrations(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	migrations := []string{
		"0001_init.sql",
	}
	for _, name := range migrations {
		path := filepath.Join(root, "migrations", name)
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		cleaned := stripSQLComments(string(content))
		for _, stmt := range splitSQL(cleaned) {
			if _, err := db.Exec(ctx, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
