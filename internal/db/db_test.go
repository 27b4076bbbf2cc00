package db_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/schedh/internal/db"
	"github.com/gyeh/schedh/internal/logging"
	"github.com/gyeh/schedh/internal/model"
)

const (
	testPort     = 15433
	testDB       = "schedhtest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var (
	testDSN string
	pg      *embeddedpostgres.EmbeddedPostgres
)

// Postgres-backed tests download and run a real server, so they only run
// when SCHEDH_PG_TESTS=1.
func TestMain(m *testing.M) {
	if os.Getenv("SCHEDH_PG_TESTS") != "1" {
		os.Exit(m.Run())
	}

	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg = embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30*time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// setupDB creates a connection pool and applies migrations on a clean schema.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDSN == "" {
		t.Skip("set SCHEDH_PG_TESTS=1 to run Postgres tests")
	}
	ctx := context.Background()

	pool, err := db.NewPool(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := pool.Exec(ctx, "DROP SCHEMA IF EXISTS schedh CASCADE"); err != nil {
		t.Fatalf("drop schema: %v", err)
	}

	log := logging.Setup("text", "warn")
	if err := db.ApplyMigrations(ctx, pool, log); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}

	t.Cleanup(func() { pool.Close() })
	return pool
}

func strPtr(s string) *string { return &s }

func TestFilingColumns(t *testing.T) {
	cols := db.FilingColumns()
	if len(cols) != len(model.Catalog)+1 {
		t.Fatalf("columns: got %d, want %d", len(cols), len(model.Catalog)+1)
	}
	if cols[0] != "run_id" || cols[1] != "irs_releaseyear" {
		t.Errorf("unexpected leading columns: %v", cols[:2])
	}
}

func TestFilingsDDL(t *testing.T) {
	ddl := db.FilingsDDL()
	if !strings.HasPrefix(ddl, "CREATE TABLE IF NOT EXISTS schedh.filings") {
		t.Errorf("unexpected DDL prefix: %.60s", ddl)
	}
	if got := strings.Count(ddl, " text"); got != len(model.Catalog) {
		t.Errorf("text columns: got %d, want %d", got, len(model.Catalog))
	}
}

func TestRecordSource(t *testing.T) {
	ch := make(chan model.Record, 2)
	ch <- model.Project(map[string]*string{"FileName": strPtr("a.xml")})
	close(ch)

	id := uuid.New()
	src := db.NewRecordSource(ch, id)
	if !src.Next() {
		t.Fatal("expected a row")
	}
	vals, err := src.Values()
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != len(model.Catalog)+1 || vals[0] != id {
		t.Errorf("unexpected values prefix: %v", vals[:1])
	}
	if src.Next() {
		t.Error("expected end of rows")
	}
}

func TestLoadRecords(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", "warn")

	records := []model.Record{
		model.Project(map[string]*string{"FileName": strPtr("a.xml"), "Filer_EIN": strPtr("1")}),
		model.Project(map[string]*string{"FileName": strPtr("b.xml")}),
	}
	runID := uuid.New().String()

	res, err := db.LoadRecords(ctx, pool, log, runID, "testdata", records)
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}
	if res.RowsLoaded != 2 {
		t.Errorf("rows loaded: got %d, want 2", res.RowsLoaded)
	}

	// Reloading the same run replaces its rows.
	if _, err := db.LoadRecords(ctx, pool, log, runID, "testdata", records[:1]); err != nil {
		t.Fatalf("reload: %v", err)
	}

	var n int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM schedh.filings WHERE run_id = $1", uuid.MustParse(runID)).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("rows after reload: got %d, want 1", n)
	}

	var status string
	var loaded int64
	err = pool.QueryRow(ctx, "SELECT status, rows_loaded FROM schedh.runs WHERE run_id = $1", uuid.MustParse(runID)).Scan(&status, &loaded)
	if err != nil {
		t.Fatal(err)
	}
	if status != "loaded" || loaded != 1 {
		t.Errorf("run row: status=%s rows=%d", status, loaded)
	}

	var ein *string
	err = pool.QueryRow(ctx, "SELECT irs_filer_ein FROM schedh.filings WHERE irs_releasexml = 'a.xml'").Scan(&ein)
	if err != nil {
		t.Fatal(err)
	}
	if ein == nil || *ein != "1" {
		t.Errorf("ein: got %v", ein)
	}
}

func TestMigrationFiles_Embedded(t *testing.T) {
	files, err := db.MigrationFiles()
	if err != nil {
		t.Fatalf("MigrationFiles: %v", err)
	}
	if len(files) == 0 || files[0] != "migrations/001_schema.sql" {
		t.Errorf("unexpected migrations: %v", files)
	}
}

func TestNewPool_ApplicationName(t *testing.T) {
	pool := setupDB(t)

	var name string
	if err := pool.QueryRow(context.Background(), "SHOW application_name").Scan(&name); err != nil {
		t.Fatal(err)
	}
	if name != db.ApplicationName {
		t.Errorf("application_name: got %q, want %q", name, db.ApplicationName)
	}
}

func TestApplyMigrations_CreatesFilingsTable(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()

	var n int
	err := pool.QueryRow(ctx,
		"SELECT count(*) FROM information_schema.columns WHERE table_schema = 'schedh' AND table_name = 'filings'").Scan(&n)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(db.FilingColumns()) {
		t.Errorf("filings columns: got %d, want %d", n, len(db.FilingColumns()))
	}

	// A second pass over a migrated schema is a no-op.
	if err := db.ApplyMigrations(ctx, pool, logging.Setup("text", "warn")); err != nil {
		t.Fatalf("re-apply: %v", err)
	}
}

func TestLoadRecords_BadRunID(t *testing.T) {
	pool := setupDB(t)
	_, err := db.LoadRecords(context.Background(), pool, logging.Setup("text", "warn"), "not-a-uuid", "x", nil)
	if err == nil {
		t.Fatal("expected error for invalid run id")
	}
}
