package db

import (
	"path/filepath"
	"testing"

	"github.com/Leganyst/flight-roster/internal/config"
	"github.com/Leganyst/flight-roster/internal/model"
)

func TestNewGormDB_SQLite(t *testing.T) {
	cfg := &config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "roster.db")}

	gdb, err := NewGormDB(cfg)
	if err != nil {
		t.Fatalf("NewGormDB: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	defer sqlDB.Close()

	if err := model.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !gdb.Migrator().HasTable(&model.RosterCrewAssignment{}) {
		t.Fatalf("roster_crew_assignments table missing")
	}
	if sqlDB.Stats().MaxOpenConnections != 1 {
		t.Fatalf("sqlite must use a single connection")
	}
}

func TestDialectorFor(t *testing.T) {
	cases := map[string]string{
		config.DriverPostgres: "postgres",
		config.DriverMySQL:    "mysql",
		config.DriverSQLite:   "sqlite",
	}
	for driver, want := range cases {
		d, err := dialectorFor(&config.DBConfig{Driver: driver, Host: "h", User: "u", Name: "n", Port: 1, Path: "x.db"})
		if err != nil {
			t.Fatalf("%s: %v", driver, err)
		}
		if d.Name() != want {
			t.Fatalf("%s: expected dialector %s, got %s", driver, want, d.Name())
		}
	}

	if _, err := dialectorFor(&config.DBConfig{Driver: "oracle"}); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
