package database

import (
	"io/fs"
	"strings"
	"testing"

	"go-hospital-admin/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_PairedUpAndDown(t *testing.T) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, name := range names {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Fatalf("unexpected migration file %s", name)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestMigrations_CreateEveryTable(t *testing.T) {
	var all strings.Builder
	names, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	for _, name := range names {
		body, err := fs.ReadFile(migrationsFS, name)
		require.NoError(t, err)
		all.Write(body)
	}

	for _, table := range []string{"patients", "doctors", "staff", "appointments", "medical_records", "bills", "medicines", "audit_logs"} {
		assert.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
}

func TestMigrations_SequenceOnEveryRecordTable(t *testing.T) {
	body, err := fs.ReadFile(migrationsFS, "migrations/000004_add_insertion_sequence.up.sql")
	require.NoError(t, err)

	for _, table := range []string{"patients", "doctors", "staff", "appointments", "medical_records", "bills", "medicines"} {
		assert.Contains(t, string(body), "ALTER TABLE "+table+" ADD COLUMN IF NOT EXISTS seq BIGSERIAL;", table)
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "hms", SSLMode: "require"})
	assert.Equal(t, "host=db user=u password=p dbname=hms port=5432 sslmode=require TimeZone=UTC", dsn)
}
