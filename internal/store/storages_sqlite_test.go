package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/models"
)

// newSQLiteStorages opens a migrated catalog database in a temporary file.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	cfg := config.DB{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "catalog.db")}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func countRecords(t *testing.T, repo RecordRepository) int {
	t.Helper()
	records, err := repo.List(context.Background(), models.RecordFilter{All: true})
	require.NoError(t, err)
	return len(records)
}

func TestSQLiteRecords_CreateThenGet(t *testing.T) {
	repo := newSQLiteStorages(t).RecordRepository
	ctx := context.Background()

	in := models.Record{
		ID:          99,
		Categoria:   "Compras",
		Nombre:      "Comparaciones Variante Copia N",
		Descripcion: "Controlar Unidades-Facturacion-Tickets",
		Link:        "https://reports.example/compras",
		Vigencia:    "Vigente",
	}

	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.NotEqual(t, int64(99), created.ID)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	in.ID = created.ID
	assert.Equal(t, in, got)
}

func TestSQLiteRecords_RoleFilteredList(t *testing.T) {
	repo := newSQLiteStorages(t).RecordRepository
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, models.Record{Categoria: "Ventas", Nombre: "Ventas"})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, models.Record{Categoria: "Stock", Nombre: "Stock 1.1"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		session models.Session
		want    map[string]int
	}{
		{
			name:    "ventas role",
			session: models.Session{UserID: 2, Roles: []string{"Ventas"}},
			want:    map[string]int{"Ventas": 5},
		},
		{
			name:    "roles with spaces",
			session: models.Session{UserID: 2, Roles: []string{" Stock ", "Compras"}},
			want:    map[string]int{"Stock": 1},
		},
		{
			name:    "no roles",
			session: models.Session{UserID: 2},
			want:    map[string]int{},
		},
		{
			name:    "admin",
			session: models.Session{UserID: 1, IsAdmin: true},
			want:    map[string]int{"Ventas": 5, "Stock": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := repo.List(ctx, tt.session.RecordFilter())
			require.NoError(t, err)

			got := map[string]int{}
			for i, r := range records {
				got[r.Categoria]++
				if i > 0 {
					assert.Less(t, records[i-1].ID, r.ID)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Stock", "Ventas"}, categories)
}

func TestSQLiteRecords_UpdateAndDelete(t *testing.T) {
	repo := newSQLiteStorages(t).RecordRepository
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Record{Categoria: "Ventas", Nombre: "Completo Turnero 1.0"})
	require.NoError(t, err)

	t.Run("update overwrites every field", func(t *testing.T) {
		changed := models.Record{ID: created.ID, Categoria: "Stock", Nombre: "n", Descripcion: "d", Link: "l", Vigencia: "En Proceso"}
		require.NoError(t, repo.Update(ctx, changed))

		got, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, changed, got)
	})

	t.Run("missing id is not found and changes nothing", func(t *testing.T) {
		before := countRecords(t, repo)

		assert.ErrorIs(t, repo.Delete(ctx, created.ID+100), ErrRecordNotFound)
		assert.ErrorIs(t, repo.Update(ctx, models.Record{ID: created.ID + 100}), ErrRecordNotFound)
		_, err := repo.Get(ctx, created.ID+100)
		assert.ErrorIs(t, err, ErrRecordNotFound)

		assert.Equal(t, before, countRecords(t, repo))
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, created.ID))

		_, err := repo.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrRecordNotFound)
		assert.Zero(t, countRecords(t, repo))
	})
}

func TestSQLiteUsers(t *testing.T) {
	repo := newSQLiteStorages(t).UserRepository
	ctx := context.Background()

	created, err := repo.Create(ctx, models.User{Username: "ana", Password: "hash-1", IsAdmin: true, Roles: "Ventas,Stock", Email: "ana@example.com"})
	require.NoError(t, err)
	require.NotZero(t, created.UserID)

	t.Run("admin flag scans into bool", func(t *testing.T) {
		got, err := repo.FindByID(ctx, created.UserID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
		assert.True(t, got.IsAdmin)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := repo.Create(ctx, models.User{Username: "ana", Password: "x"})
		assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	})

	t.Run("update without password keeps the hash", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, models.UserUpdate{UserID: created.UserID, Username: "ana.g"}))

		got, err := repo.FindByUsername(ctx, "ana.g")
		require.NoError(t, err)
		assert.Equal(t, "hash-1", got.Password)
		assert.False(t, got.IsAdmin)
	})

	t.Run("update with password replaces the hash", func(t *testing.T) {
		hash := "hash-2"
		require.NoError(t, repo.Update(ctx, models.UserUpdate{UserID: created.UserID, Username: "ana.g", Password: &hash, IsAdmin: true}))

		got, err := repo.FindByID(ctx, created.UserID)
		require.NoError(t, err)
		assert.Equal(t, "hash-2", got.Password)
		assert.True(t, got.IsAdmin)
	})

	t.Run("roles and listing", func(t *testing.T) {
		require.NoError(t, repo.UpdateRoles(ctx, created.UserID, "Compras"))
		_, err := repo.Create(ctx, models.User{Username: "luis", Password: "h"})
		require.NoError(t, err)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Compras", users[0].Roles)
		assert.Empty(t, users[0].Password)
		assert.Equal(t, "luis", users[1].Username)
		assert.False(t, users[1].IsAdmin)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 404)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.ErrorIs(t, repo.UpdateRoles(ctx, 404, "Ventas"), ErrUserNotFound)
	})

	t.Run("delete all", func(t *testing.T) {
		removed, err := repo.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
