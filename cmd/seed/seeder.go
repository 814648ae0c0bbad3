package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/store"
	"github.com/MKhiriev/report-catalog/internal/utils"
	"github.com/MKhiriev/report-catalog/models"
)

var errAdminPasswordRequired = errors.New("admin password is required")

// sampleRecords is the demo catalog loaded by -records.
var sampleRecords = []models.Record{
	{Categoria: "Compras", Nombre: "Comparaciones Variante Copia N", Descripcion: "Controlar Unidades-Facturacion-Tickets Por categorias subcategorias Marcas y laboratorios", Link: "Link", Vigencia: "Vigente"},
	{Categoria: "Ventas", Nombre: "Completo Turnero 1.0", Descripcion: "Analisis de Venta de sucursales y empleados por zona horaria y tipo de venta", Link: "Link", Vigencia: "Vigente"},
	{Categoria: "Ventas", Nombre: "Completo Convenios 1.0", Descripcion: "Analisis de Venta de Convenios-Cantidad de empleados asociados y cuanto uso tuvo el beneficio del convenio", Link: "Link", Vigencia: "Vigente"},
	{Categoria: "Stock", Nombre: "Stock 1.1", Descripcion: "Stock De sucursales Quiebres y movimientos en si por sucursal", Link: "Link", Vigencia: "En Proceso"},
	{Categoria: "Ventas", Nombre: "Completo Analisis", Descripcion: "Compras sobre ventas - Mal Entregados,Cajas y pendientes", Link: "Link", Vigencia: "En revision"},
	{Categoria: "Ventas", Nombre: "Eccomerce 1.0", Descripcion: "Analisis de Venta de sucursales y empleados por zona horaria y tipo de venta para las ventas de Eccomerce", Link: "Link", Vigencia: "En Proceso"},
	{Categoria: "Ventas", Nombre: "Ventas Call 1.0", Descripcion: "Analisis de Venta de sucursales y empleados por zona horaria y tipo de venta para las ventas de Eccomerce", Link: "Link", Vigencia: "En Proceso"},
	{Categoria: "Ventas", Nombre: "Medicos 1.0", Descripcion: "Ver Avance de obras sociales por recetas y venta sumado a rendimiento de los medicos, monodrogas y laboratorios", Link: "Link", Vigencia: "En revision"},
}

type seedOptions struct {
	records       bool
	resetUsers    bool
	adminUser     string
	adminPassword string
	hashCost      int
}

type seeder struct {
	records store.RecordRepository
	users   store.UserRepository
	logger  *logger.Logger
}

func newSeeder(records store.RecordRepository, users store.UserRepository, log *logger.Logger) *seeder {
	return &seeder{records: records, users: users, logger: log}
}

// run applies the selected seeding steps in order: user reset, sample
// records, admin account.
func (s *seeder) run(ctx context.Context, opts seedOptions) error {
	if opts.resetUsers {
		removed, err := s.users.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("error removing users: %w", err)
		}
		s.logger.Info().Int64("removed", removed).Msg("users removed")
	}

	if opts.records {
		if err := s.insertRecords(ctx); err != nil {
			return err
		}
	}

	if opts.adminUser != "" {
		if err := s.createAdmin(ctx, opts.adminUser, opts.adminPassword, opts.hashCost); err != nil {
			return err
		}
	}

	return nil
}

func (s *seeder) insertRecords(ctx context.Context) error {
	for _, record := range sampleRecords {
		created, err := s.records.Create(ctx, record)
		if err != nil {
			return fmt.Errorf("error inserting record %q: %w", record.Nombre, err)
		}
		s.logger.Info().Int64("id", created.ID).Str("nombre", created.Nombre).Msg("record inserted")
	}

	return nil
}

func (s *seeder) createAdmin(ctx context.Context, username, password string, cost int) error {
	if password == "" {
		return errAdminPasswordRequired
	}

	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}

	created, err := s.users.Create(ctx, models.User{Username: username, Password: hash, IsAdmin: true})
	if err != nil {
		return fmt.Errorf("error creating admin %q: %w", username, err)
	}
	s.logger.Info().Int64("user_id", created.UserID).Str("username", created.Username).Msg("admin created")

	return nil
}
