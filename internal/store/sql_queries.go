package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/report-catalog/models"
)

const (
	recordsTable = "data"
	usersTable   = "users"

	colID          = "id"
	colCategoria   = "categoria"
	colNombre      = "nombre"
	colDescripcion = "descripcion"
	colLink        = "link"
	colVigencia    = "vigencia"

	colUsername = "username"
	colPassword = "password"
	colIsAdmin  = "is_admin"
	colRoles    = "roles"
	colEmail    = "email"
)

var (
	recordColumns   = []string{colID, colCategoria, colNombre, colDescripcion, colLink, colVigencia}
	userColumns     = []string{colID, colUsername, colPassword, colIsAdmin, colRoles, colEmail}
	userListColumns = []string{colID, colUsername, colIsAdmin, colRoles, colEmail}
)

// roleFilter returns the WHERE predicate restricting records to filter.
// A nil result means no restriction. An empty category list renders as
// "(1=0)" and matches nothing.
func roleFilter(filter models.RecordFilter) sq.Sqlizer {
	if filter.All {
		return nil
	}

	categories := filter.Categories
	if categories == nil {
		categories = []string{}
	}
	return sq.Eq{colCategoria: categories}
}

func buildListRecordsQuery(b sq.StatementBuilderType, filter models.RecordFilter) (string, []any, error) {
	query := b.Select(recordColumns...).From(recordsTable)
	if pred := roleFilter(filter); pred != nil {
		query = query.Where(pred)
	}
	return query.OrderBy(colID).ToSql()
}

func buildGetRecordQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{colID: id}).
		ToSql()
}

func buildInsertRecordQuery(b sq.StatementBuilderType, record models.Record) (string, []any, error) {
	return b.Insert(recordsTable).
		Columns(colCategoria, colNombre, colDescripcion, colLink, colVigencia).
		Values(record.Categoria, record.Nombre, record.Descripcion, record.Link, record.Vigencia).
		Suffix("RETURNING " + colID).
		ToSql()
}

func buildUpdateRecordQuery(b sq.StatementBuilderType, record models.Record) (string, []any, error) {
	return b.Update(recordsTable).
		Set(colCategoria, record.Categoria).
		Set(colNombre, record.Nombre).
		Set(colDescripcion, record.Descripcion).
		Set(colLink, record.Link).
		Set(colVigencia, record.Vigencia).
		Where(sq.Eq{colID: record.ID}).
		ToSql()
}

func buildDeleteRecordQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(recordsTable).Where(sq.Eq{colID: id}).ToSql()
}

func buildCategoriesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(colCategoria).
		Distinct().
		From(recordsTable).
		OrderBy(colCategoria).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(colUsername, colPassword, colIsAdmin, colRoles, colEmail).
		Values(user.Username, user.Password, user.IsAdmin, user.Roles, user.Email).
		Suffix("RETURNING " + colID).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).From(usersTable).Where(where).ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userListColumns...).From(usersTable).OrderBy(colID).ToSql()
}

// buildUpdateUserQuery sets the password column only when update carries one.
func buildUpdateUserQuery(b sq.StatementBuilderType, update models.UserUpdate) (string, []any, error) {
	query := b.Update(usersTable).Set(colUsername, update.Username)
	if update.Password != nil {
		query = query.Set(colPassword, *update.Password)
	}
	return query.
		Set(colIsAdmin, update.IsAdmin).
		Where(sq.Eq{colID: update.UserID}).
		ToSql()
}

func buildUpdateRolesQuery(b sq.StatementBuilderType, userID int64, roles string) (string, []any, error) {
	return b.Update(usersTable).
		Set(colRoles, roles).
		Where(sq.Eq{colID: userID}).
		ToSql()
}

func buildDeleteAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(usersTable).ToSql()
}
