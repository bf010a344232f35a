/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // Postgres dialect for goqu
	_ "github.com/lib/pq"                               // PostgreSQL driver

	"github.com/rwth-iat/basyx-go-framework/internal/common"
	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

const (
	tableShell              = "shell"
	tableSubmodel           = "submodel"
	tableConceptDescription = "concept_description"
)

// PostgreSQLBackend stores each identifiable object as a JSON document in a
// table per object kind (id, id_short, data).
type PostgreSQLBackend struct {
	db *sql.DB
}

// NewPostgreSQLBackend connects to the database, optionally applies the
// schema file and configures the connection pool.
func NewPostgreSQLBackend(dsn string, maxOpenConnections int, maxIdleConnections int, connMaxLifetimeMinutes int, databaseSchema string) (*PostgreSQLBackend, error) {
	db, err := common.InitializeDatabase(dsn, databaseSchema)
	if err != nil {
		return nil, err
	}
	if maxOpenConnections > 0 {
		db.SetMaxOpenConns(maxOpenConnections)
	}
	if maxIdleConnections > 0 {
		db.SetMaxIdleConns(maxIdleConnections)
	}
	if connMaxLifetimeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(connMaxLifetimeMinutes) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		_, _ = fmt.Printf("ENVREPO-TESTDBCON-FAIL Failed to connect to database: %v\n", err)
		return nil, err
	}

	return &PostgreSQLBackend{db: db}, nil
}

func (b *PostgreSQLBackend) ListShells(ctx context.Context, idShort string, limit int32, cursor string) ([]*model.AssetAdministrationShell, string, error) {
	rows, next, err := b.list(ctx, tableShell, idShort, limit, cursor)
	if err != nil {
		return nil, "", err
	}
	shells := make([]*model.AssetAdministrationShell, 0, len(rows))
	for _, data := range rows {
		shell := &model.AssetAdministrationShell{}
		if err := json.Unmarshal([]byte(data), shell); err != nil {
			return nil, "", fmt.Errorf("ENVREPO-LSAAS-UNMARSHAL failed to unmarshal JSON data: %w", err)
		}
		shells = append(shells, shell)
	}
	return shells, next, nil
}

func (b *PostgreSQLBackend) GetShell(ctx context.Context, id string) (*model.AssetAdministrationShell, error) {
	data, err := b.get(ctx, tableShell, id)
	if err != nil {
		return nil, err
	}
	shell := &model.AssetAdministrationShell{}
	if err := json.Unmarshal([]byte(data), shell); err != nil {
		return nil, fmt.Errorf("ENVREPO-GSAAS-UNMARSHAL failed to unmarshal JSON data: %w", err)
	}
	return shell, nil
}

func (b *PostgreSQLBackend) CreateShell(ctx context.Context, shell *model.AssetAdministrationShell) error {
	return b.create(ctx, tableShell, shell.ID, shell.IdShort, shell)
}

func (b *PostgreSQLBackend) UpdateShell(ctx context.Context, shell *model.AssetAdministrationShell) error {
	return b.update(ctx, tableShell, shell.ID, shell.IdShort, shell)
}

func (b *PostgreSQLBackend) DeleteShell(ctx context.Context, id string) error {
	return b.delete(ctx, tableShell, id)
}

func (b *PostgreSQLBackend) ListSubmodels(ctx context.Context, idShort string, limit int32, cursor string) ([]*model.Submodel, string, error) {
	rows, next, err := b.list(ctx, tableSubmodel, idShort, limit, cursor)
	if err != nil {
		return nil, "", err
	}
	submodels := make([]*model.Submodel, 0, len(rows))
	for _, data := range rows {
		sm := &model.Submodel{}
		if err := json.Unmarshal([]byte(data), sm); err != nil {
			return nil, "", fmt.Errorf("ENVREPO-LSSM-UNMARSHAL failed to unmarshal JSON data: %w", err)
		}
		submodels = append(submodels, sm)
	}
	return submodels, next, nil
}

func (b *PostgreSQLBackend) GetSubmodel(ctx context.Context, id string) (*model.Submodel, error) {
	data, err := b.get(ctx, tableSubmodel, id)
	if err != nil {
		return nil, err
	}
	sm := &model.Submodel{}
	if err := json.Unmarshal([]byte(data), sm); err != nil {
		return nil, fmt.Errorf("ENVREPO-GSSM-UNMARSHAL failed to unmarshal JSON data: %w", err)
	}
	return sm, nil
}

func (b *PostgreSQLBackend) CreateSubmodel(ctx context.Context, submodel *model.Submodel) error {
	return b.create(ctx, tableSubmodel, submodel.ID, submodel.IdShort, submodel)
}

func (b *PostgreSQLBackend) UpdateSubmodel(ctx context.Context, submodel *model.Submodel) error {
	return b.update(ctx, tableSubmodel, submodel.ID, submodel.IdShort, submodel)
}

func (b *PostgreSQLBackend) DeleteSubmodel(ctx context.Context, id string) error {
	return b.delete(ctx, tableSubmodel, id)
}

func (b *PostgreSQLBackend) ListConceptDescriptions(ctx context.Context, idShort string, limit int32, cursor string) ([]*model.ConceptDescription, string, error) {
	rows, next, err := b.list(ctx, tableConceptDescription, idShort, limit, cursor)
	if err != nil {
		return nil, "", err
	}
	cds := make([]*model.ConceptDescription, 0, len(rows))
	for _, data := range rows {
		cd := &model.ConceptDescription{}
		if err := json.Unmarshal([]byte(data), cd); err != nil {
			return nil, "", fmt.Errorf("ENVREPO-LSCD-UNMARSHAL failed to unmarshal JSON data: %w", err)
		}
		cds = append(cds, cd)
	}
	return cds, next, nil
}

func (b *PostgreSQLBackend) GetConceptDescription(ctx context.Context, id string) (*model.ConceptDescription, error) {
	data, err := b.get(ctx, tableConceptDescription, id)
	if err != nil {
		return nil, err
	}
	cd := &model.ConceptDescription{}
	if err := json.Unmarshal([]byte(data), cd); err != nil {
		return nil, fmt.Errorf("ENVREPO-GSCD-UNMARSHAL failed to unmarshal JSON data: %w", err)
	}
	return cd, nil
}

func (b *PostgreSQLBackend) CreateConceptDescription(ctx context.Context, cd *model.ConceptDescription) error {
	return b.create(ctx, tableConceptDescription, cd.ID, cd.IdShort, cd)
}

func (b *PostgreSQLBackend) UpdateConceptDescription(ctx context.Context, cd *model.ConceptDescription) error {
	return b.update(ctx, tableConceptDescription, cd.ID, cd.IdShort, cd)
}

func (b *PostgreSQLBackend) DeleteConceptDescription(ctx context.Context, id string) error {
	return b.delete(ctx, tableConceptDescription, id)
}

func (b *PostgreSQLBackend) Close(_ context.Context) error {
	return b.db.Close()
}

func (b *PostgreSQLBackend) exists(ctx context.Context, table string, id string) (bool, error) {
	query, args, err := goqu.From(table).
		Select(goqu.L("1")).
		Where(goqu.Ex{"id": id}).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("ENVREPO-EXIST-BUILDSQL failed to build SQL query: %w", err)
	}

	rows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("ENVREPO-EXIST-EXEC failed to execute SQL query: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			_, _ = fmt.Printf("ENVREPO-EXIST-CLOSEROWS failed to close rows: %v\n", closeErr)
		}
	}()

	return rows.Next(), nil
}

func (b *PostgreSQLBackend) create(ctx context.Context, table string, id string, idShort string, obj any) error {
	exists, err := b.exists(ctx, table, id)
	if err != nil {
		return common.NewInternalServerError("Failed to check object existence ENVREPO-CREATE-ERREXIST")
	}
	if exists {
		return common.NewErrConflict("Object with the given ID already exists - use PUT for replacement")
	}

	bytes, err := json.Marshal(obj)
	if err != nil {
		return common.NewErrBadRequest("Failed to jsonify object ENVREPO-CREATE-TOJSONSTRING")
	}

	goquQuery, args, err := goqu.Insert(table).Rows(
		goqu.Record{
			"id":       id,
			"id_short": idShort,
			"data":     string(bytes),
		},
	).ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build SQL query: %w", err)
	}

	_, err = b.db.ExecContext(ctx, goquQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute SQL query: %w", err)
	}

	return nil
}

func (b *PostgreSQLBackend) update(ctx context.Context, table string, id string, idShort string, obj any) error {
	exists, err := b.exists(ctx, table, id)
	if err != nil {
		return common.NewInternalServerError("Failed to check object existence ENVREPO-UPDATE-ERREXIST")
	}
	if !exists {
		return common.NewErrNotFound(id)
	}

	bytes, err := json.Marshal(obj)
	if err != nil {
		return common.NewErrBadRequest("Failed to jsonify object ENVREPO-UPDATE-TOJSONSTRING")
	}

	goquQuery, args, err := goqu.Update(table).
		Set(goqu.Record{
			"id_short": idShort,
			"data":     string(bytes),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build SQL query: %w", err)
	}

	_, err = b.db.ExecContext(ctx, goquQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute SQL query: %w", err)
	}

	return nil
}

func (b *PostgreSQLBackend) get(ctx context.Context, table string, id string) (string, error) {
	var data string
	query, args, err := goqu.From(table).
		Select("data").
		Where(goqu.Ex{"id": id}).
		Limit(1).
		ToSQL()
	if err != nil {
		return "", fmt.Errorf("failed to build SQL query: %w", err)
	}

	err = b.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if err == sql.ErrNoRows {
		return "", common.NewErrNotFound(id)
	}
	if err != nil {
		return "", fmt.Errorf("failed to execute SQL query: %w", err)
	}

	return data, nil
}

func (b *PostgreSQLBackend) delete(ctx context.Context, table string, id string) error {
	exists, err := b.exists(ctx, table, id)
	if err != nil {
		return common.NewInternalServerError("Failed to check object existence ENVREPO-DELETE-ERREXIST")
	}
	if !exists {
		return common.NewErrNotFound(id)
	}

	delQuery, args, err := goqu.Delete(table).Where(
		goqu.Ex{"id": id},
	).ToSQL()
	if err != nil {
		return err
	}
	_, err = b.db.ExecContext(ctx, delQuery, args...)
	return err
}

// list pages through a table ordered by identifier, peeking one row past the
// limit to decide whether a next cursor exists.
func (b *PostgreSQLBackend) list(ctx context.Context, table string, idShort string, limit int32, cursor string) ([]string, string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	peekLimit := uint(limit) + 1
	var documents []string
	nextCursor := ""

	query := goqu.From(table).
		Select(goqu.C("id"), goqu.C("data")).
		Order(goqu.I("id").Asc()).
		Limit(peekLimit)

	if strings.TrimSpace(idShort) != "" {
		query = query.Where(goqu.Ex{"id_short": strings.TrimSpace(idShort)})
	}

	if strings.TrimSpace(cursor) != "" {
		query = query.Where(goqu.C("id").Gte(strings.TrimSpace(cursor)))
	}

	sqlQuery, args, err := query.ToSQL()
	if err != nil {
		return nil, "", fmt.Errorf("ENVREPO-LIST-BUILDSQL failed to build SQL query: %w", err)
	}

	rows, err := b.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, "", fmt.Errorf("ENVREPO-LIST-EXECQUERY failed to execute SQL query: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			_, _ = fmt.Printf("ENVREPO-LIST-CLOSEROWS failed to close rows: %v\n", closeErr)
		}
	}()

	readCount := int32(0)

	for rows.Next() {
		var id string
		var data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, "", fmt.Errorf("ENVREPO-LIST-SCANROW failed to scan row: %w", err)
		}

		if readCount == limit {
			nextCursor = id
			break
		}

		documents = append(documents, data)
		readCount++
	}

	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("ENVREPO-LIST-ROWSERR error iterating over rows: %w", err)
	}

	return documents, nextCursor, nil
}
