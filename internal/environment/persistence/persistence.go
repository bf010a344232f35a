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

// Package persistence implements the storage layer of the environment
// service. It provides backends for keeping Asset Administration Shells,
// Submodels and Concept Descriptions in memory, in PostgreSQL or in MongoDB.
// All backends share the same pagination contract: results are ordered by
// identifier and a non-empty cursor names the identifier the next page
// starts at.
package persistence

import (
	"context"

	jsoniter "github.com/json-iterator/go"

	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultLimit is applied when a listing request does not carry a limit.
const DefaultLimit = 100

// Backend is the storage contract of the environment service. Errors follow
// the common taxonomy: not-found, conflict and bad-request errors are built
// with the constructors in internal/common so the API layer can map them to
// status codes.
type Backend interface {
	ListShells(ctx context.Context, idShort string, limit int32, cursor string) ([]*model.AssetAdministrationShell, string, error)
	GetShell(ctx context.Context, id string) (*model.AssetAdministrationShell, error)
	CreateShell(ctx context.Context, shell *model.AssetAdministrationShell) error
	UpdateShell(ctx context.Context, shell *model.AssetAdministrationShell) error
	DeleteShell(ctx context.Context, id string) error

	ListSubmodels(ctx context.Context, idShort string, limit int32, cursor string) ([]*model.Submodel, string, error)
	GetSubmodel(ctx context.Context, id string) (*model.Submodel, error)
	CreateSubmodel(ctx context.Context, submodel *model.Submodel) error
	UpdateSubmodel(ctx context.Context, submodel *model.Submodel) error
	DeleteSubmodel(ctx context.Context, id string) error

	ListConceptDescriptions(ctx context.Context, idShort string, limit int32, cursor string) ([]*model.ConceptDescription, string, error)
	GetConceptDescription(ctx context.Context, id string) (*model.ConceptDescription, error)
	CreateConceptDescription(ctx context.Context, cd *model.ConceptDescription) error
	UpdateConceptDescription(ctx context.Context, cd *model.ConceptDescription) error
	DeleteConceptDescription(ctx context.Context, id string) error

	Close(ctx context.Context) error
}
