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
	"errors"
	"sort"

	"github.com/rwth-iat/basyx-go-framework/internal/common"
	"github.com/rwth-iat/basyx-go-framework/pkg/model"
	"github.com/rwth-iat/basyx-go-framework/pkg/store"
)

// InMemoryBackend keeps all identifiable objects in object stores. It is the
// default backend and the one used by the integration tests.
type InMemoryBackend struct {
	shells    *store.ObjectStore
	submodels *store.ObjectStore
	cds       *store.ObjectStore
}

// NewInMemoryBackend creates an empty in-memory backend.
func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{
		shells:    store.NewObjectStore(),
		submodels: store.NewObjectStore(),
		cds:       store.NewObjectStore(),
	}
}

// NewInMemoryBackendFromEnvironment creates an in-memory backend preloaded
// with the contents of an environment, for example one read from a JSON or
// XML file at startup.
func NewInMemoryBackendFromEnvironment(env *model.Environment) (*InMemoryBackend, error) {
	b := NewInMemoryBackend()
	for i := range env.AssetAdministrationShells {
		if err := b.shells.Add(env.AssetAdministrationShells[i]); err != nil {
			return nil, err
		}
	}
	for i := range env.Submodels {
		if err := b.submodels.Add(env.Submodels[i]); err != nil {
			return nil, err
		}
	}
	for i := range env.ConceptDescriptions {
		if err := b.cds.Add(env.ConceptDescriptions[i]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Stores returns the underlying object stores so the serialization endpoint
// can snapshot the full environment.
func (b *InMemoryBackend) Stores() (shells, submodels, cds *store.ObjectStore) {
	return b.shells, b.submodels, b.cds
}

func (b *InMemoryBackend) ListShells(_ context.Context, idShort string, limit int32, cursor string) ([]*model.AssetAdministrationShell, string, error) {
	page, next := paginate(b.shells, limit, cursor, idShort)
	shells := make([]*model.AssetAdministrationShell, 0, len(page))
	for _, obj := range page {
		shells = append(shells, obj.(*model.AssetAdministrationShell))
	}
	return shells, next, nil
}

func (b *InMemoryBackend) GetShell(_ context.Context, id string) (*model.AssetAdministrationShell, error) {
	obj, err := getFrom(b.shells, id)
	if err != nil {
		return nil, err
	}
	return obj.(*model.AssetAdministrationShell), nil
}

func (b *InMemoryBackend) CreateShell(_ context.Context, shell *model.AssetAdministrationShell) error {
	return createIn(b.shells, shell)
}

func (b *InMemoryBackend) UpdateShell(_ context.Context, shell *model.AssetAdministrationShell) error {
	return updateIn(b.shells, shell)
}

func (b *InMemoryBackend) DeleteShell(_ context.Context, id string) error {
	return deleteFrom(b.shells, id)
}

func (b *InMemoryBackend) ListSubmodels(_ context.Context, idShort string, limit int32, cursor string) ([]*model.Submodel, string, error) {
	page, next := paginate(b.submodels, limit, cursor, idShort)
	submodels := make([]*model.Submodel, 0, len(page))
	for _, obj := range page {
		submodels = append(submodels, obj.(*model.Submodel))
	}
	return submodels, next, nil
}

func (b *InMemoryBackend) GetSubmodel(_ context.Context, id string) (*model.Submodel, error) {
	obj, err := getFrom(b.submodels, id)
	if err != nil {
		return nil, err
	}
	return obj.(*model.Submodel), nil
}

func (b *InMemoryBackend) CreateSubmodel(_ context.Context, submodel *model.Submodel) error {
	return createIn(b.submodels, submodel)
}

func (b *InMemoryBackend) UpdateSubmodel(_ context.Context, submodel *model.Submodel) error {
	return updateIn(b.submodels, submodel)
}

func (b *InMemoryBackend) DeleteSubmodel(_ context.Context, id string) error {
	return deleteFrom(b.submodels, id)
}

func (b *InMemoryBackend) ListConceptDescriptions(_ context.Context, idShort string, limit int32, cursor string) ([]*model.ConceptDescription, string, error) {
	page, next := paginate(b.cds, limit, cursor, idShort)
	cds := make([]*model.ConceptDescription, 0, len(page))
	for _, obj := range page {
		cds = append(cds, obj.(*model.ConceptDescription))
	}
	return cds, next, nil
}

func (b *InMemoryBackend) GetConceptDescription(_ context.Context, id string) (*model.ConceptDescription, error) {
	obj, err := getFrom(b.cds, id)
	if err != nil {
		return nil, err
	}
	return obj.(*model.ConceptDescription), nil
}

func (b *InMemoryBackend) CreateConceptDescription(_ context.Context, cd *model.ConceptDescription) error {
	return createIn(b.cds, cd)
}

func (b *InMemoryBackend) UpdateConceptDescription(_ context.Context, cd *model.ConceptDescription) error {
	return updateIn(b.cds, cd)
}

func (b *InMemoryBackend) DeleteConceptDescription(_ context.Context, id string) error {
	return deleteFrom(b.cds, id)
}

func (b *InMemoryBackend) Close(_ context.Context) error {
	return nil
}

func getFrom(s *store.ObjectStore, id string) (model.Identifiable, error) {
	obj, err := s.GetIdentifiable(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, common.NewErrNotFound(id)
		}
		return nil, err
	}
	return obj, nil
}

func createIn(s *store.ObjectStore, obj model.Identifiable) error {
	if s.ContainsID(obj.GetID()) {
		return common.NewErrConflict(obj.GetID())
	}
	return s.Add(obj)
}

func updateIn(s *store.ObjectStore, obj model.Identifiable) error {
	existing := s.Get(obj.GetID(), nil)
	if existing == nil {
		return common.NewErrNotFound(obj.GetID())
	}
	s.Discard(existing)
	return s.Add(obj)
}

func deleteFrom(s *store.ObjectStore, id string) error {
	existing := s.Get(id, nil)
	if existing == nil {
		return common.NewErrNotFound(id)
	}
	s.Discard(existing)
	return nil
}

// paginate orders the store contents by identifier and returns the page
// selected by limit and cursor, peeking one element ahead to decide whether
// a next cursor exists.
func paginate(s *store.ObjectStore, limit int32, cursor string, idShort string) ([]model.Identifiable, string) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	all := s.All()
	sort.Slice(all, func(i, j int) bool { return all[i].GetID() < all[j].GetID() })

	page := make([]model.Identifiable, 0, limit)
	nextCursor := ""
	for _, obj := range all {
		if cursor != "" && obj.GetID() < cursor {
			continue
		}
		if idShort != "" && obj.GetIdShort() != idShort {
			continue
		}
		if int32(len(page)) == limit {
			nextCursor = obj.GetID()
			break
		}
		page = append(page, obj)
	}
	return page, nextCursor
}
