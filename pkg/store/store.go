/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors
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

// Package store provides in-memory containers for Identifiable AAS objects
// and the Provider abstraction for looking them up by their global id.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

// ErrNotFound is returned when no object with the requested identifier (or
// idShort) exists in the consulted provider.
var ErrNotFound = errors.New("not found")

// ErrDuplicateIdentifier is returned when a different object with the same id
// is already stored.
var ErrDuplicateIdentifier = errors.New("identifiable object with same id is already stored in this store")

// Provider allows retrieving Identifiable objects by their identifier. This
// includes local object stores, database clients and AAS API clients.
type Provider interface {
	// GetIdentifiable finds an Identifiable by its identifier. It returns an
	// error wrapping ErrNotFound if no such object exists.
	GetIdentifiable(identifier string) (model.Identifiable, error)
}

// ObjectStore is a local in-memory store for Identifiable objects, backed by
// a map from identifier to object. Iteration order is insertion order. It is
// safe for concurrent use.
type ObjectStore struct {
	mu      sync.RWMutex
	backend map[string]model.Identifiable
	order   []string
}

// NewObjectStore creates an ObjectStore containing the given objects. It
// panics if two different objects share an id; use Add to handle the error.
func NewObjectStore(objects ...model.Identifiable) *ObjectStore {
	s := &ObjectStore{backend: make(map[string]model.Identifiable)}
	for _, obj := range objects {
		if err := s.Add(obj); err != nil {
			panic(err)
		}
	}
	return s
}

// GetIdentifiable implements Provider.
func (s *ObjectStore) GetIdentifiable(identifier string) (model.Identifiable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.backend[identifier]
	if !ok {
		return nil, fmt.Errorf("%q: %w", identifier, ErrNotFound)
	}
	return obj, nil
}

// Get finds an object by its identifier, with a fallback: it returns the
// default object when no object with the given identifier is stored.
func (s *ObjectStore) Get(identifier string, def model.Identifiable) model.Identifiable {
	obj, err := s.GetIdentifiable(identifier)
	if err != nil {
		return def
	}
	return obj
}

// Add stores the object under its id. Adding the same object twice is a
// no-op; adding a different object under an already used id returns an error
// wrapping ErrDuplicateIdentifier.
func (s *ObjectStore) Add(obj model.Identifiable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.backend[obj.GetID()]; ok {
		if existing == obj {
			return nil
		}
		return fmt.Errorf("id %s: %w", obj.GetID(), ErrDuplicateIdentifier)
	}
	s.backend[obj.GetID()] = obj
	s.order = append(s.order, obj.GetID())
	return nil
}

// Discard removes the object from the store. Nothing happens if the store
// holds no object, or a different object, under the same id.
func (s *ObjectStore) Discard(obj model.Identifiable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.backend[obj.GetID()]; !ok || existing != obj {
		return
	}
	delete(s.backend, obj.GetID())
	for i, id := range s.order {
		if id == obj.GetID() {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

// Update adds all objects of the given slice to the store.
func (s *ObjectStore) Update(objects []model.Identifiable) error {
	for _, obj := range objects {
		if err := s.Add(obj); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether exactly this object is stored.
func (s *ObjectStore) Contains(obj model.Identifiable) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	existing, ok := s.backend[obj.GetID()]
	return ok && existing == obj
}

// ContainsID reports whether any object with the given identifier is stored.
func (s *ObjectStore) ContainsID(identifier string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.backend[identifier]
	return ok
}

// Len returns the number of stored objects.
func (s *ObjectStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.backend)
}

// All returns the stored objects in insertion order.
func (s *ObjectStore) All() []model.Identifiable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Identifiable, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.backend[id])
	}
	return out
}

// GetReferable finds the referable with the given idShort inside the
// identifiable with the given identifier.
func (s *ObjectStore) GetReferable(identifier string, idShort string) (model.Referable, error) {
	identifiable, err := s.GetIdentifiable(identifier)
	if err != nil {
		return nil, err
	}
	if identifiable.GetIdShort() == idShort {
		return identifiable, nil
	}
	for _, referable := range model.Descend(identifiable) {
		if referable.GetIdShort() == idShort {
			return referable, nil
		}
	}
	return nil, fmt.Errorf("referable with idShort %q in %q: %w", idShort, identifier, ErrNotFound)
}

// ChildrenOfReferable returns all referables below the referable with the
// given idShort inside the identifiable with the given identifier.
func (s *ObjectStore) ChildrenOfReferable(identifier string, idShort string) ([]model.Referable, error) {
	referable, err := s.GetReferable(identifier, idShort)
	if err != nil {
		return nil, err
	}
	return model.Descend(referable), nil
}

// ParentOfReferable finds the referable that directly contains a child with
// the given idShort, searching across all stored identifiables.
func (s *ObjectStore) ParentOfReferable(idShort string) (model.Referable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		identifiable := s.backend[id]
		candidates := append([]model.Referable{identifiable}, model.Descend(identifiable)...)
		for _, referable := range candidates {
			for _, child := range referable.DescendOnce() {
				if child.GetIdShort() == idShort {
					return referable, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("parent of referable with idShort %q: %w", idShort, ErrNotFound)
}

// Multiplexer combines multiple Providers into a single one to allow
// retrieving Identifiable objects from different sources.
type Multiplexer struct {
	Providers []Provider
}

// NewMultiplexer creates a Multiplexer consulting the given providers in
// order.
func NewMultiplexer(providers ...Provider) *Multiplexer {
	return &Multiplexer{Providers: providers}
}

// GetIdentifiable implements Provider by querying each provider in turn.
func (m *Multiplexer) GetIdentifiable(identifier string) (model.Identifiable, error) {
	for _, provider := range m.Providers {
		obj, err := provider.GetIdentifiable(identifier)
		if err == nil {
			return obj, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("identifier could not be found in any of the %d consulted providers: %w",
		len(m.Providers), ErrNotFound)
}
