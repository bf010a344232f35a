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

// Package jsonization reads and writes AAS environments in the official JSON
// format according to 'Details of the Asset Administration Shell', chapter 5.5.
package jsonization

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/rwth-iat/basyx-go-framework/pkg/model"
	"github.com/rwth-iat/basyx-go-framework/pkg/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReadOptions control how identifiers that are already present are handled
// while reading a document into an object store.
type ReadOptions struct {
	// ReplaceExisting replaces existing objects with the same identifier in
	// the object store.
	ReplaceExisting bool

	// IgnoreExisting keeps existing objects and skips the parsed object
	// instead of returning an error. Ignored if ReplaceExisting is set.
	IgnoreExisting bool
}

// ReadEnvironmentInto reads an AAS JSON document into the given object store
// and returns the identifiers that were added, in document order.
//
// Duplicate identifiers within the document are always an error. For
// identifiers that already exist in the store the behavior is controlled by
// opts.
func ReadEnvironmentInto(objectStore *store.ObjectStore, r io.Reader, opts ReadOptions) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var env model.Environment
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &model.ParsingError{Err: err}
	}
	if err := checkListModelTypes(&env); err != nil {
		return nil, err
	}
	if err := model.AssertEnvironmentRequired(env); err != nil {
		return nil, err
	}

	return addToStore(objectStore, env.Identifiables(), opts)
}

// ReadEnvironment reads an AAS JSON document into a fresh object store.
func ReadEnvironment(r io.Reader, opts ReadOptions) (*store.ObjectStore, error) {
	objectStore := store.NewObjectStore()
	if _, err := ReadEnvironmentInto(objectStore, r, opts); err != nil {
		return nil, err
	}
	return objectStore, nil
}

// ReadEnvironmentFile reads the AAS JSON file at the given path into a fresh
// object store.
func ReadEnvironmentFile(path string, opts ReadOptions) (*store.ObjectStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadEnvironment(f, opts)
}

// EnvironmentFromObjects sorts the identifiables into the three top-level
// lists of an Environment, preserving their order.
func EnvironmentFromObjects(objects []model.Identifiable) *model.Environment {
	env := &model.Environment{}
	for _, obj := range objects {
		env.Add(obj)
	}
	return env
}

// WriteEnvironment writes all objects of the store as an AAS JSON document.
func WriteEnvironment(w io.Writer, objectStore *store.ObjectStore) error {
	env := EnvironmentFromObjects(objectStore.All())
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteEnvironmentFile writes all objects of the store to an AAS JSON file at
// the given path.
func WriteEnvironmentFile(path string, objectStore *store.ObjectStore) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteEnvironment(f, objectStore); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// checkListModelTypes rejects objects serialized into the wrong top-level
// list, e.g. an AssetAdministrationShell inside "submodels".
func checkListModelTypes(env *model.Environment) error {
	for _, aas := range env.AssetAdministrationShells {
		if aas.ModelType != "AssetAdministrationShell" {
			return &model.ParsingError{Err: fmt.Errorf(
				"object of modelType %s in list assetAdministrationShells", aas.ModelType)}
		}
	}
	for _, sm := range env.Submodels {
		if sm.ModelType != "Submodel" {
			return &model.ParsingError{Err: fmt.Errorf(
				"object of modelType %s in list submodels", sm.ModelType)}
		}
	}
	for _, cd := range env.ConceptDescriptions {
		if cd.ModelType != "ConceptDescription" {
			return &model.ParsingError{Err: fmt.Errorf(
				"object of modelType %s in list conceptDescriptions", cd.ModelType)}
		}
	}
	return nil
}

// addToStore inserts the parsed identifiables into the store, applying the
// duplicate handling of opts. The returned identifiers are those actually
// added, in document order.
func addToStore(objectStore *store.ObjectStore, objects []model.Identifiable, opts ReadOptions) ([]string, error) {
	added := make([]string, 0, len(objects))
	seen := make(map[string]struct{}, len(objects))
	for _, obj := range objects {
		if _, ok := seen[obj.GetID()]; ok {
			return nil, fmt.Errorf("identifier %s occurs twice in the document: %w",
				obj.GetID(), store.ErrDuplicateIdentifier)
		}
		if existing := objectStore.Get(obj.GetID(), nil); existing != nil {
			if !opts.ReplaceExisting {
				if !opts.IgnoreExisting {
					return nil, fmt.Errorf("object with identifier %s already exists in the object store: %w",
						obj.GetID(), store.ErrDuplicateIdentifier)
				}
				continue
			}
			objectStore.Discard(existing)
		}
		if err := objectStore.Add(obj); err != nil {
			return nil, err
		}
		added = append(added, obj.GetID())
		seen[obj.GetID()] = struct{}{}
	}
	return added, nil
}
