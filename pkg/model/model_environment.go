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

package model

// Environment is the container of all identifiable AAS objects in one
// document, as used by the official JSON and XML serializations.
type Environment struct {
	AssetAdministrationShells []*AssetAdministrationShell `json:"assetAdministrationShells,omitempty"`

	Submodels []*Submodel `json:"submodels,omitempty"`

	ConceptDescriptions []*ConceptDescription `json:"conceptDescriptions,omitempty"`
}

// Identifiables returns all identifiables of the environment in document
// order: shells first, then submodels, then concept descriptions.
func (e *Environment) Identifiables() []Identifiable {
	out := make([]Identifiable, 0, len(e.AssetAdministrationShells)+len(e.Submodels)+len(e.ConceptDescriptions))
	for _, aas := range e.AssetAdministrationShells {
		out = append(out, aas)
	}
	for _, sm := range e.Submodels {
		out = append(out, sm)
	}
	for _, cd := range e.ConceptDescriptions {
		out = append(out, cd)
	}
	return out
}

// Add sorts the identifiable into the matching top-level list of the
// environment.
func (e *Environment) Add(obj Identifiable) {
	switch v := obj.(type) {
	case *AssetAdministrationShell:
		e.AssetAdministrationShells = append(e.AssetAdministrationShells, v)
	case *Submodel:
		e.Submodels = append(e.Submodels, v)
	case *ConceptDescription:
		e.ConceptDescriptions = append(e.ConceptDescriptions, v)
	}
}

// AssertEnvironmentRequired checks if the required fields are not zero-ed
func AssertEnvironmentRequired(obj Environment) error {
	for _, aas := range obj.AssetAdministrationShells {
		if err := AssertAssetAdministrationShellRequired(*aas); err != nil {
			return err
		}
	}
	for _, sm := range obj.Submodels {
		if err := AssertSubmodelRequired(*sm); err != nil {
			return err
		}
	}
	for _, cd := range obj.ConceptDescriptions {
		if err := AssertConceptDescriptionRequired(*cd); err != nil {
			return err
		}
	}
	return nil
}
