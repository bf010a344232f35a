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

// AssetAdministrationShell struct representing an Asset Administration Shell.
type AssetAdministrationShell struct {
	Extensions []Extension `json:"extensions,omitempty"`

	Category string `json:"category,omitempty"`

	//nolint:all
	IdShort string `json:"idShort,omitempty"`

	DisplayName []LangStringNameType `json:"displayName,omitempty"`

	Description []LangStringTextType `json:"description,omitempty"`

	ModelType string `json:"modelType"`

	Administration *AdministrativeInformation `json:"administration,omitempty"`

	ID string `json:"id"`

	EmbeddedDataSpecifications []EmbeddedDataSpecification `json:"embeddedDataSpecifications,omitempty"`

	DerivedFrom *Reference `json:"derivedFrom,omitempty"`

	AssetInformation AssetInformation `json:"assetInformation"`

	Submodels []Reference `json:"submodels,omitempty"`
}

// NewAssetAdministrationShell creates a new AssetAdministrationShell instance
func NewAssetAdministrationShell(id string, assetInformation AssetInformation) *AssetAdministrationShell {
	return &AssetAdministrationShell{
		ID:               id,
		AssetInformation: assetInformation,
		ModelType:        "AssetAdministrationShell",
	}
}

//nolint:all
func (a *AssetAdministrationShell) GetIdShort() string {
	return a.IdShort
}

//nolint:all
func (a *AssetAdministrationShell) GetModelType() string {
	return a.ModelType
}

//nolint:all
func (a *AssetAdministrationShell) GetID() string {
	return a.ID
}

// DescendOnce returns the direct referable children. An Asset Administration
// Shell only references its submodels, it does not contain them.
func (a *AssetAdministrationShell) DescendOnce() []Referable {
	return nil
}

// HasSubmodelReference reports whether the shell already holds a reference
// equal to ref.
func (a *AssetAdministrationShell) HasSubmodelReference(ref Reference) bool {
	for _, existing := range a.Submodels {
		if existing.Equal(ref) {
			return true
		}
	}
	return false
}

// RemoveSubmodelReference removes the submodel reference equal to ref and
// reports whether one was removed.
func (a *AssetAdministrationShell) RemoveSubmodelReference(ref Reference) bool {
	for i, existing := range a.Submodels {
		if existing.Equal(ref) {
			a.Submodels = append(a.Submodels[:i:i], a.Submodels[i+1:]...)
			return true
		}
	}
	return false
}

// AssertAssetAdministrationShellRequired checks if the required fields are not zero-ed
func AssertAssetAdministrationShellRequired(obj AssetAdministrationShell) error {
	elements := map[string]interface{}{
		"modelType": obj.ModelType,
		"id":        obj.ID,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	if err := AssertAssetInformationRequired(obj.AssetInformation); err != nil {
		return err
	}
	for _, el := range obj.Submodels {
		if err := AssertReferenceRequired(el); err != nil {
			return err
		}
	}
	return nil
}

// AssertAssetAdministrationShellConstraints checks if the values respects the defined constraints
func AssertAssetAdministrationShellConstraints(obj AssetAdministrationShell) error {
	if err := AssertAssetInformationConstraints(obj.AssetInformation); err != nil {
		return err
	}
	if obj.Administration != nil {
		if err := AssertAdministrativeInformationConstraints(*obj.Administration); err != nil {
			return err
		}
	}
	for _, el := range obj.Submodels {
		if err := AssertReferenceConstraints(el); err != nil {
			return err
		}
	}
	return nil
}
