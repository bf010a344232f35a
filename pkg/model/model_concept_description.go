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

// ConceptDescription describes the semantics of an element, typically by
// embedding a data specification template.
type ConceptDescription struct {
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

	IsCaseOf []Reference `json:"isCaseOf,omitempty"`
}

// NewConceptDescription creates a new ConceptDescription instance
func NewConceptDescription(id string) *ConceptDescription {
	return &ConceptDescription{
		ID:        id,
		ModelType: "ConceptDescription",
	}
}

//nolint:all
func (c *ConceptDescription) GetIdShort() string {
	return c.IdShort
}

//nolint:all
func (c *ConceptDescription) GetModelType() string {
	return c.ModelType
}

//nolint:all
func (c *ConceptDescription) GetID() string {
	return c.ID
}

// DescendOnce returns the direct referable children of the element.
func (c *ConceptDescription) DescendOnce() []Referable {
	return nil
}

// AssertConceptDescriptionRequired checks if the required fields are not zero-ed
func AssertConceptDescriptionRequired(obj ConceptDescription) error {
	elements := map[string]interface{}{
		"modelType": obj.ModelType,
		"id":        obj.ID,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	for _, el := range obj.IsCaseOf {
		if err := AssertReferenceRequired(el); err != nil {
			return err
		}
	}
	return nil
}

// AssertConceptDescriptionConstraints checks if the values respects the defined constraints
func AssertConceptDescriptionConstraints(obj ConceptDescription) error {
	if obj.Administration != nil {
		if err := AssertAdministrativeInformationConstraints(*obj.Administration); err != nil {
			return err
		}
	}
	for _, el := range obj.IsCaseOf {
		if err := AssertReferenceConstraints(el); err != nil {
			return err
		}
	}
	return nil
}
