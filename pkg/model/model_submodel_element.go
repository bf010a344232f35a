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

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// SubmodelElement is the common interface of all submodel element kinds.
// Concrete types are selected via the modelType JSON discriminator, see
// UnmarshalSubmodelElement.
type SubmodelElement interface {
	Referable
	Qualifiable

	GetSemanticID() *Reference
}

// ElementContainer is implemented by submodel elements that hold child
// submodel elements addressable by idShort path.
type ElementContainer interface {
	ChildElements() []SubmodelElement
	SetChildElements([]SubmodelElement)
}

// UnmarshalSubmodelElement creates the appropriate concrete SubmodelElement
// type from JSON
func UnmarshalSubmodelElement(data []byte) (SubmodelElement, error) {
	// First, determine the modelType
	var raw struct {
		ModelType string `json:"modelType"`
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to determine modelType: %w", err)
	}

	switch raw.ModelType {
	case "Property":
		var prop Property
		if err := json.Unmarshal(data, &prop); err != nil {
			return nil, fmt.Errorf("failed to unmarshal Property: %w", err)
		}
		return &prop, nil
	case "MultiLanguageProperty":
		var mlp MultiLanguageProperty
		if err := json.Unmarshal(data, &mlp); err != nil {
			return nil, fmt.Errorf("failed to unmarshal MultiLanguageProperty: %w", err)
		}
		return &mlp, nil
	case "Range":
		var r Range
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("failed to unmarshal Range: %w", err)
		}
		return &r, nil
	case "File":
		var f File
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to unmarshal File: %w", err)
		}
		return &f, nil
	case "Blob":
		var b Blob
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("failed to unmarshal Blob: %w", err)
		}
		return &b, nil
	case "ReferenceElement":
		var re ReferenceElement
		if err := json.Unmarshal(data, &re); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ReferenceElement: %w", err)
		}
		return &re, nil
	case "RelationshipElement":
		var re RelationshipElement
		if err := json.Unmarshal(data, &re); err != nil {
			return nil, fmt.Errorf("failed to unmarshal RelationshipElement: %w", err)
		}
		return &re, nil
	case "AnnotatedRelationshipElement":
		var are AnnotatedRelationshipElement
		if err := json.Unmarshal(data, &are); err != nil {
			return nil, fmt.Errorf("failed to unmarshal AnnotatedRelationshipElement: %w", err)
		}
		return &are, nil
	case "SubmodelElementCollection":
		var sec SubmodelElementCollection
		if err := json.Unmarshal(data, &sec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal SubmodelElementCollection: %w", err)
		}
		return &sec, nil
	case "SubmodelElementList":
		var sel SubmodelElementList
		if err := json.Unmarshal(data, &sel); err != nil {
			return nil, fmt.Errorf("failed to unmarshal SubmodelElementList: %w", err)
		}
		return &sel, nil
	case "Entity":
		var e Entity
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal Entity: %w", err)
		}
		return &e, nil
	case "Operation":
		var op Operation
		if err := json.Unmarshal(data, &op); err != nil {
			return nil, fmt.Errorf("failed to unmarshal Operation: %w", err)
		}
		return &op, nil
	case "Capability":
		var c Capability
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal Capability: %w", err)
		}
		return &c, nil
	case "BasicEventElement":
		var bee BasicEventElement
		if err := json.Unmarshal(data, &bee); err != nil {
			return nil, fmt.Errorf("failed to unmarshal BasicEventElement: %w", err)
		}
		return &bee, nil
	case "":
		return nil, fmt.Errorf("submodel element is missing the modelType discriminator")
	default:
		return nil, fmt.Errorf("unknown submodel element modelType '%s'", raw.ModelType)
	}
}

// unmarshalElementSlice decodes a slice of raw JSON objects into concrete
// submodel elements.
func unmarshalElementSlice(raws []json.RawMessage) ([]SubmodelElement, error) {
	if raws == nil {
		return nil, nil
	}
	elements := make([]SubmodelElement, len(raws))
	for i, raw := range raws {
		elem, err := UnmarshalSubmodelElement(raw)
		if err != nil {
			return nil, err
		}
		elements[i] = elem
	}
	return elements, nil
}

// AssertSubmodelElementRequired checks the required fields of any concrete
// submodel element kind.
func AssertSubmodelElementRequired(obj SubmodelElement) error {
	if IsZeroValue(obj.GetModelType()) {
		return &RequiredError{Field: "modelType"}
	}
	switch el := obj.(type) {
	case *Property:
		return AssertPropertyRequired(*el)
	case *MultiLanguageProperty:
		return AssertMultiLanguagePropertyRequired(*el)
	case *Range:
		return AssertRangeRequired(*el)
	case *Blob:
		return AssertBlobRequired(*el)
	case *File:
		return AssertFileRequired(*el)
	case *ReferenceElement:
		return AssertReferenceElementRequired(*el)
	case *RelationshipElement:
		return AssertRelationshipElementRequired(*el)
	case *AnnotatedRelationshipElement:
		return AssertAnnotatedRelationshipElementRequired(*el)
	case *SubmodelElementCollection:
		return AssertSubmodelElementCollectionRequired(*el)
	case *SubmodelElementList:
		return AssertSubmodelElementListRequired(*el)
	case *Entity:
		return AssertEntityRequired(*el)
	case *Operation:
		return AssertOperationRequired(*el)
	case *Capability:
		return AssertCapabilityRequired(*el)
	case *BasicEventElement:
		return AssertBasicEventElementRequired(*el)
	}
	return nil
}

// AssertSubmodelElementConstraints checks if the values of any concrete
// submodel element kind respect the defined constraints, including its
// semantic id, its qualifiers and all transitively contained elements.
func AssertSubmodelElementConstraints(obj SubmodelElement) error {
	if ref := obj.GetSemanticID(); ref != nil {
		if err := AssertReferenceConstraints(*ref); err != nil {
			return err
		}
	}
	for _, qualifier := range obj.GetQualifiers() {
		if err := AssertQualifierConstraints(qualifier); err != nil {
			return err
		}
	}

	var err error
	switch el := obj.(type) {
	case *Property:
		err = AssertPropertyConstraints(*el)
	case *MultiLanguageProperty:
		err = AssertMultiLanguagePropertyConstraints(*el)
	case *Range:
		err = AssertRangeConstraints(*el)
	case *Blob:
		err = AssertBlobConstraints(*el)
	case *File:
		err = AssertFileConstraints(*el)
	case *ReferenceElement:
		err = AssertReferenceElementConstraints(*el)
	case *RelationshipElement:
		err = AssertRelationshipElementConstraints(*el)
	case *AnnotatedRelationshipElement:
		if err = AssertReferenceConstraints(el.First); err == nil {
			err = AssertReferenceConstraints(el.Second)
		}
	case *SubmodelElementList:
		err = AssertSubmodelElementListConstraints(*el)
	case *Entity:
		err = AssertEntityConstraints(*el)
	case *Operation:
		for _, variables := range [][]OperationVariable{el.InputVariables, el.OutputVariables, el.InoutputVariables} {
			for _, v := range variables {
				if v.Value == nil {
					continue
				}
				if err = AssertSubmodelElementConstraints(v.Value); err != nil {
					return err
				}
			}
		}
	case *Capability:
		err = AssertCapabilityConstraints(*el)
	case *BasicEventElement:
		err = AssertBasicEventElementConstraints(*el)
	}
	if err != nil {
		return err
	}

	if container, ok := obj.(ElementContainer); ok {
		for _, child := range container.ChildElements() {
			if err := AssertSubmodelElementConstraints(child); err != nil {
				return err
			}
		}
	}
	return nil
}
