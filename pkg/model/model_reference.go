package model

// Reference is a chain of keys pointing either to a model element
// (ModelReference) or to an external resource (ExternalReference).
type Reference struct {
	Type ReferenceTypes `json:"type"`

	Keys []Key `json:"keys"`

	//nolint:all
	ReferredSemanticId *Reference `json:"referredSemanticId,omitempty"`
}

// NewModelReference creates a ModelReference from the given keys.
func NewModelReference(keys ...Key) *Reference {
	return &Reference{
		Type: REFERENCETYPES_MODEL_REFERENCE,
		Keys: keys,
	}
}

// NewSubmodelReference creates a ModelReference to the submodel with the
// given identifier.
func NewSubmodelReference(submodelID string) *Reference {
	return NewModelReference(Key{Type: KEYTYPES_SUBMODEL, Value: submodelID})
}

// NewExternalReference creates an ExternalReference consisting of a single
// GlobalReference key with the given value.
func NewExternalReference(value string) *Reference {
	return &Reference{
		Type: REFERENCETYPES_EXTERNAL_REFERENCE,
		Keys: []Key{{Type: KEYTYPES_GLOBAL_REFERENCE, Value: value}},
	}
}

// Equal reports whether two references point to the same target, i.e. have
// the same type and the same key chain. ReferredSemanticId is not part of
// the comparison.
func (r Reference) Equal(other Reference) bool {
	if r.Type != other.Type || len(r.Keys) != len(other.Keys) {
		return false
	}
	for i := range r.Keys {
		if r.Keys[i] != other.Keys[i] {
			return false
		}
	}
	return true
}

// AssertReferenceRequired checks if the required fields are not zero-ed
func AssertReferenceRequired(obj Reference) error {
	elements := map[string]interface{}{
		"type": obj.Type,
		"keys": obj.Keys,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}

	for _, el := range obj.Keys {
		if err := AssertKeyRequired(el); err != nil {
			return err
		}
	}

	// Stack
	stack := make([]*Reference, 0)
	if obj.ReferredSemanticId != nil {
		stack = append(stack, obj.ReferredSemanticId)
	}
	for len(stack) > 0 {
		// Pop
		n := len(stack) - 1
		current := stack[n]
		stack = stack[:n]

		if err := AssertReferenceRequired(*current); err != nil {
			return err
		}

		if current.ReferredSemanticId != nil {
			stack = append(stack, current.ReferredSemanticId)
		}
	}

	return nil
}

// AssertReferenceConstraints checks if the values respects the defined constraints
func AssertReferenceConstraints(obj Reference) error {
	if !obj.Type.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("Reference.type", string(obj.Type))}
	}
	for _, el := range obj.Keys {
		if err := AssertKeyConstraints(el); err != nil {
			return err
		}
	}
	if obj.ReferredSemanticId != nil {
		return AssertReferenceConstraints(*obj.ReferredSemanticId)
	}
	return nil
}
