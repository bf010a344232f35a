package model

// Operation is a submodel element with input, output and inoutput variables.
type Operation struct {
	Extensions []Extension `json:"extensions,omitempty"`

	Category string `json:"category,omitempty"`

	//nolint:all
	IdShort string `json:"idShort,omitempty"`

	DisplayName []LangStringNameType `json:"displayName,omitempty"`

	Description []LangStringTextType `json:"description,omitempty"`

	ModelType string `json:"modelType"`

	SemanticID *Reference `json:"semanticId,omitempty"`

	//nolint:all
	SupplementalSemanticIds []Reference `json:"supplementalSemanticIds,omitempty"`

	Qualifiers []Qualifier `json:"qualifiers,omitempty"`

	EmbeddedDataSpecifications []EmbeddedDataSpecification `json:"embeddedDataSpecifications,omitempty"`

	InputVariables []OperationVariable `json:"inputVariables,omitempty"`

	OutputVariables []OperationVariable `json:"outputVariables,omitempty"`

	InoutputVariables []OperationVariable `json:"inoutputVariables,omitempty"`
}

// NewOperation creates a new Operation instance
func NewOperation() *Operation {
	return &Operation{
		ModelType: "Operation",
	}
}

//nolint:all
func (o *Operation) GetIdShort() string {
	return o.IdShort
}

//nolint:all
func (o *Operation) GetModelType() string {
	return o.ModelType
}

//nolint:all
func (o *Operation) GetSemanticID() *Reference {
	return o.SemanticID
}

//nolint:all
func (o *Operation) GetQualifiers() []Qualifier {
	return o.Qualifiers
}

//nolint:all
func (o *Operation) SetQualifiers(qualifiers []Qualifier) {
	o.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element, i.e. the
// values of all operation variables.
func (o *Operation) DescendOnce() []Referable {
	var children []Referable
	for _, variables := range [][]OperationVariable{o.InputVariables, o.OutputVariables, o.InoutputVariables} {
		for _, v := range variables {
			if v.Value != nil {
				children = append(children, v.Value)
			}
		}
	}
	return children
}

// AssertOperationRequired checks if the required fields are not zero-ed
func AssertOperationRequired(obj Operation) error {
	if IsZeroValue(obj.ModelType) {
		return &RequiredError{Field: "modelType"}
	}
	for _, variables := range [][]OperationVariable{obj.InputVariables, obj.OutputVariables, obj.InoutputVariables} {
		for _, v := range variables {
			if err := AssertOperationVariableRequired(v); err != nil {
				return err
			}
		}
	}
	return nil
}
