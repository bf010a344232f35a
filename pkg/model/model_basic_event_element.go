package model

// BasicEventElement is an event element observing a referable.
type BasicEventElement struct {
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

	Observed Reference `json:"observed"`

	Direction Direction `json:"direction"`

	State StateOfEvent `json:"state"`

	MessageTopic string `json:"messageTopic,omitempty"`

	MessageBroker *Reference `json:"messageBroker,omitempty"`

	LastUpdate string `json:"lastUpdate,omitempty"`

	MinInterval string `json:"minInterval,omitempty"`

	MaxInterval string `json:"maxInterval,omitempty"`
}

// NewBasicEventElement creates a new BasicEventElement instance
func NewBasicEventElement(observed Reference, direction Direction, state StateOfEvent) *BasicEventElement {
	return &BasicEventElement{
		Observed:  observed,
		Direction: direction,
		State:     state,
		ModelType: "BasicEventElement",
	}
}

//nolint:all
func (b *BasicEventElement) GetIdShort() string {
	return b.IdShort
}

//nolint:all
func (b *BasicEventElement) GetModelType() string {
	return b.ModelType
}

//nolint:all
func (b *BasicEventElement) GetSemanticID() *Reference {
	return b.SemanticID
}

//nolint:all
func (b *BasicEventElement) GetQualifiers() []Qualifier {
	return b.Qualifiers
}

//nolint:all
func (b *BasicEventElement) SetQualifiers(qualifiers []Qualifier) {
	b.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (b *BasicEventElement) DescendOnce() []Referable {
	return nil
}

// AssertBasicEventElementRequired checks if the required fields are not zero-ed
func AssertBasicEventElementRequired(obj BasicEventElement) error {
	elements := map[string]interface{}{
		"modelType": obj.ModelType,
		"direction": obj.Direction,
		"state":     obj.State,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return AssertReferenceRequired(obj.Observed)
}

// AssertBasicEventElementConstraints checks if the values respects the defined constraints
func AssertBasicEventElementConstraints(obj BasicEventElement) error {
	if !obj.Direction.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("BasicEventElement.direction", string(obj.Direction))}
	}
	if !obj.State.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("BasicEventElement.state", string(obj.State))}
	}
	return nil
}
