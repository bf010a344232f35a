package model

// SpecificAssetId is a supplementary, typically proprietary identifier of an
// asset, e.g. a serial number.
type SpecificAssetId struct {
	//nolint:all
	SemanticId *Reference `json:"semanticId,omitempty"`

	//nolint:all
	SupplementalSemanticIds []Reference `json:"supplementalSemanticIds,omitempty"`

	Name string `json:"name"`

	Value string `json:"value"`

	//nolint:all
	ExternalSubjectId *Reference `json:"externalSubjectId,omitempty"`
}

// AssertSpecificAssetIdRequired checks if the required fields are not zero-ed
//
//nolint:all
func AssertSpecificAssetIdRequired(obj SpecificAssetId) error {
	elements := map[string]interface{}{
		"name":  obj.Name,
		"value": obj.Value,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}
