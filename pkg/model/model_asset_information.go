package model

// AssetInformation identifies the asset an AssetAdministrationShell
// represents.
type AssetInformation struct {
	AssetKind AssetKind `json:"assetKind"`

	//nolint:all
	GlobalAssetId string `json:"globalAssetId,omitempty"`

	SpecificAssetIds []SpecificAssetId `json:"specificAssetIds,omitempty"`

	AssetType string `json:"assetType,omitempty"`

	DefaultThumbnail *Resource `json:"defaultThumbnail,omitempty"`
}

// Resource is a file resource with an optional content type.
type Resource struct {
	Path string `json:"path"`

	ContentType string `json:"contentType,omitempty"`
}

// AssertAssetInformationRequired checks if the required fields are not zero-ed
func AssertAssetInformationRequired(obj AssetInformation) error {
	if IsZeroValue(obj.AssetKind) {
		return &RequiredError{Field: "assetKind"}
	}
	for _, el := range obj.SpecificAssetIds {
		if err := AssertSpecificAssetIdRequired(el); err != nil {
			return err
		}
	}
	if obj.DefaultThumbnail != nil && IsZeroValue(obj.DefaultThumbnail.Path) {
		return &RequiredError{Field: "path"}
	}
	return nil
}

// AssertAssetInformationConstraints checks if the values respects the defined constraints
func AssertAssetInformationConstraints(obj AssetInformation) error {
	if !obj.AssetKind.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("AssetInformation.assetKind", string(obj.AssetKind))}
	}
	return nil
}
