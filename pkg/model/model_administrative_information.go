package model

// AdministrativeInformation carries versioning metadata of an Identifiable.
type AdministrativeInformation struct {
	EmbeddedDataSpecifications []EmbeddedDataSpecification `json:"embeddedDataSpecifications,omitempty"`

	Version string `json:"version,omitempty"`

	Revision string `json:"revision,omitempty"`

	Creator *Reference `json:"creator,omitempty"`

	//nolint:all
	TemplateId string `json:"templateId,omitempty"`
}

// AssertAdministrativeInformationRequired checks if the required fields are not zero-ed
func AssertAdministrativeInformationRequired(_ AdministrativeInformation) error {
	return nil
}

// AssertAdministrativeInformationConstraints checks if the values respects the defined constraints
func AssertAdministrativeInformationConstraints(obj AdministrativeInformation) error {
	// Constraint AASd-005: a revision requires a version.
	if obj.Revision != "" && obj.Version == "" {
		return &RequiredError{Field: "version"}
	}
	if obj.Creator != nil {
		return AssertReferenceConstraints(*obj.Creator)
	}
	return nil
}
