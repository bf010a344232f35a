/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
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

package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rwth-iat/basyx-go-framework/internal/common"
	commonmodel "github.com/rwth-iat/basyx-go-framework/internal/common/model"
	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

// maxAttachmentMemory bounds the in-memory part of multipart attachment
// uploads, larger files spill to disk.
const maxAttachmentMemory = 32 << 20

// EnvironmentAPIController binds http requests to an api service and writes the service results to the http response
type EnvironmentAPIController struct {
	service      EnvironmentAPIServicer
	errorHandler commonmodel.ErrorHandler
	contextPath  string
	strict       bool
}

// EnvironmentAPIOption for how the controller is set up.
type EnvironmentAPIOption func(*EnvironmentAPIController)

// WithEnvironmentAPIErrorHandler inject ErrorHandler into controller
func WithEnvironmentAPIErrorHandler(h commonmodel.ErrorHandler) EnvironmentAPIOption {
	return func(c *EnvironmentAPIController) {
		c.errorHandler = h
	}
}

// WithContextPath prefixes all routes with the configured context path. The
// path is normalized, so trailing slashes and a bare "/" are accepted.
func WithContextPath(contextPath string) EnvironmentAPIOption {
	return func(c *EnvironmentAPIController) {
		c.contextPath = common.NormalizeBasePath(contextPath)
	}
}

// WithStrictVerification enables the constraint assertions on request
// bodies in addition to the required-field assertions.
func WithStrictVerification(strict bool) EnvironmentAPIOption {
	return func(c *EnvironmentAPIController) {
		c.strict = strict
	}
}

// NewEnvironmentAPIController creates a default api controller
func NewEnvironmentAPIController(s EnvironmentAPIServicer, opts ...EnvironmentAPIOption) *EnvironmentAPIController {
	controller := &EnvironmentAPIController{
		service:      s,
		errorHandler: commonmodel.DefaultErrorHandler,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all the api routes for the EnvironmentAPIController
func (c *EnvironmentAPIController) Routes() commonmodel.Routes {
	return commonmodel.Routes{
		"GetAllAssetAdministrationShells": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/shells",
			HandlerFunc: c.GetAllAssetAdministrationShells,
		},
		"PostAssetAdministrationShell": commonmodel.Route{
			Method:      strings.ToUpper("Post"),
			Pattern:     c.contextPath + "/shells",
			HandlerFunc: c.PostAssetAdministrationShell,
		},
		"GetAssetAdministrationShellByID": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/shells/{aasIdentifier}",
			HandlerFunc: c.GetAssetAdministrationShellByID,
		},
		"PutAssetAdministrationShellByID": commonmodel.Route{
			Method:      strings.ToUpper("Put"),
			Pattern:     c.contextPath + "/shells/{aasIdentifier}",
			HandlerFunc: c.PutAssetAdministrationShellByID,
		},
		"DeleteAssetAdministrationShellByID": commonmodel.Route{
			Method:      strings.ToUpper("Delete"),
			Pattern:     c.contextPath + "/shells/{aasIdentifier}",
			HandlerFunc: c.DeleteAssetAdministrationShellByID,
		},
		"GetAssetInformation": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/shells/{aasIdentifier}/asset-information",
			HandlerFunc: c.GetAssetInformation,
		},
		"PutAssetInformation": commonmodel.Route{
			Method:      strings.ToUpper("Put"),
			Pattern:     c.contextPath + "/shells/{aasIdentifier}/asset-information",
			HandlerFunc: c.PutAssetInformation,
		},
		"GetAllSubmodelReferences": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/shells/{aasIdentifier}/submodel-refs",
			HandlerFunc: c.GetAllSubmodelReferences,
		},
		"PostSubmodelReference": commonmodel.Route{
			Method:      strings.ToUpper("Post"),
			Pattern:     c.contextPath + "/shells/{aasIdentifier}/submodel-refs",
			HandlerFunc: c.PostSubmodelReference,
		},
		"DeleteSubmodelReferenceByID": commonmodel.Route{
			Method:      strings.ToUpper("Delete"),
			Pattern:     c.contextPath + "/shells/{aasIdentifier}/submodel-refs/{submodelIdentifier}",
			HandlerFunc: c.DeleteSubmodelReferenceByID,
		},
		"GetAllSubmodels": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/submodels",
			HandlerFunc: c.GetAllSubmodels,
		},
		"PostSubmodel": commonmodel.Route{
			Method:      strings.ToUpper("Post"),
			Pattern:     c.contextPath + "/submodels",
			HandlerFunc: c.PostSubmodel,
		},
		"GetSubmodelByID": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}",
			HandlerFunc: c.GetSubmodelByID,
		},
		"PutSubmodelByID": commonmodel.Route{
			Method:      strings.ToUpper("Put"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}",
			HandlerFunc: c.PutSubmodelByID,
		},
		"DeleteSubmodelByID": commonmodel.Route{
			Method:      strings.ToUpper("Delete"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}",
			HandlerFunc: c.DeleteSubmodelByID,
		},
		"GetAllSubmodelElements": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements",
			HandlerFunc: c.GetAllSubmodelElements,
		},
		"PostSubmodelElement": commonmodel.Route{
			Method:      strings.ToUpper("Post"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements",
			HandlerFunc: c.PostSubmodelElement,
		},
		"GetSubmodelElementByPath": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements/{idShortPath}",
			HandlerFunc: c.GetSubmodelElementByPath,
		},
		"PostSubmodelElementByPath": commonmodel.Route{
			Method:      strings.ToUpper("Post"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements/{idShortPath}",
			HandlerFunc: c.PostSubmodelElementByPath,
		},
		"PutSubmodelElementByPath": commonmodel.Route{
			Method:      strings.ToUpper("Put"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements/{idShortPath}",
			HandlerFunc: c.PutSubmodelElementByPath,
		},
		"DeleteSubmodelElementByPath": commonmodel.Route{
			Method:      strings.ToUpper("Delete"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements/{idShortPath}",
			HandlerFunc: c.DeleteSubmodelElementByPath,
		},
		"GetFileByPath": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements/{idShortPath}/attachment",
			HandlerFunc: c.GetFileByPath,
		},
		"PutFileByPath": commonmodel.Route{
			Method:      strings.ToUpper("Put"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements/{idShortPath}/attachment",
			HandlerFunc: c.PutFileByPath,
		},
		"DeleteFileByPath": commonmodel.Route{
			Method:      strings.ToUpper("Delete"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements/{idShortPath}/attachment",
			HandlerFunc: c.DeleteFileByPath,
		},
		"GetSubmodelQualifiers": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/qualifiers",
			HandlerFunc: c.GetSubmodelQualifiers,
		},
		"PostSubmodelQualifier": commonmodel.Route{
			Method:      strings.ToUpper("Post"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/qualifiers",
			HandlerFunc: c.PostSubmodelQualifier,
		},
		"GetSubmodelQualifierByType": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/qualifiers/{qualifierType}",
			HandlerFunc: c.GetSubmodelQualifierByType,
		},
		"PutSubmodelQualifierByType": commonmodel.Route{
			Method:      strings.ToUpper("Put"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/qualifiers/{qualifierType}",
			HandlerFunc: c.PutSubmodelQualifierByType,
		},
		"DeleteSubmodelQualifierByType": commonmodel.Route{
			Method:      strings.ToUpper("Delete"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/qualifiers/{qualifierType}",
			HandlerFunc: c.DeleteSubmodelQualifierByType,
		},
		"GetElementQualifiers": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements/{idShortPath}/qualifiers",
			HandlerFunc: c.GetElementQualifiers,
		},
		"PostElementQualifier": commonmodel.Route{
			Method:      strings.ToUpper("Post"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements/{idShortPath}/qualifiers",
			HandlerFunc: c.PostElementQualifier,
		},
		"GetElementQualifierByType": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements/{idShortPath}/qualifiers/{qualifierType}",
			HandlerFunc: c.GetElementQualifierByType,
		},
		"PutElementQualifierByType": commonmodel.Route{
			Method:      strings.ToUpper("Put"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements/{idShortPath}/qualifiers/{qualifierType}",
			HandlerFunc: c.PutElementQualifierByType,
		},
		"DeleteElementQualifierByType": commonmodel.Route{
			Method:      strings.ToUpper("Delete"),
			Pattern:     c.contextPath + "/submodels/{submodelIdentifier}/submodel-elements/{idShortPath}/qualifiers/{qualifierType}",
			HandlerFunc: c.DeleteElementQualifierByType,
		},
		"GetAllConceptDescriptions": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/concept-descriptions",
			HandlerFunc: c.GetAllConceptDescriptions,
		},
		"PostConceptDescription": commonmodel.Route{
			Method:      strings.ToUpper("Post"),
			Pattern:     c.contextPath + "/concept-descriptions",
			HandlerFunc: c.PostConceptDescription,
		},
		"GetConceptDescriptionByID": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/concept-descriptions/{cdIdentifier}",
			HandlerFunc: c.GetConceptDescriptionByID,
		},
		"PutConceptDescriptionByID": commonmodel.Route{
			Method:      strings.ToUpper("Put"),
			Pattern:     c.contextPath + "/concept-descriptions/{cdIdentifier}",
			HandlerFunc: c.PutConceptDescriptionByID,
		},
		"DeleteConceptDescriptionByID": commonmodel.Route{
			Method:      strings.ToUpper("Delete"),
			Pattern:     c.contextPath + "/concept-descriptions/{cdIdentifier}",
			HandlerFunc: c.DeleteConceptDescriptionByID,
		},
		"GenerateSerializationByIds": commonmodel.Route{
			Method:      strings.ToUpper("Get"),
			Pattern:     c.contextPath + "/serialization",
			HandlerFunc: c.GenerateSerializationByIds,
		},
	}
}

// identifierParam extracts and base64url-decodes a path identifier. It
// writes the error response and reports false when the parameter is missing
// or not decodable.
func (c *EnvironmentAPIController) identifierParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	param := chi.URLParam(r, name)
	if param == "" {
		c.errorHandler(w, r, &commonmodel.RequiredError{Field: name}, nil)
		return "", false
	}
	decoded, err := common.DecodeString(param)
	if err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Param: name, Err: err}, nil)
		return "", false
	}
	return decoded, true
}

// pagingParams extracts the limit and the base64url-encoded cursor query
// parameters.
func (c *EnvironmentAPIController) pagingParams(w http.ResponseWriter, r *http.Request) (int32, string, bool) {
	query, err := parseQuery(r.URL.RawQuery)
	if err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return 0, "", false
	}

	var limitParam int32
	if query.Has("limit") {
		param, err := parseNumericParameter[int32](
			query.Get("limit"),
			WithParse[int32](parseInt32),
			WithMinimum[int32](1),
		)
		if err != nil {
			c.errorHandler(w, r, &commonmodel.ParsingError{Param: "limit", Err: err}, nil)
			return 0, "", false
		}
		limitParam = param
	}

	var cursorParam string
	if query.Has("cursor") {
		param, err := common.ParseCursor(query.Get("cursor"))
		if err != nil {
			c.errorHandler(w, r, &commonmodel.ParsingError{Param: "cursor", Err: err}, nil)
			return 0, "", false
		}
		cursorParam = param
	}

	return limitParam, cursorParam, true
}

func (c *EnvironmentAPIController) writeResult(w http.ResponseWriter, r *http.Request, result commonmodel.ImplResponse, err error) {
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = commonmodel.EncodeJSONResponse(result.Body, &result.Code, w)
}

// writeCreated writes a 201 response with a Location header pointing at the
// created resource. Error responses pass through unchanged.
func (c *EnvironmentAPIController) writeCreated(w http.ResponseWriter, r *http.Request, result commonmodel.ImplResponse, err error, location string) {
	if err == nil && result.Code == http.StatusCreated {
		w.Header().Set("Location", location)
	}
	c.writeResult(w, r, result, err)
}

// GetAllAssetAdministrationShells - Returns all Asset Administration Shells
func (c *EnvironmentAPIController) GetAllAssetAdministrationShells(w http.ResponseWriter, r *http.Request) {
	limitParam, cursorParam, ok := c.pagingParams(w, r)
	if !ok {
		return
	}
	idShortParam := r.URL.Query().Get("idShort")

	result, err := c.service.ListAssetAdministrationShells(r.Context(), limitParam, cursorParam, idShortParam)
	c.writeResult(w, r, result, err)
}

// PostAssetAdministrationShell - Creates a new Asset Administration Shell
func (c *EnvironmentAPIController) PostAssetAdministrationShell(w http.ResponseWriter, r *http.Request) {
	var shellParam model.AssetAdministrationShell
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&shellParam); err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return
	}
	if err := model.AssertAssetAdministrationShellRequired(shellParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	if c.strict {
		if err := model.AssertAssetAdministrationShellConstraints(shellParam); err != nil {
			c.errorHandler(w, r, err, nil)
			return
		}
	}

	result, err := c.service.PostAssetAdministrationShell(r.Context(), shellParam)
	c.writeCreated(w, r, result, err, c.contextPath+"/shells/"+common.EncodeString(shellParam.ID))
}

// GetAssetAdministrationShellByID - Returns a specific Asset Administration Shell
func (c *EnvironmentAPIController) GetAssetAdministrationShellByID(w http.ResponseWriter, r *http.Request) {
	aasIdentifier, ok := c.identifierParam(w, r, "aasIdentifier")
	if !ok {
		return
	}

	result, err := c.service.GetAssetAdministrationShellByID(r.Context(), aasIdentifier)
	c.writeResult(w, r, result, err)
}

// PutAssetAdministrationShellByID - Replaces an existing Asset Administration Shell
func (c *EnvironmentAPIController) PutAssetAdministrationShellByID(w http.ResponseWriter, r *http.Request) {
	aasIdentifier, ok := c.identifierParam(w, r, "aasIdentifier")
	if !ok {
		return
	}

	var shellParam model.AssetAdministrationShell
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&shellParam); err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return
	}
	if err := model.AssertAssetAdministrationShellRequired(shellParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	if c.strict {
		if err := model.AssertAssetAdministrationShellConstraints(shellParam); err != nil {
			c.errorHandler(w, r, err, nil)
			return
		}
	}

	result, err := c.service.PutAssetAdministrationShellByID(r.Context(), aasIdentifier, shellParam)
	c.writeResult(w, r, result, err)
}

// DeleteAssetAdministrationShellByID - Deletes an Asset Administration Shell
func (c *EnvironmentAPIController) DeleteAssetAdministrationShellByID(w http.ResponseWriter, r *http.Request) {
	aasIdentifier, ok := c.identifierParam(w, r, "aasIdentifier")
	if !ok {
		return
	}

	result, err := c.service.DeleteAssetAdministrationShellByID(r.Context(), aasIdentifier)
	c.writeResult(w, r, result, err)
}

// GetAssetInformation - Returns the Asset Information of a shell
func (c *EnvironmentAPIController) GetAssetInformation(w http.ResponseWriter, r *http.Request) {
	aasIdentifier, ok := c.identifierParam(w, r, "aasIdentifier")
	if !ok {
		return
	}

	result, err := c.service.GetAssetInformation(r.Context(), aasIdentifier)
	c.writeResult(w, r, result, err)
}

// PutAssetInformation - Replaces the Asset Information of a shell
func (c *EnvironmentAPIController) PutAssetInformation(w http.ResponseWriter, r *http.Request) {
	aasIdentifier, ok := c.identifierParam(w, r, "aasIdentifier")
	if !ok {
		return
	}

	var assetInformationParam model.AssetInformation
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&assetInformationParam); err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return
	}
	if err := model.AssertAssetInformationRequired(assetInformationParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	if c.strict {
		if err := model.AssertAssetInformationConstraints(assetInformationParam); err != nil {
			c.errorHandler(w, r, err, nil)
			return
		}
	}

	result, err := c.service.PutAssetInformation(r.Context(), aasIdentifier, assetInformationParam)
	c.writeResult(w, r, result, err)
}

// GetAllSubmodelReferences - Returns the submodel references of a shell
func (c *EnvironmentAPIController) GetAllSubmodelReferences(w http.ResponseWriter, r *http.Request) {
	aasIdentifier, ok := c.identifierParam(w, r, "aasIdentifier")
	if !ok {
		return
	}

	result, err := c.service.GetSubmodelReferences(r.Context(), aasIdentifier)
	c.writeResult(w, r, result, err)
}

// PostSubmodelReference - Adds a submodel reference to a shell
func (c *EnvironmentAPIController) PostSubmodelReference(w http.ResponseWriter, r *http.Request) {
	aasIdentifier, ok := c.identifierParam(w, r, "aasIdentifier")
	if !ok {
		return
	}

	var referenceParam model.Reference
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&referenceParam); err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return
	}
	if err := model.AssertReferenceRequired(referenceParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	if c.strict {
		if err := model.AssertReferenceConstraints(referenceParam); err != nil {
			c.errorHandler(w, r, err, nil)
			return
		}
	}

	result, err := c.service.PostSubmodelReference(r.Context(), aasIdentifier, referenceParam)
	c.writeResult(w, r, result, err)
}

// DeleteSubmodelReferenceByID - Removes a submodel reference from a shell
func (c *EnvironmentAPIController) DeleteSubmodelReferenceByID(w http.ResponseWriter, r *http.Request) {
	aasIdentifier, ok := c.identifierParam(w, r, "aasIdentifier")
	if !ok {
		return
	}
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}

	result, err := c.service.DeleteSubmodelReferenceByID(r.Context(), aasIdentifier, submodelIdentifier)
	c.writeResult(w, r, result, err)
}

// GetAllSubmodels - Returns all Submodels
func (c *EnvironmentAPIController) GetAllSubmodels(w http.ResponseWriter, r *http.Request) {
	limitParam, cursorParam, ok := c.pagingParams(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	idShortParam := query.Get("idShort")

	var semanticIDParam *model.Reference
	if raw := query.Get("semanticId"); raw != "" {
		decoded, err := common.DecodeString(raw)
		if err != nil {
			c.errorHandler(w, r, &commonmodel.ParsingError{Param: "semanticId", Err: err}, nil)
			return
		}
		var ref model.Reference
		if err := json.Unmarshal([]byte(decoded), &ref); err != nil {
			c.errorHandler(w, r, &commonmodel.ParsingError{Param: "semanticId", Err: err}, nil)
			return
		}
		semanticIDParam = &ref
	}

	result, err := c.service.ListSubmodels(r.Context(), limitParam, cursorParam, idShortParam, semanticIDParam)
	c.writeResult(w, r, result, err)
}

// PostSubmodel - Creates a new Submodel
func (c *EnvironmentAPIController) PostSubmodel(w http.ResponseWriter, r *http.Request) {
	var submodelParam model.Submodel
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&submodelParam); err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return
	}
	if err := model.AssertSubmodelRequired(submodelParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	if c.strict {
		if err := model.AssertSubmodelConstraints(submodelParam); err != nil {
			c.errorHandler(w, r, err, nil)
			return
		}
	}

	result, err := c.service.PostSubmodel(r.Context(), submodelParam)
	c.writeCreated(w, r, result, err, c.contextPath+"/submodels/"+common.EncodeString(submodelParam.ID))
}

// GetSubmodelByID - Returns a specific Submodel
func (c *EnvironmentAPIController) GetSubmodelByID(w http.ResponseWriter, r *http.Request) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}

	result, err := c.service.GetSubmodelByID(r.Context(), submodelIdentifier)
	c.writeResult(w, r, result, err)
}

// PutSubmodelByID - Replaces an existing Submodel
func (c *EnvironmentAPIController) PutSubmodelByID(w http.ResponseWriter, r *http.Request) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}

	var submodelParam model.Submodel
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&submodelParam); err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return
	}
	if err := model.AssertSubmodelRequired(submodelParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	if c.strict {
		if err := model.AssertSubmodelConstraints(submodelParam); err != nil {
			c.errorHandler(w, r, err, nil)
			return
		}
	}

	result, err := c.service.PutSubmodelByID(r.Context(), submodelIdentifier, submodelParam)
	c.writeResult(w, r, result, err)
}

// DeleteSubmodelByID - Deletes a Submodel
func (c *EnvironmentAPIController) DeleteSubmodelByID(w http.ResponseWriter, r *http.Request) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}

	result, err := c.service.DeleteSubmodelByID(r.Context(), submodelIdentifier)
	c.writeResult(w, r, result, err)
}

// GetAllSubmodelElements - Returns all top-level elements of a Submodel
func (c *EnvironmentAPIController) GetAllSubmodelElements(w http.ResponseWriter, r *http.Request) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}
	limitParam, cursorParam, ok := c.pagingParams(w, r)
	if !ok {
		return
	}

	result, err := c.service.ListSubmodelElements(r.Context(), submodelIdentifier, limitParam, cursorParam)
	c.writeResult(w, r, result, err)
}

// decodeSubmodelElement reads the polymorphic element body. The concrete
// type is selected via the modelType discriminator.
func (c *EnvironmentAPIController) decodeSubmodelElement(w http.ResponseWriter, r *http.Request) (model.SubmodelElement, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return nil, false
	}
	element, err := model.UnmarshalSubmodelElement(body)
	if err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return nil, false
	}
	if err := model.AssertSubmodelElementRequired(element); err != nil {
		c.errorHandler(w, r, err, nil)
		return nil, false
	}
	if c.strict {
		if err := model.AssertSubmodelElementConstraints(element); err != nil {
			c.errorHandler(w, r, err, nil)
			return nil, false
		}
	}
	return element, true
}

// PostSubmodelElement - Adds a new element at the top level of a Submodel
func (c *EnvironmentAPIController) PostSubmodelElement(w http.ResponseWriter, r *http.Request) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}
	element, ok := c.decodeSubmodelElement(w, r)
	if !ok {
		return
	}

	result, err := c.service.PostSubmodelElement(r.Context(), submodelIdentifier, element)
	location := c.contextPath + "/submodels/" + common.EncodeString(submodelIdentifier) + "/submodel-elements/" + element.GetIdShort()
	c.writeCreated(w, r, result, err, location)
}

// GetSubmodelElementByPath - Returns the element at the given idShort path
func (c *EnvironmentAPIController) GetSubmodelElementByPath(w http.ResponseWriter, r *http.Request) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}
	idShortPathParam := chi.URLParam(r, "idShortPath")

	result, err := c.service.GetSubmodelElementByPath(r.Context(), submodelIdentifier, idShortPathParam)
	c.writeResult(w, r, result, err)
}

// PostSubmodelElementByPath - Adds a new element below the container at the given idShort path
func (c *EnvironmentAPIController) PostSubmodelElementByPath(w http.ResponseWriter, r *http.Request) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}
	idShortPathParam := chi.URLParam(r, "idShortPath")
	element, ok := c.decodeSubmodelElement(w, r)
	if !ok {
		return
	}

	result, err := c.service.PostSubmodelElementByPath(r.Context(), submodelIdentifier, idShortPathParam, element)
	location := c.contextPath + "/submodels/" + common.EncodeString(submodelIdentifier) + "/submodel-elements/" + idShortPathParam + "." + element.GetIdShort()
	c.writeCreated(w, r, result, err, location)
}

// PutSubmodelElementByPath - Replaces the element at the given idShort path
func (c *EnvironmentAPIController) PutSubmodelElementByPath(w http.ResponseWriter, r *http.Request) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}
	idShortPathParam := chi.URLParam(r, "idShortPath")
	element, ok := c.decodeSubmodelElement(w, r)
	if !ok {
		return
	}

	result, err := c.service.PutSubmodelElementByPath(r.Context(), submodelIdentifier, idShortPathParam, element)
	c.writeResult(w, r, result, err)
}

// DeleteSubmodelElementByPath - Deletes the element at the given idShort path
func (c *EnvironmentAPIController) DeleteSubmodelElementByPath(w http.ResponseWriter, r *http.Request) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}
	idShortPathParam := chi.URLParam(r, "idShortPath")

	result, err := c.service.DeleteSubmodelElementByPath(r.Context(), submodelIdentifier, idShortPathParam)
	c.writeResult(w, r, result, err)
}

// GetFileByPath - Downloads the attachment of the File or Blob element at the given idShort path
func (c *EnvironmentAPIController) GetFileByPath(w http.ResponseWriter, r *http.Request) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}
	idShortPathParam := chi.URLParam(r, "idShortPath")

	result, err := c.service.GetFileByPath(r.Context(), submodelIdentifier, idShortPathParam)
	c.writeResult(w, r, result, err)
}

// PutFileByPath - Uploads the attachment of the File or Blob element at the given idShort path.
// The payload is either a multipart/form-data part named "file" or the raw request body.
func (c *EnvironmentAPIController) PutFileByPath(w http.ResponseWriter, r *http.Request) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}
	idShortPathParam := chi.URLParam(r, "idShortPath")

	var content []byte
	var fileName string
	var contentType string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxAttachmentMemory); err != nil {
			c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			c.errorHandler(w, r, &commonmodel.ParsingError{Param: "file", Err: err}, nil)
			return
		}
		defer func() {
			_ = file.Close()
		}()
		content, err = io.ReadAll(file)
		if err != nil {
			c.errorHandler(w, r, &commonmodel.ParsingError{Param: "file", Err: err}, nil)
			return
		}
		fileName = header.Filename
		contentType = header.Header.Get("Content-Type")
	} else {
		var err error
		content, err = io.ReadAll(r.Body)
		if err != nil {
			c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
			return
		}
		fileName = r.URL.Query().Get("fileName")
		contentType = r.Header.Get("Content-Type")
	}

	result, err := c.service.PutFileByPath(r.Context(), submodelIdentifier, idShortPathParam, fileName, contentType, content)
	c.writeResult(w, r, result, err)
}

// DeleteFileByPath - Deletes the attachment of the File or Blob element at the given idShort path
func (c *EnvironmentAPIController) DeleteFileByPath(w http.ResponseWriter, r *http.Request) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}
	idShortPathParam := chi.URLParam(r, "idShortPath")

	result, err := c.service.DeleteFileByPath(r.Context(), submodelIdentifier, idShortPathParam)
	c.writeResult(w, r, result, err)
}

func (c *EnvironmentAPIController) getQualifiers(w http.ResponseWriter, r *http.Request, idShortPath string) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}

	result, err := c.service.GetQualifiers(r.Context(), submodelIdentifier, idShortPath)
	c.writeResult(w, r, result, err)
}

func (c *EnvironmentAPIController) postQualifier(w http.ResponseWriter, r *http.Request, idShortPath string) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}

	var qualifierParam model.Qualifier
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&qualifierParam); err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return
	}
	if err := model.AssertQualifierRequired(qualifierParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	if c.strict {
		if err := model.AssertQualifierConstraints(qualifierParam); err != nil {
			c.errorHandler(w, r, err, nil)
			return
		}
	}

	result, err := c.service.PostQualifier(r.Context(), submodelIdentifier, idShortPath, qualifierParam)
	c.writeResult(w, r, result, err)
}

func (c *EnvironmentAPIController) getQualifierByType(w http.ResponseWriter, r *http.Request, idShortPath string) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}
	qualifierType, ok := c.identifierParam(w, r, "qualifierType")
	if !ok {
		return
	}

	result, err := c.service.GetQualifierByType(r.Context(), submodelIdentifier, idShortPath, qualifierType)
	c.writeResult(w, r, result, err)
}

func (c *EnvironmentAPIController) putQualifierByType(w http.ResponseWriter, r *http.Request, idShortPath string) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}
	qualifierType, ok := c.identifierParam(w, r, "qualifierType")
	if !ok {
		return
	}

	var qualifierParam model.Qualifier
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&qualifierParam); err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return
	}
	if err := model.AssertQualifierRequired(qualifierParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	if c.strict {
		if err := model.AssertQualifierConstraints(qualifierParam); err != nil {
			c.errorHandler(w, r, err, nil)
			return
		}
	}

	result, err := c.service.PutQualifierByType(r.Context(), submodelIdentifier, idShortPath, qualifierType, qualifierParam)
	c.writeResult(w, r, result, err)
}

func (c *EnvironmentAPIController) deleteQualifierByType(w http.ResponseWriter, r *http.Request, idShortPath string) {
	submodelIdentifier, ok := c.identifierParam(w, r, "submodelIdentifier")
	if !ok {
		return
	}
	qualifierType, ok := c.identifierParam(w, r, "qualifierType")
	if !ok {
		return
	}

	result, err := c.service.DeleteQualifierByType(r.Context(), submodelIdentifier, idShortPath, qualifierType)
	c.writeResult(w, r, result, err)
}

// GetSubmodelQualifiers - Returns the qualifiers of a Submodel
func (c *EnvironmentAPIController) GetSubmodelQualifiers(w http.ResponseWriter, r *http.Request) {
	c.getQualifiers(w, r, "")
}

// PostSubmodelQualifier - Adds a qualifier to a Submodel
func (c *EnvironmentAPIController) PostSubmodelQualifier(w http.ResponseWriter, r *http.Request) {
	c.postQualifier(w, r, "")
}

// GetSubmodelQualifierByType - Returns the qualifier with the given type from a Submodel
func (c *EnvironmentAPIController) GetSubmodelQualifierByType(w http.ResponseWriter, r *http.Request) {
	c.getQualifierByType(w, r, "")
}

// PutSubmodelQualifierByType - Replaces the qualifier with the given type on a Submodel
func (c *EnvironmentAPIController) PutSubmodelQualifierByType(w http.ResponseWriter, r *http.Request) {
	c.putQualifierByType(w, r, "")
}

// DeleteSubmodelQualifierByType - Removes the qualifier with the given type from a Submodel
func (c *EnvironmentAPIController) DeleteSubmodelQualifierByType(w http.ResponseWriter, r *http.Request) {
	c.deleteQualifierByType(w, r, "")
}

// GetElementQualifiers - Returns the qualifiers of the element at the given idShort path
func (c *EnvironmentAPIController) GetElementQualifiers(w http.ResponseWriter, r *http.Request) {
	c.getQualifiers(w, r, chi.URLParam(r, "idShortPath"))
}

// PostElementQualifier - Adds a qualifier to the element at the given idShort path
func (c *EnvironmentAPIController) PostElementQualifier(w http.ResponseWriter, r *http.Request) {
	c.postQualifier(w, r, chi.URLParam(r, "idShortPath"))
}

// GetElementQualifierByType - Returns the qualifier with the given type from an element
func (c *EnvironmentAPIController) GetElementQualifierByType(w http.ResponseWriter, r *http.Request) {
	c.getQualifierByType(w, r, chi.URLParam(r, "idShortPath"))
}

// PutElementQualifierByType - Replaces the qualifier with the given type on an element
func (c *EnvironmentAPIController) PutElementQualifierByType(w http.ResponseWriter, r *http.Request) {
	c.putQualifierByType(w, r, chi.URLParam(r, "idShortPath"))
}

// DeleteElementQualifierByType - Removes the qualifier with the given type from an element
func (c *EnvironmentAPIController) DeleteElementQualifierByType(w http.ResponseWriter, r *http.Request) {
	c.deleteQualifierByType(w, r, chi.URLParam(r, "idShortPath"))
}

// GetAllConceptDescriptions - Returns all Concept Descriptions
func (c *EnvironmentAPIController) GetAllConceptDescriptions(w http.ResponseWriter, r *http.Request) {
	limitParam, cursorParam, ok := c.pagingParams(w, r)
	if !ok {
		return
	}
	idShortParam := r.URL.Query().Get("idShort")

	result, err := c.service.ListConceptDescriptions(r.Context(), limitParam, cursorParam, idShortParam)
	c.writeResult(w, r, result, err)
}

// PostConceptDescription - Creates a new Concept Description
func (c *EnvironmentAPIController) PostConceptDescription(w http.ResponseWriter, r *http.Request) {
	var cdParam model.ConceptDescription
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&cdParam); err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return
	}
	if err := model.AssertConceptDescriptionRequired(cdParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	if c.strict {
		if err := model.AssertConceptDescriptionConstraints(cdParam); err != nil {
			c.errorHandler(w, r, err, nil)
			return
		}
	}

	result, err := c.service.PostConceptDescription(r.Context(), cdParam)
	c.writeCreated(w, r, result, err, c.contextPath+"/concept-descriptions/"+common.EncodeString(cdParam.ID))
}

// GetConceptDescriptionByID - Returns a specific Concept Description
func (c *EnvironmentAPIController) GetConceptDescriptionByID(w http.ResponseWriter, r *http.Request) {
	cdIdentifier, ok := c.identifierParam(w, r, "cdIdentifier")
	if !ok {
		return
	}

	result, err := c.service.GetConceptDescriptionByID(r.Context(), cdIdentifier)
	c.writeResult(w, r, result, err)
}

// PutConceptDescriptionByID - Replaces an existing Concept Description
func (c *EnvironmentAPIController) PutConceptDescriptionByID(w http.ResponseWriter, r *http.Request) {
	cdIdentifier, ok := c.identifierParam(w, r, "cdIdentifier")
	if !ok {
		return
	}

	var cdParam model.ConceptDescription
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&cdParam); err != nil {
		c.errorHandler(w, r, &commonmodel.ParsingError{Err: err}, nil)
		return
	}
	if err := model.AssertConceptDescriptionRequired(cdParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	if c.strict {
		if err := model.AssertConceptDescriptionConstraints(cdParam); err != nil {
			c.errorHandler(w, r, err, nil)
			return
		}
	}

	result, err := c.service.PutConceptDescriptionByID(r.Context(), cdIdentifier, cdParam)
	c.writeResult(w, r, result, err)
}

// DeleteConceptDescriptionByID - Deletes a Concept Description
func (c *EnvironmentAPIController) DeleteConceptDescriptionByID(w http.ResponseWriter, r *http.Request) {
	cdIdentifier, ok := c.identifierParam(w, r, "cdIdentifier")
	if !ok {
		return
	}

	result, err := c.service.DeleteConceptDescriptionByID(r.Context(), cdIdentifier)
	c.writeResult(w, r, result, err)
}

// GenerateSerializationByIds - Returns the whole environment, serialized as
// JSON or, when the Accept header asks for it, as XML
func (c *EnvironmentAPIController) GenerateSerializationByIds(w http.ResponseWriter, r *http.Request) {
	asXML := strings.Contains(r.Header.Get("Accept"), "xml")

	result, err := c.service.GenerateSerialization(r.Context(), asXML)
	c.writeResult(w, r, result, err)
}
