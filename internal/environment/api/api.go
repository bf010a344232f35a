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

// Package api implements the HTTP surface of the AAS environment service:
// shells, submodels with element and qualifier access, concept descriptions
// and the environment serialization endpoint.
package api

import (
	"context"

	commonmodel "github.com/rwth-iat/basyx-go-framework/internal/common/model"
	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

// EnvironmentAPIRouter defines the required methods for binding the api
// requests to a responses for the EnvironmentAPI
// The EnvironmentAPIRouter implementation should parse necessary information
// from the http request and pass the data to a EnvironmentAPIServicer to
// perform the required actions, then write the service results to the http
// response.
type EnvironmentAPIRouter interface {
	Routes() commonmodel.Routes
}

// EnvironmentAPIServicer defines the api actions for the EnvironmentAPI
// service. Identifier parameters are already base64url-decoded, limit and
// cursor follow the shared pagination contract of the persistence layer.
type EnvironmentAPIServicer interface {
	ListAssetAdministrationShells(ctx context.Context, limit int32, cursor string, idShort string) (commonmodel.ImplResponse, error)
	PostAssetAdministrationShell(ctx context.Context, shell model.AssetAdministrationShell) (commonmodel.ImplResponse, error)
	GetAssetAdministrationShellByID(ctx context.Context, aasIdentifier string) (commonmodel.ImplResponse, error)
	PutAssetAdministrationShellByID(ctx context.Context, aasIdentifier string, shell model.AssetAdministrationShell) (commonmodel.ImplResponse, error)
	DeleteAssetAdministrationShellByID(ctx context.Context, aasIdentifier string) (commonmodel.ImplResponse, error)
	GetAssetInformation(ctx context.Context, aasIdentifier string) (commonmodel.ImplResponse, error)
	PutAssetInformation(ctx context.Context, aasIdentifier string, assetInformation model.AssetInformation) (commonmodel.ImplResponse, error)
	GetSubmodelReferences(ctx context.Context, aasIdentifier string) (commonmodel.ImplResponse, error)
	PostSubmodelReference(ctx context.Context, aasIdentifier string, reference model.Reference) (commonmodel.ImplResponse, error)
	DeleteSubmodelReferenceByID(ctx context.Context, aasIdentifier string, submodelIdentifier string) (commonmodel.ImplResponse, error)

	ListSubmodels(ctx context.Context, limit int32, cursor string, idShort string, semanticID *model.Reference) (commonmodel.ImplResponse, error)
	PostSubmodel(ctx context.Context, submodel model.Submodel) (commonmodel.ImplResponse, error)
	GetSubmodelByID(ctx context.Context, submodelIdentifier string) (commonmodel.ImplResponse, error)
	PutSubmodelByID(ctx context.Context, submodelIdentifier string, submodel model.Submodel) (commonmodel.ImplResponse, error)
	DeleteSubmodelByID(ctx context.Context, submodelIdentifier string) (commonmodel.ImplResponse, error)

	ListSubmodelElements(ctx context.Context, submodelIdentifier string, limit int32, cursor string) (commonmodel.ImplResponse, error)
	PostSubmodelElement(ctx context.Context, submodelIdentifier string, element model.SubmodelElement) (commonmodel.ImplResponse, error)
	GetSubmodelElementByPath(ctx context.Context, submodelIdentifier string, idShortPath string) (commonmodel.ImplResponse, error)
	PostSubmodelElementByPath(ctx context.Context, submodelIdentifier string, idShortPath string, element model.SubmodelElement) (commonmodel.ImplResponse, error)
	PutSubmodelElementByPath(ctx context.Context, submodelIdentifier string, idShortPath string, element model.SubmodelElement) (commonmodel.ImplResponse, error)
	DeleteSubmodelElementByPath(ctx context.Context, submodelIdentifier string, idShortPath string) (commonmodel.ImplResponse, error)

	GetFileByPath(ctx context.Context, submodelIdentifier string, idShortPath string) (commonmodel.ImplResponse, error)
	PutFileByPath(ctx context.Context, submodelIdentifier string, idShortPath string, fileName string, contentType string, content []byte) (commonmodel.ImplResponse, error)
	DeleteFileByPath(ctx context.Context, submodelIdentifier string, idShortPath string) (commonmodel.ImplResponse, error)

	GetQualifiers(ctx context.Context, submodelIdentifier string, idShortPath string) (commonmodel.ImplResponse, error)
	PostQualifier(ctx context.Context, submodelIdentifier string, idShortPath string, qualifier model.Qualifier) (commonmodel.ImplResponse, error)
	GetQualifierByType(ctx context.Context, submodelIdentifier string, idShortPath string, qualifierType string) (commonmodel.ImplResponse, error)
	PutQualifierByType(ctx context.Context, submodelIdentifier string, idShortPath string, qualifierType string, qualifier model.Qualifier) (commonmodel.ImplResponse, error)
	DeleteQualifierByType(ctx context.Context, submodelIdentifier string, idShortPath string, qualifierType string) (commonmodel.ImplResponse, error)

	ListConceptDescriptions(ctx context.Context, limit int32, cursor string, idShort string) (commonmodel.ImplResponse, error)
	PostConceptDescription(ctx context.Context, cd model.ConceptDescription) (commonmodel.ImplResponse, error)
	GetConceptDescriptionByID(ctx context.Context, cdIdentifier string) (commonmodel.ImplResponse, error)
	PutConceptDescriptionByID(ctx context.Context, cdIdentifier string, cd model.ConceptDescription) (commonmodel.ImplResponse, error)
	DeleteConceptDescriptionByID(ctx context.Context, cdIdentifier string) (commonmodel.ImplResponse, error)

	GenerateSerialization(ctx context.Context, asXML bool) (commonmodel.ImplResponse, error)
}
