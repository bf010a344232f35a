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
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/rwth-iat/basyx-go-framework/internal/common"
	commonmodel "github.com/rwth-iat/basyx-go-framework/internal/common/model"
	"github.com/rwth-iat/basyx-go-framework/internal/environment/attachments"
	"github.com/rwth-iat/basyx-go-framework/internal/environment/persistence"
	"github.com/rwth-iat/basyx-go-framework/pkg/jsonization"
	"github.com/rwth-iat/basyx-go-framework/pkg/model"
	"github.com/rwth-iat/basyx-go-framework/pkg/store"
	"github.com/rwth-iat/basyx-go-framework/pkg/xmlization"
)

const componentName = "ENVREPO"

// serializationPageSize bounds the page size used when the serialization
// endpoint walks the full backend content.
const serializationPageSize = 500

// EnvironmentAPIService implements the EnvironmentAPIServicer on top of a
// persistence backend and an attachment store.
type EnvironmentAPIService struct {
	backend     persistence.Backend
	attachments attachments.Store
}

// NewEnvironmentAPIService creates a service for the given backend and
// attachment store.
func NewEnvironmentAPIService(backend persistence.Backend, attachmentStore attachments.Store) *EnvironmentAPIService {
	return &EnvironmentAPIService{backend: backend, attachments: attachmentStore}
}

// mapError converts a persistence or navigation error into the Result
// envelope using the common error taxonomy.
func (s *EnvironmentAPIService) mapError(err error, operation string) (commonmodel.ImplResponse, error) {
	status := http.StatusInternalServerError
	class := "INTERNAL"
	switch {
	case common.IsErrNotFound(err):
		status, class = http.StatusNotFound, "NOTFOUND"
	case common.IsErrConflict(err):
		status, class = http.StatusConflict, "CONFLICT"
	case common.IsErrBadRequest(err):
		status, class = http.StatusBadRequest, "BADREQUEST"
	}
	return common.NewErrorResponse(err, status, componentName, operation, componentName+"-"+operation+"-"+class), nil
}

func (s *EnvironmentAPIService) ListAssetAdministrationShells(ctx context.Context, limit int32, cursor string, idShort string) (commonmodel.ImplResponse, error) {
	shells, next, err := s.backend.ListShells(ctx, idShort, limit, cursor)
	if err != nil {
		return s.mapError(err, "GETSHELLS")
	}
	return common.NewPagedResponse(shells, next), nil
}

func (s *EnvironmentAPIService) PostAssetAdministrationShell(ctx context.Context, shell model.AssetAdministrationShell) (commonmodel.ImplResponse, error) {
	if err := s.backend.CreateShell(ctx, &shell); err != nil {
		return s.mapError(err, "POSTSHELL")
	}
	return commonmodel.Response(http.StatusCreated, shell), nil
}

func (s *EnvironmentAPIService) GetAssetAdministrationShellByID(ctx context.Context, aasIdentifier string) (commonmodel.ImplResponse, error) {
	shell, err := s.backend.GetShell(ctx, aasIdentifier)
	if err != nil {
		return s.mapError(err, "GETSHELL")
	}
	return commonmodel.Response(http.StatusOK, shell), nil
}

func (s *EnvironmentAPIService) PutAssetAdministrationShellByID(ctx context.Context, aasIdentifier string, shell model.AssetAdministrationShell) (commonmodel.ImplResponse, error) {
	if shell.ID != aasIdentifier {
		return s.mapError(common.NewErrBadRequest("the id of the request body does not match the id in the path"), "PUTSHELL")
	}
	if err := s.backend.UpdateShell(ctx, &shell); err != nil {
		return s.mapError(err, "PUTSHELL")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) DeleteAssetAdministrationShellByID(ctx context.Context, aasIdentifier string) (commonmodel.ImplResponse, error) {
	if err := s.backend.DeleteShell(ctx, aasIdentifier); err != nil {
		return s.mapError(err, "DELETESHELL")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) GetAssetInformation(ctx context.Context, aasIdentifier string) (commonmodel.ImplResponse, error) {
	shell, err := s.backend.GetShell(ctx, aasIdentifier)
	if err != nil {
		return s.mapError(err, "GETASSETINFO")
	}
	return commonmodel.Response(http.StatusOK, shell.AssetInformation), nil
}

func (s *EnvironmentAPIService) PutAssetInformation(ctx context.Context, aasIdentifier string, assetInformation model.AssetInformation) (commonmodel.ImplResponse, error) {
	shell, err := s.backend.GetShell(ctx, aasIdentifier)
	if err != nil {
		return s.mapError(err, "PUTASSETINFO")
	}
	shell.AssetInformation = assetInformation
	if err := s.backend.UpdateShell(ctx, shell); err != nil {
		return s.mapError(err, "PUTASSETINFO")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) GetSubmodelReferences(ctx context.Context, aasIdentifier string) (commonmodel.ImplResponse, error) {
	shell, err := s.backend.GetShell(ctx, aasIdentifier)
	if err != nil {
		return s.mapError(err, "GETSMREFS")
	}
	refs := shell.Submodels
	if refs == nil {
		refs = []model.Reference{}
	}
	return common.NewPagedResponse(refs, ""), nil
}

func (s *EnvironmentAPIService) PostSubmodelReference(ctx context.Context, aasIdentifier string, reference model.Reference) (commonmodel.ImplResponse, error) {
	shell, err := s.backend.GetShell(ctx, aasIdentifier)
	if err != nil {
		return s.mapError(err, "POSTSMREF")
	}
	if shell.HasSubmodelReference(reference) {
		return s.mapError(common.NewErrConflict("the shell already holds an equal submodel reference"), "POSTSMREF")
	}
	shell.Submodels = append(shell.Submodels, reference)
	if err := s.backend.UpdateShell(ctx, shell); err != nil {
		return s.mapError(err, "POSTSMREF")
	}
	return commonmodel.Response(http.StatusCreated, reference), nil
}

func (s *EnvironmentAPIService) DeleteSubmodelReferenceByID(ctx context.Context, aasIdentifier string, submodelIdentifier string) (commonmodel.ImplResponse, error) {
	shell, err := s.backend.GetShell(ctx, aasIdentifier)
	if err != nil {
		return s.mapError(err, "DELETESMREF")
	}
	removed := false
	for _, ref := range shell.Submodels {
		if len(ref.Keys) > 0 && ref.Keys[len(ref.Keys)-1].Value == submodelIdentifier {
			removed = shell.RemoveSubmodelReference(ref)
			break
		}
	}
	if !removed {
		return s.mapError(common.NewErrNotFound(submodelIdentifier), "DELETESMREF")
	}
	if err := s.backend.UpdateShell(ctx, shell); err != nil {
		return s.mapError(err, "DELETESMREF")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) ListSubmodels(ctx context.Context, limit int32, cursor string, idShort string, semanticID *model.Reference) (commonmodel.ImplResponse, error) {
	submodels, next, err := s.backend.ListSubmodels(ctx, idShort, limit, cursor)
	if err != nil {
		return s.mapError(err, "GETSUBMODELS")
	}
	if semanticID != nil {
		filtered := make([]*model.Submodel, 0, len(submodels))
		for _, sm := range submodels {
			if sm.SemanticID != nil && sm.SemanticID.Equal(*semanticID) {
				filtered = append(filtered, sm)
			}
		}
		submodels = filtered
	}
	return common.NewPagedResponse(submodels, next), nil
}

func (s *EnvironmentAPIService) PostSubmodel(ctx context.Context, submodel model.Submodel) (commonmodel.ImplResponse, error) {
	if err := s.backend.CreateSubmodel(ctx, &submodel); err != nil {
		return s.mapError(err, "POSTSUBMODEL")
	}
	return commonmodel.Response(http.StatusCreated, submodel), nil
}

func (s *EnvironmentAPIService) GetSubmodelByID(ctx context.Context, submodelIdentifier string) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "GETSUBMODEL")
	}
	return commonmodel.Response(http.StatusOK, sm), nil
}

func (s *EnvironmentAPIService) PutSubmodelByID(ctx context.Context, submodelIdentifier string, submodel model.Submodel) (commonmodel.ImplResponse, error) {
	if submodel.ID != submodelIdentifier {
		return s.mapError(common.NewErrBadRequest("the id of the request body does not match the id in the path"), "PUTSUBMODEL")
	}
	if err := s.backend.UpdateSubmodel(ctx, &submodel); err != nil {
		return s.mapError(err, "PUTSUBMODEL")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) DeleteSubmodelByID(ctx context.Context, submodelIdentifier string) (commonmodel.ImplResponse, error) {
	if err := s.backend.DeleteSubmodel(ctx, submodelIdentifier); err != nil {
		return s.mapError(err, "DELETESUBMODEL")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) ListSubmodelElements(ctx context.Context, submodelIdentifier string, limit int32, cursor string) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "GETELEMENTS")
	}
	if limit <= 0 {
		limit = persistence.DefaultLimit
	}

	// Elements are ordered by position within the submodel, so the cursor
	// is the decimal offset of the next page.
	offset := 0
	if cursor != "" {
		offset, err = strconv.Atoi(cursor)
		if err != nil || offset < 0 {
			return s.mapError(common.NewErrBadRequest(fmt.Sprintf("invalid cursor '%s'", cursor)), "GETELEMENTS")
		}
	}

	elements := sm.SubmodelElements
	if offset > len(elements) {
		offset = len(elements)
	}
	end := offset + int(limit)
	next := ""
	if end < len(elements) {
		next = strconv.Itoa(end)
	} else {
		end = len(elements)
	}
	page := elements[offset:end]
	if page == nil {
		page = []model.SubmodelElement{}
	}
	return common.NewPagedResponse(page, next), nil
}

func (s *EnvironmentAPIService) PostSubmodelElement(ctx context.Context, submodelIdentifier string, element model.SubmodelElement) (commonmodel.ImplResponse, error) {
	return s.postElement(ctx, submodelIdentifier, "", element, "POSTELEMENT")
}

func (s *EnvironmentAPIService) PostSubmodelElementByPath(ctx context.Context, submodelIdentifier string, idShortPath string, element model.SubmodelElement) (commonmodel.ImplResponse, error) {
	return s.postElement(ctx, submodelIdentifier, idShortPath, element, "POSTELEMENTPATH")
}

func (s *EnvironmentAPIService) postElement(ctx context.Context, submodelIdentifier string, idShortPath string, element model.SubmodelElement, operation string) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, operation)
	}
	container, err := containerAtPath(sm, idShortPath)
	if err != nil {
		return s.mapError(err, operation)
	}
	if err := insertElement(container, element); err != nil {
		return s.mapError(err, operation)
	}
	if err := s.backend.UpdateSubmodel(ctx, sm); err != nil {
		return s.mapError(err, operation)
	}
	return commonmodel.Response(http.StatusCreated, element), nil
}

func (s *EnvironmentAPIService) GetSubmodelElementByPath(ctx context.Context, submodelIdentifier string, idShortPath string) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "GETELEMENT")
	}
	element, err := elementAtPath(sm, idShortPath)
	if err != nil {
		return s.mapError(err, "GETELEMENT")
	}
	return commonmodel.Response(http.StatusOK, element), nil
}

func (s *EnvironmentAPIService) PutSubmodelElementByPath(ctx context.Context, submodelIdentifier string, idShortPath string, element model.SubmodelElement) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "PUTELEMENT")
	}
	if err := replaceElementAtPath(sm, idShortPath, element); err != nil {
		return s.mapError(err, "PUTELEMENT")
	}
	if err := s.backend.UpdateSubmodel(ctx, sm); err != nil {
		return s.mapError(err, "PUTELEMENT")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) DeleteSubmodelElementByPath(ctx context.Context, submodelIdentifier string, idShortPath string) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "DELETEELEMENT")
	}
	element, err := elementAtPath(sm, idShortPath)
	if err != nil {
		return s.mapError(err, "DELETEELEMENT")
	}
	if err := removeElementAtPath(sm, idShortPath); err != nil {
		return s.mapError(err, "DELETEELEMENT")
	}
	if file, ok := element.(*model.File); ok && file.Value != "" && s.attachments != nil {
		// The payload is orphaned after the element is gone.
		_ = s.attachments.Delete(ctx, attachments.Key(submodelIdentifier, idShortPath))
	}
	if err := s.backend.UpdateSubmodel(ctx, sm); err != nil {
		return s.mapError(err, "DELETEELEMENT")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) GetFileByPath(ctx context.Context, submodelIdentifier string, idShortPath string) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "GETFILE")
	}
	element, err := elementAtPath(sm, idShortPath)
	if err != nil {
		return s.mapError(err, "GETFILE")
	}

	switch el := element.(type) {
	case *model.File:
		if el.Value == "" {
			return s.mapError(common.NewErrNotFound(idShortPath), "GETFILE")
		}
		data, err := s.attachments.Get(ctx, attachments.Key(submodelIdentifier, idShortPath))
		if err != nil {
			return s.mapError(err, "GETFILE")
		}
		return commonmodel.Response(http.StatusOK, commonmodel.FileDownload{
			Content:     data,
			ContentType: el.ContentType,
			Filename:    filepath.Base(el.Value),
		}), nil
	case *model.Blob:
		if el.Value == nil {
			return s.mapError(common.NewErrNotFound(idShortPath), "GETFILE")
		}
		return commonmodel.Response(http.StatusOK, commonmodel.FileDownload{
			Content:     el.Value,
			ContentType: el.ContentType,
			Filename:    el.IdShort,
		}), nil
	default:
		return s.mapError(common.NewErrBadRequest(fmt.Sprintf("element at idShort path '%s' is neither a File nor a Blob", idShortPath)), "GETFILE")
	}
}

func (s *EnvironmentAPIService) PutFileByPath(ctx context.Context, submodelIdentifier string, idShortPath string, fileName string, contentType string, content []byte) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "PUTFILE")
	}
	element, err := elementAtPath(sm, idShortPath)
	if err != nil {
		return s.mapError(err, "PUTFILE")
	}

	switch el := element.(type) {
	case *model.File:
		if err := s.attachments.Put(ctx, attachments.Key(submodelIdentifier, idShortPath), content); err != nil {
			return s.mapError(err, "PUTFILE")
		}
		if fileName != "" {
			el.Value = fileName
		} else if el.Value == "" {
			el.Value = el.IdShort
		}
		if contentType != "" {
			el.ContentType = contentType
		}
	case *model.Blob:
		el.Value = content
		if contentType != "" {
			el.ContentType = contentType
		}
	default:
		return s.mapError(common.NewErrBadRequest(fmt.Sprintf("element at idShort path '%s' is neither a File nor a Blob", idShortPath)), "PUTFILE")
	}

	if err := s.backend.UpdateSubmodel(ctx, sm); err != nil {
		return s.mapError(err, "PUTFILE")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) DeleteFileByPath(ctx context.Context, submodelIdentifier string, idShortPath string) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "DELETEFILE")
	}
	element, err := elementAtPath(sm, idShortPath)
	if err != nil {
		return s.mapError(err, "DELETEFILE")
	}

	switch el := element.(type) {
	case *model.File:
		if el.Value == "" {
			return s.mapError(common.NewErrNotFound(idShortPath), "DELETEFILE")
		}
		if err := s.attachments.Delete(ctx, attachments.Key(submodelIdentifier, idShortPath)); err != nil && !common.IsErrNotFound(err) {
			return s.mapError(err, "DELETEFILE")
		}
		el.Value = ""
	case *model.Blob:
		if el.Value == nil {
			return s.mapError(common.NewErrNotFound(idShortPath), "DELETEFILE")
		}
		el.Value = nil
	default:
		return s.mapError(common.NewErrBadRequest(fmt.Sprintf("element at idShort path '%s' is neither a File nor a Blob", idShortPath)), "DELETEFILE")
	}

	if err := s.backend.UpdateSubmodel(ctx, sm); err != nil {
		return s.mapError(err, "DELETEFILE")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) GetQualifiers(ctx context.Context, submodelIdentifier string, idShortPath string) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "GETQUALIFIERS")
	}
	carrier, err := qualifiableAtPath(sm, idShortPath)
	if err != nil {
		return s.mapError(err, "GETQUALIFIERS")
	}
	qualifiers := carrier.GetQualifiers()
	if qualifiers == nil {
		qualifiers = []model.Qualifier{}
	}
	return commonmodel.Response(http.StatusOK, qualifiers), nil
}

func (s *EnvironmentAPIService) PostQualifier(ctx context.Context, submodelIdentifier string, idShortPath string, qualifier model.Qualifier) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "POSTQUALIFIER")
	}
	carrier, err := qualifiableAtPath(sm, idShortPath)
	if err != nil {
		return s.mapError(err, "POSTQUALIFIER")
	}
	if _, exists := model.QualifierByType(carrier, qualifier.Type); exists {
		return s.mapError(common.NewErrConflict(fmt.Sprintf("a qualifier of type '%s' already exists", qualifier.Type)), "POSTQUALIFIER")
	}
	carrier.SetQualifiers(append(carrier.GetQualifiers(), qualifier))
	if err := s.backend.UpdateSubmodel(ctx, sm); err != nil {
		return s.mapError(err, "POSTQUALIFIER")
	}
	return commonmodel.Response(http.StatusCreated, qualifier), nil
}

func (s *EnvironmentAPIService) GetQualifierByType(ctx context.Context, submodelIdentifier string, idShortPath string, qualifierType string) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "GETQUALIFIER")
	}
	carrier, err := qualifiableAtPath(sm, idShortPath)
	if err != nil {
		return s.mapError(err, "GETQUALIFIER")
	}
	qualifier, exists := model.QualifierByType(carrier, qualifierType)
	if !exists {
		return s.mapError(common.NewErrNotFound(qualifierType), "GETQUALIFIER")
	}
	return commonmodel.Response(http.StatusOK, qualifier), nil
}

func (s *EnvironmentAPIService) PutQualifierByType(ctx context.Context, submodelIdentifier string, idShortPath string, qualifierType string, qualifier model.Qualifier) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "PUTQUALIFIER")
	}
	carrier, err := qualifiableAtPath(sm, idShortPath)
	if err != nil {
		return s.mapError(err, "PUTQUALIFIER")
	}
	if _, exists := model.QualifierByType(carrier, qualifierType); !exists {
		return s.mapError(common.NewErrNotFound(qualifierType), "PUTQUALIFIER")
	}
	if qualifier.Type != qualifierType {
		if _, exists := model.QualifierByType(carrier, qualifier.Type); exists {
			return s.mapError(common.NewErrConflict(fmt.Sprintf("a qualifier of type '%s' already exists", qualifier.Type)), "PUTQUALIFIER")
		}
	}
	model.RemoveQualifierByType(carrier, qualifierType)
	carrier.SetQualifiers(append(carrier.GetQualifiers(), qualifier))
	if err := s.backend.UpdateSubmodel(ctx, sm); err != nil {
		return s.mapError(err, "PUTQUALIFIER")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) DeleteQualifierByType(ctx context.Context, submodelIdentifier string, idShortPath string, qualifierType string) (commonmodel.ImplResponse, error) {
	sm, err := s.backend.GetSubmodel(ctx, submodelIdentifier)
	if err != nil {
		return s.mapError(err, "DELETEQUALIFIER")
	}
	carrier, err := qualifiableAtPath(sm, idShortPath)
	if err != nil {
		return s.mapError(err, "DELETEQUALIFIER")
	}
	if !model.RemoveQualifierByType(carrier, qualifierType) {
		return s.mapError(common.NewErrNotFound(qualifierType), "DELETEQUALIFIER")
	}
	if err := s.backend.UpdateSubmodel(ctx, sm); err != nil {
		return s.mapError(err, "DELETEQUALIFIER")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) ListConceptDescriptions(ctx context.Context, limit int32, cursor string, idShort string) (commonmodel.ImplResponse, error) {
	cds, next, err := s.backend.ListConceptDescriptions(ctx, idShort, limit, cursor)
	if err != nil {
		return s.mapError(err, "GETCDS")
	}
	return common.NewPagedResponse(cds, next), nil
}

func (s *EnvironmentAPIService) PostConceptDescription(ctx context.Context, cd model.ConceptDescription) (commonmodel.ImplResponse, error) {
	if err := s.backend.CreateConceptDescription(ctx, &cd); err != nil {
		return s.mapError(err, "POSTCD")
	}
	return commonmodel.Response(http.StatusCreated, cd), nil
}

func (s *EnvironmentAPIService) GetConceptDescriptionByID(ctx context.Context, cdIdentifier string) (commonmodel.ImplResponse, error) {
	cd, err := s.backend.GetConceptDescription(ctx, cdIdentifier)
	if err != nil {
		return s.mapError(err, "GETCD")
	}
	return commonmodel.Response(http.StatusOK, cd), nil
}

func (s *EnvironmentAPIService) PutConceptDescriptionByID(ctx context.Context, cdIdentifier string, cd model.ConceptDescription) (commonmodel.ImplResponse, error) {
	if cd.ID != cdIdentifier {
		return s.mapError(common.NewErrBadRequest("the id of the request body does not match the id in the path"), "PUTCD")
	}
	if err := s.backend.UpdateConceptDescription(ctx, &cd); err != nil {
		return s.mapError(err, "PUTCD")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) DeleteConceptDescriptionByID(ctx context.Context, cdIdentifier string) (commonmodel.ImplResponse, error) {
	if err := s.backend.DeleteConceptDescription(ctx, cdIdentifier); err != nil {
		return s.mapError(err, "DELETECD")
	}
	return commonmodel.Response(http.StatusNoContent, nil), nil
}

func (s *EnvironmentAPIService) GenerateSerialization(ctx context.Context, asXML bool) (commonmodel.ImplResponse, error) {
	snapshot, err := s.collectEnvironment(ctx)
	if err != nil {
		return s.mapError(err, "SERIALIZE")
	}

	if asXML {
		var buf bytes.Buffer
		if err := xmlization.WriteEnvironment(&buf, snapshot); err != nil {
			return s.mapError(err, "SERIALIZE")
		}
		return commonmodel.Response(http.StatusOK, commonmodel.FileDownload{
			Content:     buf.Bytes(),
			ContentType: "application/xml",
			Filename:    "environment.xml",
		}), nil
	}

	return commonmodel.Response(http.StatusOK, jsonization.EnvironmentFromObjects(snapshot.All())), nil
}

// collectEnvironment walks all backend pages and snapshots the full content
// into one object store.
func (s *EnvironmentAPIService) collectEnvironment(ctx context.Context) (*store.ObjectStore, error) {
	snapshot := store.NewObjectStore()

	cursor := ""
	for {
		shells, next, err := s.backend.ListShells(ctx, "", serializationPageSize, cursor)
		if err != nil {
			return nil, err
		}
		for _, shell := range shells {
			if err := snapshot.Add(shell); err != nil {
				return nil, err
			}
		}
		if next == "" {
			break
		}
		cursor = next
	}

	cursor = ""
	for {
		submodels, next, err := s.backend.ListSubmodels(ctx, "", serializationPageSize, cursor)
		if err != nil {
			return nil, err
		}
		for _, sm := range submodels {
			if err := snapshot.Add(sm); err != nil {
				return nil, err
			}
		}
		if next == "" {
			break
		}
		cursor = next
	}

	cursor = ""
	for {
		cds, next, err := s.backend.ListConceptDescriptions(ctx, "", serializationPageSize, cursor)
		if err != nil {
			return nil, err
		}
		for _, cd := range cds {
			if err := snapshot.Add(cd); err != nil {
				return nil, err
			}
		}
		if next == "" {
			break
		}
		cursor = next
	}

	return snapshot, nil
}
