package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rwth-iat/basyx-go-framework/internal/common"
	commonmodel "github.com/rwth-iat/basyx-go-framework/internal/common/model"
	"github.com/rwth-iat/basyx-go-framework/internal/environment/attachments"
	"github.com/rwth-iat/basyx-go-framework/internal/environment/persistence"
	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	backend := persistence.NewInMemoryBackend()
	attachmentStore, err := attachments.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	service := NewEnvironmentAPIService(backend, attachmentStore)
	controller := NewEnvironmentAPIController(service)
	srv := httptest.NewServer(commonmodel.NewRouter(controller))
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, srv *httptest.Server, method string, path string, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return data
}

type testPagedResult struct {
	PagingMetadata struct {
		Cursor string `json:"cursor"`
	} `json:"paging_metadata"`
	Result json.RawMessage `json:"result"`
}

func decodePaged(t *testing.T, resp *http.Response) testPagedResult {
	t.Helper()
	var paged testPagedResult
	require.NoError(t, json.Unmarshal(readBody(t, resp), &paged))
	return paged
}

const testShell = `{
	"modelType": "AssetAdministrationShell",
	"id": "urn:x-test:aas1",
	"idShort": "TestShell",
	"assetInformation": {"assetKind": "Instance"}
}`

const testSubmodel = `{
	"modelType": "Submodel",
	"id": "urn:x-test:sm1",
	"idShort": "TestSubmodel",
	"submodelElements": [
		{
			"modelType": "SubmodelElementCollection",
			"idShort": "coll",
			"value": [
				{"modelType": "Property", "idShort": "prop", "valueType": "xs:int", "value": "1984"}
			]
		},
		{"modelType": "File", "idShort": "doc", "contentType": "text/plain"}
	]
}`

func TestShellLifecycle(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	shellPath := "/shells/" + common.EncodeString("urn:x-test:aas1")

	resp := doRequest(t, srv, http.MethodPost, "/shells", testShell)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "/shells/"+common.EncodeString("urn:x-test:aas1"), resp.Header.Get("Location"))

	resp = doRequest(t, srv, http.MethodPost, "/shells", testShell)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, "/shells", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	paged := decodePaged(t, resp)
	var shells []model.AssetAdministrationShell
	require.NoError(t, json.Unmarshal(paged.Result, &shells))
	require.Len(t, shells, 1)
	require.Equal(t, "urn:x-test:aas1", shells[0].ID)

	resp = doRequest(t, srv, http.MethodGet, shellPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var shell model.AssetAdministrationShell
	require.NoError(t, json.Unmarshal(readBody(t, resp), &shell))
	require.Equal(t, "TestShell", shell.IdShort)

	updated := strings.Replace(testShell, "TestShell", "RenamedShell", 1)
	resp = doRequest(t, srv, http.MethodPut, shellPath, updated)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, shellPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(readBody(t, resp), &shell))
	require.Equal(t, "RenamedShell", shell.IdShort)

	resp = doRequest(t, srv, http.MethodDelete, shellPath, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, shellPath, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStrictModeNestedConstraints(t *testing.T) {
	t.Parallel()

	backend := persistence.NewInMemoryBackend()
	attachmentStore, err := attachments.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	service := NewEnvironmentAPIService(backend, attachmentStore)
	controller := NewEnvironmentAPIController(service, WithStrictVerification(true))
	srv := httptest.NewServer(commonmodel.NewRouter(controller))
	t.Cleanup(srv.Close)

	resp := doRequest(t, srv, http.MethodPost, "/submodels", testSubmodel)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	badSubmodel := `{
		"modelType": "Submodel",
		"id": "urn:x-test:sm2",
		"submodelElements": [
			{
				"modelType": "SubmodelElementCollection",
				"idShort": "coll",
				"value": [
					{"modelType": "Property", "idShort": "prop", "valueType": "xs:integer32"}
				]
			}
		]
	}`
	resp = doRequest(t, srv, http.MethodPost, "/submodels", badSubmodel)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	smPath := "/submodels/" + common.EncodeString("urn:x-test:sm1")
	badElement := `{
		"modelType": "SubmodelElementCollection",
		"idShort": "coll2",
		"value": [
			{"modelType": "Property", "idShort": "prop", "valueType": "xs:string",
			 "qualifiers": [{"type": "ExpressionSemantic", "valueType": "xs:nope"}]}
		]
	}`
	resp = doRequest(t, srv, http.MethodPost, smPath+"/submodel-elements", badElement)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContextPathRouting(t *testing.T) {
	t.Parallel()

	backend := persistence.NewInMemoryBackend()
	attachmentStore, err := attachments.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	service := NewEnvironmentAPIService(backend, attachmentStore)
	controller := NewEnvironmentAPIController(service, WithContextPath("environment/"))
	srv := httptest.NewServer(commonmodel.NewRouter(controller))
	t.Cleanup(srv.Close)

	resp := doRequest(t, srv, http.MethodPost, "/environment/shells", testShell)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, "/environment/shells", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, "/shells", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestShellPagination(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	for _, id := range []string{"urn:x-test:aas1", "urn:x-test:aas2", "urn:x-test:aas3"} {
		body := strings.Replace(testShell, "urn:x-test:aas1", id, 1)
		resp := doRequest(t, srv, http.MethodPost, "/shells", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doRequest(t, srv, http.MethodGet, "/shells?limit=2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	paged := decodePaged(t, resp)
	var shells []model.AssetAdministrationShell
	require.NoError(t, json.Unmarshal(paged.Result, &shells))
	require.Len(t, shells, 2)
	require.NotEmpty(t, paged.PagingMetadata.Cursor)

	resp = doRequest(t, srv, http.MethodGet, "/shells?limit=2&cursor="+paged.PagingMetadata.Cursor, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	paged = decodePaged(t, resp)
	require.NoError(t, json.Unmarshal(paged.Result, &shells))
	require.Len(t, shells, 1)
	require.Equal(t, "urn:x-test:aas3", shells[0].ID)
	require.Empty(t, paged.PagingMetadata.Cursor)
}

func TestShellValidation(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/shells", `{"modelType": "AssetAdministrationShell"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodPost, "/shells", `not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAssetInformation(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	infoPath := "/shells/" + common.EncodeString("urn:x-test:aas1") + "/asset-information"

	resp := doRequest(t, srv, http.MethodPost, "/shells", testShell)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, infoPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var info model.AssetInformation
	require.NoError(t, json.Unmarshal(readBody(t, resp), &info))
	require.Equal(t, model.ASSETKIND_INSTANCE, info.AssetKind)

	resp = doRequest(t, srv, http.MethodPut, infoPath, `{"assetKind": "Type", "globalAssetId": "urn:x-test:asset"}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, infoPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(readBody(t, resp), &info))
	require.Equal(t, model.ASSETKIND_TYPE, info.AssetKind)
	require.Equal(t, "urn:x-test:asset", info.GlobalAssetId)
}

func TestSubmodelReferences(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	refsPath := "/shells/" + common.EncodeString("urn:x-test:aas1") + "/submodel-refs"
	reference := `{"type": "ModelReference", "keys": [{"type": "Submodel", "value": "urn:x-test:sm1"}]}`

	resp := doRequest(t, srv, http.MethodPost, "/shells", testShell)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodPost, refsPath, reference)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodPost, refsPath, reference)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, refsPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	paged := decodePaged(t, resp)
	var refs []model.Reference
	require.NoError(t, json.Unmarshal(paged.Result, &refs))
	require.Len(t, refs, 1)

	resp = doRequest(t, srv, http.MethodDelete, refsPath+"/"+common.EncodeString("urn:x-test:sm1"), "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, refsPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	paged = decodePaged(t, resp)
	require.NoError(t, json.Unmarshal(paged.Result, &refs))
	require.Empty(t, refs)
}

func TestSubmodelElementsByPath(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	elementsPath := "/submodels/" + common.EncodeString("urn:x-test:sm1") + "/submodel-elements"

	resp := doRequest(t, srv, http.MethodPost, "/submodels", testSubmodel)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, elementsPath+"/coll.prop", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var property model.Property
	require.NoError(t, json.Unmarshal(readBody(t, resp), &property))
	require.Equal(t, "1984", property.Value)

	resp = doRequest(t, srv, http.MethodPost, elementsPath,
		`{"modelType": "Property", "idShort": "year", "valueType": "xs:int", "value": "2026"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodPost, elementsPath,
		`{"modelType": "Property", "idShort": "year", "valueType": "xs:int", "value": "2026"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, elementsPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	paged := decodePaged(t, resp)
	var raws []json.RawMessage
	require.NoError(t, json.Unmarshal(paged.Result, &raws))
	require.Len(t, raws, 3)

	resp = doRequest(t, srv, http.MethodPost, elementsPath+"/coll",
		`{"modelType": "Property", "idShort": "nested", "valueType": "xs:string", "value": "below"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, elementsPath+"/coll.nested", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodPut, elementsPath+"/coll.prop",
		`{"modelType": "Property", "idShort": "prop", "valueType": "xs:int", "value": "2000"}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, elementsPath+"/coll.prop", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(readBody(t, resp), &property))
	require.Equal(t, "2000", property.Value)

	resp = doRequest(t, srv, http.MethodDelete, elementsPath+"/coll.prop", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, elementsPath+"/coll.prop", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, elementsPath+"/no.such.path", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQualifiers(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	submodelPath := "/submodels/" + common.EncodeString("urn:x-test:sm1")
	qualifier := `{"type": "Lifecycle", "valueType": "xs:string", "value": "prototype"}`
	typePath := submodelPath + "/qualifiers/" + common.EncodeString("Lifecycle")

	resp := doRequest(t, srv, http.MethodPost, "/submodels", testSubmodel)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodPost, submodelPath+"/qualifiers", qualifier)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodPost, submodelPath+"/qualifiers", qualifier)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, submodelPath+"/qualifiers", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var qualifiers []model.Qualifier
	require.NoError(t, json.Unmarshal(readBody(t, resp), &qualifiers))
	require.Len(t, qualifiers, 1)

	resp = doRequest(t, srv, http.MethodGet, typePath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var q model.Qualifier
	require.NoError(t, json.Unmarshal(readBody(t, resp), &q))
	require.Equal(t, "prototype", q.Value)

	resp = doRequest(t, srv, http.MethodPut, typePath,
		`{"type": "Lifecycle", "valueType": "xs:string", "value": "series"}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, typePath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(readBody(t, resp), &q))
	require.Equal(t, "series", q.Value)

	resp = doRequest(t, srv, http.MethodDelete, typePath, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, typePath, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Qualifiers on a single element inside the submodel.
	elementQualifiers := submodelPath + "/submodel-elements/coll.prop/qualifiers"
	resp = doRequest(t, srv, http.MethodPost, elementQualifiers, qualifier)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, elementQualifiers+"/"+common.EncodeString("Lifecycle"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, submodelPath+"/qualifiers", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(readBody(t, resp), &qualifiers))
	require.Empty(t, qualifiers)
}

func TestFileAttachment(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	attachmentPath := "/submodels/" + common.EncodeString("urn:x-test:sm1") + "/submodel-elements/doc/attachment"

	resp := doRequest(t, srv, http.MethodPost, "/submodels", testSubmodel)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// No payload uploaded yet.
	resp = doRequest(t, srv, http.MethodGet, attachmentPath, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPut, srv.URL+attachmentPath+"?fileName=report.txt",
		bytes.NewReader([]byte("hello attachment")))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")
	putResp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer func() {
		_ = putResp.Body.Close()
	}()
	require.Equal(t, http.StatusNoContent, putResp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, attachmentPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	require.Equal(t, "hello attachment", string(readBody(t, resp)))

	// The File element now carries the uploaded file name.
	resp = doRequest(t, srv, http.MethodGet,
		"/submodels/"+common.EncodeString("urn:x-test:sm1")+"/submodel-elements/doc", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var file model.File
	require.NoError(t, json.Unmarshal(readBody(t, resp), &file))
	require.Equal(t, "report.txt", file.Value)

	resp = doRequest(t, srv, http.MethodDelete, attachmentPath, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, attachmentPath, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestConceptDescriptionLifecycle(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	cd := `{"modelType": "ConceptDescription", "id": "urn:x-test:cd1", "idShort": "Pressure"}`
	cdPath := "/concept-descriptions/" + common.EncodeString("urn:x-test:cd1")

	resp := doRequest(t, srv, http.MethodPost, "/concept-descriptions", cd)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, "/concept-descriptions?idShort=Pressure", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	paged := decodePaged(t, resp)
	var cds []model.ConceptDescription
	require.NoError(t, json.Unmarshal(paged.Result, &cds))
	require.Len(t, cds, 1)

	resp = doRequest(t, srv, http.MethodGet, "/concept-descriptions?idShort=Missing", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	paged = decodePaged(t, resp)
	require.NoError(t, json.Unmarshal(paged.Result, &cds))
	require.Empty(t, cds)

	resp = doRequest(t, srv, http.MethodDelete, cdPath, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, cdPath, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSerialization(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/shells", testShell)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doRequest(t, srv, http.MethodPost, "/submodels", testSubmodel)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, "/serialization", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var env model.Environment
	require.NoError(t, json.Unmarshal(readBody(t, resp), &env))
	require.Len(t, env.AssetAdministrationShells, 1)
	require.Len(t, env.Submodels, 1)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/serialization", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/xml")
	xmlResp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer func() {
		_ = xmlResp.Body.Close()
	}()
	require.Equal(t, http.StatusOK, xmlResp.StatusCode)
	data, err := io.ReadAll(xmlResp.Body)
	require.NoError(t, err)
	require.Contains(t, string(data), "aas:environment")
	require.Contains(t, string(data), "urn:x-test:aas1")
}
