package jsonization

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rwth-iat/basyx-go-framework/pkg/model"
	"github.com/rwth-iat/basyx-go-framework/pkg/store"
)

const environmentJSON = `{
	"assetAdministrationShells": [
		{
			"modelType": "AssetAdministrationShell",
			"id": "urn:x-test:aas1",
			"assetInformation": {"assetKind": "Instance"},
			"submodels": [
				{
					"type": "ModelReference",
					"keys": [{"type": "Submodel", "value": "urn:x-test:submodel1"}]
				}
			]
		}
	],
	"submodels": [
		{
			"modelType": "Submodel",
			"id": "urn:x-test:submodel1",
			"submodelElements": [
				{"modelType": "Property", "idShort": "some_property", "valueType": "xs:int", "value": "1984"}
			]
		}
	],
	"conceptDescriptions": [
		{"modelType": "ConceptDescription", "id": "urn:x-test:cd1"}
	]
}`

func TestReadEnvironment(t *testing.T) {
	t.Parallel()

	objectStore, err := ReadEnvironment(strings.NewReader(environmentJSON), ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, objectStore.Len())

	obj, err := objectStore.GetIdentifiable("urn:x-test:submodel1")
	require.NoError(t, err)
	sm, ok := obj.(*model.Submodel)
	require.True(t, ok)
	require.Len(t, sm.SubmodelElements, 1)

	obj, err = objectStore.GetIdentifiable("urn:x-test:aas1")
	require.NoError(t, err)
	aas, ok := obj.(*model.AssetAdministrationShell)
	require.True(t, ok)
	require.True(t, aas.HasSubmodelReference(*model.NewSubmodelReference("urn:x-test:submodel1")))
}

func TestReadEnvironmentIntoReturnsAddedIdentifiers(t *testing.T) {
	t.Parallel()

	objectStore := store.NewObjectStore()
	added, err := ReadEnvironmentInto(objectStore, strings.NewReader(environmentJSON), ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"urn:x-test:aas1", "urn:x-test:submodel1", "urn:x-test:cd1"}, added)
}

func TestReadEnvironmentDuplicateInDocument(t *testing.T) {
	t.Parallel()

	doc := `{"submodels": [
		{"modelType": "Submodel", "id": "urn:x-test:submodel1"},
		{"modelType": "Submodel", "id": "urn:x-test:submodel1"}
	]}`
	_, err := ReadEnvironment(strings.NewReader(doc), ReadOptions{})
	require.ErrorIs(t, err, store.ErrDuplicateIdentifier)
	require.Contains(t, err.Error(), "occurs twice in the document")
}

func TestReadEnvironmentExistingObject(t *testing.T) {
	t.Parallel()

	existing := model.NewSubmodel("urn:x-test:submodel1")
	doc := `{"submodels": [{"modelType": "Submodel", "id": "urn:x-test:submodel1", "idShort": "Replacement"}]}`

	objectStore := store.NewObjectStore(existing)
	_, err := ReadEnvironmentInto(objectStore, strings.NewReader(doc), ReadOptions{})
	require.ErrorIs(t, err, store.ErrDuplicateIdentifier)

	objectStore = store.NewObjectStore(existing)
	added, err := ReadEnvironmentInto(objectStore, strings.NewReader(doc), ReadOptions{IgnoreExisting: true})
	require.NoError(t, err)
	require.Empty(t, added)
	require.True(t, objectStore.Contains(existing))

	objectStore = store.NewObjectStore(existing)
	added, err = ReadEnvironmentInto(objectStore, strings.NewReader(doc), ReadOptions{ReplaceExisting: true})
	require.NoError(t, err)
	require.Equal(t, []string{"urn:x-test:submodel1"}, added)
	require.False(t, objectStore.Contains(existing))
	require.Equal(t, "Replacement", objectStore.Get("urn:x-test:submodel1", nil).GetIdShort())
}

func TestReadEnvironmentWrongList(t *testing.T) {
	t.Parallel()

	doc := `{"submodels": [
		{"modelType": "AssetAdministrationShell", "id": "urn:x-test:aas1", "assetInformation": {"assetKind": "Instance"}}
	]}`
	_, err := ReadEnvironment(strings.NewReader(doc), ReadOptions{})
	require.Error(t, err)
	var parsingErr *model.ParsingError
	require.ErrorAs(t, err, &parsingErr)
	require.Contains(t, err.Error(), "in list submodels")
}

func TestWriteEnvironmentRoundTrip(t *testing.T) {
	t.Parallel()

	objectStore, err := ReadEnvironment(strings.NewReader(environmentJSON), ReadOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteEnvironment(&buf, objectStore))

	again, err := ReadEnvironment(&buf, ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, objectStore.All(), again.All())
}

func TestWriteEnvironmentFile(t *testing.T) {
	t.Parallel()

	objectStore := store.NewObjectStore(model.NewSubmodel("urn:x-test:submodel1"))
	path := filepath.Join(t.TempDir(), "environment.json")
	require.NoError(t, WriteEnvironmentFile(path, objectStore))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"urn:x-test:submodel1"`)

	again, err := ReadEnvironmentFile(path, ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, again.Len())
}
