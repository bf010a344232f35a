package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

func newTestShells() (*model.AssetAdministrationShell, *model.AssetAdministrationShell) {
	aas1 := model.NewAssetAdministrationShell("urn:x-test:aas1",
		model.AssetInformation{AssetKind: model.ASSETKIND_TYPE})
	aas2 := model.NewAssetAdministrationShell("urn:x-test:aas2",
		model.AssetInformation{AssetKind: model.ASSETKIND_TYPE})
	return aas1, aas2
}

func newTestSubmodels() (*model.Submodel, *model.Submodel, *model.Blob, *model.SubmodelElementList) {
	someElement := model.NewProperty(model.DATATYPEDEFXSD_INT)
	someElement.IdShort = "some_property"
	someElement.Value = "1984"

	anotherElement := model.NewBlob("application/octet-stream")
	anotherElement.IdShort = "some_blob"
	anotherElement.Value = []byte{0xDE, 0xAD, 0xBE, 0xEF}

	listElement := model.NewBlob("application/octet-stream")
	listElement.IdShort = "list_1"
	listElement.Value = []byte{0xDE, 0xAD, 0xBE, 0xEF}

	anotherListElement := model.NewBlob("application/octet-stream")
	anotherListElement.IdShort = "list_2"
	anotherListElement.Value = []byte{0xDE, 0xAD, 0xBE, 0xEF}

	elementList := model.NewSubmodelElementList(model.AASSUBMODELELEMENTS_SUBMODEL_ELEMENT_LIST)
	elementList.IdShort = "ExampleSubmodelList"
	elementList.Value = []model.SubmodelElement{listElement, anotherListElement}

	submodel1 := model.NewSubmodel("urn:x-test:submodel1")
	submodel1.SubmodelElements = []model.SubmodelElement{someElement, anotherElement, elementList}

	submodel2 := model.NewSubmodel("urn:x-test:submodel2")
	submodel2.SubmodelElements = []model.SubmodelElement{someElement}

	return submodel1, submodel2, listElement, elementList
}

func TestStoreRetrieve(t *testing.T) {
	t.Parallel()

	aas1, aas2 := newTestShells()
	objectStore := NewObjectStore()
	require.NoError(t, objectStore.Add(aas1))
	require.NoError(t, objectStore.Add(aas2))
	require.True(t, objectStore.Contains(aas1))

	prop := model.NewProperty(model.DATATYPEDEFXSD_STRING)
	prop.IdShort = "test"
	require.False(t, objectStore.ContainsID(prop.IdShort))

	// Re-adding the identical object is a no-op.
	require.NoError(t, objectStore.Add(aas1))
	require.Equal(t, 2, objectStore.Len())

	aas3 := model.NewAssetAdministrationShell("urn:x-test:aas1", model.AssetInformation{
		//nolint:all
		GlobalAssetId: "http://acplt.org/TestAsset/",
		AssetKind:     model.ASSETKIND_NOT_APPLICABLE,
	})
	err := objectStore.Add(aas3)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)
	require.Contains(t, err.Error(), "urn:x-test:aas1")
	require.Equal(t, 2, objectStore.Len())

	got, err := objectStore.GetIdentifiable("urn:x-test:aas1")
	require.NoError(t, err)
	require.Same(t, aas1, got)
	require.Same(t, aas1, objectStore.Get("urn:x-test:aas1", nil))

	objectStore.Discard(aas1)
	objectStore.Discard(aas1)
	_, err = objectStore.GetIdentifiable("urn:x-test:aas1")
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, objectStore.Get("urn:x-test:aas1", nil))
	require.Equal(t, 1, objectStore.Len())
}

func TestStoreDiscardDifferentObject(t *testing.T) {
	t.Parallel()

	aas1, _ := newTestShells()
	other := model.NewAssetAdministrationShell("urn:x-test:aas1",
		model.AssetInformation{AssetKind: model.ASSETKIND_TYPE})

	objectStore := NewObjectStore(aas1)
	objectStore.Discard(other)
	require.True(t, objectStore.Contains(aas1))
}

func TestStoreUpdate(t *testing.T) {
	t.Parallel()

	aas1, aas2 := newTestShells()
	objectStore1 := NewObjectStore(aas1)
	objectStore2 := NewObjectStore(aas2)
	require.NoError(t, objectStore1.Update(objectStore2.All()))
	require.True(t, objectStore1.Contains(aas2))
}

func TestStoreAllInsertionOrder(t *testing.T) {
	t.Parallel()

	aas1, aas2 := newTestShells()
	submodel1, _, _, _ := newTestSubmodels()
	objectStore := NewObjectStore(aas2, submodel1, aas1)
	objectStore.Discard(submodel1)
	require.NoError(t, objectStore.Add(submodel1))

	all := objectStore.All()
	require.Len(t, all, 3)
	require.Same(t, aas2, all[0])
	require.Same(t, aas1, all[1])
	require.Same(t, submodel1, all[2])
}

func TestProviderMultiplexer(t *testing.T) {
	t.Parallel()

	aas1, aas2 := newTestShells()
	submodel1, submodel2, _, _ := newTestSubmodels()
	aasObjectStore := NewObjectStore(aas1, aas2)
	submodelObjectStore := NewObjectStore(submodel1, submodel2)

	multiplexer := NewMultiplexer(aasObjectStore, submodelObjectStore)
	got, err := multiplexer.GetIdentifiable("urn:x-test:aas1")
	require.NoError(t, err)
	require.Same(t, aas1, got)

	got, err = multiplexer.GetIdentifiable("urn:x-test:submodel1")
	require.NoError(t, err)
	require.Same(t, submodel1, got)

	_, err = multiplexer.GetIdentifiable("urn:x-test:submodel3")
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "2 consulted providers")
}

func TestGetReferable(t *testing.T) {
	t.Parallel()

	submodel1, _, listElement, _ := newTestSubmodels()
	objectStore := NewObjectStore(submodel1)

	referable, err := objectStore.GetReferable("urn:x-test:submodel1", "list_1")
	require.NoError(t, err)
	require.Same(t, model.Referable(listElement), referable)

	_, err = objectStore.GetReferable("urn:x-test:submodel1", "no_such_element")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = objectStore.GetReferable("urn:x-test:submodel3", "list_1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestChildrenOfReferable(t *testing.T) {
	t.Parallel()

	submodel1, _, listElement, elementList := newTestSubmodels()
	objectStore := NewObjectStore(submodel1)

	children, err := objectStore.ChildrenOfReferable("urn:x-test:submodel1", "ExampleSubmodelList")
	require.NoError(t, err)
	require.Contains(t, children, model.Referable(listElement))
	require.Contains(t, children, model.Referable(elementList.Value[1]))
}

func TestParentOfReferable(t *testing.T) {
	t.Parallel()

	submodel1, submodel2, _, elementList := newTestSubmodels()
	objectStore := NewObjectStore(submodel1, submodel2)

	parent, err := objectStore.ParentOfReferable("list_1")
	require.NoError(t, err)
	require.Same(t, model.Referable(elementList), parent)

	parent, err = objectStore.ParentOfReferable("some_blob")
	require.NoError(t, err)
	require.Same(t, model.Referable(submodel1), parent)

	_, err = objectStore.ParentOfReferable("unrelated")
	require.ErrorIs(t, err, ErrNotFound)
}
