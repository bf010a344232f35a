package xmlization

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rwth-iat/basyx-go-framework/pkg/jsonization"
	"github.com/rwth-iat/basyx-go-framework/pkg/model"
	"github.com/rwth-iat/basyx-go-framework/pkg/store"
)

const environmentXML = `<?xml version="1.0" encoding="UTF-8"?>
<environment xmlns="https://admin-shell.io/aas/3/0">
  <assetAdministrationShells>
    <assetAdministrationShell>
      <idShort>TestShell</idShort>
      <id>urn:x-test:aas1</id>
      <assetInformation>
        <assetKind>Instance</assetKind>
        <globalAssetId>http://acplt.org/TestAsset/</globalAssetId>
      </assetInformation>
      <submodels>
        <reference>
          <type>ModelReference</type>
          <keys>
            <key>
              <type>Submodel</type>
              <value>urn:x-test:submodel1</value>
            </key>
          </keys>
        </reference>
      </submodels>
    </assetAdministrationShell>
  </assetAdministrationShells>
  <submodels>
    <submodel>
      <id>urn:x-test:submodel1</id>
      <submodelElements>
        <property>
          <idShort>some_property</idShort>
          <valueType>xs:int</valueType>
          <value>1984</value>
        </property>
        <blob>
          <idShort>some_blob</idShort>
          <value>3q2+7w==</value>
          <contentType>application/octet-stream</contentType>
        </blob>
        <submodelElementCollection>
          <idShort>collection</idShort>
          <value>
            <multiLanguageProperty>
              <idShort>mlp</idShort>
              <value>
                <langStringTextType>
                  <language>de</language>
                  <text>Beispiel</text>
                </langStringTextType>
              </value>
            </multiLanguageProperty>
          </value>
        </submodelElementCollection>
      </submodelElements>
    </submodel>
  </submodels>
  <conceptDescriptions>
    <conceptDescription>
      <id>urn:x-test:cd1</id>
    </conceptDescription>
  </conceptDescriptions>
</environment>`

func TestReadEnvironment(t *testing.T) {
	t.Parallel()

	objectStore, err := ReadEnvironment(strings.NewReader(environmentXML), jsonization.ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, objectStore.Len())

	obj, err := objectStore.GetIdentifiable("urn:x-test:aas1")
	require.NoError(t, err)
	aas, ok := obj.(*model.AssetAdministrationShell)
	require.True(t, ok)
	require.Equal(t, "TestShell", aas.IdShort)
	require.Equal(t, model.ASSETKIND_INSTANCE, aas.AssetInformation.AssetKind)
	require.True(t, aas.HasSubmodelReference(*model.NewSubmodelReference("urn:x-test:submodel1")))

	obj, err = objectStore.GetIdentifiable("urn:x-test:submodel1")
	require.NoError(t, err)
	sm, ok := obj.(*model.Submodel)
	require.True(t, ok)
	require.Len(t, sm.SubmodelElements, 3)

	prop, ok := sm.SubmodelElements[0].(*model.Property)
	require.True(t, ok)
	require.Equal(t, model.DATATYPEDEFXSD_INT, prop.ValueType)
	require.Equal(t, "1984", prop.Value)

	blob, ok := sm.SubmodelElements[1].(*model.Blob)
	require.True(t, ok)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, blob.Value)

	collection, ok := sm.SubmodelElements[2].(*model.SubmodelElementCollection)
	require.True(t, ok)
	require.Len(t, collection.Value, 1)
	mlp, ok := collection.Value[0].(*model.MultiLanguageProperty)
	require.True(t, ok)
	require.Equal(t, "Beispiel", mlp.Value[0].Text)
}

func TestReadEnvironmentPrefixedForm(t *testing.T) {
	t.Parallel()

	doc := `<aas:environment xmlns:aas="https://admin-shell.io/aas/3/0">
	  <aas:submodels>
	    <aas:submodel>
	      <aas:id>urn:x-test:submodel1</aas:id>
	      <aas:submodelElements>
	        <aas:property>
	          <aas:idShort>p</aas:idShort>
	          <aas:valueType>xs:string</aas:valueType>
	          <aas:value>abc</aas:value>
	        </aas:property>
	      </aas:submodelElements>
	    </aas:submodel>
	  </aas:submodels>
	</aas:environment>`
	objectStore, err := ReadEnvironment(strings.NewReader(doc), jsonization.ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, objectStore.Len())

	sm, ok := objectStore.Get("urn:x-test:submodel1", nil).(*model.Submodel)
	require.True(t, ok)
	require.Len(t, sm.SubmodelElements, 1)
	prop, ok := sm.SubmodelElements[0].(*model.Property)
	require.True(t, ok)
	require.Equal(t, "abc", prop.Value)
}

func TestReadEnvironmentMissingNamespace(t *testing.T) {
	t.Parallel()

	doc := `<environment><submodels/></environment>`
	_, err := ReadEnvironment(strings.NewReader(doc), jsonization.ReadOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "required namespace")
}

func TestReadEnvironmentUnknownTopLevelList(t *testing.T) {
	t.Parallel()

	doc := `<environment xmlns="https://admin-shell.io/aas/3/0">
	  <submodels1>
	    <submodel><id>urn:x-test:submodel1</id></submodel>
	  </submodels1>
	  <submodels>
	    <submodel><id>urn:x-test:submodel2</id></submodel>
	  </submodels>
	</environment>`
	objectStore, err := ReadEnvironment(strings.NewReader(doc), jsonization.ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, objectStore.Len())
	require.False(t, objectStore.ContainsID("urn:x-test:submodel1"))
	require.True(t, objectStore.ContainsID("urn:x-test:submodel2"))
}

func TestReadEnvironmentDuplicateInDocument(t *testing.T) {
	t.Parallel()

	doc := `<environment xmlns="https://admin-shell.io/aas/3/0">
	  <submodels>
	    <submodel><id>urn:x-test:submodel1</id></submodel>
	    <submodel><id>urn:x-test:submodel1</id></submodel>
	  </submodels>
	</environment>`
	_, err := ReadEnvironment(strings.NewReader(doc), jsonization.ReadOptions{})
	require.ErrorIs(t, err, store.ErrDuplicateIdentifier)
}

func TestReadEnvironmentExistingObject(t *testing.T) {
	t.Parallel()

	doc := `<environment xmlns="https://admin-shell.io/aas/3/0">
	  <submodels>
	    <submodel><idShort>Replacement</idShort><id>urn:x-test:submodel1</id></submodel>
	  </submodels>
	</environment>`
	existing := model.NewSubmodel("urn:x-test:submodel1")

	objectStore := store.NewObjectStore(existing)
	_, err := ReadEnvironmentInto(objectStore, strings.NewReader(doc), jsonization.ReadOptions{})
	require.ErrorIs(t, err, store.ErrDuplicateIdentifier)

	objectStore = store.NewObjectStore(existing)
	added, err := ReadEnvironmentInto(objectStore, strings.NewReader(doc), jsonization.ReadOptions{IgnoreExisting: true})
	require.NoError(t, err)
	require.Empty(t, added)
	require.True(t, objectStore.Contains(existing))

	objectStore = store.NewObjectStore(existing)
	added, err = ReadEnvironmentInto(objectStore, strings.NewReader(doc), jsonization.ReadOptions{ReplaceExisting: true})
	require.NoError(t, err)
	require.Equal(t, []string{"urn:x-test:submodel1"}, added)
	require.Equal(t, "Replacement", objectStore.Get("urn:x-test:submodel1", nil).GetIdShort())
}

func TestReadEnvironmentInvalidEnumValue(t *testing.T) {
	t.Parallel()

	doc := `<environment xmlns="https://admin-shell.io/aas/3/0">
	  <submodels>
	    <submodel>
	      <id>urn:x-test:submodel1</id>
	      <submodelElements>
	        <property><idShort>p</idShort><valueType>xs:integer32</valueType></property>
	      </submodelElements>
	    </submodel>
	  </submodels>
	</environment>`
	_, err := ReadEnvironment(strings.NewReader(doc), jsonization.ReadOptions{})
	require.Error(t, err)
	var parsingErr *model.ParsingError
	require.ErrorAs(t, err, &parsingErr)
}

func TestWriteEnvironmentRoundTrip(t *testing.T) {
	t.Parallel()

	objectStore, err := ReadEnvironment(strings.NewReader(environmentXML), jsonization.ReadOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteEnvironment(&buf, objectStore))
	require.Contains(t, buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`)
	require.Contains(t, buf.String(), `<aas:environment xmlns:aas="https://admin-shell.io/aas/3/0">`)
	require.Contains(t, buf.String(), `<aas:assetAdministrationShells>`)
	require.NotContains(t, buf.String(), `<environment`)

	again, err := ReadEnvironment(&buf, jsonization.ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, objectStore.All(), again.All())
}

func TestWriteEnvironmentFileRoundTrip(t *testing.T) {
	t.Parallel()

	rel := model.NewRelationshipElement(
		*model.NewSubmodelReference("urn:x-test:submodel2"),
		*model.NewExternalReference("http://acplt.org/TestAsset/"),
	)
	rel.IdShort = "relationship"

	entity := model.NewEntity(model.ENTITYTYPE_SELF_MANAGED_ENTITY)
	entity.IdShort = "entity"
	//nolint:all
	entity.GlobalAssetId = "http://acplt.org/TestAsset/"

	sm := model.NewSubmodel("urn:x-test:submodel1")
	sm.SubmodelElements = []model.SubmodelElement{rel, entity}

	objectStore := store.NewObjectStore(sm)
	path := filepath.Join(t.TempDir(), "environment.xml")
	require.NoError(t, WriteEnvironmentFile(path, objectStore))

	again, err := ReadEnvironmentFile(path, jsonization.ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, objectStore.All(), again.All())
}
