package model

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

const nestedSubmodelJSON = `{
	"modelType": "Submodel",
	"id": "urn:x-test:submodel1",
	"idShort": "TestSubmodel",
	"submodelElements": [
		{
			"modelType": "Property",
			"idShort": "some_property",
			"valueType": "xs:int",
			"value": "1984"
		},
		{
			"modelType": "Blob",
			"idShort": "some_blob",
			"contentType": "application/octet-stream",
			"value": "3q2+7w=="
		},
		{
			"modelType": "SubmodelElementCollection",
			"idShort": "collection",
			"value": [
				{
					"modelType": "MultiLanguageProperty",
					"idShort": "mlp",
					"value": [{"language": "de", "text": "Beispiel"}]
				}
			]
		},
		{
			"modelType": "SubmodelElementList",
			"idShort": "list_1",
			"typeValueListElement": "Property",
			"value": [
				{"modelType": "Property", "valueType": "xs:string", "value": "a"},
				{"modelType": "Property", "valueType": "xs:string", "value": "b"}
			]
		}
	]
}`

func TestSubmodelUnmarshalPolymorphicElements(t *testing.T) {
	t.Parallel()

	var sm Submodel
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(nestedSubmodelJSON), &sm))
	require.Equal(t, "urn:x-test:submodel1", sm.ID)
	require.Len(t, sm.SubmodelElements, 4)

	prop, ok := sm.SubmodelElements[0].(*Property)
	require.True(t, ok)
	require.Equal(t, DATATYPEDEFXSD_INT, prop.ValueType)
	require.Equal(t, "1984", prop.Value)

	blob, ok := sm.SubmodelElements[1].(*Blob)
	require.True(t, ok)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, blob.Value)

	collection, ok := sm.SubmodelElements[2].(*SubmodelElementCollection)
	require.True(t, ok)
	require.Len(t, collection.Value, 1)
	mlp, ok := collection.Value[0].(*MultiLanguageProperty)
	require.True(t, ok)
	require.Equal(t, "Beispiel", mlp.Value[0].Text)

	list, ok := sm.SubmodelElements[3].(*SubmodelElementList)
	require.True(t, ok)
	require.Equal(t, AASSUBMODELELEMENTS_PROPERTY, list.TypeValueListElement)
	require.Len(t, list.Value, 2)
}

func TestSubmodelMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	var sm Submodel
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	require.NoError(t, json.Unmarshal([]byte(nestedSubmodelJSON), &sm))

	data, err := json.Marshal(&sm)
	require.NoError(t, err)

	var again Submodel
	require.NoError(t, json.Unmarshal(data, &again))
	require.Equal(t, sm, again)
}

func TestUnmarshalSubmodelElementUnknownModelType(t *testing.T) {
	t.Parallel()

	_, err := UnmarshalSubmodelElement([]byte(`{"modelType": "Frobnicator"}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Frobnicator")

	_, err = UnmarshalSubmodelElement([]byte(`{"idShort": "missing"}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "modelType")
}

func TestAssertSubmodelRequired(t *testing.T) {
	t.Parallel()

	sm := NewSubmodel("urn:x-test:submodel1")
	require.NoError(t, AssertSubmodelRequired(*sm))

	sm.ID = ""
	err := AssertSubmodelRequired(*sm)
	require.Error(t, err)
	var reqErr *RequiredError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, "id", reqErr.Field)
}

func TestAssertPropertyRequired(t *testing.T) {
	t.Parallel()

	prop := NewProperty(DATATYPEDEFXSD_STRING)
	prop.IdShort = "ExampleProperty"
	require.NoError(t, AssertPropertyRequired(*prop))

	prop.ValueType = ""
	require.Error(t, AssertPropertyRequired(*prop))
}

func TestReferenceEqual(t *testing.T) {
	t.Parallel()

	a := NewSubmodelReference("urn:x-test:submodel1")
	b := NewSubmodelReference("urn:x-test:submodel1")
	c := NewSubmodelReference("urn:x-test:submodel2")
	require.True(t, a.Equal(*b))
	require.False(t, a.Equal(*c))
	require.False(t, a.Equal(*NewExternalReference("urn:x-test:submodel1")))
}

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	require.True(t, KEYTYPES_SUBMODEL.IsValid())
	require.False(t, KeyTypes("Submodels").IsValid())

	kind, err := NewAssetKindFromValue("Instance")
	require.NoError(t, err)
	require.Equal(t, ASSETKIND_INSTANCE, kind)

	_, err = NewAssetKindFromValue("instance")
	require.Error(t, err)
}

func TestDescend(t *testing.T) {
	t.Parallel()

	inner := NewProperty(DATATYPEDEFXSD_STRING)
	inner.IdShort = "inner"
	collection := NewSubmodelElementCollection()
	collection.IdShort = "outer"
	collection.Value = []SubmodelElement{inner}
	sm := NewSubmodel("urn:x-test:submodel1")
	sm.SubmodelElements = []SubmodelElement{collection}

	all := Descend(sm)
	require.Len(t, all, 2)
	require.Equal(t, "outer", all[0].GetIdShort())
	require.Equal(t, "inner", all[1].GetIdShort())
}

func TestQualifierHelpers(t *testing.T) {
	t.Parallel()

	prop := NewProperty(DATATYPEDEFXSD_STRING)
	prop.Qualifiers = []Qualifier{
		{Type: "life-cycle", ValueType: DATATYPEDEFXSD_STRING, Value: "prototype"},
		{Type: "unit", ValueType: DATATYPEDEFXSD_STRING, Value: "mm"},
	}

	q, ok := QualifierByType(prop, "unit")
	require.True(t, ok)
	require.Equal(t, "mm", q.Value)

	require.True(t, RemoveQualifierByType(prop, "life-cycle"))
	require.False(t, RemoveQualifierByType(prop, "life-cycle"))
	require.Len(t, prop.GetQualifiers(), 1)
}

func TestEntityConstraints(t *testing.T) {
	t.Parallel()

	entity := NewEntity(ENTITYTYPE_SELF_MANAGED_ENTITY)
	entity.IdShort = "DemoEntity"
	require.Error(t, AssertEntityConstraints(*entity))

	//nolint:all
	entity.GlobalAssetId = "http://acplt.org/TestAsset"
	require.NoError(t, AssertEntityConstraints(*entity))

	coManaged := NewEntity(ENTITYTYPE_CO_MANAGED_ENTITY)
	//nolint:all
	coManaged.GlobalAssetId = "http://acplt.org/TestAsset"
	require.Error(t, AssertEntityConstraints(*coManaged))
}

func TestAssertSubmodelElementConstraintsNested(t *testing.T) {
	t.Parallel()

	inner := NewProperty("xs:integer32")
	inner.IdShort = "some_property"
	collection := &SubmodelElementCollection{
		ModelType: "SubmodelElementCollection",
		IdShort:   "collection",
		Value:     []SubmodelElement{inner},
	}

	err := AssertSubmodelElementConstraints(collection)
	require.Error(t, err)
	var parsingErr *ParsingError
	require.ErrorAs(t, err, &parsingErr)

	inner.ValueType = DATATYPEDEFXSD_STRING
	require.NoError(t, AssertSubmodelElementConstraints(collection))

	inner.Qualifiers = []Qualifier{{Type: "ExpressionSemantic", ValueType: "xs:nope"}}
	require.Error(t, AssertSubmodelElementConstraints(collection))
	inner.Qualifiers = nil

	sm := NewSubmodel("urn:x-test:submodel1")
	sm.SubmodelElements = []SubmodelElement{collection}
	require.NoError(t, AssertSubmodelConstraints(*sm))

	inner.ValueType = "xs:integer32"
	require.Error(t, AssertSubmodelConstraints(*sm))
}
