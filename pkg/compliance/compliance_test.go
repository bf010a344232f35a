package compliance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

func compliantEnvironment() *model.Environment {
	prop := model.NewProperty(model.DATATYPEDEFXSD_INT)
	prop.IdShort = "some_property"
	prop.Value = "1984"

	sm := model.NewSubmodel("urn:x-test:submodel1")
	sm.IdShort = "TestSubmodel"
	sm.SubmodelElements = []model.SubmodelElement{prop}

	aas := model.NewAssetAdministrationShell("urn:x-test:aas1",
		model.AssetInformation{AssetKind: model.ASSETKIND_INSTANCE})
	aas.IdShort = "TestShell"
	aas.Submodels = []model.Reference{*model.NewSubmodelReference("urn:x-test:submodel1")}

	env := &model.Environment{}
	env.Add(aas)
	env.Add(sm)
	env.Add(model.NewConceptDescription("urn:x-test:cd1"))
	return env
}

func TestCheckCompliantEnvironment(t *testing.T) {
	t.Parallel()

	report := NewChecker().CheckEnvironment(compliantEnvironment())
	require.True(t, report.Compliant(), "unexpected findings: %v", report.Findings)
	require.NotEmpty(t, report.ID)
}

func TestCheckDanglingSubmodelReference(t *testing.T) {
	t.Parallel()

	env := compliantEnvironment()
	env.Submodels = nil

	report := NewChecker().CheckEnvironment(env)
	require.True(t, report.Compliant(), "dangling references are warnings, not errors")

	var warned bool
	for _, f := range report.Findings {
		if f.Level == LevelWarning {
			warned = true
			require.Contains(t, f.Message, "urn:x-test:submodel1")
		}
	}
	require.True(t, warned)
}

func TestCheckDuplicateIdentifier(t *testing.T) {
	t.Parallel()

	env := compliantEnvironment()
	env.Add(model.NewSubmodel("urn:x-test:submodel1"))

	report := NewChecker().CheckEnvironment(env)
	require.False(t, report.Compliant())
	require.Contains(t, report.Errors()[0].Message, "duplicate identifier")
}

func TestCheckInvalidIdShort(t *testing.T) {
	t.Parallel()

	env := compliantEnvironment()
	env.Submodels[0].SubmodelElements[0].(*model.Property).IdShort = "1_starts_with_digit"

	report := NewChecker().CheckEnvironment(env)
	require.False(t, report.Compliant())
}

func TestCheckDuplicateIdShort(t *testing.T) {
	t.Parallel()

	first := model.NewProperty(model.DATATYPEDEFXSD_STRING)
	first.IdShort = "twin"
	second := model.NewProperty(model.DATATYPEDEFXSD_STRING)
	second.IdShort = "twin"

	env := compliantEnvironment()
	env.Submodels[0].SubmodelElements = []model.SubmodelElement{first, second}

	report := NewChecker().CheckEnvironment(env)
	require.False(t, report.Compliant())
	require.Contains(t, report.Errors()[0].Message, "duplicate idShort")
}

func TestCheckValueType(t *testing.T) {
	t.Parallel()

	env := compliantEnvironment()
	env.Submodels[0].SubmodelElements[0].(*model.Property).Value = "not a number"

	report := NewChecker().CheckEnvironment(env)
	require.False(t, report.Compliant())
	require.Contains(t, report.Errors()[0].Message, "xs:int")
}

func TestCheckInvalidLanguageTag(t *testing.T) {
	t.Parallel()

	mlp := model.NewMultiLanguageProperty()
	mlp.IdShort = "mlp"
	mlp.Value = []model.LangStringTextType{{Language: "not a language tag", Text: "text"}}

	env := compliantEnvironment()
	env.Submodels[0].SubmodelElements = []model.SubmodelElement{mlp}

	report := NewChecker().CheckEnvironment(env)
	require.False(t, report.Compliant())
}

func TestCheckListConstraints(t *testing.T) {
	t.Parallel()

	namedChild := model.NewProperty(model.DATATYPEDEFXSD_STRING)
	namedChild.IdShort = "not_allowed_here"
	wrongType := model.NewBlob("application/octet-stream")

	list := model.NewSubmodelElementList(model.AASSUBMODELELEMENTS_PROPERTY)
	list.IdShort = "list_1"
	list.Value = []model.SubmodelElement{namedChild, wrongType}

	env := compliantEnvironment()
	env.Submodels[0].SubmodelElements = []model.SubmodelElement{list}

	report := NewChecker().CheckEnvironment(env)
	require.False(t, report.Compliant())

	messages := make([]string, 0, len(report.Errors()))
	for _, f := range report.Errors() {
		messages = append(messages, f.Message)
	}
	require.Contains(t, messages, "elements of a SubmodelElementList shall not have an idShort")
}

func TestCheckDuplicateQualifierType(t *testing.T) {
	t.Parallel()

	env := compliantEnvironment()
	env.Submodels[0].Qualifiers = []model.Qualifier{
		{Type: "life-cycle", ValueType: model.DATATYPEDEFXSD_STRING},
		{Type: "life-cycle", ValueType: model.DATATYPEDEFXSD_STRING},
	}

	report := NewChecker().CheckEnvironment(env)
	require.False(t, report.Compliant())
	require.Contains(t, report.Errors()[0].Message, "duplicate qualifier type")
}

func TestCheckFile(t *testing.T) {
	t.Parallel()

	doc := `{"submodels": [
		{"modelType": "Submodel", "id": "urn:x-test:submodel1", "idShort": "TestSubmodel"}
	]}`
	path := filepath.Join(t.TempDir(), "environment.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	report, err := NewChecker().CheckFile(path)
	require.NoError(t, err)
	require.True(t, report.Compliant())

	_, err = NewChecker().CheckFile(filepath.Join(t.TempDir(), "environment.aasx"))
	require.Error(t, err)
}
