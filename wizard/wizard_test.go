package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeSections() []Section {
	return []Section{
		{
			Title: "One",
			Questions: []Question{
				{Key: "a", Type: "text"},
				{Key: "b", Type: "text"},
			},
		},
		{
			Title: "Two",
			Questions: []Question{
				{Key: "c", Type: "number"},
				{
					Key: "d", Type: "number",
					ShowIf: func(f Form) bool { return NumberField(f, "c") > 0 },
				},
			},
		},
		{
			Title: "Three",
			Questions: []Question{
				{Key: "e", Type: "richtext"},
			},
		},
	}
}

func TestEngine_InitialState(t *testing.T) {
	e := NewEngine(threeSections(), nil)
	assert.Equal(t, 0, e.CurrentStep())
	assert.Equal(t, 0, e.CurrentSubStep())
}

func TestEngine_GoNextWithinSection(t *testing.T) {
	e := NewEngine(threeSections(), nil)
	e.GoNext()
	assert.Equal(t, 0, e.CurrentStep())
	assert.Equal(t, 1, e.CurrentSubStep())
}

func TestEngine_GoNextCrossesSectionBoundary(t *testing.T) {
	e := NewEngine(threeSections(), nil)
	e.GoNext()
	e.GoNext()
	assert.Equal(t, 1, e.CurrentStep())
	assert.Equal(t, 0, e.CurrentSubStep())
}

func TestEngine_GoNextAtEndIsNoOp(t *testing.T) {
	e := NewEngine(threeSections(), Form{"c": 1.0})
	for i := 0; i < 10; i++ {
		e.GoNext()
	}
	assert.Equal(t, 2, e.CurrentStep())
	assert.Equal(t, 0, e.CurrentSubStep())
	e.GoNext()
	assert.Equal(t, 2, e.CurrentStep())
	assert.Equal(t, 0, e.CurrentSubStep())
}

func TestEngine_GoPrevAtStartIsNoOp(t *testing.T) {
	e := NewEngine(threeSections(), nil)
	e.GoPrev()
	assert.Equal(t, 0, e.CurrentStep())
	assert.Equal(t, 0, e.CurrentSubStep())
}

func TestEngine_GoPrevCrossesSectionBoundary(t *testing.T) {
	e := NewEngine(threeSections(), nil)
	e.GoNext()
	e.GoNext() // at (1,0)
	e.GoPrev()
	assert.Equal(t, 0, e.CurrentStep())
	assert.Equal(t, 1, e.CurrentSubStep())
}

func TestEngine_HiddenQuestionExcludedFromVisibleSet(t *testing.T) {
	e := NewEngine(threeSections(), nil)
	visible := e.VisibleQuestions(1)
	require.Len(t, visible, 1)
	assert.Equal(t, "c", visible[0].Key)

	e.SetField("c", 2.0)
	visible = e.VisibleQuestions(1)
	require.Len(t, visible, 2)
	assert.Equal(t, "d", visible[1].Key)
}

func TestEngine_StringZeroDoesNotTriggerDependentQuestion(t *testing.T) {
	e := NewEngine(threeSections(), nil)
	e.SetField("c", "0")
	visible := e.VisibleQuestions(1)
	require.Len(t, visible, 1)
	assert.Equal(t, "c", visible[0].Key)
}

func TestEngine_SetFieldIsImmutable(t *testing.T) {
	e := NewEngine(threeSections(), nil)
	before := e.Form()
	e.SetField("a", "hello")
	_, existed := before["a"]
	assert.False(t, existed)
	assert.Equal(t, "hello", e.Form()["a"])
}

func TestEngine_SetFieldDoesNotNavigate(t *testing.T) {
	e := NewEngine(threeSections(), nil)
	e.SetField("a", "x")
	assert.Equal(t, 0, e.CurrentStep())
	assert.Equal(t, 0, e.CurrentSubStep())
}

func TestEngine_ActiveQuestionHiddenAdvancesCursor(t *testing.T) {
	e := NewEngine(threeSections(), Form{"c": 5.0})
	e.GoNext()
	e.GoNext()
	e.GoNext() // at (1,1) = question "d"
	require.Equal(t, 1, e.CurrentStep())
	require.Equal(t, 1, e.CurrentSubStep())

	// Hiding "d" while it is active clamps the cursor back into range
	e.SetField("c", 0.0)
	q, ok := e.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "c", q.Key)
}

func TestEngine_SkipsSectionWithNoVisibleQuestions(t *testing.T) {
	sections := []Section{
		{Title: "A", Questions: []Question{{Key: "a"}}},
		{
			Title: "B",
			Questions: []Question{
				{Key: "b", ShowIf: func(f Form) bool { return false }},
			},
		},
		{Title: "C", Questions: []Question{{Key: "c"}}},
	}
	e := NewEngine(sections, nil)
	e.GoNext()
	assert.Equal(t, 2, e.CurrentStep())
	assert.Equal(t, 0, e.CurrentSubStep())

	e.GoPrev()
	assert.Equal(t, 0, e.CurrentStep())
}

func TestSurveySections_DischargeDetailVisibility(t *testing.T) {
	e := NewEngine(SurveySections(), nil)

	// Scenario: entering "0" must not reveal the dependent questions
	e.SetField("discharges", "0")
	dischargeStep := 3
	visible := e.VisibleQuestions(dischargeStep)
	require.Len(t, visible, 1)
	assert.Equal(t, "discharges", visible[0].Key)

	e.SetField("discharges", "2")
	visible = e.VisibleQuestions(dischargeStep)
	assert.Len(t, visible, 5)
}

func TestIncidentSections_MedicalDetailVisibility(t *testing.T) {
	e := NewEngine(IncidentSections(), nil)
	medicalStep := 2

	visible := e.VisibleQuestions(medicalStep)
	assert.Len(t, visible, 2)

	e.SetField("medicalResponseRequired", true)
	visible = e.VisibleQuestions(medicalStep)
	assert.Len(t, visible, 3)
	assert.Equal(t, "medicalResponseDetails", visible[1].Key)
}

func TestNumberField_Coercion(t *testing.T) {
	f := Form{"a": 2.5, "b": "3", "c": "", "d": "junk", "e": 4}
	assert.Equal(t, 2.5, NumberField(f, "a"))
	assert.Equal(t, 3.0, NumberField(f, "b"))
	assert.Equal(t, 0.0, NumberField(f, "c"))
	assert.Equal(t, 0.0, NumberField(f, "d"))
	assert.Equal(t, 4.0, NumberField(f, "e"))
	assert.Equal(t, 0.0, NumberField(f, "missing"))
}

func TestBoolField_Coercion(t *testing.T) {
	f := Form{"a": true, "b": "true", "c": "yes", "d": "no", "e": 1}
	assert.True(t, BoolField(f, "a"))
	assert.True(t, BoolField(f, "b"))
	assert.True(t, BoolField(f, "c"))
	assert.False(t, BoolField(f, "d"))
	assert.False(t, BoolField(f, "e"))
}
