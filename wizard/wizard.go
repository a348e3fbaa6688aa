// Package wizard implements the shared multi-step form engine behind the
// director survey and incident report flows: an ordered list of sections,
// each holding questions whose visibility can depend on answers already
// given, with a (section, sub-step) cursor advanced by GoNext/GoPrev.
package wizard

import (
	"strconv"
	"strings"
)

// Form is the mutable field state of an in-progress report.
type Form map[string]interface{}

// Question is one prompt within a section. ShowIf, when set, is re-evaluated
// against current form state on every access; a nil ShowIf means always
// visible.
type Question struct {
	Key    string
	Type   string // number, text, richtext, radio, group
	Label  string
	ShowIf func(Form) bool
}

// Section is one wizard step with a human title and an icon tag.
type Section struct {
	Title     string
	Tag       string
	Questions []Question
}

// Engine is the step/sub-step cursor over a section list. The sub-step index
// is relative to the currently visible question set (filter-then-index), so
// it can shift if earlier answers change.
type Engine struct {
	sections []Section
	form     Form
	step     int
	subStep  int
}

func NewEngine(sections []Section, initial Form) *Engine {
	form := Form{}
	for k, v := range initial {
		form[k] = v
	}
	e := &Engine{sections: sections, form: form}
	e.sync()
	return e
}

func (e *Engine) CurrentStep() int    { return e.step }
func (e *Engine) CurrentSubStep() int { return e.subStep }

// Form returns the current field state.
func (e *Engine) Form() Form { return e.form }

// Sections returns the section definitions the engine was built over.
func (e *Engine) Sections() []Section { return e.sections }

// SetField replaces one field immutably; the previous form map is never
// mutated. Navigation is not triggered, but the cursor is re-synced so a
// now-hidden active question is skipped.
func (e *Engine) SetField(key string, value interface{}) {
	next := make(Form, len(e.form)+1)
	for k, v := range e.form {
		next[k] = v
	}
	next[key] = value
	e.form = next
	e.sync()
}

// VisibleQuestions filters the section's questions by their predicates
// against current form state.
func (e *Engine) VisibleQuestions(step int) []Question {
	if step < 0 || step >= len(e.sections) {
		return nil
	}
	var visible []Question
	for _, q := range e.sections[step].Questions {
		if q.ShowIf == nil || q.ShowIf(e.form) {
			visible = append(visible, q)
		}
	}
	return visible
}

// CurrentQuestion returns the active question, if any section is visible.
func (e *Engine) CurrentQuestion() (Question, bool) {
	visible := e.VisibleQuestions(e.step)
	if e.subStep < len(visible) {
		return visible[e.subStep], true
	}
	return Question{}, false
}

// GoNext advances to the next visible sub-step, crossing into the next
// section with visible questions when the current one is exhausted. At the
// last visible sub-step of the last section it is a no-op; submission is an
// explicit action, not a transition.
func (e *Engine) GoNext() {
	visible := e.VisibleQuestions(e.step)
	if e.subStep < len(visible)-1 {
		e.subStep++
		return
	}
	for s := e.step + 1; s < len(e.sections); s++ {
		if len(e.visibleAt(s)) > 0 {
			e.step = s
			e.subStep = 0
			return
		}
	}
}

// GoPrev is the mirror of GoNext, landing on the last visible sub-step of
// the nearest earlier section. A no-op at the very first sub-step.
func (e *Engine) GoPrev() {
	if e.subStep > 0 {
		e.subStep--
		return
	}
	for s := e.step - 1; s >= 0; s-- {
		if visible := e.visibleAt(s); len(visible) > 0 {
			e.step = s
			e.subStep = len(visible) - 1
			return
		}
	}
}

func (e *Engine) visibleAt(step int) []Question {
	return e.VisibleQuestions(step)
}

// sync clamps the cursor after form changes: if the active sub-step fell off
// the end of the visible set, move to the last visible question; if the
// whole section lost its questions, skip forward (or back) to one that still
// has some.
func (e *Engine) sync() {
	visible := e.VisibleQuestions(e.step)
	if len(visible) == 0 {
		for s := e.step + 1; s < len(e.sections); s++ {
			if len(e.visibleAt(s)) > 0 {
				e.step = s
				e.subStep = 0
				return
			}
		}
		for s := e.step - 1; s >= 0; s-- {
			if vis := e.visibleAt(s); len(vis) > 0 {
				e.step = s
				e.subStep = len(vis) - 1
				return
			}
		}
		e.subStep = 0
		return
	}
	if e.subStep >= len(visible) {
		e.subStep = len(visible) - 1
	}
}

// NumberField coerces a form value to a number for ShowIf predicates.
// Strings are parsed; an empty or unparseable value is 0, so the string "0"
// and an unanswered question both read as zero.
func NumberField(f Form, key string) float64 {
	switch v := f[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// BoolField coerces a form value to a boolean for ShowIf predicates.
func BoolField(f Form, key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true") || v == "yes"
	default:
		return false
	}
}

// TextField coerces a form value to a trimmed string.
func TextField(f Form, key string) string {
	if s, ok := f[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
