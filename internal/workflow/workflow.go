package workflow

import (
	"cotizador/internal/domain"
	"cotizador/internal/port"
	"cotizador/internal/rules"
)

// Workflow is the step state machine of one quotation journey. Indices run
// 0..total-1; Advance only moves when the current step's battery validates,
// Retreat always succeeds, and no transition skips an index.
type Workflow struct {
	state    domain.StepState
	steps    []*rules.Composite
	renderer port.Renderer
}

// New builds a workflow over one composite validator per step, starting at
// the given index (0 for a fresh journey, the persisted index on resume).
func New(steps []*rules.Composite, current int, renderer port.Renderer) *Workflow {
	if current < 0 {
		current = 0
	}
	if current > len(steps)-1 {
		current = len(steps) - 1
	}
	return &Workflow{
		state:    domain.StepState{Current: current, Total: len(steps)},
		steps:    steps,
		renderer: renderer,
	}
}

// State returns the current step position.
func (w *Workflow) State() domain.StepState { return w.state }

// Advance validates the current step against the snapshot and, on success,
// moves one step forward. On the final step a valid snapshot leaves the
// index unchanged; the journey is complete. Violations and cleared fields
// are pushed to the renderer either way so the widget state stays in sync.
func (w *Workflow) Advance(snap domain.FormSnapshot) rules.Result {
	result := w.steps[w.state.Current].Validate(snap)

	for _, fieldID := range result.ClearedFields {
		w.renderer.ClearFieldError(fieldID)
	}
	for _, v := range result.Violations {
		w.renderer.ShowFieldError(v.FieldID, v.Message)
	}

	if result.Valid && w.state.Current < w.state.Total-1 {
		w.state.Current++
		w.renderer.RenderStep(w.state.Current)
	}
	return result
}

// Retreat moves one step back, floored at 0. It never fails and never
// validates: data already entered stays untouched.
func (w *Workflow) Retreat() {
	if w.state.Current > 0 {
		w.state.Current--
		w.renderer.RenderStep(w.state.Current)
	}
}

// ResetOnOverflow is the corrective gate outside the normal sequence: when a
// party-size style limit is exceeded, collected selections are dropped and
// the current step is re-rendered. It is not a validation failure and does
// not move the index. The removed field ids are returned so the caller can
// purge them from its snapshot.
func (w *Workflow) ResetOnOverflow(snap domain.FormSnapshot, selectionFields []string) []string {
	var removed []string
	for _, fieldID := range selectionFields {
		if _, ok := snap[fieldID]; ok {
			delete(snap, fieldID)
			removed = append(removed, fieldID)
		}
		w.renderer.ClearFieldError(fieldID)
	}
	w.renderer.RenderStep(w.state.Current)
	return removed
}
