package mvc

// Model is the data a handler hands to the rendering path.
type Model map[string]any

type resultKind uint8

const (
	resultNone resultKind = iota
	resultOutcome
	resultFlag
)

// Result is the value a verb method returns to steer the rest of the
// request lifecycle. Build one with Continue, Stop, or Flag. The zero Result
// stops the request.
type Result struct {
	kind  resultKind
	cont  bool
	model Model
}

// Continue runs the After hook and hands model to the renderer.
func Continue(model Model) Result {
	return Result{kind: resultOutcome, cont: true, model: model}
}

// Stop ends the request after the verb method. After does not run and no
// model is rendered.
func Stop() Result {
	return Result{kind: resultOutcome}
}

// Flag is a bare continuation flag. Flag(true) runs After but never carries a
// model; use Continue to pass data to a template.
func Flag(ok bool) Result {
	return Result{kind: resultFlag, cont: ok}
}

// Continues reports whether the result lets the request proceed to After.
func (res Result) Continues() bool {
	cont, _ := interpret(res)
	return cont
}

// interpret normalizes a Result into a continuation decision and the model to
// adopt. Outcomes are checked before flags; anything else stops.
func interpret(res Result) (bool, Model) {
	switch res.kind {
	case resultOutcome:
		if !res.cont {
			return false, Model{}
		}
		if res.model == nil {
			return true, Model{}
		}
		return true, res.model
	case resultFlag:
		return res.cont, Model{}
	default:
		return false, Model{}
	}
}
