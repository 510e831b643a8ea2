package models

// DialogStep identifies where a conversation currently is. Init and
// Executed are re-entrant: the turn after Executed starts over from a
// fresh Init state.
type DialogStep string

const (
	StepInit          DialogStep = "init"
	StepAskAmount     DialogStep = "ask_amount"
	StepAskPocket     DialogStep = "ask_pocket"
	StepAskPocketFrom DialogStep = "ask_pocket_from"
	StepAskPocketTo   DialogStep = "ask_pocket_to"
	StepAskNote       DialogStep = "ask_note"
	StepConfirm       DialogStep = "confirm"
	StepExecuted      DialogStep = "executed"
)

// IsAskStep reports whether the step expects the next message to be a
// direct answer to a single slot.
func (s DialogStep) IsAskStep() bool {
	switch s {
	case StepAskAmount, StepAskPocket, StepAskPocketFrom, StepAskPocketTo, StepAskNote:
		return true
	}
	return false
}

// DialogState is the per-conversation slot state. It is a plain
// serializable struct: the session store round-trips it through JSON
// between turns, so it must hold no live references.
type DialogState struct {
	Intent     Intent        `json:"intent,omitempty"`
	Amount     int64         `json:"amount,omitempty"`
	Pocket     *PocketOption `json:"pocket,omitempty"`
	PocketFrom *PocketOption `json:"pocket_from,omitempty"`
	PocketTo   *PocketOption `json:"pocket_to,omitempty"`
	Note       string        `json:"note,omitempty"`
	NoteAsked  bool          `json:"note_asked,omitempty"`
	Step       DialogStep    `json:"step,omitempty"`
	Confirmed  bool          `json:"confirmed,omitempty"`
}

// NewDialogState returns the Init defaults.
func NewDialogState() DialogState {
	return DialogState{Step: StepInit}
}

// Normalize fills defaults into a state loaded from an unknown or partial
// shape, so older persisted sessions keep working.
func (s DialogState) Normalize() DialogState {
	if s.Step == "" {
		s.Step = StepInit
	}
	return s
}

// Clone returns a deep copy; the state machine never mutates the caller's
// copy in place.
func (s DialogState) Clone() DialogState {
	out := s
	out.Pocket = clonePocket(s.Pocket)
	out.PocketFrom = clonePocket(s.PocketFrom)
	out.PocketTo = clonePocket(s.PocketTo)
	return out
}

func clonePocket(p *PocketOption) *PocketOption {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
