// Package dialog implements the multi-turn state machine that fills the
// slots of a financial command, asks for confirmation and hands a
// fully-resolved execution plan to the executor.
package dialog

import (
	"strings"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/alias"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/logging"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/nlparser"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/textutil"
)

// Turn is the outcome of processing one user message: the successor state,
// a prompt or summary, optional quick-reply pocket options, and — only on
// an affirmed confirmation — a built plan with Execute set.
type Turn struct {
	State   models.DialogState
	Message string
	Options []string
	Execute bool
	Plan    *models.ExecutionPlan
}

// Machine is the dialog state machine. It holds no per-conversation state
// itself; everything lives in the DialogState passed through each call.
type Machine struct {
	log logging.Logger
}

// NewMachine returns a machine logging through log (nil for silent).
func NewMachine(log logging.Logger) *Machine {
	if log == nil {
		log = logging.Nop()
	}
	return &Machine{log: log}
}

var affirmativeTokens = tokenSet(
	"ya", "y", "iya", "yes", "ok", "oke", "okay", "sip", "betul", "benar", "yoi", "gas", "lanjut",
)

var negativeTokens = tokenSet(
	"tidak", "tdk", "ga", "gak", "nggak", "engga", "enggak", "no", "batal", "cancel", "jangan", "batalkan",
)

var noteSkipTokens = tokenSet(
	"tidak", "tdk", "ga", "gak", "nggak", "engga", "enggak", "no", "skip", "lewat", "lewati", "tanpa catatan",
)

func tokenSet(tokens ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// Step processes one user turn. The input state is never mutated; the
// returned Turn always carries its successor.
func (m *Machine) Step(text string, state models.DialogState, pockets []models.PocketOption) Turn {
	st := state.Normalize().Clone()
	aliases := alias.Index(pockets)
	trimmed := strings.TrimSpace(text)

	// A confirmed, executed conversation is over: the next message starts
	// a fresh one.
	if st.Step == models.StepExecuted && st.Confirmed {
		st = models.NewDialogState()
	}

	switch {
	case !st.Intent.IsKnown():
		res := nlparser.Parse(text, aliases)
		if !res.Intent.IsKnown() {
			return Turn{State: st, Message: msgClarify}
		}
		m.log.WithFields(
			logging.Field{Key: logging.FieldIntent, Value: string(res.Intent)},
		).Debug("Intent detected")
		st.Intent = res.Intent
		applyEntities(&st, res.Entities, pockets)

	case st.Step.IsAskStep():
		if turn, answered := m.handleAskAnswer(&st, trimmed, aliases, pockets); answered {
			return turn
		}

	case st.Step == models.StepConfirm:
		return m.handleConfirm(st, trimmed)

	default:
		// Not bound to a specific question yet: parse opportunistically so
		// one message can state several details at once.
		res := nlparser.Parse(text, aliases)
		if res.Intent == st.Intent {
			applyEntities(&st, res.Entities, pockets)
		} else if amount, ok := nlparser.ExtractAmount(text); ok && st.Amount <= 0 {
			st.Amount = amount
		}
	}

	// Transfer constraint: both endpoints set and equal forces the target
	// back to unset, before any next question is computed.
	if st.Intent == models.IntentTransfer && st.PocketFrom != nil && st.PocketTo != nil && st.PocketFrom.ID == st.PocketTo.ID {
		st.PocketTo = nil
		st.Step = models.StepAskPocketTo
		return Turn{State: st, Message: msgSamePocket, Options: optionNames(pockets, st.PocketFrom.ID)}
	}

	return m.nextQuestion(st, pockets)
}

// handleAskAnswer interprets the message as a direct answer to the slot
// being asked. It reports answered=true when it already produced the turn
// (a failed resolution re-asks without advancing); on a successful fill it
// lets Step fall through to the guard and next-question logic.
func (m *Machine) handleAskAnswer(st *models.DialogState, text string, aliases []models.PocketAlias, pockets []models.PocketOption) (Turn, bool) {
	switch st.Step {
	case models.StepAskAmount:
		amount, ok := nlparser.ExtractAmount(text)
		if !ok {
			return Turn{State: *st, Message: msgAmountRetry}, true
		}
		st.Amount = amount

	case models.StepAskPocket:
		p := nlparser.ResolvePocket(text, aliases, "")
		if p == nil {
			return Turn{State: *st, Message: msgPocketRetry(text), Options: optionNames(pockets, "")}, true
		}
		st.Pocket = p

	case models.StepAskPocketFrom:
		exclude := pocketID(st.PocketTo)
		p := nlparser.ResolvePocket(text, aliases, "")
		if p != nil && p.ID == exclude {
			return Turn{State: *st, Message: msgSamePocket, Options: optionNames(pockets, exclude)}, true
		}
		if p == nil {
			return Turn{State: *st, Message: msgPocketRetry(text), Options: optionNames(pockets, exclude)}, true
		}
		st.PocketFrom = p

	case models.StepAskPocketTo:
		exclude := pocketID(st.PocketFrom)
		p := nlparser.ResolvePocket(text, aliases, "")
		if p != nil && p.ID == exclude {
			return Turn{State: *st, Message: msgSamePocket, Options: optionNames(pockets, exclude)}, true
		}
		if p == nil {
			return Turn{State: *st, Message: msgPocketRetry(text), Options: optionNames(pockets, exclude)}, true
		}
		st.PocketTo = p

	case models.StepAskNote:
		if isNoteSkip(text) {
			// Asked but left empty; distinct from "not yet asked".
			st.Note = ""
		} else {
			st.Note = strings.TrimSpace(text)
		}
		st.NoteAsked = true
	}
	return Turn{}, false
}

// handleConfirm resolves the yes/no turn. Affirmative builds the plan and
// marks the state executed; negative resets the whole conversation;
// anything else re-asks without changing state.
func (m *Machine) handleConfirm(st models.DialogState, text string) Turn {
	token := textutil.Sanitize(text, false)
	if _, ok := affirmativeTokens[token]; ok {
		plan, err := BuildPlan(st)
		if err != nil {
			// Unreachable as long as Confirm implies filled slots; answer
			// with a generic incomplete-data message rather than crashing.
			m.log.WithError(err).Error("Plan construction failed at confirmation")
			return Turn{State: models.NewDialogState(), Message: msgIncomplete}
		}
		st.Confirmed = true
		st.Step = models.StepExecuted
		return Turn{State: st, Message: executedSummary(st), Execute: true, Plan: &plan}
	}
	if _, ok := negativeTokens[token]; ok {
		return Turn{State: models.NewDialogState(), Message: msgCancelled}
	}
	return Turn{State: st, Message: msgConfirmRetry}
}

// nextQuestion asks for the first missing required field in fixed order:
// amount first, then pocket(s) (transfer source before target), then the
// note exactly once, then the confirmation summary.
func (m *Machine) nextQuestion(st models.DialogState, pockets []models.PocketOption) Turn {
	if st.Amount <= 0 {
		st.Step = models.StepAskAmount
		return Turn{State: st, Message: msgAskAmount}
	}

	switch st.Intent {
	case models.IntentIncome:
		if st.Pocket == nil {
			st.Step = models.StepAskPocket
			return Turn{State: st, Message: msgAskPocketIncome, Options: optionNames(pockets, "")}
		}
	case models.IntentExpense:
		if st.Pocket == nil {
			st.Step = models.StepAskPocket
			return Turn{State: st, Message: msgAskPocketExpense, Options: optionNames(pockets, "")}
		}
	case models.IntentTransfer:
		if st.PocketFrom == nil {
			st.Step = models.StepAskPocketFrom
			return Turn{State: st, Message: msgAskPocketFrom, Options: optionNames(pockets, pocketID(st.PocketTo))}
		}
		if st.PocketTo == nil {
			st.Step = models.StepAskPocketTo
			return Turn{State: st, Message: msgAskPocketTo, Options: optionNames(pockets, st.PocketFrom.ID)}
		}
	}

	if !st.NoteAsked {
		st.Step = models.StepAskNote
		return Turn{State: st, Message: msgAskNote}
	}

	st.Step = models.StepConfirm
	return Turn{State: st, Message: confirmSummary(st)}
}

// BuildPlan turns a fully-filled state into an execution plan.
func BuildPlan(st models.DialogState) (models.ExecutionPlan, error) {
	plan := models.ExecutionPlan{Amount: st.Amount, Note: st.Note}
	switch st.Intent {
	case models.IntentIncome:
		plan.Kind = models.PlanIncome
	case models.IntentExpense:
		plan.Kind = models.PlanExpense
	case models.IntentTransfer:
		plan.Kind = models.PlanTransfer
	}
	if st.Pocket != nil {
		plan.PocketID = st.Pocket.ID
	}
	if st.PocketFrom != nil {
		plan.FromID = st.PocketFrom.ID
	}
	if st.PocketTo != nil {
		plan.ToID = st.PocketTo.ID
	}
	if err := plan.Validate(); err != nil {
		return models.ExecutionPlan{}, err
	}
	return plan, nil
}

// RollbackExecution reverts a state whose execution failed back to the
// confirmation step, so the user can retry or cancel instead of losing the
// conversation.
func RollbackExecution(st models.DialogState) models.DialogState {
	st = st.Clone()
	st.Step = models.StepConfirm
	st.Confirmed = false
	return st
}

// applyEntities merges parser output into still-empty slots only.
func applyEntities(st *models.DialogState, e models.ParsedEntities, pockets []models.PocketOption) {
	if st.Amount <= 0 && e.Amount > 0 {
		st.Amount = e.Amount
	}
	switch st.Intent {
	case models.IntentIncome, models.IntentExpense:
		if st.Pocket == nil && e.Pocket != "" {
			st.Pocket = pocketByName(pockets, e.Pocket)
		}
	case models.IntentTransfer:
		if st.PocketFrom == nil && e.PocketFrom != "" {
			st.PocketFrom = pocketByName(pockets, e.PocketFrom)
		}
		if st.PocketTo == nil && e.PocketTo != "" {
			st.PocketTo = pocketByName(pockets, e.PocketTo)
		}
	}
	if !st.NoteAsked && st.Note == "" && e.Note != "" {
		st.Note = e.Note
		st.NoteAsked = true
	}
}

func pocketByName(pockets []models.PocketOption, name string) *models.PocketOption {
	for i := range pockets {
		if pockets[i].Name == name {
			p := pockets[i]
			return &p
		}
	}
	return nil
}

// optionNames lists quick-reply pocket names, minus the pocket already
// consumed by the opposite transfer slot.
func optionNames(pockets []models.PocketOption, excludeID string) []string {
	names := make([]string, 0, len(pockets))
	for _, p := range pockets {
		if excludeID != "" && p.ID == excludeID {
			continue
		}
		names = append(names, p.Name)
	}
	return names
}

func pocketID(p *models.PocketOption) string {
	if p == nil {
		return ""
	}
	return p.ID
}

func isNoteSkip(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "-" {
		return true
	}
	_, ok := noteSkipTokens[textutil.Sanitize(trimmed, false)]
	return ok
}
