// Package container centralizes dependency wiring for the conversation
// core and exposes the per-turn entry points the front end calls.
package container

import (
	"context"
	"fmt"
	"sync"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/catalog"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/config"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/dialog"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/executor"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/journal"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/ledger"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/logging"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/session"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/textutil"
)

// defaultPockets seeds the catalog when no pockets file is configured.
var defaultPockets = []models.PocketOption{
	{ID: "poc-tabungan", Name: "Tabungan"},
	{ID: "poc-kebutuhan", Name: "Kebutuhan Pokok"},
	{ID: "poc-emoney", Name: "E-Money"},
	{ID: "poc-investasi", Name: "Investasi"},
}

// Container holds all wired dependencies. Immutable after creation; every
// component is reached through it.
type Container struct {
	logger   logging.Logger
	catalog  catalog.Provider
	sessions session.Store
	ledger   ledger.Service
	journal  journal.Store
	executor *executor.Executor
	machine  *dialog.Machine

	// Turns of the same session must not interleave; the host serializes
	// them here, one lock per session id.
	sessionMu sync.Map
}

// Deps allows a host to swap any collaborator; zero fields fall back to
// the in-memory defaults.
type Deps struct {
	Logger   logging.Logger
	Catalog  catalog.Provider
	Sessions session.Store
	Ledger   ledger.Service
	Journal  journal.Store
}

// New wires a container from the configuration.
func New(cfg *config.Config, deps Deps) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	cat := deps.Catalog
	if cat == nil {
		if cfg.Pockets.File != "" {
			cat = catalog.NewFile(cfg.Pockets.File)
		} else {
			cat = catalog.NewStatic(defaultPockets)
		}
	}

	ledgerSvc := deps.Ledger
	if ledgerSvc == nil {
		pockets, err := cat.Pockets()
		if err != nil {
			return nil, fmt.Errorf("load pocket catalog: %w", err)
		}
		ledgerSvc = ledger.NewMemory(pockets)
	}

	sessions := deps.Sessions
	if sessions == nil {
		sessions = session.NewMemory()
	}
	journalStore := deps.Journal
	if journalStore == nil {
		journalStore = journal.NewMemory()
	}

	return &Container{
		logger:   logger,
		catalog:  cat,
		sessions: sessions,
		ledger:   ledgerSvc,
		journal:  journalStore,
		executor: executor.New(ledgerSvc, journalStore, logger, executor.WithUndoWindow(cfg.Undo.Window)),
		machine:  dialog.NewMachine(logger),
	}, nil
}

// TurnResult is what the front end renders for one turn.
type TurnResult struct {
	Message string
	Options []string

	// Set when this turn executed a plan.
	Executed      bool
	UndoToken     string
	UndoExpiresAt string
}

// HandleTurn runs one conversation turn for a session: load state, step
// the machine against the current catalog, execute an affirmed plan, and
// persist the successor state.
func (c *Container) HandleTurn(ctx context.Context, sessionID, text string) (TurnResult, error) {
	mu := c.lockFor(sessionID)
	mu.Lock()
	defer mu.Unlock()

	state, err := c.sessions.Get(sessionID)
	if err != nil {
		c.logger.WithError(err).WithField(logging.FieldSession, sessionID).Warn("Session state unreadable, starting fresh")
		state = models.NewDialogState()
	}
	pockets, err := c.catalog.Pockets()
	if err != nil {
		return TurnResult{}, fmt.Errorf("load pocket catalog: %w", err)
	}

	turn := c.machine.Step(text, state, pockets)
	result := TurnResult{Message: turn.Message, Options: turn.Options}

	if turn.Execute && turn.Plan != nil {
		execRes, execErr := c.executor.Execute(ctx, *turn.Plan)
		if execErr != nil {
			// Roll the conversation back to the confirmation step so the
			// user can retry or cancel instead of losing everything.
			c.logger.WithError(execErr).WithField(logging.FieldSession, sessionID).Error("Plan execution failed")
			turn.State = dialog.RollbackExecution(turn.State)
			result.Message = "Waduh, gagal menyimpan transaksinya. Coba jawab \"ya\" lagi untuk mengulang, atau \"tidak\" untuk membatalkan."
		} else {
			result.Executed = true
			result.UndoToken = execRes.UndoToken
			result.UndoExpiresAt = execRes.UndoExpiresAt.Format("15:04:05")
			result.Message = fmt.Sprintf("%s Ketik \"undo %s\" sebelum %s kalau mau membatalkan.",
				turn.Message, execRes.UndoToken, result.UndoExpiresAt)
		}
	}

	if err := c.sessions.Put(sessionID, turn.State); err != nil {
		return result, fmt.Errorf("persist session %s: %w", sessionID, err)
	}
	return result, nil
}

// Undo reverses a previously executed turn by token.
func (c *Container) Undo(ctx context.Context, token string) error {
	return c.executor.Undo(ctx, token)
}

// Pockets exposes the current catalog for display commands.
func (c *Container) Pockets() ([]models.PocketOption, error) {
	return c.catalog.Pockets()
}

// FormatBalance renders a pocket balance when the wired ledger is the
// in-memory one; hosts with a real ledger render their own.
func (c *Container) FormatBalance(pocketID string) (string, bool) {
	mem, ok := c.ledger.(*ledger.Memory)
	if !ok {
		return "", false
	}
	balance, err := mem.Balance(pocketID)
	if err != nil {
		return "", false
	}
	return textutil.FormatRupiah(balance.IntPart()), true
}

func (c *Container) lockFor(sessionID string) *sync.Mutex {
	mu, _ := c.sessionMu.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
