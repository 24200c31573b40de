package migrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/BartekS5/VCM/pkg/logger"
	"github.com/BartekS5/VCM/pkg/models"
)

// ErrCancelled is returned when the operator declines the pre-erase
// confirmation. The run must abort without having written anything.
var ErrCancelled = errors.New("run cancelled by operator")

// ConfirmFunc asks the operator a yes/no question. Only an affirmative
// answer returns true; the default is no.
type ConfirmFunc func(prompt string) bool

// Eraser wipes the existing target voice configuration so the upsert
// pipeline starts from a clean slate. Gateways themselves are never deleted.
type Eraser struct {
	target  Target
	confirm ConfirmFunc
}

func NewEraser(target Target, confirm ConfirmFunc) *Eraser {
	return &Eraser{target: target, confirm: confirm}
}

// Confirm solicits the operator's go-ahead. It is called before any target
// mutation in the run (including gateway creation during reconciliation) so
// a declined confirmation means zero writes.
func (e *Eraser) Confirm() error {
	if !e.confirm("This will remove ALL existing voice configuration from the target. Continue? [y/N] ") {
		return ErrCancelled
	}
	return nil
}

// Erase removes the target dialplans, voice routes, routing policies, the
// global PSTN usage list, per-gateway translation rule attachments, and all
// translation rules. Entities that are already gone are not errors.
func (e *Eraser) Erase(ctx context.Context) error {
	logger.Infof("Erasing existing target configuration")

	if err := ignoreNotFound(e.target.DeleteAllDialplans(ctx)); err != nil {
		return fmt.Errorf("failed to delete target dialplans: %w", err)
	}
	if err := ignoreNotFound(e.target.DeleteAllVoiceRoutes(ctx)); err != nil {
		return fmt.Errorf("failed to delete target voice routes: %w", err)
	}
	if err := ignoreNotFound(e.target.DeleteAllRoutingPolicies(ctx)); err != nil {
		return fmt.Errorf("failed to delete target routing policies: %w", err)
	}
	if err := ignoreNotFound(e.target.ClearPSTNUsages(ctx)); err != nil {
		return fmt.Errorf("failed to clear target PSTN usages: %w", err)
	}

	gateways, err := e.target.ListGateways(ctx)
	if err != nil {
		return fmt.Errorf("failed to list target gateways: %w", err)
	}
	for _, gw := range gateways {
		if err := ignoreNotFound(e.target.ClearGatewayTranslationRules(ctx, gw.Identity)); err != nil {
			return fmt.Errorf("failed to clear translation rules on gateway %q: %w", gw.Identity, err)
		}
	}

	if err := ignoreNotFound(e.target.DeleteAllTranslationRules(ctx)); err != nil {
		return fmt.Errorf("failed to delete target translation rules: %w", err)
	}

	logger.Infof("Target configuration erased")
	return nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	return err
}
