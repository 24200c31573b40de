package migrate

import (
	"context"
	"fmt"

	"github.com/BartekS5/VCM/pkg/logger"
	"github.com/BartekS5/VCM/pkg/models"
)

// Snapshot is the immutable source configuration read once at the start of
// a run. The source system is never mutated.
type Snapshot struct {
	Dialplans        []models.Dialplan
	VoiceRoutes      []models.VoiceRoute
	VoicePolicies    []models.VoicePolicy
	PSTNUsages       []string
	GatewayAddresses []string
	CallingRules     []models.TranslationRule
	CalledRules      []models.TranslationRule
}

// TakeSnapshot reads the full source configuration.
func TakeSnapshot(ctx context.Context, src Source) (*Snapshot, error) {
	snap := &Snapshot{}
	var err error

	if snap.Dialplans, err = src.ListDialplans(ctx); err != nil {
		return nil, fmt.Errorf("failed to list source dialplans: %w", err)
	}
	if snap.VoiceRoutes, err = src.ListVoiceRoutes(ctx); err != nil {
		return nil, fmt.Errorf("failed to list source voice routes: %w", err)
	}
	if snap.VoicePolicies, err = src.ListVoicePolicies(ctx); err != nil {
		return nil, fmt.Errorf("failed to list source voice policies: %w", err)
	}
	if snap.PSTNUsages, err = src.ListPSTNUsageNames(ctx); err != nil {
		return nil, fmt.Errorf("failed to list source PSTN usages: %w", err)
	}
	if snap.GatewayAddresses, err = src.ListGatewayAddresses(ctx); err != nil {
		return nil, fmt.Errorf("failed to list source gateways: %w", err)
	}
	if snap.CallingRules, err = src.ListCallingTranslationRules(ctx); err != nil {
		return nil, fmt.Errorf("failed to list source calling translation rules: %w", err)
	}
	if snap.CalledRules, err = src.ListCalledTranslationRules(ctx); err != nil {
		return nil, fmt.Errorf("failed to list source called translation rules: %w", err)
	}

	logger.Infof("Source snapshot: %d dialplans, %d routes, %d policies, %d usages, %d gateways, %d/%d translation rules",
		len(snap.Dialplans), len(snap.VoiceRoutes), len(snap.VoicePolicies),
		len(snap.PSTNUsages), len(snap.GatewayAddresses),
		len(snap.CallingRules), len(snap.CalledRules))

	return snap, nil
}
