package migrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/BartekS5/VCM/pkg/identity"
	"github.com/BartekS5/VCM/pkg/logger"
	"github.com/BartekS5/VCM/pkg/models"
)

// Pipeline copies the source snapshot into the target system in dependency
// order: dialplans, PSTN usages, voice routes, routing policies, translation
// rules. Each entity is created or updated based on an existence check, so
// re-running against a partially populated target is safe.
type Pipeline struct {
	snap    *Snapshot
	target  Target
	mapping GatewayMapping
}

func NewPipeline(snap *Snapshot, target Target, mapping GatewayMapping) *Pipeline {
	return &Pipeline{snap: snap, target: target, mapping: mapping}
}

func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.copyDialplans(ctx); err != nil {
		return err
	}
	if err := p.copyPSTNUsages(ctx); err != nil {
		return err
	}
	if err := p.copyVoiceRoutes(ctx); err != nil {
		return err
	}
	if err := p.copyRoutingPolicies(ctx); err != nil {
		return err
	}
	if err := p.copyTranslationRules(ctx, p.snap.CallingRules, models.SlotCalling); err != nil {
		return err
	}
	if err := p.copyTranslationRules(ctx, p.snap.CalledRules, models.SlotCalled); err != nil {
		return err
	}
	logger.Infof("Migration finished")
	return nil
}

func (p *Pipeline) copyDialplans(ctx context.Context) error {
	for _, dp := range p.snap.Dialplans {
		name := identity.StripScopePrefix(dp.Identity)
		fields := models.DialplanFields{
			Identity:              name,
			Description:           dp.Description,
			OptimizeDeviceDialing: dp.OptimizeDeviceDialing,
			NormalizationRules:    dp.NormalizationRules,
		}
		// An absent prefix must be omitted from the payload, not sent empty.
		if dp.ExternalAccessPrefix != "" {
			prefix := dp.ExternalAccessPrefix
			fields.ExternalAccessPrefix = &prefix
		}

		_, err := p.target.GetDialplan(ctx, name)
		switch {
		case errors.Is(err, models.ErrNotFound):
			if err := p.target.CreateDialplan(ctx, fields); err != nil {
				return fmt.Errorf("failed to create dialplan %q: %w", name, err)
			}
			logger.Infof("Created dialplan %q", name)
		case err != nil:
			return fmt.Errorf("failed to look up dialplan %q: %w", name, err)
		default:
			if err := p.target.UpdateDialplan(ctx, fields); err != nil {
				return fmt.Errorf("failed to update dialplan %q: %w", name, err)
			}
			logger.Infof("Updated dialplan %q", name)
		}
	}
	return nil
}

// copyPSTNUsages adds each distinct source usage name to the target's single
// global list. A name already present is a no-op, not an error.
func (p *Pipeline) copyPSTNUsages(ctx context.Context) error {
	seen := make(map[string]bool, len(p.snap.PSTNUsages))
	for _, name := range p.snap.PSTNUsages {
		if seen[name] {
			continue
		}
		seen[name] = true

		err := p.target.AddPSTNUsage(ctx, name)
		switch {
		case errors.Is(err, models.ErrConflict):
			logger.Warnf("PSTN usage %q already present in target", name)
		case err != nil:
			return fmt.Errorf("failed to add PSTN usage %q: %w", name, err)
		default:
			logger.Infof("Added PSTN usage %q", name)
		}
	}
	return nil
}

func (p *Pipeline) copyVoiceRoutes(ctx context.Context) error {
	for _, rt := range p.snap.VoiceRoutes {
		fields := models.VoiceRouteFields{
			Identity:      rt.Identity,
			NumberPattern: rt.NumberPattern,
			Priority:      rt.Priority,
			PSTNUsages:    rt.PSTNUsages,
			Description:   rt.Description,
			Gateways:      p.resolveRouteGateways(rt),
		}

		_, err := p.target.GetVoiceRoute(ctx, rt.Identity)
		switch {
		case errors.Is(err, models.ErrNotFound):
			if err := p.target.CreateVoiceRoute(ctx, fields); err != nil {
				return fmt.Errorf("failed to create voice route %q: %w", rt.Identity, err)
			}
			logger.Infof("Created voice route %q", rt.Identity)
		case err != nil:
			return fmt.Errorf("failed to look up voice route %q: %w", rt.Identity, err)
		default:
			if err := p.target.UpdateVoiceRoute(ctx, fields); err != nil {
				return fmt.Errorf("failed to update voice route %q: %w", rt.Identity, err)
			}
			logger.Infof("Updated voice route %q", rt.Identity)
		}
	}
	return nil
}

// resolveRouteGateways translates a route's gateway references through the
// mapping, keeping only matched ones in their original order. Duplicates
// produced by mapping collisions pass through unchanged. nil means the
// gateway list is omitted from the write payload.
func (p *Pipeline) resolveRouteGateways(rt models.VoiceRoute) []string {
	var gateways []string
	for _, entry := range rt.Gateways {
		name, ok := identity.GatewayFromRouteRef(entry)
		if !ok {
			logger.Warnf("Route %q has unparseable gateway entry %q", rt.Identity, entry)
			continue
		}
		res, known := p.mapping.Lookup(name)
		if !known || !res.Matched {
			logger.Warnf("Route %q drops gateway %q: no target match", rt.Identity, name)
			continue
		}
		gateways = append(gateways, res.Target)
	}
	return gateways
}

func (p *Pipeline) copyRoutingPolicies(ctx context.Context) error {
	for _, pol := range p.snap.VoicePolicies {
		name := identity.StripScopePrefix(pol.Identity)
		fields := models.RoutingPolicyFields{
			Identity:    name,
			Description: pol.Description,
			PSTNUsages:  pol.PSTNUsages,
		}

		_, err := p.target.GetRoutingPolicy(ctx, name)
		switch {
		case errors.Is(err, models.ErrNotFound):
			if err := p.target.CreateRoutingPolicy(ctx, fields); err != nil {
				return fmt.Errorf("failed to create routing policy %q: %w", name, err)
			}
			logger.Infof("Created voice routing policy %q", name)
		case err != nil:
			return fmt.Errorf("failed to look up routing policy %q: %w", name, err)
		default:
			if err := p.target.UpdateRoutingPolicy(ctx, fields); err != nil {
				return fmt.Errorf("failed to update routing policy %q: %w", name, err)
			}
			logger.Infof("Updated voice routing policy %q", name)
		}
	}
	return nil
}
