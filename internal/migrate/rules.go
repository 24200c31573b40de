package migrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/BartekS5/VCM/pkg/identity"
	"github.com/BartekS5/VCM/pkg/logger"
	"github.com/BartekS5/VCM/pkg/models"
)

// copyTranslationRules migrates one batch of translation rules (calling or
// called, selected by slot) and attaches each resolved rule to its owning
// target gateway. An existing target rule with the same name is reused when
// its pattern and translation match exactly; otherwise a new rule is created
// under a name disambiguated with the target gateway identifier. Attachments
// are additive within the run.
func (p *Pipeline) copyTranslationRules(ctx context.Context, rules []models.TranslationRule, slot models.RuleSlot) error {
	for _, r := range rules {
		owner, ok := identity.GatewayFromRuleIdentity(r.Identity)
		if !ok {
			logger.Warnf("Translation rule %q has no gateway in its identity %q, skipping", r.Name, r.Identity)
			continue
		}
		res, known := p.mapping.Lookup(owner)
		if !known || !res.Matched {
			logger.Warnf("Translation rule %q skipped: gateway %q has no target match", r.Name, owner)
			continue
		}

		ruleID, err := p.resolveTranslationRule(ctx, r, res.Target)
		if err != nil {
			return err
		}

		if err := p.target.AddGatewayTranslationRule(ctx, res.Target, slot, ruleID); err != nil {
			return fmt.Errorf("failed to attach rule %q to gateway %q: %w", r.Name, res.Target, err)
		}
		logger.Infof("Attached %s translation rule %q to gateway %q", slot, r.Name, res.Target)
	}
	return nil
}

// resolveTranslationRule returns the identity of the target rule to attach:
// the existing rule when it is a true duplicate, a freshly created rule with
// a disambiguated name on a same-name content conflict, or a plain new rule.
func (p *Pipeline) resolveTranslationRule(ctx context.Context, r models.TranslationRule, targetGateway string) (string, error) {
	existing, err := p.target.GetTranslationRule(ctx, r.Name)
	switch {
	case errors.Is(err, models.ErrNotFound):
		created, err := p.target.CreateTranslationRule(ctx, models.TranslationRuleFields{
			Name:        r.Name,
			Pattern:     r.Pattern,
			Translation: r.Translation,
			Description: r.Description,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create translation rule %q: %w", r.Name, err)
		}
		logger.Infof("Created translation rule %q", r.Name)
		return created.Identity, nil

	case err != nil:
		return "", fmt.Errorf("failed to look up translation rule %q: %w", r.Name, err)

	case existing.Pattern == r.Pattern && existing.Translation == r.Translation:
		// Same name, same content: already synchronized.
		return existing.Identity, nil

	default:
		// Same name, different content. The existing rule stays untouched;
		// the incoming one gets a name qualified by its target gateway.
		name := fmt.Sprintf("%s_%s", r.Name, targetGateway)
		created, err := p.target.CreateTranslationRule(ctx, models.TranslationRuleFields{
			Name:        name,
			Pattern:     r.Pattern,
			Translation: r.Translation,
			Description: r.Description,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create translation rule %q: %w", name, err)
		}
		logger.Warnf("Translation rule %q conflicts with an existing rule, created %q instead", r.Name, name)
		return created.Identity, nil
	}
}
