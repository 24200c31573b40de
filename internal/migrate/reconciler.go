package migrate

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/BartekS5/VCM/pkg/logger"
)

// Resolution is the outcome of matching one source gateway. Matched false
// is the explicit "unmatched" sentinel: routes and rules referencing the
// gateway are migrated without it.
type Resolution struct {
	Target  string
	Matched bool
}

// GatewayMapping maps every distinct source gateway identifier to its
// resolution. It is built once per run and read-only afterwards.
type GatewayMapping map[string]Resolution

// Lookup returns the resolution for a source gateway name. The second
// return is false when the name never went through reconciliation.
func (m GatewayMapping) Lookup(name string) (Resolution, bool) {
	res, ok := m[name]
	return res, ok
}

// Choice enumerates the operator's options when no automatic match exists.
type Choice int

const (
	// ChooseExisting picks candidate at Selection.Index.
	ChooseExisting Choice = iota
	// ChooseCreateNamed creates a target gateway named after the source one.
	ChooseCreateNamed
	// ChooseCreateGenerated creates a target gateway with a generated name.
	ChooseCreateGenerated
	// ChooseSkip leaves the source gateway unmatched.
	ChooseSkip
)

// Selection is one operator decision.
type Selection struct {
	Choice Choice
	Index  int
}

// Decider supplies gateway-matching decisions. The console implementation
// prompts the operator; tests use a scripted one. offerNamed reports whether
// creating a gateway literally named sourceName is on the menu.
type Decider interface {
	ResolveGateway(sourceName string, candidates []string, offerNamed bool) (Selection, error)
}

// Reconciler builds the gateway mapping against the live target system.
type Reconciler struct {
	target  Target
	decider Decider
}

func NewReconciler(target Target, decider Decider) *Reconciler {
	return &Reconciler{target: target, decider: decider}
}

// Reconcile resolves every distinct source gateway, in input order, exactly
// once. The target gateway list is fetched once up front; gateways created
// during the run join the auto-match set so a later source gateway with the
// same name matches without prompting, but they are not appended to the
// numbered candidate list shown for other gateways.
func (r *Reconciler) Reconcile(ctx context.Context, sourceGateways []string) (GatewayMapping, error) {
	existing, err := r.target.ListGateways(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list target gateways: %w", err)
	}

	known := make(map[string]bool, len(existing))
	candidates := make([]string, 0, len(existing))
	for _, gw := range existing {
		known[gw.Identity] = true
		candidates = append(candidates, gw.Identity)
	}

	mapping := make(GatewayMapping, len(sourceGateways))
	for _, g := range sourceGateways {
		if _, done := mapping[g]; done {
			continue
		}
		if known[g] {
			logger.Infof("Gateway %q matched automatically", g)
			mapping[g] = Resolution{Target: g, Matched: true}
			continue
		}
		res, err := r.resolveManually(ctx, g, candidates, known)
		if err != nil {
			return nil, err
		}
		mapping[g] = res
	}
	return mapping, nil
}

// resolveManually loops on operator decisions for one source gateway until
// one of them sticks. Creation failures are reported and the same gateway is
// offered again; only skip and a successful pick/create are terminal.
func (r *Reconciler) resolveManually(ctx context.Context, sourceName string, candidates []string, known map[string]bool) (Resolution, error) {
	// A name without any letter cannot be a creatable gateway address.
	offerNamed := strings.ContainsFunc(sourceName, unicode.IsLetter)

	for {
		sel, err := r.decider.ResolveGateway(sourceName, candidates, offerNamed)
		if err != nil {
			return Resolution{}, fmt.Errorf("gateway matching for %q failed: %w", sourceName, err)
		}

		switch sel.Choice {
		case ChooseExisting:
			if sel.Index < 0 || sel.Index >= len(candidates) {
				logger.Warnf("Selection %d is out of range, try again", sel.Index+1)
				continue
			}
			return Resolution{Target: candidates[sel.Index], Matched: true}, nil

		case ChooseCreateNamed:
			if !offerNamed {
				logger.Warnf("Gateway %q cannot be created under its own name, try again", sourceName)
				continue
			}
			gw, err := r.target.CreateGateway(ctx, sourceName)
			if err != nil {
				logger.Errorf("Could not create gateway %q: %v", sourceName, err)
				continue
			}
			known[gw.Identity] = true
			logger.Infof("Created target gateway %q", gw.Identity)
			return Resolution{Target: gw.Identity, Matched: true}, nil

		case ChooseCreateGenerated:
			name := "sbc-" + uuid.NewString()
			gw, err := r.target.CreateGateway(ctx, name)
			if err != nil {
				logger.Errorf("Could not create gateway %q: %v", name, err)
				continue
			}
			known[gw.Identity] = true
			logger.Infof("Created target gateway %q", gw.Identity)
			return Resolution{Target: gw.Identity, Matched: true}, nil

		case ChooseSkip:
			logger.Warnf("Gateway %q left unmatched", sourceName)
			return Resolution{}, nil

		default:
			return Resolution{}, fmt.Errorf("unknown gateway choice %d for %q", sel.Choice, sourceName)
		}
	}
}
