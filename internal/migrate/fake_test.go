package migrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/BartekS5/VCM/pkg/models"
)

// fakeTarget is an in-memory stand-in for the target administrative system.
// It records every mutating call so tests can assert on write behavior.
type fakeTarget struct {
	dialplans map[string]models.DialplanFields
	routes    map[string]models.VoiceRouteFields
	policies  map[string]models.RoutingPolicyFields
	rules     map[string]models.TranslationRule
	gateways  []models.Gateway
	usages    []string

	attachments []attachment
	writes      []string

	failGatewayCreates int
	notFoundDeletes    bool
}

type attachment struct {
	Gateway string
	Slot    models.RuleSlot
	RuleID  string
}

func newFakeTarget(gateways ...string) *fakeTarget {
	f := &fakeTarget{
		dialplans: make(map[string]models.DialplanFields),
		routes:    make(map[string]models.VoiceRouteFields),
		policies:  make(map[string]models.RoutingPolicyFields),
		rules:     make(map[string]models.TranslationRule),
	}
	for _, gw := range gateways {
		f.gateways = append(f.gateways, models.Gateway{Identity: gw})
	}
	return f
}

func (f *fakeTarget) record(call string) {
	f.writes = append(f.writes, call)
}

func (f *fakeTarget) GetDialplan(_ context.Context, id string) (*models.Dialplan, error) {
	if _, ok := f.dialplans[id]; !ok {
		return nil, models.ErrNotFound
	}
	return &models.Dialplan{Identity: id}, nil
}

func (f *fakeTarget) CreateDialplan(_ context.Context, fields models.DialplanFields) error {
	f.record("CreateDialplan")
	f.dialplans[fields.Identity] = fields
	return nil
}

func (f *fakeTarget) UpdateDialplan(_ context.Context, fields models.DialplanFields) error {
	f.record("UpdateDialplan")
	f.dialplans[fields.Identity] = fields
	return nil
}

func (f *fakeTarget) GetVoiceRoute(_ context.Context, id string) (*models.VoiceRoute, error) {
	if _, ok := f.routes[id]; !ok {
		return nil, models.ErrNotFound
	}
	return &models.VoiceRoute{Identity: id}, nil
}

func (f *fakeTarget) CreateVoiceRoute(_ context.Context, fields models.VoiceRouteFields) error {
	f.record("CreateVoiceRoute")
	f.routes[fields.Identity] = fields
	return nil
}

func (f *fakeTarget) UpdateVoiceRoute(_ context.Context, fields models.VoiceRouteFields) error {
	f.record("UpdateVoiceRoute")
	f.routes[fields.Identity] = fields
	return nil
}

func (f *fakeTarget) GetRoutingPolicy(_ context.Context, id string) (*models.VoicePolicy, error) {
	if _, ok := f.policies[id]; !ok {
		return nil, models.ErrNotFound
	}
	return &models.VoicePolicy{Identity: id}, nil
}

func (f *fakeTarget) CreateRoutingPolicy(_ context.Context, fields models.RoutingPolicyFields) error {
	f.record("CreateRoutingPolicy")
	f.policies[fields.Identity] = fields
	return nil
}

func (f *fakeTarget) UpdateRoutingPolicy(_ context.Context, fields models.RoutingPolicyFields) error {
	f.record("UpdateRoutingPolicy")
	f.policies[fields.Identity] = fields
	return nil
}

func (f *fakeTarget) GetTranslationRule(_ context.Context, name string) (*models.TranslationRule, error) {
	rule, ok := f.rules[name]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &rule, nil
}

func (f *fakeTarget) CreateTranslationRule(_ context.Context, fields models.TranslationRuleFields) (*models.TranslationRule, error) {
	f.record("CreateTranslationRule")
	rule := models.TranslationRule{
		Identity:    "tr-" + fields.Name,
		Name:        fields.Name,
		Pattern:     fields.Pattern,
		Translation: fields.Translation,
		Description: fields.Description,
	}
	f.rules[rule.Name] = rule
	return &rule, nil
}

func (f *fakeTarget) ListGateways(_ context.Context) ([]models.Gateway, error) {
	return f.gateways, nil
}

func (f *fakeTarget) CreateGateway(_ context.Context, identity string) (*models.Gateway, error) {
	f.record("CreateGateway")
	if f.failGatewayCreates > 0 {
		f.failGatewayCreates--
		return nil, fmt.Errorf("domain not provisioned for %q", identity)
	}
	gw := models.Gateway{Identity: identity}
	f.gateways = append(f.gateways, gw)
	return &gw, nil
}

func (f *fakeTarget) AddGatewayTranslationRule(_ context.Context, gatewayID string, slot models.RuleSlot, ruleID string) error {
	f.record("AddGatewayTranslationRule")
	f.attachments = append(f.attachments, attachment{Gateway: gatewayID, Slot: slot, RuleID: ruleID})
	return nil
}

func (f *fakeTarget) ClearGatewayTranslationRules(_ context.Context, gatewayID string) error {
	f.record("ClearGatewayTranslationRules:" + gatewayID)
	return nil
}

func (f *fakeTarget) AddPSTNUsage(_ context.Context, name string) error {
	f.record("AddPSTNUsage")
	for _, existing := range f.usages {
		if existing == name {
			return models.ErrConflict
		}
	}
	f.usages = append(f.usages, name)
	return nil
}

func (f *fakeTarget) ClearPSTNUsages(_ context.Context) error {
	f.record("ClearPSTNUsages")
	f.usages = nil
	return nil
}

func (f *fakeTarget) DeleteAllDialplans(_ context.Context) error {
	f.record("DeleteAllDialplans")
	if f.notFoundDeletes {
		return models.ErrNotFound
	}
	f.dialplans = make(map[string]models.DialplanFields)
	return nil
}

func (f *fakeTarget) DeleteAllVoiceRoutes(_ context.Context) error {
	f.record("DeleteAllVoiceRoutes")
	if f.notFoundDeletes {
		return models.ErrNotFound
	}
	f.routes = make(map[string]models.VoiceRouteFields)
	return nil
}

func (f *fakeTarget) DeleteAllRoutingPolicies(_ context.Context) error {
	f.record("DeleteAllRoutingPolicies")
	if f.notFoundDeletes {
		return models.ErrNotFound
	}
	f.policies = make(map[string]models.RoutingPolicyFields)
	return nil
}

func (f *fakeTarget) DeleteAllTranslationRules(_ context.Context) error {
	f.record("DeleteAllTranslationRules")
	if f.notFoundDeletes {
		return models.ErrNotFound
	}
	f.rules = make(map[string]models.TranslationRule)
	return nil
}

// scriptDecider replays a fixed sequence of selections and records what it
// was shown.
type scriptDecider struct {
	script []Selection
	calls  int

	lastCandidates []string
	lastOfferNamed bool
}

func (d *scriptDecider) ResolveGateway(_ string, candidates []string, offerNamed bool) (Selection, error) {
	d.lastCandidates = candidates
	d.lastOfferNamed = offerNamed
	if d.calls >= len(d.script) {
		return Selection{}, errors.New("decider script exhausted")
	}
	sel := d.script[d.calls]
	d.calls++
	return sel, nil
}
