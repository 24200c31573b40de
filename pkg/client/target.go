package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/BartekS5/VCM/pkg/models"
)

// Target is the read/write client for the target administrative system.
// adminDomain, when non-empty, is sent with every request as an
// administrative domain override.
type Target struct {
	rest rest
}

func NewTarget(httpClient *http.Client, baseURL, token, adminDomain string) *Target {
	return &Target{rest: rest{
		httpClient:  httpClient,
		baseURL:     baseURL,
		token:       token,
		adminDomain: adminDomain,
	}}
}

func (t *Target) Verify(ctx context.Context) error {
	return t.rest.get(ctx, "/session", nil)
}

func (t *Target) GetDialplan(ctx context.Context, id string) (*models.Dialplan, error) {
	var dp models.Dialplan
	if err := t.rest.get(ctx, "/dialplans/"+url.PathEscape(id), &dp); err != nil {
		return nil, err
	}
	return &dp, nil
}

func (t *Target) CreateDialplan(ctx context.Context, fields models.DialplanFields) error {
	return t.rest.do(ctx, http.MethodPost, "/dialplans", fields, nil)
}

func (t *Target) UpdateDialplan(ctx context.Context, fields models.DialplanFields) error {
	return t.rest.do(ctx, http.MethodPut, "/dialplans/"+url.PathEscape(fields.Identity), fields, nil)
}

func (t *Target) GetVoiceRoute(ctx context.Context, id string) (*models.VoiceRoute, error) {
	var rt models.VoiceRoute
	if err := t.rest.get(ctx, "/voiceroutes/"+url.PathEscape(id), &rt); err != nil {
		return nil, err
	}
	return &rt, nil
}

func (t *Target) CreateVoiceRoute(ctx context.Context, fields models.VoiceRouteFields) error {
	return t.rest.do(ctx, http.MethodPost, "/voiceroutes", fields, nil)
}

func (t *Target) UpdateVoiceRoute(ctx context.Context, fields models.VoiceRouteFields) error {
	return t.rest.do(ctx, http.MethodPut, "/voiceroutes/"+url.PathEscape(fields.Identity), fields, nil)
}

func (t *Target) GetRoutingPolicy(ctx context.Context, id string) (*models.VoicePolicy, error) {
	var pol models.VoicePolicy
	if err := t.rest.get(ctx, "/voiceroutingpolicies/"+url.PathEscape(id), &pol); err != nil {
		return nil, err
	}
	return &pol, nil
}

func (t *Target) CreateRoutingPolicy(ctx context.Context, fields models.RoutingPolicyFields) error {
	return t.rest.do(ctx, http.MethodPost, "/voiceroutingpolicies", fields, nil)
}

func (t *Target) UpdateRoutingPolicy(ctx context.Context, fields models.RoutingPolicyFields) error {
	return t.rest.do(ctx, http.MethodPut, "/voiceroutingpolicies/"+url.PathEscape(fields.Identity), fields, nil)
}

func (t *Target) GetTranslationRule(ctx context.Context, name string) (*models.TranslationRule, error) {
	var rule models.TranslationRule
	if err := t.rest.get(ctx, "/translationrules/"+url.PathEscape(name), &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (t *Target) CreateTranslationRule(ctx context.Context, fields models.TranslationRuleFields) (*models.TranslationRule, error) {
	var created models.TranslationRule
	if err := t.rest.do(ctx, http.MethodPost, "/translationrules", fields, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (t *Target) ListGateways(ctx context.Context) ([]models.Gateway, error) {
	return listPaged[models.Gateway](ctx, &t.rest, "/gateways")
}

// CreateGateway provisions a new gateway named identity. The target system
// rejects identities outside its provisioned domains; such failures surface
// as remote-rejection errors for the reconciler to report and retry.
func (t *Target) CreateGateway(ctx context.Context, identity string) (*models.Gateway, error) {
	var gw models.Gateway
	payload := struct {
		Identity string `json:"identity"`
	}{Identity: identity}
	if err := t.rest.do(ctx, http.MethodPost, "/gateways", payload, &gw); err != nil {
		return nil, err
	}
	return &gw, nil
}

// AddGatewayTranslationRule attaches ruleID to the given slot of a gateway.
// The attachment is additive; rules attached earlier in the run stay in
// place.
func (t *Target) AddGatewayTranslationRule(ctx context.Context, gatewayID string, slot models.RuleSlot, ruleID string) error {
	payload := struct {
		Slot models.RuleSlot `json:"slot"`
		Add  string          `json:"add"`
	}{Slot: slot, Add: ruleID}
	return t.rest.do(ctx, http.MethodPost, "/gateways/"+url.PathEscape(gatewayID)+"/translationrules", payload, nil)
}

// ClearGatewayTranslationRules resets both rule slots of a gateway.
func (t *Target) ClearGatewayTranslationRules(ctx context.Context, gatewayID string) error {
	return t.rest.do(ctx, http.MethodDelete, "/gateways/"+url.PathEscape(gatewayID)+"/translationrules", nil, nil)
}

func (t *Target) AddPSTNUsage(ctx context.Context, name string) error {
	payload := struct {
		Name string `json:"name"`
	}{Name: name}
	return t.rest.do(ctx, http.MethodPost, "/pstnusages", payload, nil)
}

func (t *Target) ClearPSTNUsages(ctx context.Context) error {
	return t.rest.do(ctx, http.MethodDelete, "/pstnusages", nil, nil)
}

func (t *Target) DeleteAllDialplans(ctx context.Context) error {
	return t.rest.do(ctx, http.MethodDelete, "/dialplans", nil, nil)
}

func (t *Target) DeleteAllVoiceRoutes(ctx context.Context) error {
	return t.rest.do(ctx, http.MethodDelete, "/voiceroutes", nil, nil)
}

func (t *Target) DeleteAllRoutingPolicies(ctx context.Context) error {
	return t.rest.do(ctx, http.MethodDelete, "/voiceroutingpolicies", nil, nil)
}

func (t *Target) DeleteAllTranslationRules(ctx context.Context) error {
	return t.rest.do(ctx, http.MethodDelete, "/translationrules", nil, nil)
}
