// Package migrate implements the voice configuration migration: gateway
// reconciliation, optional target erase, and the dependency-ordered upsert
// pipeline.
package migrate

import (
	"context"

	"github.com/BartekS5/VCM/pkg/models"
)

// Source lists the voice configuration of the source administrative system.
type Source interface {
	ListDialplans(ctx context.Context) ([]models.Dialplan, error)
	ListVoiceRoutes(ctx context.Context) ([]models.VoiceRoute, error)
	ListVoicePolicies(ctx context.Context) ([]models.VoicePolicy, error)
	ListPSTNUsageNames(ctx context.Context) ([]string, error)
	ListGatewayAddresses(ctx context.Context) ([]string, error)
	ListCallingTranslationRules(ctx context.Context) ([]models.TranslationRule, error)
	ListCalledTranslationRules(ctx context.Context) ([]models.TranslationRule, error)
}

// Target reads and mutates the voice configuration of the target
// administrative system. Get methods return models.ErrNotFound (wrapped)
// when the entity does not exist.
type Target interface {
	GetDialplan(ctx context.Context, id string) (*models.Dialplan, error)
	CreateDialplan(ctx context.Context, fields models.DialplanFields) error
	UpdateDialplan(ctx context.Context, fields models.DialplanFields) error

	GetVoiceRoute(ctx context.Context, id string) (*models.VoiceRoute, error)
	CreateVoiceRoute(ctx context.Context, fields models.VoiceRouteFields) error
	UpdateVoiceRoute(ctx context.Context, fields models.VoiceRouteFields) error

	GetRoutingPolicy(ctx context.Context, id string) (*models.VoicePolicy, error)
	CreateRoutingPolicy(ctx context.Context, fields models.RoutingPolicyFields) error
	UpdateRoutingPolicy(ctx context.Context, fields models.RoutingPolicyFields) error

	GetTranslationRule(ctx context.Context, name string) (*models.TranslationRule, error)
	CreateTranslationRule(ctx context.Context, fields models.TranslationRuleFields) (*models.TranslationRule, error)

	ListGateways(ctx context.Context) ([]models.Gateway, error)
	CreateGateway(ctx context.Context, identity string) (*models.Gateway, error)
	AddGatewayTranslationRule(ctx context.Context, gatewayID string, slot models.RuleSlot, ruleID string) error
	ClearGatewayTranslationRules(ctx context.Context, gatewayID string) error

	AddPSTNUsage(ctx context.Context, name string) error
	ClearPSTNUsages(ctx context.Context) error

	DeleteAllDialplans(ctx context.Context) error
	DeleteAllVoiceRoutes(ctx context.Context) error
	DeleteAllRoutingPolicies(ctx context.Context) error
	DeleteAllTranslationRules(ctx context.Context) error
}
