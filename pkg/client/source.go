package client

import (
	"context"
	"net/http"

	"github.com/BartekS5/VCM/pkg/models"
)

// Source is the read-only client for the source administrative system.
type Source struct {
	rest rest
}

func NewSource(httpClient *http.Client, baseURL, token string) *Source {
	return &Source{rest: rest{httpClient: httpClient, baseURL: baseURL, token: token}}
}

// Verify probes the session. Failure here is fatal for the run, before any
// entity is read.
func (s *Source) Verify(ctx context.Context) error {
	return s.rest.get(ctx, "/session", nil)
}

func (s *Source) ListDialplans(ctx context.Context) ([]models.Dialplan, error) {
	return listPaged[models.Dialplan](ctx, &s.rest, "/dialplans")
}

func (s *Source) ListVoiceRoutes(ctx context.Context) ([]models.VoiceRoute, error) {
	return listPaged[models.VoiceRoute](ctx, &s.rest, "/voiceroutes")
}

func (s *Source) ListVoicePolicies(ctx context.Context) ([]models.VoicePolicy, error) {
	return listPaged[models.VoicePolicy](ctx, &s.rest, "/voicepolicies")
}

func (s *Source) ListPSTNUsageNames(ctx context.Context) ([]string, error) {
	return listPaged[string](ctx, &s.rest, "/pstnusages")
}

func (s *Source) ListGatewayAddresses(ctx context.Context) ([]string, error) {
	return listPaged[string](ctx, &s.rest, "/gateways")
}

func (s *Source) ListCallingTranslationRules(ctx context.Context) ([]models.TranslationRule, error) {
	return listPaged[models.TranslationRule](ctx, &s.rest, "/translationrules/calling")
}

func (s *Source) ListCalledTranslationRules(ctx context.Context) ([]models.TranslationRule, error) {
	return listPaged[models.TranslationRule](ctx, &s.rest, "/translationrules/called")
}
