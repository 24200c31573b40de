package migrate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartekS5/VCM/pkg/models"
)

func TestCopyDialplansStripsScopeAndOmitsEmptyPrefix(t *testing.T) {
	snap := &Snapshot{
		Dialplans: []models.Dialplan{
			{
				Identity:             "Site:HQ",
				Description:          "headquarters",
				ExternalAccessPrefix: "9",
				NormalizationRules: []models.NormalizationRule{
					{Name: "US-National", Pattern: `^(\d{10})$`, Translation: "+1$1"},
				},
			},
			{Identity: "Branch"},
		},
	}
	target := newFakeTarget()

	require.NoError(t, NewPipeline(snap, target, GatewayMapping{}).Run(context.Background()))

	hq, ok := target.dialplans["HQ"]
	require.True(t, ok, "scope prefix should be stripped from the identity")
	require.NotNil(t, hq.ExternalAccessPrefix)
	assert.Equal(t, "9", *hq.ExternalAccessPrefix)
	assert.Len(t, hq.NormalizationRules, 1)

	branch, ok := target.dialplans["Branch"]
	require.True(t, ok)
	assert.Nil(t, branch.ExternalAccessPrefix, "absent prefix must be omitted, not sent empty")
}

func TestPipelineIsIdempotent(t *testing.T) {
	snap := &Snapshot{
		Dialplans:     []models.Dialplan{{Identity: "Site:HQ"}},
		VoiceRoutes:   []models.VoiceRoute{{Identity: "National", NumberPattern: `^\+1`, Priority: 1}},
		VoicePolicies: []models.VoicePolicy{{Identity: "Tag:Unrestricted", PSTNUsages: []string{"Long Distance"}}},
		PSTNUsages:    []string{"Long Distance"},
		CallingRules: []models.TranslationRule{
			{Identity: "PstnGateway:sbc1.contoso.com/StripPlus", Name: "StripPlus", Pattern: `^\+(\d+)$`, Translation: "$1"},
		},
	}
	mapping := GatewayMapping{"sbc1.contoso.com": {Target: "sbc1.contoso.com", Matched: true}}
	target := newFakeTarget("sbc1.contoso.com")

	require.NoError(t, NewPipeline(snap, target, mapping).Run(context.Background()))
	firstWrites := len(target.writes)
	require.NoError(t, NewPipeline(snap, target, mapping).Run(context.Background()))

	// Second run finds every entity and updates in place.
	assert.Len(t, target.dialplans, 1)
	assert.Len(t, target.routes, 1)
	assert.Len(t, target.policies, 1)
	assert.Len(t, target.rules, 1)
	assert.Equal(t, []string{"Long Distance"}, target.usages)

	counts := make(map[string]int)
	for _, w := range target.writes {
		counts[w]++
	}
	assert.Equal(t, 1, counts["CreateDialplan"])
	assert.Equal(t, 1, counts["UpdateDialplan"])
	assert.Equal(t, 1, counts["CreateVoiceRoute"])
	assert.Equal(t, 1, counts["UpdateVoiceRoute"])
	assert.Equal(t, 1, counts["CreateTranslationRule"], "identical rule must be reused on the second run")
	assert.Equal(t, 2, counts["AddGatewayTranslationRule"])
	assert.Greater(t, len(target.writes), firstWrites)
}

func TestCopyVoiceRoutesTranslatesGatewayList(t *testing.T) {
	snap := &Snapshot{
		VoiceRoutes: []models.VoiceRoute{
			{
				Identity: "National",
				Gateways: []string{
					"PstnGateway:sbc1.contoso.com",
					"PstnGateway:sbc2.contoso.com",
					"PstnGateway:sbc1.contoso.com",
					"not-a-reference",
				},
			},
		},
	}
	mapping := GatewayMapping{
		"sbc1.contoso.com": {Target: "sbc-new.fabrikam.com", Matched: true},
		"sbc2.contoso.com": {}, // unmatched
	}
	target := newFakeTarget()

	require.NoError(t, NewPipeline(snap, target, mapping).Run(context.Background()))

	// Order preserved, duplicates kept, unmatched and unparseable dropped.
	assert.Equal(t, []string{"sbc-new.fabrikam.com", "sbc-new.fabrikam.com"},
		target.routes["National"].Gateways)
}

func TestCopyVoiceRoutesOmitsGatewayListWhenNothingResolves(t *testing.T) {
	snap := &Snapshot{
		VoiceRoutes: []models.VoiceRoute{
			{Identity: "Orphan", Gateways: []string{"PstnGateway:sbc9.contoso.com"}},
		},
	}
	mapping := GatewayMapping{"sbc9.contoso.com": {}}
	target := newFakeTarget()

	require.NoError(t, NewPipeline(snap, target, mapping).Run(context.Background()))

	assert.Nil(t, target.routes["Orphan"].Gateways, "gateway list must be omitted entirely")
}

func TestCopyPSTNUsagesIsSetUnion(t *testing.T) {
	snap := &Snapshot{PSTNUsages: []string{"Local", "Long Distance", "Local"}}
	target := newFakeTarget()
	target.usages = []string{"Long Distance"}

	require.NoError(t, NewPipeline(snap, target, GatewayMapping{}).Run(context.Background()))

	assert.Equal(t, []string{"Long Distance", "Local"}, target.usages)
}

func TestCopyRoutingPoliciesStripsScope(t *testing.T) {
	snap := &Snapshot{
		VoicePolicies: []models.VoicePolicy{
			{Identity: "Tag:International", Description: "all calls", PSTNUsages: []string{"International"}},
		},
	}
	target := newFakeTarget()

	require.NoError(t, NewPipeline(snap, target, GatewayMapping{}).Run(context.Background()))

	pol, ok := target.policies["International"]
	require.True(t, ok)
	assert.Equal(t, []string{"International"}, pol.PSTNUsages)
}
