// Package models defines the voice configuration entities exchanged with
// the source and target administrative systems.
package models

// RuleSlot selects which translation-rule list on a gateway an attachment
// targets.
type RuleSlot string

const (
	SlotCalling RuleSlot = "calling"
	SlotCalled  RuleSlot = "called"
)

// NormalizationRule is a pattern/translation pair inside a dialplan. Rules
// are copied verbatim between domains.
type NormalizationRule struct {
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	Translation string `json:"translation"`
	Description string `json:"description,omitempty"`
}

// Dialplan is a named, ordered set of normalization rules. Identity may be
// scope-prefixed on the source side (e.g. "Site:HQ").
type Dialplan struct {
	Identity              string              `json:"identity"`
	Description           string              `json:"description,omitempty"`
	OptimizeDeviceDialing bool                `json:"optimizeDeviceDialing"`
	ExternalAccessPrefix  string              `json:"externalAccessPrefix,omitempty"`
	NormalizationRules    []NormalizationRule `json:"normalizationRules"`
}

// VoiceRoute associates a dialed-number pattern and priority with PSTN
// usages and gateway references. Gateway entries are structured reference
// strings of the form "Kind:name".
type VoiceRoute struct {
	Identity      string   `json:"identity"`
	NumberPattern string   `json:"numberPattern"`
	Priority      int      `json:"priority"`
	PSTNUsages    []string `json:"pstnUsages"`
	Description   string   `json:"description,omitempty"`
	Gateways      []string `json:"gateways,omitempty"`
}

// VoicePolicy bundles PSTN usages on the source side. It becomes a voice
// routing policy in the target domain.
type VoicePolicy struct {
	Identity    string   `json:"identity"`
	Description string   `json:"description,omitempty"`
	PSTNUsages  []string `json:"pstnUsages"`
}

// TranslationRule rewrites calling or called numbers at a gateway boundary.
// The owning gateway name is embedded in Identity ("Kind:gateway/name").
type TranslationRule struct {
	Identity    string `json:"identity"`
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	Translation string `json:"translation"`
	Description string `json:"description,omitempty"`
}

// Gateway is a PSTN trunk endpoint in the target domain, identified by a
// pool-address-like string.
type Gateway struct {
	Identity     string   `json:"identity"`
	CallingRules []string `json:"callingTranslationRules,omitempty"`
	CalledRules  []string `json:"calledTranslationRules,omitempty"`
}

// DialplanFields is the create/update payload for a target dialplan.
// ExternalAccessPrefix is a pointer so an absent source value is omitted
// from the wire payload rather than sent as an empty string.
type DialplanFields struct {
	Identity              string              `json:"identity"`
	Description           string              `json:"description,omitempty"`
	OptimizeDeviceDialing bool                `json:"optimizeDeviceDialing"`
	ExternalAccessPrefix  *string             `json:"externalAccessPrefix,omitempty"`
	NormalizationRules    []NormalizationRule `json:"normalizationRules"`
}

// VoiceRouteFields is the create/update payload for a target voice route.
// Gateways must stay nil when no source reference resolved, so the field is
// left out of the payload entirely.
type VoiceRouteFields struct {
	Identity      string   `json:"identity"`
	NumberPattern string   `json:"numberPattern"`
	Priority      int      `json:"priority"`
	PSTNUsages    []string `json:"pstnUsages"`
	Description   string   `json:"description,omitempty"`
	Gateways      []string `json:"gateways,omitempty"`
}

// RoutingPolicyFields is the create/update payload for a target voice
// routing policy.
type RoutingPolicyFields struct {
	Identity    string   `json:"identity"`
	Description string   `json:"description,omitempty"`
	PSTNUsages  []string `json:"pstnUsages"`
}

// TranslationRuleFields is the create payload for a target translation rule.
type TranslationRuleFields struct {
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	Translation string `json:"translation"`
	Description string `json:"description,omitempty"`
}
