// Package identity provides parsing and normalization for the composite
// identity strings used by the administrative systems.
package identity

import "strings"

// Scope markers that may prefix a source identity. Target identities are
// always unscoped, so the prefix is stripped before any write.
var scopePrefixes = []string{"Site:", "Tag:"}

// StripScopePrefix removes a leading scope marker from an identity, leaving
// the remainder unchanged. Identities without a marker pass through as-is;
// the administrative systems emit at most one marker per identity.
//
// Note: two differently-scoped source identities that strip to the same name
// ("Site:HQ" and "Tag:HQ") collide in the target. That collision is not
// resolved here.
func StripScopePrefix(id string) string {
	for _, prefix := range scopePrefixes {
		if strings.HasPrefix(id, prefix) {
			return id[len(prefix):]
		}
	}
	return id
}

// Ref is a typed structural reference parsed from a "Kind:name" string.
type Ref struct {
	Kind string
	Name string
}

// ParseRef splits a structured reference of the form "Kind:name". It reports
// false when the structural marker is absent or the kind is empty.
func ParseRef(s string) (Ref, bool) {
	kind, name, found := strings.Cut(s, ":")
	if !found || kind == "" {
		return Ref{}, false
	}
	return Ref{Kind: kind, Name: name}, true
}

// GatewayFromRouteRef extracts the gateway name from a voice route gateway
// entry ("Kind:name"). It reports false when no gateway is resolvable from
// the entry.
func GatewayFromRouteRef(entry string) (string, bool) {
	ref, ok := ParseRef(entry)
	if !ok || ref.Name == "" {
		return "", false
	}
	return ref.Name, true
}

// GatewayFromRuleIdentity extracts the owning gateway name from a
// translation rule identity ("Kind:gateway/ruleName"). The suffix after the
// first "/" is ignored; an identity without the "Kind:" marker reports false.
func GatewayFromRuleIdentity(id string) (string, bool) {
	ref, ok := ParseRef(id)
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(ref.Name, "/")
	if name == "" {
		return "", false
	}
	return name, true
}
