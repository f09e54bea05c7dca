package guard

import "deskgate/perm"

// Fragment is a guarded UI affordance (a button, a panel) of the
// operator shell. Content renders only when the requirement is
// satisfied; otherwise the fallback renders when ShowFallback is set,
// and nothing renders at all in every other case. A fragment never
// renders partially.
type Fragment struct {
	Requirement  perm.Requirement `json:"requirement"`
	Content      interface{}      `json:"content"`
	Fallback     interface{}      `json:"fallback,omitempty"`
	ShowFallback bool             `json:"showFallback,omitempty"`
}

// Render resolves what the fragment displays for the grant set. The
// second return value reports whether anything displays at all.
func (f Fragment) Render(set *perm.PermissionSet) (interface{}, bool) {
	if ResolveAccess(set, f.Requirement) {
		return f.Content, true
	}
	if f.ShowFallback && f.Fallback != nil {
		return f.Fallback, true
	}
	return nil, false
}
