package perm_test

import (
	"deskgate/perm"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildSet(byResource map[string]perm.ResourcePermission) *perm.PermissionSet {
	return &perm.PermissionSet{UserID: 10, Username: "ann", ByResource: byResource}
}

func TestHasPermission(t *testing.T) {
	t.Run("should evaluate standard action flags verbatim", func(t *testing.T) {
		set := buildSet(map[string]perm.ResourcePermission{
			"tickets": {CanView: true, CanCreate: false, CanEdit: true, CanDelete: false},
		})

		assert.True(t, perm.HasPermission(set, "tickets", "view"))
		assert.False(t, perm.HasPermission(set, "tickets", "create"))
		assert.True(t, perm.HasPermission(set, "tickets", "edit"))
		assert.False(t, perm.HasPermission(set, "tickets", "delete"))
	})

	t.Run("should not derive one flag from another", func(t *testing.T) {
		set := buildSet(map[string]perm.ResourcePermission{
			"chats": {CanEdit: true},
		})

		assert.True(t, perm.HasPermission(set, "chats", "edit"))
		assert.False(t, perm.HasPermission(set, "chats", "view"))
	})

	t.Run("should look up non-standard actions in custom actions", func(t *testing.T) {
		set := buildSet(map[string]perm.ResourcePermission{
			"tickets": {CanView: true, CustomActions: []string{"assign", "escalate"}},
		})

		assert.True(t, perm.HasPermission(set, "tickets", "assign"))
		assert.True(t, perm.HasPermission(set, "tickets", "escalate"))
		assert.False(t, perm.HasPermission(set, "tickets", "close"))
	})

	t.Run("should deny everything for an unknown resource", func(t *testing.T) {
		set := buildSet(map[string]perm.ResourcePermission{
			"tickets": {CanView: true, CanCreate: true, CanEdit: true, CanDelete: true},
		})

		for _, action := range []string{"view", "create", "edit", "delete", "assign", "anything"} {
			assert.False(t, perm.HasPermission(set, "users", action), "action %s", action)
		}
	})

	t.Run("should deny everything for a nil or empty set", func(t *testing.T) {
		assert.False(t, perm.HasPermission(nil, "tickets", "view"))
		assert.False(t, perm.HasPermission(&perm.PermissionSet{}, "tickets", "view"))
	})
}

func TestHasAnyPermission(t *testing.T) {
	set := buildSet(map[string]perm.ResourcePermission{
		"roles": {CanEdit: true},
	})
	pairs := []perm.Pair{
		{Resource: "users", Action: "create"},
		{Resource: "roles", Action: "edit"},
	}

	t.Run("should be satisfied when at least one pair is granted", func(t *testing.T) {
		assert.True(t, perm.HasAnyPermission(set, pairs))
		assert.False(t, perm.HasAllPermissions(set, pairs))
	})

	t.Run("should deny on an empty pair list", func(t *testing.T) {
		assert.False(t, perm.HasAnyPermission(set, []perm.Pair{}))
		assert.False(t, perm.HasAnyPermission(set, nil))
	})

	t.Run("should deny when no pair is granted", func(t *testing.T) {
		assert.False(t, perm.HasAnyPermission(set, []perm.Pair{
			{Resource: "users", Action: "view"},
			{Resource: "roles", Action: "delete"},
		}))
	})
}

func TestHasAllPermissions(t *testing.T) {
	set := buildSet(map[string]perm.ResourcePermission{
		"users": {CanView: true, CanCreate: true},
		"roles": {CanEdit: true},
	})

	t.Run("should be satisfied only when every pair is granted", func(t *testing.T) {
		assert.True(t, perm.HasAllPermissions(set, []perm.Pair{
			{Resource: "users", Action: "view"},
			{Resource: "roles", Action: "edit"},
		}))
		assert.False(t, perm.HasAllPermissions(set, []perm.Pair{
			{Resource: "users", Action: "view"},
			{Resource: "roles", Action: "delete"},
		}))
	})

	t.Run("should be satisfied on an empty pair list", func(t *testing.T) {
		assert.True(t, perm.HasAllPermissions(set, []perm.Pair{}))
		assert.True(t, perm.HasAllPermissions(nil, nil))
	})
}

func TestAvailableActions(t *testing.T) {
	t.Run("should list standard actions in fixed order then custom actions in stored order", func(t *testing.T) {
		set := buildSet(map[string]perm.ResourcePermission{
			"tickets": {CanView: true, CanEdit: true, CustomActions: []string{"assign", "escalate"}},
		})

		assert.Equal(t, []string{"view", "edit", "assign", "escalate"}, perm.AvailableActions(set, "tickets"))
	})

	t.Run("should return empty list for ungranted resource or nil set", func(t *testing.T) {
		set := buildSet(map[string]perm.ResourcePermission{})

		assert.Equal(t, []string{}, perm.AvailableActions(set, "tickets"))
		assert.Equal(t, []string{}, perm.AvailableActions(nil, "tickets"))
	})
}

func TestCanAccessResource(t *testing.T) {
	t.Run("should mean view permission on the resource", func(t *testing.T) {
		set := buildSet(map[string]perm.ResourcePermission{
			"settings": {CanView: true},
			"roles":    {CanEdit: true},
		})

		assert.True(t, perm.CanAccessResource(set, "settings"))
		assert.False(t, perm.CanAccessResource(set, "roles"))
		assert.False(t, perm.CanAccessResource(set, "tickets"))
	})
}

func TestRequirementUnrestricted(t *testing.T) {
	t.Run("should treat only the zero value as unrestricted", func(t *testing.T) {
		assert.True(t, perm.Requirement{}.Unrestricted())
		assert.False(t, perm.Requirement{Resource: "tickets", Action: "view"}.Unrestricted())
		assert.False(t, perm.Requirement{AnyOf: []perm.Pair{perm.TicketsView}}.Unrestricted())
		assert.False(t, perm.Requirement{AllOf: []perm.Pair{perm.RolesEdit}}.Unrestricted())
	})
}
