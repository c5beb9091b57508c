package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionTokenTable(t *testing.T) {
	token, ok := PermissionToken(ResourceFood, ActionCreate)
	require.True(t, ok)
	assert.Equal(t, "create-food", token)

	token, ok = PermissionToken(ResourceFoodCategory, ActionDelete)
	require.True(t, ok)
	assert.Equal(t, "delete-foodCategory", token)

	_, ok = PermissionToken(Resource("table"), ActionRead)
	assert.False(t, ok)

	_, ok = PermissionToken(ResourceFood, Action("publish"))
	assert.False(t, ok)

	assert.Len(t, Resources(), 7)
	assert.Len(t, Actions(), 4)
}

func TestResourcesReturnsCopy(t *testing.T) {
	resources := Resources()
	resources[0] = Resource("hacked")

	assert.Equal(t, ResourceUser, Resources()[0])
}

func TestRoleGrantsExactlyItsPairs(t *testing.T) {
	for _, resource := range Resources() {
		for _, action := range Actions() {
			role := &Role{Name: "single", Permissions: PermissionSet{string(resource): {string(action)}}}

			for _, otherResource := range Resources() {
				for _, otherAction := range Actions() {
					want := otherResource == resource && otherAction == action
					assert.Equal(t, want, role.Grants(otherResource, otherAction),
						"role with %s:%s checked for %s:%s", resource, action, otherResource, otherAction)
				}
			}
		}
	}
}

func TestRoleGrantsFullTokens(t *testing.T) {
	role := &Role{Permissions: PermissionSet{"invoice": {"read-invoice"}}}

	assert.True(t, role.Grants(ResourceInvoice, ActionRead))
	assert.False(t, role.Grants(ResourceInvoice, ActionCreate))
}

func TestRoleGrantsIsDeterministic(t *testing.T) {
	role := &Role{Permissions: PermissionSet{"food": {"read", "update"}}}
	first := role.Grants(ResourceFood, ActionUpdate)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, role.Grants(ResourceFood, ActionUpdate))
	}
}

func TestNilRoleGrantsNothing(t *testing.T) {
	var role *Role
	assert.False(t, role.Grants(ResourceFood, ActionRead))
}

func TestFullPermissionSetAllowsEverything(t *testing.T) {
	set := FullPermissionSet()
	for _, resource := range Resources() {
		for _, action := range Actions() {
			assert.True(t, set.Allows(resource, action))
		}
	}
	assert.NoError(t, set.Validate())
}

func TestPermissionSetValidate(t *testing.T) {
	assert.NoError(t, PermissionSet{"food": {"read", "create-food"}}.Validate())
	assert.Error(t, PermissionSet{"drinks": {"read"}}.Validate())
	assert.Error(t, PermissionSet{"food": {"publish"}}.Validate())
	assert.Error(t, PermissionSet{"food": {"read-invoice"}}.Validate())
}

func TestPermissionSetScanValue(t *testing.T) {
	set := PermissionSet{"food": {"read"}}
	value, err := set.Value()
	require.NoError(t, err)

	var scanned PermissionSet
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, set, scanned)

	require.NoError(t, scanned.Scan([]byte(`{"role":["delete"]}`)))
	assert.True(t, scanned.Allows(ResourceRole, ActionDelete))

	assert.Error(t, scanned.Scan(42))
}
