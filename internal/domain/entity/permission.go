package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

type Resource string

type Action string

const (
	ResourceUser         Resource = "user"
	ResourceFood         Resource = "food"
	ResourceFoodCategory Resource = "foodCategory"
	ResourceFoodMenu     Resource = "foodMenu"
	ResourceInvoice      Resource = "invoice"
	ResourceEmployee     Resource = "employee"
	ResourceRole         Resource = "role"
)

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

var allResources = []Resource{
	ResourceUser,
	ResourceFood,
	ResourceFoodCategory,
	ResourceFoodMenu,
	ResourceInvoice,
	ResourceEmployee,
	ResourceRole,
}

var allActions = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}

// permissionTable is built once at init and never mutated afterwards.
var permissionTable = buildPermissionTable()

func buildPermissionTable() map[Resource]map[Action]string {
	table := make(map[Resource]map[Action]string, len(allResources))
	for _, resource := range allResources {
		actions := make(map[Action]string, len(allActions))
		for _, action := range allActions {
			actions[action] = string(action) + "-" + string(resource)
		}
		table[resource] = actions
	}
	return table
}

// PermissionToken returns the token required for (resource, action), e.g. "create-food".
func PermissionToken(resource Resource, action Action) (string, bool) {
	actions, ok := permissionTable[resource]
	if !ok {
		return "", false
	}
	token, ok := actions[action]
	return token, ok
}

// Resources lists every resource of the permission table.
func Resources() []Resource {
	out := make([]Resource, len(allResources))
	copy(out, allResources)
	return out
}

// Actions lists every action of the permission table.
func Actions() []Action {
	out := make([]Action, len(allActions))
	copy(out, allActions)
	return out
}

// PermissionSet maps a resource name to the actions a role may perform on it.
// Entries may be plain action names ("read") or full tokens ("read-food").
type PermissionSet map[string][]string

// FullPermissionSet grants every action on every resource.
func FullPermissionSet() PermissionSet {
	set := make(PermissionSet, len(allResources))
	for _, resource := range allResources {
		actions := make([]string, 0, len(allActions))
		for _, action := range allActions {
			actions = append(actions, string(action))
		}
		set[string(resource)] = actions
	}
	return set
}

// Allows reports whether the set contains the permission for (resource, action).
// Pairs outside the permission table are never allowed.
func (p PermissionSet) Allows(resource Resource, action Action) bool {
	token, ok := PermissionToken(resource, action)
	if !ok {
		return false
	}
	for _, granted := range p[string(resource)] {
		if granted == string(action) || granted == token {
			return true
		}
	}
	return false
}

// Validate rejects unknown resources and actions.
func (p PermissionSet) Validate() error {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		resource := Resource(key)
		if _, ok := permissionTable[resource]; !ok {
			return fmt.Errorf("unknown resource %q", key)
		}
		for _, granted := range p[key] {
			if !isKnownGrant(resource, granted) {
				return fmt.Errorf("unknown action %q for resource %q", granted, key)
			}
		}
	}
	return nil
}

func isKnownGrant(resource Resource, granted string) bool {
	for action, token := range permissionTable[resource] {
		if granted == string(action) || granted == token {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer so the set is stored as a JSON document.
func (p PermissionSet) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (p *PermissionSet) Scan(value interface{}) error {
	if value == nil {
		*p = PermissionSet{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal permission set:", value))
	}

	result := PermissionSet{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*p = result
	return nil
}
