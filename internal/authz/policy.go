package authz

// Action is one of the four things a role can do to a resource kind.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource is a kind of record the catalog manages.
type Resource string

const (
	ResourceSize        Resource = "SIZE"
	ResourceIngredient  Resource = "INGREDIENT"
	ResourceComposition Resource = "COMPOSITION"
	ResourceCategory    Resource = "CATEGORY"
	ResourceItem        Resource = "ITEM"
)

// Policy maps role -> resource -> allowed actions. It is built once at
// startup and passed by reference wherever a permission check is needed.
type Policy map[string]map[Resource][]Action

// Can reports whether the role may perform the action on the resource.
func (p Policy) Can(role string, action Action, resource Resource) bool {
	grants, ok := p[role]
	if !ok {
		return false
	}
	for _, a := range grants[resource] {
		if a == action {
			return true
		}
	}
	return false
}

var allActions = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}

var catalogResources = []Resource{
	ResourceSize,
	ResourceIngredient,
	ResourceComposition,
	ResourceCategory,
	ResourceItem,
}

// Default is the grant table: ADMIN manages everything, the operational
// roles read the catalog.
func Default() Policy {
	admin := make(map[Resource][]Action, len(catalogResources))
	for _, r := range catalogResources {
		admin[r] = allActions
	}

	readOnly := func() map[Resource][]Action {
		grants := make(map[Resource][]Action, len(catalogResources))
		for _, r := range catalogResources {
			grants[r] = []Action{ActionRead}
		}
		return grants
	}

	return Policy{
		"ADMIN":  admin,
		"PICKER": readOnly(),
		"REPORT": readOnly(),
		"DRIVER": readOnly(),
	}
}
