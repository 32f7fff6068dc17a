package domain

// Resource names, used in errors, schemas and change events.
const (
	ResourcePerson      = "person"
	ResourceMeal        = "meal"
	ResourcePortion     = "portion"
	ResourceMealPortion = "mealportion"
	ResourceMealRecord  = "mealrecord"
)

// Change actions carried by ChangeEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)
