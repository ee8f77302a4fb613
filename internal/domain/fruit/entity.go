package fruit

// Fruit represents a fruit entity in the system.
type Fruit struct {
	ID    int64  // ID is the unique identifier for the fruit
	Name  string // Name is the fruit's common name
	Color string // Color is the fruit's color
}
