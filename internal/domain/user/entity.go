package user

// User represents a user entity in the system.
type User struct {
	ID        int64  // ID is the unique identifier for the user
	FirstName string // FirstName is the user's given name
	LastName  string // LastName is the user's family name
	Email     string // Email is the user's contact address
}
