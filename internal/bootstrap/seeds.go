package bootstrap

import "user-seed-service/internal/schema"

// UserSeeds returns the fixed user rows inserted on every bootstrap run.
func UserSeeds() []schema.UserSchema {
	return []schema.UserSchema{
		{FirstName: "Bob", LastName: "Doe", Email: "bob@example.com"},
		{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
	}
}

// FruitSeeds returns the fixed fruit rows inserted on every bootstrap run.
func FruitSeeds() []schema.FruitSchema {
	return []schema.FruitSchema{
		{Name: "apple", Color: "red"},
		{Name: "banana", Color: "yellow"},
	}
}
