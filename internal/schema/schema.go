// Package schema declares the entity schemas backed by the database.
//
// A Registry is a plain mapping from entity name to schema descriptor;
// building one never touches storage. Tables are only created or dropped
// by the bootstrap sequence, which consumes the registry.
package schema

import (
	"fmt"
)

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	Email     string `gorm:"column:email"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// FruitSchema represents the database schema for the fruits table.
type FruitSchema struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"column:name"`
	Color string `gorm:"column:color"`
}

// TableName specifies the table name for the FruitSchema model.
func (FruitSchema) TableName() string {
	return "fruits"
}

// Descriptor maps an entity name to the model that materializes its
// storage structure.
type Descriptor struct {
	Entity string // entity name, e.g. "user"
	Table  string // backing table name
	Model  any    // gorm model, e.g. &UserSchema{}
}

// Registry holds the declared schemas in registration order.
type Registry struct {
	descriptors []Descriptor
	byEntity    map[string]Descriptor
}

// NewRegistry creates an empty schema registry.
func NewRegistry() *Registry {
	return &Registry{
		byEntity: make(map[string]Descriptor),
	}
}

// Register adds a schema descriptor to the registry. Registering a
// descriptor declares the schema only; it does not create the table.
func (r *Registry) Register(d Descriptor) error {
	if d.Entity == "" {
		return fmt.Errorf("schema descriptor requires an entity name")
	}
	if d.Model == nil {
		return fmt.Errorf("schema descriptor for %q requires a model", d.Entity)
	}
	if _, exists := r.byEntity[d.Entity]; exists {
		return fmt.Errorf("schema for entity %q already registered", d.Entity)
	}

	r.descriptors = append(r.descriptors, d)
	r.byEntity[d.Entity] = d
	return nil
}

// Lookup returns the descriptor for the given entity name.
func (r *Registry) Lookup(entity string) (Descriptor, bool) {
	d, ok := r.byEntity[entity]
	return d, ok
}

// Descriptors returns the registered descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Models returns the registered models in registration order, in the
// shape gorm's Migrator expects.
func (r *Registry) Models() []any {
	models := make([]any, len(r.descriptors))
	for i, d := range r.descriptors {
		models[i] = d.Model
	}
	return models
}

// Default builds the registry with every entity this service declares.
func Default() (*Registry, error) {
	r := NewRegistry()

	if err := r.Register(Descriptor{Entity: "user", Table: UserSchema{}.TableName(), Model: &UserSchema{}}); err != nil {
		return nil, err
	}
	if err := r.Register(Descriptor{Entity: "fruit", Table: FruitSchema{}.TableName(), Model: &FruitSchema{}}); err != nil {
		return nil, err
	}

	return r, nil
}
