package models

// Schema lists the models a database connection migrates. Build it once
// with NewSchema and pass it to whatever opens the database.
type Schema struct {
	models []any
}

// NewSchema returns the application schema in dependency order.
func NewSchema() Schema {
	return Schema{models: []any{
		&User{},
		&GLTrait{},
		&Question{},
		&Answer{},
		&Friendship{},
		&PasswordReset{},
	}}
}

// Models returns the registered model values.
func (s Schema) Models() []any {
	out := make([]any, len(s.models))
	copy(out, s.models)
	return out
}
