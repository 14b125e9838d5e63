// form.go - Form declaration and submission validation
// A form validates a whole submission at once: either every rule passes and
// a typed Submission is returned, or the failing fields come back as Errors

package forms // Declares the package name

import ( // Import required packages
	"fmt"     // Error and panic messages
	"net/url" // Parsed form bodies
	"sort"    // Stable error output
	"strconv" // Integer fields
	"strings" // Checkbox parsing
)

// Input - Raw submission: field name to submitted string
type Input map[string]string

// InputFromValues - Keeps the first value submitted for each key
func InputFromValues(values url.Values) Input {
	in := make(Input, len(values))
	for k, v := range values {
		if len(v) > 0 {
			in[k] = v[0]
		}
	}
	return in
}

// Errors - Field names mapped to the messages of the rules they failed
type Errors map[string][]string

func (e Errors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic message order

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(e[name], " "))
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Form - Named, ordered set of fields
type Form struct {
	name   string
	fields []Field
}

// New - Declares a form. Field names must be unique.
func New(name string, fields ...Field) *Form {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.name] {
			panic(fmt.Sprintf("forms: %s declares field %q twice", name, f.name))
		}
		seen[f.name] = true
	}
	return &Form{name: name, fields: fields}
}

func (f *Form) Name() string { return f.name }

// Fields - Returns a copy of the fields in declaration order
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Field - Looks a field up by name
func (f *Form) Field(name string) (Field, bool) {
	for _, field := range f.fields {
		if field.name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Defaults - Returns the values a freshly rendered form starts with
func (f *Form) Defaults() map[string]string {
	out := make(map[string]string)
	for _, field := range f.fields {
		if field.def != "" {
			out[field.name] = field.def
		}
	}
	return out
}

// Validate - Checks the rules of every field against in. A failed Required
// skips the rest of that field's rules. It returns the typed submission when
// all rules pass, otherwise a nil submission and Errors.
func (f *Form) Validate(in Input) (*Submission, error) {
	s := &Submission{
		values:  make(map[string]string),
		flags:   make(map[string]bool),
		pressed: make(map[string]bool),
	}
	errs := Errors{}

	for _, field := range f.fields {
		raw, present := in[field.name] // Absent fields read as ""
		switch field.kind {
		case KindText, KindPassword, KindHidden:
			for _, rule := range field.textRules {
				if msg, ok := rule.checkText(raw, in); !ok {
					errs.add(field.name, msg)
					if _, stop := rule.(Required); stop { // Nothing else to check on a blank value
						break
					}
				}
			}
			s.values[field.name] = raw

		case KindBoolean:
			value := ParseBool(raw)
			for _, rule := range field.boolRules {
				if msg, ok := rule.checkBool(value); !ok {
					errs.add(field.name, msg)
				}
			}
			s.flags[field.name] = value

		case KindChoice:
			value := raw
			if value == "" {
				value = field.def // Fall back to the preselected option
			}
			if !hasOption(field.options, value) {
				errs.add(field.name, "Not a valid choice.")
			}
			s.values[field.name] = value

		case KindAction:
			if present {
				s.pressed[field.name] = true
				if s.action == "" {
					s.action = field.name // First declared pressed action wins
				}
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return s, nil
}

func hasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// ParseBool - Reads a checkbox value
// Empty, "false", "0", "off", "n" and "no" are false, anything else is true.
func ParseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "false", "0", "off", "n", "no":
		return false
	}
	return true
}

// Submission - Typed values of a form that passed validation
type Submission struct {
	values  map[string]string // Text, password, hidden and choice values
	flags   map[string]bool   // Boolean values
	pressed map[string]bool   // Actions present in the submission
	action  string            // First declared pressed action
}

// String returns the value of a text, password, hidden or choice field.
func (s *Submission) String(name string) string { return s.values[name] }

// Bool returns the value of a boolean field.
func (s *Submission) Bool(name string) bool { return s.flags[name] }

// Int parses a field value as an integer.
func (s *Submission) Int(name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s.values[name]))
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", name, err)
	}
	return n, nil
}

// Pressed reports whether the named action was part of the submission.
func (s *Submission) Pressed(name string) bool { return s.pressed[name] }

// Action returns the first declared action that was pressed, or "".
func (s *Submission) Action() string { return s.action }
