// field.go - Field kinds and field constructors

package forms // Declares the package name

// Kind - What sort of input a field holds
type Kind int

const (
	KindText     Kind = iota // Free text
	KindPassword             // Masked text
	KindBoolean              // Checkbox
	KindChoice               // One of a fixed set of options
	KindHidden               // Value carried through the page
	KindAction               // Submit button
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPassword:
		return "password"
	case KindBoolean:
		return "boolean"
	case KindChoice:
		return "choice"
	case KindHidden:
		return "hidden"
	case KindAction:
		return "action"
	}
	return "unknown"
}

// Option - One selectable value of a choice field
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field is a single input of a form. Build fields with the per-kind
// constructors below; the rule types they accept decide which checks are
// possible for each kind.
type Field struct {
	name      string
	label     string
	kind      Kind
	def       string
	options   []Option
	textRules []TextRule
	boolRules []BoolRule
}

func (f Field) Name() string  { return f.name }
func (f Field) Label() string { return f.label }
func (f Field) Kind() Kind    { return f.kind }

// Default is the value shown before anything is submitted.
func (f Field) Default() string { return f.def }

func (f Field) Options() []Option {
	out := make([]Option, len(f.options))
	copy(out, f.options)
	return out
}

// Text - Declares a free text input
func Text(name, label string, rules ...TextRule) Field {
	return Field{name: name, label: label, kind: KindText, textRules: rules}
}

// Password - Declares a masked text input
func Password(name, label string, rules ...TextRule) Field {
	return Field{name: name, label: label, kind: KindPassword, textRules: rules}
}

// Boolean - Declares a checkbox
// def is only a rendering default: a submitted form without the field reads
// as false.
func Boolean(name, label string, def bool, rules ...BoolRule) Field {
	d := ""
	if def {
		d = "true"
	}
	return Field{name: name, label: label, kind: KindBoolean, def: d, boolRules: rules}
}

// Choice - Declares a single selection among options
// An empty def means no option is preselected, so a submission must pick one.
func Choice(name, label, def string, options []Option) Field {
	opts := make([]Option, len(options))
	copy(opts, options)
	return Field{name: name, label: label, kind: KindChoice, def: def, options: opts}
}

// Hidden - Declares a value carried through the page unchanged
func Hidden(name, label string, rules ...TextRule) Field {
	return Field{name: name, label: label, kind: KindHidden, textRules: rules}
}

// Submit - Declares a submit button
// A form may have several; the one that was pressed is reported by
// Submission.Action.
func Submit(name, label string) Field {
	return Field{name: name, label: label, kind: KindAction}
}
