// rules.go - Validation rules attached to text and boolean fields
// Rule types are split by field kind so a rule can only be attached to a
// field it can check

package forms // Declares the package name

import ( // Import required packages
	"fmt"     // Message formatting
	"strings" // Whitespace trimming

	"github.com/go-playground/validator/v10" // Tag based validation
)

// validate - Shared validator instance, safe for concurrent use
var validate = validator.New()

// TextRule - Checks the value of a text, password or hidden field
// in holds the whole raw submission so rules can compare fields.
type TextRule interface {
	checkText(value string, in Input) (string, bool)
}

// BoolRule - Checks the value of a boolean field
type BoolRule interface {
	checkBool(value bool) (string, bool)
}

// Length - Requires between Min and Max characters, inclusive
type Length struct {
	Min, Max int    // Inclusive bounds
	Message  string // Optional override of the default message
}

func (r Length) checkText(value string, _ Input) (string, bool) {
	if err := validate.Var(value, fmt.Sprintf("min=%d,max=%d", r.Min, r.Max)); err != nil {
		return r.message(), false
	}
	return "", true
}

func (r Length) message() string {
	if r.Message != "" {
		return r.Message
	}
	return fmt.Sprintf("Field must be between %d and %d characters long.", r.Min, r.Max)
}

// Required - Rejects empty and whitespace-only values
// A failed Required skips the remaining rules of its field.
type Required struct {
	Message string
}

func (r Required) checkText(value string, _ Input) (string, bool) {
	if err := validate.Var(strings.TrimSpace(value), "required"); err != nil {
		if r.Message != "" {
			return r.Message, false
		}
		return "This field is required.", false
	}
	return "", true
}

// EqualTo - Requires the value to match another field byte for byte
type EqualTo struct {
	Field   string // Name of the field to compare with
	Message string // Optional override of the default message
}

func (r EqualTo) checkText(value string, in Input) (string, bool) {
	if err := validate.VarWithValue(value, in[r.Field], "eqfield"); err != nil { // Compare with the other raw value
		if r.Message != "" {
			return r.Message, false
		}
		return fmt.Sprintf("Field must be equal to %s.", r.Field), false
	}
	return "", true
}

// Checked - Requires a boolean field to be set
type Checked struct {
	Message string
}

func (r Checked) checkBool(value bool) (string, bool) {
	if err := validate.Var(value, "required"); err != nil {
		if r.Message != "" {
			return r.Message, false
		}
		return "This field is required.", false
	}
	return "", true
}
