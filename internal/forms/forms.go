package forms

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FormID names one of the landing page forms.
type FormID string

const (
	Newsletter  FormID = "newsletter"
	Application FormID = "application"
)

// Field names shared with the API payloads.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldSource       = "source"
	FieldRoleInterest = "roleInterest"
	FieldExperience   = "experience"
	FieldPortfolioURL = "portfolioUrl"
	FieldMessage      = "message"
)

// DefaultSource is the fixed, never edited newsletter source.
const DefaultSource = "website"

// ErrUnknownField is returned when a field is outside the form's declared set.
var ErrUnknownField = errors.New("unknown form field")

// Fields maps field name to current value.
type Fields map[string]string

// Clone copies the mapping.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for key, value := range f {
		out[key] = value
	}
	return out
}

type formDef struct {
	fields   []string
	required []string
	fixed    map[string]string
}

var definitions = map[FormID]formDef{
	Newsletter: {
		fields:   []string{FieldName, FieldEmail, FieldSource},
		required: []string{FieldEmail},
		fixed:    map[string]string{FieldSource: DefaultSource},
	},
	Application: {
		fields:   []string{FieldName, FieldEmail, FieldRoleInterest, FieldExperience, FieldPortfolioURL, FieldMessage},
		required: []string{FieldName, FieldEmail, FieldRoleInterest, FieldMessage},
	},
}

// Forms lists every known form in display order.
func Forms() []FormID {
	return []FormID{Newsletter, Application}
}

// FieldNames returns the declared fields of a form in declaration order.
func FieldNames(form FormID) []string {
	return append([]string(nil), definitions[form].fields...)
}

// Required returns the fields that must be non-empty before submitting.
func Required(form FormID) []string {
	return append([]string(nil), definitions[form].required...)
}

// Editable reports whether a user may change the field.
func Editable(form FormID, field string) bool {
	def, ok := definitions[form]
	if !ok || !def.has(field) {
		return false
	}
	_, fixed := def.fixed[field]
	return !fixed
}

// Defaults returns the initial mapping: empty strings except fixed values.
func Defaults(form FormID) Fields {
	def := definitions[form]
	out := make(Fields, len(def.fields))
	for _, name := range def.fields {
		out[name] = def.fixed[name]
	}
	return out
}

func (s formDef) has(field string) bool {
	for _, name := range s.fields {
		if name == field {
			return true
		}
	}
	return false
}

var validate = validator.New()

// Missing runs the validation gate and returns the required fields that are
// empty, in declaration order. Whitespace-only values count as empty.
func Missing(form FormID, fields Fields) []string {
	def := definitions[form]
	data := make(map[string]interface{}, len(def.required))
	rules := make(map[string]interface{}, len(def.required))
	for _, name := range def.required {
		data[name] = strings.TrimSpace(fields[name])
		rules[name] = "required"
	}
	failures := validate.ValidateMap(data, rules)
	if len(failures) == 0 {
		return nil
	}
	missing := make([]string, 0, len(failures))
	for _, name := range def.fields {
		if _, failed := failures[name]; failed {
			missing = append(missing, name)
		}
	}
	return missing
}

// Store holds the live field values of every form. It performs no validation
// and no I/O.
type Store struct {
	mu    sync.RWMutex
	forms map[FormID]Fields
}

// NewStore returns a store with every form at its defaults.
func NewStore() *Store {
	s := &Store{forms: make(map[FormID]Fields, len(definitions))}
	for form := range definitions {
		s.forms[form] = Defaults(form)
	}
	return s
}

// Set overwrites exactly one field. Fixed fields such as the newsletter source
// keep their value.
func (s *Store) Set(form FormID, field, value string) error {
	def, ok := definitions[form]
	if !ok || !def.has(field) {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, form, field)
	}
	if _, fixed := def.fixed[field]; fixed {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms[form][field] = value
	return nil
}

// Fields returns a copy of the form's current values.
func (s *Store) Fields(form FormID) Fields {
	s.mu.RLock()
	defer s.mu.RUnlock()
	current, ok := s.forms[form]
	if !ok {
		return Fields{}
	}
	return current.Clone()
}

// Reset puts the form back to its defaults.
func (s *Store) Reset(form FormID) {
	if _, ok := definitions[form]; !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms[form] = Defaults(form)
}
