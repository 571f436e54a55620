package specjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var hexColorPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// IsHexColor reports whether s is six hex digits with an optional leading '#'.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// NewValidator returns a validator that reports fields by their json name
// and understands the hexcolor6 rule.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		return IsHexColor(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("specjson: register hexcolor6: %v", err))
	}
	return v
}

var validate = NewValidator()

// Violation describes one field that broke its bound.
type Violation struct {
	Field   string  `json:"field"`
	Section Section `json:"section,omitempty"`
	Rule    string  `json:"rule"`
	Param   string  `json:"param,omitempty"`
}

func (v Violation) String() string {
	field := v.Field
	if field == "" {
		field = "(root)"
	}
	if v.Param == "" {
		return fmt.Sprintf("%s: %s", field, v.Rule)
	}
	return fmt.Sprintf("%s: %s=%s", field, v.Rule, v.Param)
}

// ValidationError is returned when a candidate spec breaks the contract.
// It lists every violation, not only the first one.
type ValidationError struct {
	Violations []Violation `json:"violations"`
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return "generated spec invalid"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "generated spec invalid: " + strings.Join(parts, "; ")
}

// Sections returns every section implicated by a violation, whether the
// section is missing or one of its fields is out of bounds.
func (e *ValidationError) Sections() SectionSet {
	set := SectionSet{}
	if e == nil {
		return set
	}
	for _, v := range e.Violations {
		if v.Section != "" {
			set[v.Section] = struct{}{}
		}
	}
	return set
}

func (e *ValidationError) add(v Violation) {
	e.Violations = append(e.Violations, v)
}

// AsValidationError unwraps err into a *ValidationError when it carries one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Validate checks every bound on the spec.
func (s *GeneratedSpec) Validate() error {
	if s == nil {
		return &ValidationError{Violations: []Violation{{Rule: "required"}}}
	}
	return toValidationError(validate.Struct(s))
}

// Decode parses raw model output in strict mode: unknown top-level keys,
// type mismatches and bound violations are all collected into a single
// *ValidationError.
func Decode(raw []byte) (*GeneratedSpec, error) {
	verr := &ValidationError{}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		verr.add(Violation{Rule: "json", Param: err.Error()})
		return nil, verr
	}
	unknown := make([]string, 0)
	for key := range top {
		if !slices.Contains(Sections, Section(key)) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		verr.add(Violation{Field: key, Rule: "unknown"})
	}

	var spec GeneratedSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			verr.add(Violation{Rule: "json", Param: err.Error()})
			return nil, verr
		}
		verr.add(Violation{Field: typeErr.Field, Section: sectionOf(typeErr.Field), Rule: "type", Param: typeErr.Value})
	}

	if err := spec.Validate(); err != nil {
		fieldErr, ok := AsValidationError(err)
		if !ok {
			return nil, err
		}
		mistyped := make(map[string]bool)
		for _, v := range verr.Violations {
			if v.Rule == "type" {
				mistyped[v.Field] = true
			}
		}
		for _, v := range fieldErr.Violations {
			if !mistyped[v.Field] {
				verr.add(v)
			}
		}
	}

	if len(verr.Violations) > 0 {
		return nil, verr
	}
	return &spec, nil
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range fieldErrs {
		path := fieldPath(fe.Namespace())
		out.add(Violation{
			Field:   path,
			Section: sectionOf(path),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
		})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace,
// e.g. "GeneratedSpec.hero.headline" becomes "hero.headline".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func sectionOf(path string) Section {
	head := path
	if idx := strings.IndexAny(head, ".["); idx >= 0 {
		head = head[:idx]
	}
	if section, ok := ParseSection(head); ok {
		return section
	}
	return ""
}
