// Package validation evaluates declarative field constraints on inbound payloads.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	domainerrors "crm/internal/domain/errors"
	"crm/internal/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// ruleMessages override the stock English messages for the custom rules.
var ruleMessages = map[string]string{
	"phone":          "Invalid phone number",
	"pincode":        "Invalid pincode",
	"optional_email": "{0} must be a valid email address",
}

// ruleAliases report custom rules under the name clients know.
var ruleAliases = map[string]string{
	"optional_email": "email",
}

// Validator checks structs tagged with `validate` and reports every violation at once.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New builds a Validator with the phone and pincode rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("phone", matches(phonePattern))
	_ = v.RegisterValidation("pincode", matches(pincodePattern))
	// A pointer to "" is not empty to omitempty, so clearing an email needs its own rule.
	_ = v.RegisterValidation("optional_email", func(fl validator.FieldLevel) bool {
		email := fl.Field().String()

		return email == "" || v.Var(email, "email") == nil
	})

	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	// Translations are static; an error here is a bug.
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(err)
	}
	for tag, message := range ruleMessages {
		if err := v.RegisterTranslation(tag, trans, addMessage(tag, message), translate(tag)); err != nil {
			panic(err)
		}
	}

	return &Validator{validate: v, trans: trans}
}

func addMessage(tag, message string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		return trans.Add(tag, message, true)
	}
}

func translate(tag string) validator.TranslationFunc {
	return func(trans ut.Translator, fe validator.FieldError) string {
		message, err := trans.T(tag, fe.Field())
		if err != nil {
			return fe.Error()
		}

		return message
	}
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

// Struct validates s. It returns nil, a *domainerrors.ValidationError listing
// all violated fields, or a wrapped error when s cannot be validated at all.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate payload")
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if alias, ok := ruleAliases[rule]; ok {
			rule = alias
		}
		violations = append(violations, domainerrors.FieldViolation{
			Field:   fieldPath(fe.Namespace()),
			Rule:    rule,
			Message: fe.Translate(v.trans),
		})
	}

	return &domainerrors.ValidationError{Violations: violations}
}

// fieldPath drops the root struct name: "CreateCustomerInput.address.city" -> "address.city".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}
