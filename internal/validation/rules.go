package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/scry-drill/internal/i18n"
)

// Global validator instance for reuse
var validate = newValidator()

// integerPattern is an optional sign followed by digits without leading zeros.
var integerPattern = regexp.MustCompile(`^[+-]?(?:0|[1-9][0-9]*)$`)

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if !integerPattern.MatchString(value) {
			return false
		}
		_, err := strconv.Atoi(value)
		return err == nil
	}); err != nil {
		// ALLOW-PANIC: registration only fails on programming errors
		panic(err)
	}
	return v
}

// Check validates a response and returns the messages of every violated
// rule; an empty result means the response is accepted.
type Check func(value string) []string

type rule struct {
	// implicit rules also run on empty input
	implicit bool
	valid    func(value string) bool
	message  func() string
}

// Rules is an ordered rule set for one input field.
type Rules struct {
	tr        i18n.Translator
	attribute string
	rules     []rule
}

// For starts a rule set for the named field. The field name is looked up
// under "validation.attribute.<field>" for use in messages.
func For(tr i18n.Translator, field string) *Rules {
	attribute := tr.T("validation.attribute." + field)
	if attribute == "validation.attribute."+field {
		attribute = field
	}
	return &Rules{tr: tr, attribute: attribute}
}

func (r *Rules) add(implicit bool, tag string, key string, params ...i18n.Param) *Rules {
	return r.addFunc(implicit, func(value string) bool {
		return validate.Var(value, tag) == nil
	}, key, params...)
}

func (r *Rules) addFunc(implicit bool, valid func(string) bool, key string, params ...i18n.Param) *Rules {
	params = append([]i18n.Param{i18n.P("attribute", r.attribute)}, params...)
	r.rules = append(r.rules, rule{
		implicit: implicit,
		valid:    valid,
		message:  func() string { return r.tr.T(key, params...) },
	})
	return r
}

// Required rejects empty input.
func (r *Rules) Required() *Rules {
	return r.add(true, "required", "validation.required")
}

// Integer requires a whole number such as "3" or "-1".
func (r *Rules) Integer() *Rules {
	return r.add(false, "integer", "validation.integer")
}

// Min requires an integer of at least min. Non-integer input is left to Integer.
func (r *Rules) Min(min int) *Rules {
	return r.addFunc(false, intRule(fmt.Sprintf("min=%d", min)), "validation.min", i18n.P("min", min))
}

// Max requires an integer of at most max. Non-integer input is left to Integer.
func (r *Rules) Max(max int) *Rules {
	return r.addFunc(false, intRule(fmt.Sprintf("max=%d", max)), "validation.max", i18n.P("max", max))
}

// In requires the input to be exactly one of values. messageKey overrides the
// generic "validation.in" message when non-empty.
func (r *Rules) In(values []string, messageKey string) *Rules {
	if messageKey == "" {
		messageKey = "validation.in"
	}
	if len(values) == 0 {
		return r.addFunc(false, func(string) bool { return false }, messageKey)
	}

	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return r.add(false, "oneof="+strings.Join(quoted, " "), messageKey)
}

func intRule(tag string) func(string) bool {
	return func(value string) bool {
		n, err := strconv.Atoi(value)
		if err != nil {
			return true
		}
		return validate.Var(n, tag) == nil
	}
}

// Check evaluates the rule set, in declaration order.
func (r *Rules) Check(value string) []string {
	var messages []string
	for _, rl := range r.rules {
		if value == "" && !rl.implicit {
			continue
		}
		if !rl.valid(value) {
			messages = append(messages, rl.message())
		}
	}
	return messages
}
