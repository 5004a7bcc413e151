package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"demo/storefront/internal/model"
)

// MaxDescriptionLen mirrors order_details.item_description VARCHAR(255).
const MaxDescriptionLen = 255

var ErrInvalidIdentifier = errors.New("invalid identifier")

var reIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// Errors collects every problem found so a caller sees them all at once.
type Errors []error

func (m Errors) Error() string {
	var b strings.Builder
	for i, e := range m {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

func (m Errors) Unwrap() []error { return m }

func (m Errors) OrNil() error {
	if len(m) == 0 {
		return nil
	}
	return m
}

// Identifier splits a possibly schema-qualified name ("storefront.order") into
// its segments and checks each one. Identifiers cannot be bound as query
// parameters, so everything interpolated into SQL text goes through here.
func Identifier(name string) ([]string, error) {
	parts := strings.Split(name, ".")
	if len(parts) > 2 {
		return nil, fmt.Errorf("%w: %q has more than one qualifier", ErrInvalidIdentifier, name)
	}
	for _, p := range parts {
		if !reIdent.MatchString(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
		}
	}
	return parts, nil
}

func ParseOrderDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(model.OrderDateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("order_date: want %q: %w", model.OrderDateLayout, err)
	}
	return t, nil
}

func ValidateInsert(orderDate time.Time, items []string) error {
	var errs Errors

	if orderDate.IsZero() {
		errs = append(errs, errors.New("order_date: required"))
	}
	for i, it := range items {
		if strings.TrimSpace(it) == "" {
			errs = append(errs, fmt.Errorf("items[%d].item_description: required", i))
			continue
		}
		if utf8.RuneCountInString(it) > MaxDescriptionLen {
			errs = append(errs, fmt.Errorf("items[%d].item_description: at most %d characters", i, MaxDescriptionLen))
		}
	}

	return errs.OrNil()
}
