// Package validate holds the creation-time rules for client fields.
//
// The rules are pure: they trim the input and either return the cleaned value
// or reject it. Retrying a rejected field is the caller's job.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeanpaul/rolodex/internal/client"
)

var (
	ErrBlank    = errors.New("value cannot be blank")
	ErrNotEmail = errors.New("email must contain '@'")
)

// FieldError reports which field was rejected and why.
type FieldError struct {
	Field client.Field
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", strings.ToLower(e.Field.String()), e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Rule checks one raw value and returns it trimmed.
type Rule func(string) (string, error)

// RequireNonBlank trims v and rejects an empty result.
func RequireNonBlank(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", ErrBlank
	}
	return v, nil
}

// RequireEmailLike trims v and rejects it unless it contains '@'.
func RequireEmailLike(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !strings.Contains(v, "@") {
		return "", ErrNotEmail
	}
	return v, nil
}

// RuleFor returns the rule gating f at creation time.
func RuleFor(f client.Field) Rule {
	if f == client.FieldEmail {
		return RequireEmailLike
	}
	return RequireNonBlank
}

// Check applies the rule for f and wraps a rejection in a FieldError.
func Check(f client.Field, v string) (string, error) {
	out, err := RuleFor(f)(v)
	if err != nil {
		return "", &FieldError{Field: f, Value: v, Err: err}
	}
	return out, nil
}

// Fields validates all ten values. On success it returns the trimmed copy;
// otherwise the error joins one FieldError per rejected field, in field order.
func Fields(in client.Fields) (client.Fields, error) {
	var (
		out  client.Fields
		errs []error
	)
	for _, f := range client.AllFields() {
		v, err := Check(f, in.Get(f))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out.Set(f, v)
	}
	if len(errs) > 0 {
		return client.Fields{}, errors.Join(errs...)
	}
	return out, nil
}

// Rejected lists the fields named by a Fields error, in order.
func Rejected(err error) []client.Field {
	var fields []client.Field
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			fields = append(fields, Rejected(e)...)
		}
		return fields
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		fields = append(fields, fe.Field)
	}
	return fields
}
