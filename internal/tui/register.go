package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/jeanpaul/rolodex/internal/client"
	"github.com/jeanpaul/rolodex/internal/theme"
	"github.com/jeanpaul/rolodex/internal/validate"
)

var placeholders = map[client.Field]string{
	client.FieldEmail: "name@example.com",
	client.FieldState: "IL",
	client.FieldZip:   "62704",
	client.FieldNotes: "N/A if nothing to add",
}

// newRegisterForm builds the ten-field form. Answers land in draft; each
// input re-asks until the creation rule for its field accepts it.
func newRegisterForm(th theme.Theme, draft *client.Fields, width int) *huh.Form {
	fields := client.AllFields()
	inputs := make([]huh.Field, 0, len(fields))
	for _, f := range fields {
		rule := validate.RuleFor(f)
		ptr := draftPtr(draft, f)
		inputs = append(inputs, huh.NewInput().
			Key(f.Key()).
			Title(f.String()).
			Placeholder(placeholders[f]).
			Value(ptr).
			Validate(func(v string) error {
				_, err := rule(v)
				return err
			}))
	}

	form := huh.NewForm(
		huh.NewGroup(inputs[:5]...).Title("Add New Client"),
		huh.NewGroup(inputs[5:]...).Title("Address & Notes"),
	).
		WithTheme(formTheme(th)).
		WithShowHelp(true)
	if width > 0 {
		form = form.WithWidth(width)
	}
	return form
}

func draftPtr(d *client.Fields, f client.Field) *string {
	switch f {
	case client.FieldFirstName:
		return &d.FirstName
	case client.FieldLastName:
		return &d.LastName
	case client.FieldCompany:
		return &d.Company
	case client.FieldEmail:
		return &d.Email
	case client.FieldPhone:
		return &d.Phone
	case client.FieldStreetAddress:
		return &d.StreetAddress
	case client.FieldCity:
		return &d.City
	case client.FieldState:
		return &d.State
	case client.FieldZip:
		return &d.Zip
	default:
		return &d.Notes
	}
}
