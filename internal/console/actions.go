package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jeanpaul/rolodex/internal/client"
	"github.com/jeanpaul/rolodex/internal/store"
	"github.com/jeanpaul/rolodex/internal/validate"
)

var promptLabels = map[client.Field]string{
	client.FieldFirstName:     "first name",
	client.FieldLastName:      "last name",
	client.FieldCompany:       "company name",
	client.FieldEmail:         "email address",
	client.FieldPhone:         "phone number",
	client.FieldStreetAddress: "street address",
	client.FieldCity:          "city",
	client.FieldState:         "state",
	client.FieldZip:           "ZIP code",
	client.FieldNotes:         "notes",
}

func (c *Console) register(ctx context.Context) error {
	c.heading("Add New Client")

	var f client.Fields
	for _, field := range client.AllFields() {
		v, err := c.promptField(ctx, field)
		if err != nil {
			return err
		}
		f.Set(field, v)
	}

	created, err := c.dir.Register(f)
	if err != nil {
		c.println(c.th.Error.Render("✗ " + err.Error()))
		return nil
	}
	c.success(fmt.Sprintf("%s was added to the system successfully! ID: %d", created.FullName(), created.ID()))
	return nil
}

// promptField asks for one field until its creation rule accepts the answer.
func (c *Console) promptField(ctx context.Context, field client.Field) (string, error) {
	rule := validate.RuleFor(field)
	for {
		c.printf("Enter %s: ", promptLabels[field])
		raw, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}

		v, err := rule(raw)
		if err == nil {
			return v, nil
		}
		c.log.Debug("field rejected", "field", field.Key(), "reason", err)

		if errors.Is(err, validate.ErrNotEmail) {
			c.warn("Invalid input. Please include '@' in the email.")
			continue
		}
		c.warn("This field cannot be empty.")
		c.warn("Enter N/A for missing info.")
	}
}

func (c *Console) update(ctx context.Context) error {
	c.heading("UPDATE CLIENT")
	if c.dir.Len() == 0 {
		c.warn("There are no clients in the system to update.")
		return nil
	}
	c.listClients()

	target, err := c.selectClient(ctx, "Enter Client ID to update (0 to cancel): ")
	if err != nil {
		return err
	}
	if target == nil {
		c.println("Update canceled.")
		return nil
	}

	c.println("Editing client: " + target.FullName())
	before := target.Card()
	fields := client.AllFields()
	done := len(fields) + 1

	for {
		c.println("")
		c.println("Select field to update:")
		for i, f := range fields {
			c.println(fmt.Sprintf("%d. %s: %s", i+1, f, target.Get(f)))
		}
		c.println(fmt.Sprintf("%d. Done", done))
		c.printf("Enter your choice: ")

		choice, err := c.readInt(ctx)
		if err != nil {
			return err
		}
		if choice == done {
			c.success("Client record updated successfully!")
			if d := cardDiff(before, target.Card()); d != "" {
				c.println(c.th.Help.Render(d))
			}
			return nil
		}
		if choice < 1 || choice > len(fields) {
			c.warn("Invalid choice. Try again.")
			continue
		}

		field := fields[choice-1]
		c.printf("Enter new %s: ", field)
		v, err := c.readLine(ctx)
		if err != nil {
			return err
		}
		// Edits are trimmed by readLine; creation rules do not apply here.
		target.Set(field, v)
		c.log.Info("client field updated", "id", target.ID(), "field", field.Key())
	}
}

func (c *Console) remove(ctx context.Context) error {
	c.heading("REMOVE CLIENT")
	if c.dir.Len() == 0 {
		c.warn("There are no clients in the system to remove.")
		return nil
	}
	c.listClients()

	for {
		c.printf("Enter ID to remove (0 to cancel): ")
		id, err := c.readInt(ctx)
		if err != nil {
			return err
		}
		if id == cancelID {
			c.println("Removal canceled.")
			return nil
		}
		if c.dir.RemoveByID(id) {
			c.println(c.th.Error.Render(fmt.Sprintf("✗ Client removed from system. ID: %d", id)))
			return nil
		}
		c.notFound(id, fmt.Errorf("client %d: %w", id, store.ErrNotFound))
	}
}

func (c *Console) viewDirectory(ctx context.Context) error {
	for {
		c.heading("CLIENT DIRECTORY")
		if c.dir.Len() == 0 {
			c.warn("There are no clients in the system.")
			return nil
		}
		c.listClients()

		c.printf("Enter Client ID to view details (0 to go back): ")
		id, err := c.readInt(ctx)
		if err != nil {
			return err
		}
		if id == cancelID {
			return nil
		}
		selected, err := store.Require(c.dir, id)
		if err != nil {
			c.notFound(id, err)
			continue
		}
		c.showDetails(selected)
	}
}

func (c *Console) search(ctx context.Context) error {
	c.heading("SEARCH CLIENTS")
	c.printf("Enter a name, company or email pattern (e.g. Ja*): ")
	pattern, err := c.readLine(ctx)
	if err != nil {
		return err
	}

	matches, err := c.dir.Match(pattern)
	if err != nil {
		c.warn("Invalid pattern: " + err.Error())
		return nil
	}
	if len(matches) == 0 {
		c.warn(fmt.Sprintf("No clients match %q.", pattern))
		return nil
	}
	for _, m := range matches {
		c.println(m.Summary())
	}
	c.println(c.th.Separator.Render(strings.Repeat("-", 32)))
	return nil
}

// selectClient asks for an identity until it names a record or the user
// enters the cancel sentinel, in which case it returns nil.
func (c *Console) selectClient(ctx context.Context, prompt string) (*client.Client, error) {
	for {
		c.printf("%s", prompt)
		id, err := c.readInt(ctx)
		if err != nil {
			return nil, err
		}
		if id == cancelID {
			return nil, nil
		}
		found, err := store.Require(c.dir, id)
		if err == nil {
			return found, nil
		}
		c.notFound(id, err)
	}
}

func (c *Console) notFound(id int, err error) {
	c.log.Info("client lookup missed", "err", err)
	c.warn(fmt.Sprintf("No client found with ID: %d", id))
}

func (c *Console) listClients() {
	for _, cl := range c.dir.List() {
		c.println(cl.Summary())
	}
	c.println(c.th.Separator.Render(strings.Repeat("-", 32)))
}

func (c *Console) showDetails(cl *client.Client) {
	c.heading("CLIENT DETAILS")
	for _, line := range strings.Split(strings.TrimRight(cl.Card(), "\n"), "\n") {
		label, value, _ := strings.Cut(line, ": ")
		c.println(c.th.Label.Render(label+":") + " " + c.th.Value.Render(value))
	}
	c.println(c.th.Separator.Render(strings.Repeat("=", 26)))
}
