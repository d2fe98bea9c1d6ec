package console

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/rolodex/internal/client"
	"github.com/jeanpaul/rolodex/internal/store"
	"github.com/jeanpaul/rolodex/internal/theme"
)

var janeAnswers = []string{
	"Jane", "Doe", "Acme", "j@x.com", "555-1111",
	"1 Main", "Springfield", "IL", "62704", "VIP",
}

func jane() client.Fields {
	return client.Fields{
		FirstName:     "Jane",
		LastName:      "Doe",
		Company:       "Acme",
		Email:         "j@x.com",
		Phone:         "555-1111",
		StreetAddress: "1 Main",
		City:          "Springfield",
		State:         "IL",
		Zip:           "62704",
		Notes:         "VIP",
	}
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func run(t *testing.T, s *store.Store, input string) string {
	t.Helper()
	var out bytes.Buffer
	c := New(s, strings.NewReader(input), &out, WithTheme(theme.Named("mono")))
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestRegister(t *testing.T) {
	s := store.New()
	in := append([]string{"1"}, janeAnswers...)
	out := run(t, s, script(append(in, "6")...))

	assert.Contains(t, out, "Jane Doe was added to the system successfully! ID: 1010")
	assert.Contains(t, out, "Exiting system. Goodbye!")

	got, ok := s.FindByID(1010)
	require.True(t, ok)
	assert.Equal(t, jane(), got.Fields)
}

func TestRegisterReasksRejectedFields(t *testing.T) {
	s := store.New()
	out := run(t, s, script(
		"1",
		"  ", "Jane",
		"Doe", "Acme",
		"jx.com", "j@x.com",
		"555-1111", "1 Main", "", "Springfield", "IL", "62704", "VIP",
		"6",
	))

	assert.Equal(t, 2, strings.Count(out, "This field cannot be empty."))
	assert.Equal(t, 2, strings.Count(out, "Enter N/A for missing info."))
	assert.Equal(t, 1, strings.Count(out, "Please include '@' in the email."))

	got, ok := s.FindByID(1010)
	require.True(t, ok)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "j@x.com", got.Email)
	assert.Equal(t, "Springfield", got.City)
}

func TestViewDetails(t *testing.T) {
	s := store.New()
	_, err := s.Register(jane())
	require.NoError(t, err)

	out := run(t, s, script("4", "1010", "9999", "0", "6"))

	assert.Contains(t, out, "1010 - Jane Doe")
	assert.Contains(t, out, "=== CLIENT DETAILS ===")
	assert.Contains(t, out, "Address: 1 Main, Springfield, IL 62704")
	assert.Contains(t, out, "No client found with ID: 9999")
}

func TestUpdateEmail(t *testing.T) {
	s := store.New()
	_, err := s.Register(jane())
	require.NoError(t, err)

	out := run(t, s, script("2", "1010", "4", "jane@acme.io", "11", "6"))

	assert.Contains(t, out, "Editing client: Jane Doe")
	assert.Contains(t, out, "4. Email: j@x.com")
	assert.Contains(t, out, "Client record updated successfully!")
	assert.Contains(t, out, "-Email: j@x.com")
	assert.Contains(t, out, "+Email: jane@acme.io")

	got, _ := s.FindByID(1010)
	assert.Equal(t, "jane@acme.io", got.Email)
}

func TestUpdateAcceptsValuesRegisterWouldReject(t *testing.T) {
	s := store.New()
	_, err := s.Register(jane())
	require.NoError(t, err)

	run(t, s, script("2", "1010", "7", "", "4", "nope", "11", "6"))

	got, _ := s.FindByID(1010)
	assert.Equal(t, "", got.City)
	assert.Equal(t, "nope", got.Email)
}

func TestUpdateWithoutChangesPrintsNoDiff(t *testing.T) {
	s := store.New()
	_, err := s.Register(jane())
	require.NoError(t, err)

	out := run(t, s, script("2", "1010", "12", "11", "6"))

	assert.Contains(t, out, "Invalid choice. Try again.")
	assert.Contains(t, out, "Client record updated successfully!")
	assert.NotContains(t, out, "--- before")
}

func TestUpdateCancel(t *testing.T) {
	s := store.New()
	_, err := s.Register(jane())
	require.NoError(t, err)

	out := run(t, s, script("2", "4242", "0", "6"))

	assert.Contains(t, out, "No client found with ID: 4242")
	assert.Contains(t, out, "Update canceled.")
}

func TestRemove(t *testing.T) {
	s := store.New()
	_, err := s.Register(jane())
	require.NoError(t, err)

	out := run(t, s, script("3", "77", "1010", "6"))

	assert.Contains(t, out, "No client found with ID: 77")
	assert.Contains(t, out, "Client removed from system. ID: 1010")
	assert.Equal(t, 0, s.Len())
}

func TestRemoveCancel(t *testing.T) {
	s := store.New()
	_, err := s.Register(jane())
	require.NoError(t, err)

	out := run(t, s, script("3", "0", "6"))

	assert.Contains(t, out, "Removal canceled.")
	assert.Equal(t, 1, s.Len())
}

func TestEmptyDirectoryNotices(t *testing.T) {
	out := run(t, store.New(), script("2", "3", "4", "6"))

	assert.Contains(t, out, "There are no clients in the system to update.")
	assert.Contains(t, out, "There are no clients in the system to remove.")
	assert.Contains(t, out, "There are no clients in the system.")
}

func TestInvalidInput(t *testing.T) {
	out := run(t, store.New(), script("abc", "9", "6"))

	assert.Contains(t, out, "Please enter a valid number:")
	assert.Contains(t, out, "Invalid choice. Try again.")
	assert.Contains(t, out, "Exiting system. Goodbye!")
}

func TestEndOfInputExitsCleanly(t *testing.T) {
	s := store.New()
	in := append([]string{"1"}, janeAnswers[:3]...)
	out := run(t, s, script(in...))

	assert.Contains(t, out, "End of input. Goodbye!")
	assert.Equal(t, 0, s.Len())
}

func TestSearch(t *testing.T) {
	s := store.New()
	_, err := s.Register(jane())
	require.NoError(t, err)
	other := jane()
	other.FirstName, other.Company, other.Email = "Bob", "Globex", "bob@globex.com"
	_, err = s.Register(other)
	require.NoError(t, err)

	out := run(t, s, script("5", "glob*", "5", "zz*", "5", "[", "6"))

	assert.Contains(t, out, "1011 - Bob Doe")
	assert.Contains(t, out, `No clients match "zz*".`)
	assert.Contains(t, out, "Invalid pattern:")
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(store.New(), strings.NewReader("6\n"), &bytes.Buffer{})
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestCardDiff(t *testing.T) {
	assert.Empty(t, cardDiff("a\n", "a\n"))

	d := cardDiff("Email: a\nPhone: 1\n", "Email: b\nPhone: 1\n")
	assert.Contains(t, d, "--- before")
	assert.Contains(t, d, "+++ after")
	assert.Contains(t, d, "-Email: a")
	assert.Contains(t, d, "+Email: b")
}

func TestRemovalLoggedOnceByStore(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := store.New(store.WithLogger(logger))
	_, err := s.Register(jane())
	require.NoError(t, err)

	var out bytes.Buffer
	c := New(s, strings.NewReader(script("3", "1010", "6")), &out,
		WithTheme(theme.Named("mono")), WithLogger(logger))
	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, 1, strings.Count(logs.String(), "client removed"))
}
