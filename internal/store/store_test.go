package store

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/rolodex/internal/client"
	"github.com/jeanpaul/rolodex/internal/validate"
)

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

func named(first, last, company string) client.Fields {
	f := jane()
	f.FirstName, f.LastName, f.Company = first, last, company
	f.Email = strings.ToLower(first) + "@" + strings.ToLower(company) + ".com"
	return f
}

func ids(cs []*client.Client) []int {
	out := make([]int, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID())
	}
	return out
}

func TestFirstRecordGetsBaseIdentity(t *testing.T) {
	s := New()
	c, err := s.Register(jane())
	require.NoError(t, err)
	assert.Equal(t, 1010, c.ID())
	assert.Equal(t, "Jane", c.FirstName)

	second, err := s.Register(named("John", "Roe", "Initech"))
	require.NoError(t, err)
	assert.Equal(t, 1011, second.ID())
}

func TestIdentitiesNeverReused(t *testing.T) {
	s := New()
	var seen []int
	for i := 0; i < 5; i++ {
		seen = append(seen, s.Create(jane()).ID())
	}
	require.True(t, s.RemoveByID(1012))
	require.True(t, s.RemoveByID(1014))

	next := s.Create(jane())
	assert.Equal(t, []int{1010, 1011, 1012, 1013, 1014}, seen)
	assert.Equal(t, 1015, next.ID())
	assert.Equal(t, []int{1010, 1011, 1013, 1015}, ids(s.List()))
}

func TestRemoveThenFind(t *testing.T) {
	s := New()
	s.Create(jane())

	assert.True(t, s.RemoveByID(1010))
	_, ok := s.FindByID(1010)
	assert.False(t, ok)
	assert.False(t, s.RemoveByID(1010), "second removal must report nothing removed")
	assert.Equal(t, 0, s.Len())
}

func TestFindUnknown(t *testing.T) {
	s := New()
	c, ok := s.FindByID(1010)
	assert.False(t, ok)
	assert.Nil(t, c)
	assert.False(t, s.RemoveByID(42))
}

func TestRejectedRegistrationDoesNotAdvanceCounter(t *testing.T) {
	s := New()
	bad := jane()
	bad.Email = "jane.doe"

	c, err := s.Register(bad)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, validate.ErrNotEmail)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, FirstID, s.NextID())

	good := jane()
	good.Email = "jane@doe.com"
	c, err = s.Register(good)
	require.NoError(t, err)
	assert.Equal(t, 1010, c.ID())
}

func TestRegisterRejectsEveryBlankField(t *testing.T) {
	s := New()
	for _, f := range client.AllFields() {
		in := jane()
		in.Set(f, " \t ")
		_, err := s.Register(in)

		var fe *validate.FieldError
		require.ErrorAs(t, err, &fe, f.String())
		assert.Equal(t, f, fe.Field)
	}
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, FirstID, s.NextID())
}

func TestRegisterStoresTrimmedValues(t *testing.T) {
	s := New()
	in := jane()
	in.FirstName = "  Jane  "
	in.Email = " jane@doe.com "

	c, err := s.Register(in)
	require.NoError(t, err)
	assert.Equal(t, "Jane", c.FirstName)
	assert.Equal(t, "jane@doe.com", c.Email)
}

func TestListKeepsCreationOrder(t *testing.T) {
	s := New()
	s.Create(jane())
	s.Create(named("John", "Roe", "Initech"))

	assert.Equal(t, []int{1010, 1011}, ids(s.List()))
}

func TestListIsSnapshot(t *testing.T) {
	s := New()
	s.Create(jane())
	s.Create(named("John", "Roe", "Initech"))

	snap := s.List()
	s.RemoveByID(1010)
	s.Create(jane())

	assert.Equal(t, []int{1010, 1011}, ids(snap), "later store changes must not alter an earlier snapshot")

	snap[1] = nil
	_, ok := s.FindByID(1011)
	assert.True(t, ok, "overwriting a snapshot slot must not touch the store")
	assert.Equal(t, 2, s.Len())
}

func TestRecordsAreShared(t *testing.T) {
	s := New()
	s.Create(jane())

	found, ok := s.FindByID(1010)
	require.True(t, ok)
	found.Phone = "555-2222"

	s.List()[0].Set(client.FieldNotes, "")

	again, _ := s.FindByID(1010)
	assert.Equal(t, "555-2222", again.Phone)
	assert.Equal(t, "", again.Notes, "edits bypass creation rules")
}

func TestLenTracksCreatesMinusRemoves(t *testing.T) {
	s := New()
	created, removed := 0, 0
	for i := 0; i < 8; i++ {
		s.Create(jane())
		created++
		if i%3 == 0 && s.RemoveByID(FirstID+i) {
			removed++
		}
	}
	if s.RemoveByID(FirstID + 100) {
		removed++
	}
	assert.Equal(t, created-removed, s.Len())
	assert.Equal(t, created-removed, len(s.List()))
}

func TestMatch(t *testing.T) {
	s := New()
	s.Create(named("Jane", "Doe", "Acme"))
	s.Create(named("John", "Roe", "Initech"))
	s.Create(named("Janet", "Poe", "Acme Labs"))

	tests := []struct {
		pattern string
		want    []int
	}{
		{"ja*", []int{1010, 1012}},
		{"JANE DOE", []int{1010}},
		{"acme*", []int{1010, 1012}},
		{"*@initech.com", []int{1011}},
		{"*oe", []int{1010, 1011, 1012}},
		{"nobody", nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := s.Match(tt.pattern)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestMatchBadPattern(t *testing.T) {
	s := New()
	s.Create(jane())

	_, err := s.Match("[ja")
	require.Error(t, err)
	assert.True(t, errors.Is(err, doublestar.ErrBadPattern))
}

func TestLogsCreationAndRemoval(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(WithLogger(logger))

	s.Create(jane())
	s.RemoveByID(1010)

	out := buf.String()
	assert.Contains(t, out, "client created")
	assert.Contains(t, out, "client removed")
	assert.Contains(t, out, fmt.Sprintf("id=%d", FirstID))
}

func TestRequire(t *testing.T) {
	s := New()
	created := s.Create(jane())

	got, err := Require(s, created.ID())
	require.NoError(t, err)
	assert.Same(t, created, got)

	_, err = Require(s, 4242)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "client 4242")
}
