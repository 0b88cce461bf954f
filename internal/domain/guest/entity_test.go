//go:build unit

package guest_test

import (
	"testing"

	"agent-portal/internal/domain/guest"
	"agent-portal/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.GuestBuilder)
	errIs  error
}

func TestNewGuest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewGuestBuilder().BuildDomain()
		require.NoError(t, err)

		assert.False(t, actual.IsLegacy())
		assert.Equal(t, guest.HonorificMr, actual.Honorific())
		assert.Equal(t, "John Smith", actual.Name())
		assert.Equal(t, guest.CategoryAdult, actual.Category())
		assert.Equal(t, "Mr John Smith", actual.DisplayName())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.GuestBuilder) { b.WithName("") },
				errIs:  guest.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.GuestBuilder) { b.WithName("   ") },
				errIs:  guest.ErrEmptyName,
			},
			{
				name:   "single word name",
				mutate: func(b *builder.GuestBuilder) { b.WithName("Cher") },
			},
		})
	})

	t.Run("honorific validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "Mrs honorific",
				mutate: func(b *builder.GuestBuilder) { b.WithHonorific("Mrs") },
			},
			{
				name:   "Miss honorific",
				mutate: func(b *builder.GuestBuilder) { b.WithHonorific("Miss") },
			},
			{
				name:   "unknown honorific",
				mutate: func(b *builder.GuestBuilder) { b.WithHonorific("Dr") },
				errIs:  guest.ErrInvalidHonorific,
			},
		})
	})

	t.Run("child age validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum valid child age",
				mutate: func(b *builder.GuestBuilder) { b.AsChild(1) },
			},
			{
				name:   "maximum valid child age",
				mutate: func(b *builder.GuestBuilder) { b.AsChild(15) },
			},
			{
				name:   "child age below minimum",
				mutate: func(b *builder.GuestBuilder) { b.AsChild(0) },
				errIs:  guest.ErrInvalidChildAge,
			},
			{
				name:   "child age above maximum",
				mutate: func(b *builder.GuestBuilder) { b.AsChild(16) },
				errIs:  guest.ErrInvalidChildAge,
			},
			{
				name:   "negative child age",
				mutate: func(b *builder.GuestBuilder) { b.AsChild(-3) },
				errIs:  guest.ErrInvalidChildAge,
			},
		})
	})

	t.Run("adult age is discarded", func(t *testing.T) {
		actual, err := guest.New(guest.HonorificMrs, "Jane Smith", guest.CategoryAdult, 42)
		require.NoError(t, err)
		assert.Equal(t, 0, actual.Age())
	})
}

func TestParseLegacy(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantHonorific guest.Honorific
		wantName      string
	}{
		{name: "leading Mr", raw: "Mr John Doe", wantHonorific: guest.HonorificMr, wantName: "John Doe"},
		{name: "leading Mrs", raw: "Mrs Jane Doe", wantHonorific: guest.HonorificMrs, wantName: "Jane Doe"},
		{name: "leading Miss", raw: "Miss Amy Doe", wantHonorific: guest.HonorificMiss, wantName: "Amy Doe"},
		{name: "no honorific defaults to Mr", raw: "John Doe", wantHonorific: guest.HonorificMr, wantName: "John Doe"},
		{name: "single token", raw: "Madonna", wantHonorific: guest.HonorificMr, wantName: "Madonna"},
		{name: "honorific-like token mid-name is kept", raw: "Jan Mr Doe", wantHonorific: guest.HonorificMr, wantName: "Jan Mr Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := guest.ParseLegacy(tt.raw)
			assert.Equal(t, tt.wantHonorific, parsed.Honorific())
			assert.Equal(t, tt.wantName, parsed.Name())
			assert.Equal(t, guest.CategoryAdult, parsed.Category())
			assert.Equal(t, 0, parsed.Age())
		})
	}
}

func TestGuestKey(t *testing.T) {
	t.Run("legacy and structured entries collide on the same key", func(t *testing.T) {
		legacy := guest.NewLegacy("Mr John Doe")
		structured, err := guest.New(guest.HonorificMr, "John Doe", guest.CategoryAdult, 0)
		require.NoError(t, err)

		assert.Equal(t, structured.Key(), legacy.Key())
	})

	t.Run("keys are case sensitive", func(t *testing.T) {
		a, err := guest.New(guest.HonorificMr, "John", guest.CategoryAdult, 0)
		require.NoError(t, err)
		b, err := guest.New(guest.HonorificMr, "john", guest.CategoryAdult, 0)
		require.NoError(t, err)

		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("different honorifics yield different keys", func(t *testing.T) {
		a, err := guest.New(guest.HonorificMr, "Alex Doe", guest.CategoryAdult, 0)
		require.NoError(t, err)
		b, err := guest.New(guest.HonorificMrs, "Alex Doe", guest.CategoryAdult, 0)
		require.NoError(t, err)

		assert.NotEqual(t, a.Key(), b.Key())
	})
}

func TestDisplayName(t *testing.T) {
	t.Run("legacy entries render verbatim", func(t *testing.T) {
		g := guest.NewLegacy("mr john  doe")
		assert.Equal(t, "mr john  doe", g.DisplayName())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewGuestBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
