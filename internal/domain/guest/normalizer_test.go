//go:build unit

package guest_test

import (
	"testing"

	"agent-portal/internal/domain/guest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, h guest.Honorific, name string, c guest.Category, age int) guest.Guest {
	t.Helper()
	g, err := guest.New(h, name, c, age)
	require.NoError(t, err)
	return g
}

func TestToDisplayList(t *testing.T) {
	guests := []guest.Guest{
		guest.NewLegacy("Mr John Doe"),
		mustNew(t, guest.HonorificMrs, "Jane Doe", guest.CategoryAdult, 0),
		mustNew(t, guest.HonorificMiss, "Amy Doe", guest.CategoryChild, 7),
	}

	rows := guest.ToDisplayList(guests)

	expected := []guest.DisplayGuest{
		{No: 1, DisplayName: "Mr John Doe", Legacy: true},
		{No: 2, DisplayName: "Mrs Jane Doe", Honorific: guest.HonorificMrs, Category: guest.CategoryAdult},
		{No: 3, DisplayName: "Miss Amy Doe", Honorific: guest.HonorificMiss, Category: guest.CategoryChild, Age: 7},
	}
	if diff := cmp.Diff(expected, rows); diff != "" {
		t.Errorf("display rows mismatch (-want +got):\n%s", diff)
	}
}

func TestToSelectableNames(t *testing.T) {
	t.Run("children are excluded, legacy entries always qualify", func(t *testing.T) {
		guests := []guest.Guest{
			guest.NewLegacy("Mr John Doe"),
			mustNew(t, guest.HonorificMrs, "Jane Doe", guest.CategoryAdult, 0),
			mustNew(t, guest.HonorificMiss, "Amy Doe", guest.CategoryChild, 7),
		}

		assert.Equal(t, []string{"Mr John Doe", "Mrs Jane Doe"}, guest.ToSelectableNames(guests))
	})

	t.Run("empty list yields empty slice", func(t *testing.T) {
		assert.Empty(t, guest.ToSelectableNames(nil))
	})
}

func TestFindDuplicates(t *testing.T) {
	t.Run("collision against existing guests", func(t *testing.T) {
		existing := []guest.Guest{guest.NewLegacy("Mr John Doe")}
		batch := []guest.Guest{
			mustNew(t, guest.HonorificMr, "John Doe", guest.CategoryAdult, 0),
			mustNew(t, guest.HonorificMrs, "Jane Doe", guest.CategoryAdult, 0),
		}

		assert.Equal(t, []string{"Mr John Doe"}, guest.FindDuplicates(existing, batch))
	})

	t.Run("collision inside the batch itself", func(t *testing.T) {
		batch := []guest.Guest{
			mustNew(t, guest.HonorificMr, "John Doe", guest.CategoryAdult, 0),
			mustNew(t, guest.HonorificMr, "John Doe", guest.CategoryAdult, 0),
		}

		assert.Equal(t, []string{"Mr John Doe"}, guest.FindDuplicates(nil, batch))
	})

	t.Run("same name under a different honorific is no collision", func(t *testing.T) {
		existing := []guest.Guest{mustNew(t, guest.HonorificMr, "Alex Doe", guest.CategoryAdult, 0)}
		batch := []guest.Guest{mustNew(t, guest.HonorificMrs, "Alex Doe", guest.CategoryAdult, 0)}

		assert.Empty(t, guest.FindDuplicates(existing, batch))
	})

	t.Run("clean batch reports nothing", func(t *testing.T) {
		existing := []guest.Guest{guest.NewLegacy("Mr John Doe")}
		batch := []guest.Guest{
			mustNew(t, guest.HonorificMrs, "Jane Doe", guest.CategoryAdult, 0),
			mustNew(t, guest.HonorificMiss, "Amy Doe", guest.CategoryChild, 7),
		}

		assert.Empty(t, guest.FindDuplicates(existing, batch))
	})
}
