package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGuest() GuestDetails {
	return GuestDetails{
		Name:    "Ahmed Hassan",
		Email:   "ahmed@example.com",
		Phone:   "+20 100 123 4567",
		Country: "Egypt",
	}
}

// longEmail is well-formed but longer than 255 characters
func longEmail() string {
	labels := []string{strings.Repeat("b", 60), strings.Repeat("c", 60), strings.Repeat("d", 60), strings.Repeat("e", 60)}
	return strings.Repeat("a", 60) + "@" + strings.Join(labels, ".") + ".com"
}

func TestNewGuestValidator(t *testing.T) {
	validator := NewGuestValidator()
	assert.NotNil(t, validator)
}

func TestValidate_ValidGuest(t *testing.T) {
	validator := NewGuestValidator()

	in := GuestDetails{
		Name:            "  Ahmed Hassan ",
		Email:           " ahmed@example.com",
		Phone:           "+20 100 123 4567 ",
		Country:         " ",
		SpecialRequests: "  Vegetarian meals  ",
	}

	out, err := validator.Validate(in)
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Hassan", out.Name)
	assert.Equal(t, "ahmed@example.com", out.Email)
	assert.Equal(t, "+20 100 123 4567", out.Phone)
	assert.Equal(t, "", out.Country)
	assert.Equal(t, "Vegetarian meals", out.SpecialRequests)
}

func TestValidate_Violations(t *testing.T) {
	validator := NewGuestValidator()

	tests := []struct {
		name   string
		mutate func(g *GuestDetails)
		err    error
	}{
		{"name too short", func(g *GuestDetails) { g.Name = "A" }, ErrNameTooShort},
		{"name only spaces", func(g *GuestDetails) { g.Name = "     " }, ErrNameTooShort},
		{"name too long", func(g *GuestDetails) { g.Name = strings.Repeat("a", 101) }, ErrNameTooLong},
		{"email missing", func(g *GuestDetails) { g.Email = "" }, ErrEmailInvalid},
		{"email malformed", func(g *GuestDetails) { g.Email = "not-an-email" }, ErrEmailInvalid},
		{"email too long", func(g *GuestDetails) { g.Email = longEmail() }, ErrEmailTooLong},
		{"phone too short", func(g *GuestDetails) { g.Phone = "1234567" }, ErrPhoneTooShort},
		{"phone too long", func(g *GuestDetails) { g.Phone = strings.Repeat("1", 21) }, ErrPhoneTooLong},
		{"requests too long", func(g *GuestDetails) { g.SpecialRequests = strings.Repeat("x", 1001) }, ErrRequestsTooLong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := validGuest()
			tc.mutate(&g)
			_, err := validator.Validate(g)
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestValidate_FirstViolationWins(t *testing.T) {
	validator := NewGuestValidator()

	_, err := validator.Validate(GuestDetails{Name: "A", Email: "bad", Phone: "1"})
	assert.ErrorIs(t, err, ErrNameTooShort)

	_, err = validator.Validate(GuestDetails{Name: "Amal", Email: "bad", Phone: "1"})
	assert.ErrorIs(t, err, ErrEmailInvalid)
}

func TestValidate_CountsCharactersNotBytes(t *testing.T) {
	validator := NewGuestValidator()

	g := validGuest()
	g.Name = strings.Repeat("م", 100) // 200 bytes, 100 characters
	_, err := validator.Validate(g)
	assert.NoError(t, err)

	g.Name = "مي"
	_, err = validator.Validate(g)
	assert.NoError(t, err)

	g = validGuest()
	g.SpecialRequests = strings.Repeat("ع", 1000)
	_, err = validator.Validate(g)
	assert.NoError(t, err)
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(assert.AnError))
}
