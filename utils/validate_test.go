package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	got, err := ValidateUsername("  sponge.bob_1 ")
	assert.NoError(t, err)
	assert.Equal(t, "sponge.bob_1", got)

	for _, bad := range []string{"", "Bob", "bob smith", "bob!", "abcdefghijklmnopqrstuvwxyz"} {
		_, err := ValidateUsername(bad)
		assert.Error(t, err, "username %q", bad)
	}
}

func TestValidateNames(t *testing.T) {
	_, err := ValidateRestaurantName("   ")
	assert.EqualError(t, err, "restaurant name must not be blank")

	_, err = ValidateItemName("")
	assert.EqualError(t, err, "item name must not be blank")

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	_, err = ValidateItemName(string(long))
	assert.Error(t, err)

	name, err := ValidateItemName(" Kelp Shake ")
	assert.NoError(t, err)
	assert.Equal(t, "Kelp Shake", name)
}

func TestValidateCard(t *testing.T) {
	for _, ok := range []string{"4111111111111111", "5555555555554444", "79927398713"} {
		_, err := ValidateCardNumber(ok)
		assert.NoError(t, err, "card %s", ok)
	}
	for _, bad := range []string{"", "4111111111111112", "4111-1111-1111-1111", "abcd"} {
		_, err := ValidateCardNumber(bad)
		assert.Error(t, err, "card %q", bad)
	}

	_, err := ValidateCardExpiry("09/27")
	assert.NoError(t, err)
	for _, bad := range []string{"", "9/27", "13/27", "00/27", "09-27", "0927x"} {
		_, err := ValidateCardExpiry(bad)
		assert.Error(t, err, "expiry %q", bad)
	}

	for _, ok := range []string{"1", "12", "123"} {
		_, err := ValidateCardCode(ok)
		assert.NoError(t, err)
	}
	for _, bad := range []string{"", "1234", "12a"} {
		_, err := ValidateCardCode(bad)
		assert.Error(t, err, "code %q", bad)
	}
}
