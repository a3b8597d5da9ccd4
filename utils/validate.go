package utils

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

const (
	maxUsernameLen = 24
	maxNameLen     = 100
	maxAddressLen  = 500
)

func ValidateUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", errors.New("username must not be empty")
	}
	if len(username) > maxUsernameLen {
		return "", errors.New("username too long")
	}
	for _, r := range username {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_' {
			continue
		}
		return "", errors.New("username must only contain lowercase letters, numbers, dots, and underscores")
	}
	return username, nil
}

func ValidatePassword(password string) (string, error) {
	if len(password) < 6 {
		return "", errors.New("password must be at least 6 characters long")
	}
	return password, nil
}

func ValidatePersonName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("name must not be empty")
	}
	if len(name) > maxNameLen {
		return "", errors.New("name too long")
	}
	return name, nil
}

func ValidateRestaurantName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("restaurant name must not be blank")
	}
	if len(name) > maxNameLen {
		return "", errors.New("restaurant name too long")
	}
	return name, nil
}

func ValidateItemName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("item name must not be blank")
	}
	if len(name) > maxNameLen {
		return "", errors.New("item name too long")
	}
	return name, nil
}

func ValidateAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", errors.New("address must not be blank")
	}
	if len(address) > maxAddressLen {
		return "", errors.New("address too long")
	}
	return address, nil
}

// ValidateCardNumber checks the digits and the Luhn checksum.
func ValidateCardNumber(number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", errors.New("card number must not be blank")
	}
	if !isDigits(number) {
		return "", errors.New("card number must only contain numbers")
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	if sum%10 != 0 {
		return "", errors.New("invalid credit card number")
	}
	return number, nil
}

// ValidateCardExpiry accepts MM/YY.
func ValidateCardExpiry(expiry string) (string, error) {
	expiry = strings.TrimSpace(expiry)
	if len(expiry) != 5 || expiry[2] != '/' || !isDigits(expiry[:2]) || !isDigits(expiry[3:]) {
		return "", errors.New("invalid card expiry (must be MM/YY)")
	}
	month, _ := strconv.Atoi(expiry[:2])
	if month < 1 || month > 12 {
		return "", errors.New("invalid card expiry month")
	}
	return expiry, nil
}

func ValidateCardCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > 3 {
		return "", errors.New("invalid card code")
	}
	if !isDigits(code) {
		return "", errors.New("card code must only contain numbers")
	}
	return code, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
