package services

import (
	"errors"
	"fmt"
	"time"

	"foodorder/entity"
	"foodorder/repository"
	"foodorder/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AccountService handles signup, login and account details.
type AccountService struct {
	Repo      *repository.AccountRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAccountService(repo *repository.AccountRepository, secret string, ttl time.Duration) *AccountService {
	return &AccountService{Repo: repo, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AccountService) Signup(username, password, firstName, lastName string) (*entity.Account, error) {
	var err error
	if username, err = utils.ValidateUsername(username); err != nil {
		return nil, validation("Invalid account information (%s).", err)
	}
	if password, err = utils.ValidatePassword(password); err != nil {
		return nil, validation("Invalid account information (%s).", err)
	}
	if firstName, err = utils.ValidatePersonName(firstName); err != nil {
		return nil, validation("Invalid account information (%s).", err)
	}
	if lastName, err = utils.ValidatePersonName(lastName); err != nil {
		return nil, validation("Invalid account information (%s).", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	acct := &entity.Account{
		Username:     username,
		PasswordHash: string(hashed),
		FirstName:    firstName,
		LastName:     lastName,
	}
	created, err := s.Repo.Create(acct)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, &Error{Kind: KindConflict, Msg: "Username already exists."}
	}
	log.Info().Str("username", username).Msg("account created")
	return acct, nil
}

// Login checks the password and issues a JWT.
func (s *AccountService) Login(username, password string) (string, *entity.Account, error) {
	acct, err := s.Repo.FindByUsername(username)
	if err != nil {
		if isNotFound(err) {
			return "", nil, ErrUserNotExist
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", nil, &Error{Kind: KindAuthorization, Msg: "incorrect password"}
	}

	token, err := utils.GenerateToken(acct.Username, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, acct, nil
}

func (s *AccountService) Get(username string) (*entity.Account, error) {
	acct, err := s.Repo.FindByUsername(username)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotExist
		}
		return nil, err
	}
	return acct, nil
}

// AccountUpdate carries the account form. An empty Password keeps the
// current one.
type AccountUpdate struct {
	FirstName  string `form:"firstname" json:"firstName"`
	LastName   string `form:"lastname" json:"lastName"`
	Password   string `form:"password" json:"password"`
	Address    string `form:"address" json:"address"`
	CardNumber string `form:"cardnumber" json:"cardNumber"`
	CardExpiry string `form:"cardexpiry" json:"cardExpiry"`
	CardCode   string `form:"cardcode" json:"cardCode"`
}

func (s *AccountService) Update(username string, in AccountUpdate) (*entity.Account, error) {
	if username == "" {
		return nil, forbidden("not logged in")
	}

	updates := map[string]any{}
	first, err := utils.ValidatePersonName(in.FirstName)
	if err != nil {
		return nil, validation("Invalid first or last name (%s).", err)
	}
	last, err := utils.ValidatePersonName(in.LastName)
	if err != nil {
		return nil, validation("Invalid first or last name (%s).", err)
	}
	updates["first_name"], updates["last_name"] = first, last

	if in.Password != "" {
		pw, err := utils.ValidatePassword(in.Password)
		if err != nil {
			return nil, validation("Invalid password (%s).", err)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates["password_hash"] = string(hashed)
	}

	address, err := utils.ValidateAddress(in.Address)
	if err != nil {
		return nil, validation("Invalid address (%s).", err)
	}
	updates["address"] = address

	number, err := utils.ValidateCardNumber(in.CardNumber)
	if err == nil {
		updates["card_number"] = number
		var expiry, code string
		if expiry, err = utils.ValidateCardExpiry(in.CardExpiry); err == nil {
			updates["card_expiry"] = expiry
			if code, err = utils.ValidateCardCode(in.CardCode); err == nil {
				updates["card_code"] = code
			}
		}
	}
	if err != nil {
		return nil, validation("Invalid card information (%s).", err)
	}

	if err := s.Repo.Update(username, updates); err != nil {
		return nil, err
	}
	return s.Get(username)
}

// hasBillingInfo reports whether the account can pay for an order.
func hasBillingInfo(a *entity.Account) bool {
	if _, err := utils.ValidateAddress(a.Address); err != nil {
		return false
	}
	if _, err := utils.ValidateCardNumber(a.CardNumber); err != nil {
		return false
	}
	if _, err := utils.ValidateCardExpiry(a.CardExpiry); err != nil {
		return false
	}
	if _, err := utils.ValidateCardCode(a.CardCode); err != nil {
		return false
	}
	return true
}
