package configs

import (
	_ "embed"
	"fmt"
	"os"

	"foodorder/entity"
	"foodorder/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed seed.yml
var defaultSeed []byte

type SeedData struct {
	Accounts []struct {
		Username   string `yaml:"username"`
		Password   string `yaml:"password"`
		FirstName  string `yaml:"firstName"`
		LastName   string `yaml:"lastName"`
		Address    string `yaml:"address"`
		CardNumber string `yaml:"cardNumber"`
		CardExpiry string `yaml:"cardExpiry"`
		CardCode   string `yaml:"cardCode"`
	} `yaml:"accounts"`
	Restaurants []struct {
		Name      string   `yaml:"name"`
		Owner     string   `yaml:"owner"`
		Employees []string `yaml:"employees"`
		Items     []struct {
			Name  string `yaml:"name"`
			Price string `yaml:"price"`
		} `yaml:"items"`
	} `yaml:"restaurants"`
}

// LoadSeed reads the seed file, or the built-in sample data when path is
// empty.
func LoadSeed(path string) (*SeedData, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed: %w", err)
		}
		raw = b
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &data, nil
}

// Seed loads sample data into an empty database. It does nothing when any
// account already exists.
func Seed(db *gorm.DB, data *SeedData) error {
	var count int64
	if err := db.Model(&entity.Account{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Int64("accounts", count).Msg("database already has data, skip seeding")
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, a := range data.Accounts {
			hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			acct := entity.Account{
				Username:     a.Username,
				PasswordHash: string(hash),
				FirstName:    a.FirstName,
				LastName:     a.LastName,
				Address:      a.Address,
				CardNumber:   a.CardNumber,
				CardExpiry:   a.CardExpiry,
				CardCode:     a.CardCode,
			}
			if err := tx.Omit(clause.Associations).Create(&acct).Error; err != nil {
				return fmt.Errorf("seed account %s: %w", a.Username, err)
			}
		}

		for _, r := range data.Restaurants {
			rest := entity.Restaurant{Owner: r.Owner, Name: r.Name}
			if err := tx.Omit(clause.Associations).Create(&rest).Error; err != nil {
				return fmt.Errorf("seed restaurant %s: %w", r.Name, err)
			}
			for _, username := range append([]string{r.Owner}, r.Employees...) {
				emp := entity.RestaurantEmployee{RestaurantID: rest.ID, Username: username}
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&emp).Error; err != nil {
					return err
				}
			}
			for _, it := range r.Items {
				price, err := utils.ParsePrice(it.Price)
				if err != nil {
					return fmt.Errorf("seed item %s: %w", it.Name, err)
				}
				item := entity.MenuItem{RestaurantID: rest.ID, Name: it.Name, Price: price}
				if err := tx.Omit(clause.Associations).Create(&item).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info().Int("accounts", len(data.Accounts)).Int("restaurants", len(data.Restaurants)).Msg("sample data seeded")
	return nil
}
