package services

import (
	"foodorder/repository"

	"gorm.io/gorm"
)

type Role string

const (
	RoleNone     Role = "none"
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleOwner    Role = "owner"
)

// Capabilities is what a user may do at one restaurant. The owner is also
// an employee: restaurants enrol their owner when created.
type Capabilities struct {
	Role       Role `json:"role"`
	IsOwner    bool `json:"isOwner"`
	IsEmployee bool `json:"isEmployee"`
}

// OrderCapabilities is what a user may do with one order.
type OrderCapabilities struct {
	IsOwnOrder bool `json:"isOwnOrder"`
	IsEmployee bool `json:"isEmployee"`
}

func (c OrderCapabilities) CanView() bool { return c.IsOwnOrder || c.IsEmployee }

// RoleService resolves a username against a restaurant or an order. It has
// no side effects.
type RoleService struct {
	RestRepo  *repository.RestaurantRepository
	OrderRepo *repository.OrderRepository
}

func NewRoleService(restRepo *repository.RestaurantRepository, orderRepo *repository.OrderRepository) *RoleService {
	return &RoleService{RestRepo: restRepo, OrderRepo: orderRepo}
}

func (s *RoleService) WithTx(tx *gorm.DB) *RoleService {
	return &RoleService{RestRepo: s.RestRepo.WithTx(tx), OrderRepo: s.OrderRepo.WithTx(tx)}
}

func (s *RoleService) ResolveRestaurant(restID uint, username string) (Capabilities, error) {
	if username == "" {
		return Capabilities{Role: RoleNone}, nil
	}
	owner, err := s.RestRepo.IsOwnedBy(restID, username)
	if err != nil {
		return Capabilities{}, err
	}
	employee, err := s.RestRepo.IsEmployee(restID, username)
	if err != nil {
		return Capabilities{}, err
	}

	caps := Capabilities{Role: RoleCustomer, IsOwner: owner, IsEmployee: employee}
	switch {
	case owner:
		caps.Role = RoleOwner
	case employee:
		caps.Role = RoleEmployee
	}
	return caps, nil
}

func (s *RoleService) ResolveOrder(orderID uint, username string) (OrderCapabilities, error) {
	o, err := s.OrderRepo.GetOrder(orderID)
	if err != nil {
		if isNotFound(err) {
			return OrderCapabilities{}, notFound("order %d does not exist", orderID)
		}
		return OrderCapabilities{}, err
	}
	if username == "" {
		return OrderCapabilities{}, nil
	}
	employee, err := s.RestRepo.IsEmployee(o.RestaurantID, username)
	if err != nil {
		return OrderCapabilities{}, err
	}
	return OrderCapabilities{IsOwnOrder: o.Username == username, IsEmployee: employee}, nil
}
