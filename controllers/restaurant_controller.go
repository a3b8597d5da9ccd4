package controllers

import (
	"net/http"
	"strconv"

	"foodorder/actions"
	"foodorder/entity"
	"foodorder/pkg/resp"
	"foodorder/repository"
	"foodorder/services"
	"foodorder/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service    *services.RestaurantService
	Menu       *services.MenuService
	Orders     *services.OrderService
	Roles      *services.RoleService
	Dispatcher *actions.Dispatcher
}

func NewRestaurantController(
	s *services.RestaurantService,
	menu *services.MenuService,
	orders *services.OrderService,
	roles *services.RoleService,
	d *actions.Dispatcher,
) *RestaurantController {
	return &RestaurantController{Service: s, Menu: menu, Orders: orders, Roles: roles, Dispatcher: d}
}

// RestaurantPage is the view model of a restaurant page. Orders are set
// for employees, Employees for the owner.
type RestaurantPage struct {
	Restaurant entity.Restaurant         `json:"restaurant"`
	MenuItems  []entity.MenuItem         `json:"menuItems"`
	Caps       services.Capabilities     `json:"capabilities"`
	Orders     []repository.OrderSummary `json:"orders,omitempty"`
	Employees  []string                  `json:"employees,omitempty"`
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// GET /restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rests})
}

// POST /restaurants
func (ctl *RestaurantController) Create(c *gin.Context) {
	rest, err := ctl.Service.CreateRestaurant(c.PostForm("name"), utils.CurrentUsername(c))
	if err != nil {
		resp.Flash(c, resp.StatusOf(err), "error", err.Error(), "/restaurants", nil)
		return
	}
	resp.Flash(c, http.StatusCreated, "info", "Restaurant created.", "/restaurants", rest)
}

// GET /restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	username := utils.CurrentUsername(c)

	rest, err := ctl.Service.Get(id)
	if err != nil {
		if services.KindOf(err) == 0 {
			resp.ServerError(c, err)
			return
		}
		resp.Flash(c, resp.StatusOf(err), "error", "Restaurant "+c.Param("id")+" does not exist.", "/restaurants", nil)
		return
	}
	items, err := ctl.Menu.ListItems(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	caps, err := ctl.Roles.ResolveRestaurant(id, username)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	page := RestaurantPage{Restaurant: *rest, MenuItems: items, Caps: caps}
	if caps.IsEmployee {
		if page.Orders, err = ctl.Orders.ActiveForRestaurant(id, username); err != nil {
			resp.Error(c, err)
			return
		}
	}
	if caps.IsOwner {
		if page.Employees, err = ctl.Service.Employees(id, username); err != nil {
			resp.Error(c, err)
			return
		}
	}
	resp.OK(c, page)
}

// POST /restaurants/:id
func (ctl *RestaurantController) Action(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	token := c.PostForm("action")
	out := ctl.Dispatcher.DispatchRestaurant(id, utils.CurrentUsername(c), token, c.Request.PostForm)
	writeOutcome(c, out)
}

func writeOutcome(c *gin.Context, out actions.Outcome) {
	code := http.StatusOK
	if out.Err != nil {
		code = resp.StatusOf(out.Err)
		if code == http.StatusInternalServerError {
			resp.ServerError(c, out.Err)
			return
		}
	}
	resp.Flash(c, code, out.Kind, out.Flash, out.Redirect, nil)
}
