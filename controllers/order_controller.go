package controllers

import (
	"foodorder/actions"
	"foodorder/pkg/resp"
	"foodorder/services"
	"foodorder/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service    *services.OrderService
	Dispatcher *actions.Dispatcher
}

func NewOrderController(s *services.OrderService, d *actions.Dispatcher) *OrderController {
	return &OrderController{Service: s, Dispatcher: d}
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	items, err := oc.Service.ListForCustomer(utils.CurrentUsername(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id (customer or restaurant employee)
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	detail, err := oc.Service.Detail(id, utils.CurrentUsername(c))
	if err != nil {
		if services.KindOf(err) == 0 {
			resp.ServerError(c, err)
			return
		}
		msg := "Order does not exist."
		if services.IsBadAction(err) {
			msg = "Not authorized to view order."
		}
		resp.Flash(c, resp.StatusOf(err), "error", msg, "/orders", nil)
		return
	}
	resp.OK(c, detail)
}

// POST /orders/:id
func (oc *OrderController) Action(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	out := oc.Dispatcher.DispatchOrder(id, utils.CurrentUsername(c), c.PostForm("action"))
	writeOutcome(c, out)
}
