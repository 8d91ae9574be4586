package handlers

import (
	"net/http"

	request "piecework_tracker/internal/adapter/http/dto/request"
	response "piecework_tracker/internal/adapter/http/dto/response"
	"piecework_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the order lifecycle.

type OrderHandler struct {
	usecase  usecase.IOrderUseCase
	recorder Recorder
}

func NewOrderHandler(uc usecase.IOrderUseCase, recorder Recorder) *OrderHandler {
	return &OrderHandler{usecase: uc, recorder: recorderOrNop(recorder)}
}

// CreateOrder godoc
// @Summary      Open an order
// @Description  Opens an order with one or more operations. A blank date means today.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateOrderRequest  true  "Order"
// @Success      201      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidOrderPayload)
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.Number, payload.Date, payload.RawOperations()...)
	if err != nil {
		writeError(c, err)
		return
	}
	h.recorder.OrderCreated()
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders godoc
// @Summary      List orders
// @Description  Without date returns every order; with date only that day's, in insertion order.
// @Tags         orders
// @Produce      json
// @Param        date  query     string  false  "YYYY-MM-DD"
// @Success      200   {array}   response.OrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	date, filtered := c.GetQuery("date")
	if !filtered {
		orders, err := h.usecase.ListOrders(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromOrders(orders))
		return
	}

	orders, err := h.usecase.OrdersForDate(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// AddOperation godoc
// @Summary      Add an operation to an open order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Order ID"
// @Param        payload  body      request.OperationRequest  true  "Operation"
// @Success      200      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /orders/{id}/operations [post]
func (h *OrderHandler) AddOperation(c *gin.Context) {
	var payload request.OperationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidOrderPayload)
		return
	}

	order, err := h.usecase.AddOperation(c.Request.Context(), c.Param("id"), payload.ToRaw())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// FinalizeOrder godoc
// @Summary      Close an order and freeze its price
// @Description  Idempotent: finalizing a closed order re-freezes the same price.
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.FinalizeResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/finalize [post]
func (h *OrderHandler) FinalizeOrder(c *gin.Context) {
	id := c.Param("id")
	price, err := h.usecase.FinalizeOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	p := price.InexactFloat64()
	h.recorder.OrderFinalized(p)
	c.JSON(http.StatusOK, response.FinalizeResponse{OrderID: id, Price: p})
}

// UpdateOrderDate godoc
// @Summary      Move an order to another date
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Order ID"
// @Param        payload  body      request.UpdateOrderDateRequest  true  "Date"
// @Success      200      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /orders/{id}/date [patch]
func (h *OrderHandler) UpdateOrderDate(c *gin.Context) {
	var payload request.UpdateOrderDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidDatePayload)
		return
	}

	order, err := h.usecase.UpdateOrderDate(c.Request.Context(), c.Param("id"), payload.Date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// DeleteOrder godoc
// @Summary      Delete an order
// @Tags         orders
// @Param        id   path  string  true  "Order ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	h.recorder.OrderDeleted()
	c.Status(http.StatusNoContent)
}
