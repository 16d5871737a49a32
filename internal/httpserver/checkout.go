package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sheshape-storefront/internal/checkout"
	"sheshape-storefront/internal/domain"
)

type checkoutHandler struct {
	svc checkoutService
}

func (h checkoutHandler) begin(c *gin.Context) {
	id, _ := callerIdentity(c)

	sess, err := h.svc.Begin(c.Request.Context(), id.UserID, id.Email)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSessionView(sess))
}

func (h checkoutHandler) get(c *gin.Context) {
	id, _ := callerIdentity(c)

	sess, err := h.svc.Get(c.Request.Context(), id.UserID, c.Param("id"))
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionView(sess))
}

func (h checkoutHandler) submitShipping(c *gin.Context) {
	id, _ := callerIdentity(c)

	var in checkout.ShippingData
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}

	sess, err := h.svc.SubmitShipping(c.Request.Context(), id.UserID, c.Param("id"), in)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionView(sess))
}

func (h checkoutHandler) submitPayment(c *gin.Context) {
	id, _ := callerIdentity(c)

	var in checkout.PaymentData
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}
	if !in.Method.Known() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unknown payment method"})
		return
	}

	sess, err := h.svc.SubmitPayment(c.Request.Context(), id.UserID, c.Param("id"), in)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionView(sess))
}

func (h checkoutHandler) toggleSection(c *gin.Context) {
	id, _ := callerIdentity(c)

	st, ok := checkout.ParseStage(c.Param("section"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unknown section"})
		return
	}

	sess, err := h.svc.ToggleSection(c.Request.Context(), id.UserID, c.Param("id"), st)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionView(sess))
}

func (h checkoutHandler) placeOrder(c *gin.Context) {
	id, _ := callerIdentity(c)

	var body struct {
		Notes string `json:"notes"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
			return
		}
	}

	sess, err := h.svc.PlaceOrder(c.Request.Context(), id.UserID, c.Param("id"), body.Notes)
	if err != nil {
		writePlaceOrderError(c, err)
		return
	}

	view := toSessionView(sess)
	view.Notice = fmt.Sprintf("Order placed successfully! Order #%s", sess.Order.OrderNumber)
	c.JSON(http.StatusOK, view)
}

// writeCheckoutError maps session-flow failures for every endpoint except
// order placement.
func writeCheckoutError(c *gin.Context, err error) {
	var verr checkout.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": verr.Error()})
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"message": "Your cart is empty"})
	case errors.Is(err, checkout.ErrTerminal):
		c.JSON(http.StatusConflict, gin.H{"message": "This checkout is already completed"})
	case errors.Is(err, checkout.ErrStageOrder):
		c.JSON(http.StatusConflict, gin.H{"message": "Please complete the previous step first"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.Status(http.StatusUnauthorized)
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "checkout session not found"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"message": "Something went wrong. Please try again."})
	}
}

// writePlaceOrderError keeps the order placement messages the storefront
// shows: the backend's own message when it rejected the order, a fixed
// invalid-data message when it gave none, and a generic retry message for
// everything else. An expired token gets a bare 401 so the client redirects
// to login without flashing an error.
func writePlaceOrderError(c *gin.Context, err error) {
	var verr checkout.ValidationError
	var ide *domain.InvalidDataError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": verr.Error()})
	case errors.Is(err, checkout.ErrNotReady):
		c.JSON(http.StatusConflict, gin.H{"message": "Please complete the previous step first"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": "This checkout is already completed"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "checkout session not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.Status(http.StatusUnauthorized)
	case errors.As(err, &ide):
		msg := ide.Message
		if msg == "" {
			msg = "Invalid order data. Please check your information."
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to place order. Please try again."})
	}
}
