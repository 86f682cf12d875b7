package routes

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kofalt/go-memoize"
	"github.com/rm-hull/paypal-api/internal/endpoints"
	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/rm-hull/paypal-api/internal/paypal"
)

const ORDER_CACHE_TTL = 30 * time.Second

const orderFetchTimeout = 30 * time.Second

const requestIdHeader = "PayPal-Request-Id"

func GetOrder(client *paypal.Client) func(c *gin.Context) {
	cache := memoize.NewMemoizer(ORDER_CACHE_TTL, 5*time.Minute)

	return func(c *gin.Context) {
		orderId, ok := orderIdParam(c)
		if !ok {
			return
		}

		// The fetch is shared by every request waiting on this id, so it must
		// not be cut short when the first caller goes away.
		order, err, cached := cache.Memoize(orderId, func() (interface{}, error) {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), orderFetchTimeout)
			defer cancel()
			return paypal.Execute(ctx, client, endpoints.NewShowOrderDetails(orderId))
		})
		if err != nil {
			handleError(c, err)
			return
		}

		if cached {
			c.Header("X-Cache", "HIT")
		} else {
			c.Header("X-Cache", "MISS")
		}
		c.JSON(http.StatusOK, order)
	}
}

// CreateOrder validates the payload locally before forwarding it. The
// caller's PayPal-Request-Id is passed through so retries stay idempotent;
// one is generated when absent.
func CreateOrder(client *paypal.Client) func(c *gin.Context) {
	return func(c *gin.Context) {
		var payload models.OrderPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		if err := payload.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		requestId := c.GetHeader(requestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}

		order, err := paypal.ExecuteWithHeaders(c.Request.Context(), client, endpoints.NewCreateOrder(payload), paypal.HeaderParams{
			RequestID: requestId,
			Prefer:    paypal.PreferRepresentation,
		})
		if err != nil {
			handleError(c, err)
			return
		}

		c.Header(requestIdHeader, requestId)
		c.JSON(http.StatusCreated, order)
	}
}

func CaptureOrder(client *paypal.Client) func(c *gin.Context) {
	return func(c *gin.Context) {
		orderId, ok := orderIdParam(c)
		if !ok {
			return
		}

		requestId := c.GetHeader(requestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}

		order, err := paypal.ExecuteWithHeaders(c.Request.Context(), client, endpoints.NewCaptureOrder(orderId), paypal.HeaderParams{
			RequestID: requestId,
			Prefer:    paypal.PreferRepresentation,
		})
		if err != nil {
			handleError(c, err)
			return
		}

		c.Header(requestIdHeader, requestId)
		c.JSON(http.StatusCreated, order)
	}
}

func orderIdParam(c *gin.Context) (string, bool) {
	orderId := strings.TrimSpace(c.Param("id"))
	if orderId == "" || strings.Contains(orderId, "..") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return "", false
	}
	return orderId, true
}

func handleError(c *gin.Context, err error) {
	var apiErr *paypal.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, apiErr.Err)
		return
	}

	var transportErr *paypal.TransportError
	if errors.As(err, &transportErr) {
		log.Printf("paypal unreachable: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "PayPal is currently unreachable"})
		return
	}

	log.Printf("error while calling paypal: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred"})
}
