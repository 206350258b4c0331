// Package echo provides adapters for using svc-fault with the Echo
// framework.
package echo

import (
	"net/http"

	svcfault "github.com/blackwell-systems/svc-fault"
	echofw "github.com/labstack/echo/v4"
)

// RequestID adapts the svc-fault request ID middleware to Echo's
// middleware interface.
//
// Example:
//
//	e := echo.New()
//	e.Use(RequestID)
func RequestID(next echofw.HandlerFunc) echofw.HandlerFunc {
	return func(c echofw.Context) error {
		handler := svcfault.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Carry the ID-bearing request into the rest of the chain
			c.SetRequest(r)
			_ = next(c)
		}))

		handler.ServeHTTP(c.Response().Writer, c.Request())
		return nil
	}
}

// Write classifies err and sends the failure envelope.
//
// Example:
//
//	e.GET("/orders/:id", func(c echo.Context) error {
//	    order, err := svc.Lookup(c.Request().Context(), c.Param("id"))
//	    if err != nil {
//	        return Write(c, err)
//	    }
//	    return c.JSON(http.StatusOK, order)
//	})
func Write(c echofw.Context, err error) error {
	svcfault.Write(c.Response().Writer, c.Request(), err)
	return nil
}

// Respond finishes the request from a (payload, err) pair: the failure
// envelope when err is non-nil, otherwise the payload with 200 OK.
func Respond(c echofw.Context, payload any, err error) error {
	if err != nil {
		return Write(c, err)
	}
	return c.JSON(http.StatusOK, payload)
}
