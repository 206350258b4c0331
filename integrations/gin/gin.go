// Package gin provides adapters for using svc-fault with the Gin framework.
package gin

import (
	"net/http"

	svcfault "github.com/blackwell-systems/svc-fault"
	"github.com/gin-gonic/gin"
)

// RequestID wires the svc-fault request ID middleware into Gin's chain.
//
// IDs become available via svcfault.RequestIDFromRequest(c.Request) and
// show up on failure log records.
//
// Example:
//
//	r := gin.New()
//	r.Use(RequestID())
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		handler := svcfault.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Carry the ID-bearing request into the rest of the chain
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// Abort classifies err, writes the failure envelope, and stops the
// handler chain.
//
// Example:
//
//	r.GET("/orders/:id", func(c *gin.Context) {
//	    order, err := svc.Lookup(c.Request.Context(), c.Param("id"))
//	    if err != nil {
//	        Abort(c, err)
//	        return
//	    }
//	    c.JSON(http.StatusOK, order)
//	})
func Abort(c *gin.Context, err error) {
	svcfault.Write(c.Writer, c.Request, err)
	c.Abort()
}

// Respond finishes the request from a (payload, err) pair: the failure
// envelope when err is non-nil, otherwise the payload with 200 OK.
func Respond(c *gin.Context, payload any, err error) {
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
