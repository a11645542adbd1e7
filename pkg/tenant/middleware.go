package tenant

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CompanyValidator checks that a company exists and is active
type CompanyValidator interface {
	ValidateCompany(ctx context.Context, companyID string) error
}

// Middleware resolves the company id from the route and binds it to the request.
// Every company-scoped route carries the company id as a path parameter; the
// resolved id is stored both in the Gin context and in the request context so
// repositories can re-assert the schema on every acquired connection.
func Middleware(validator CompanyValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.Param("company_id")
		if companyID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"detail": "company id is required",
			})
			return
		}

		if err := validator.ValidateCompany(c.Request.Context(), companyID); err != nil {
			switch {
			case errors.Is(err, ErrCompanyNotFound):
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"detail": "company not found",
				})
			case errors.Is(err, ErrCompanyNotActive):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"detail": "company is not active",
				})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"detail": "failed to validate company",
				})
			}
			return
		}

		c.Set("company_id", companyID)
		c.Request = c.Request.WithContext(SetCompanyIDContext(c.Request.Context(), companyID))

		c.Next()
	}
}
