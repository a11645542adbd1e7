package tenant

import (
	"context"
)

type contextKey string

const (
	// companyIDKey is the key used to store the company id in the request context
	companyIDKey contextKey = "company_id"
)

// SetCompanyIDContext stores the company id in the context
func SetCompanyIDContext(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, companyIDKey, companyID)
}

// GetCompanyIDFromContext reads the company id back from the context
func GetCompanyIDFromContext(ctx context.Context) string {
	if companyID, ok := ctx.Value(companyIDKey).(string); ok {
		return companyID
	}
	return ""
}
