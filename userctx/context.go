package userctx

import "context"

// Context key type
type contextKey string

const operatorKey contextKey = "operator"
const clientIPKey contextKey = "client_ip"

// SetOperator adds the acting operator's name to request context
func SetOperator(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operatorKey, name)
}

// GetOperator retrieves the operator name from request context
func GetOperator(ctx context.Context) string {
	name, ok := ctx.Value(operatorKey).(string)
	if !ok || name == "" {
		return "anonymous"
	}
	return name
}

// SetClientIP adds the client IP address to request context
func SetClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIP retrieves the client IP address from request context
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok {
		return ip
	}
	return ""
}
