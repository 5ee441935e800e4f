package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderAuthorization   = "Authorization"
	HeaderStripeSignature = "Stripe-Signature"

	// Context keys set by the auth middleware.
	ContextKeyUserID     = "user_id"
	ContextKeyTenantID   = "tenant_id"
	ContextKeyTenantSlug = "tenant_slug"
	ContextKeyUserRole   = "user_role"
)
