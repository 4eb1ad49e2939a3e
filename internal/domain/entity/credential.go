package entity

// StrategyName identifies a credential strategy in logs and error messages.
type StrategyName string

const (
	// StrategyLocal verifies a username and password against the stored hash.
	StrategyLocal StrategyName = "local"
	// StrategyGoogle exchanges an OAuth2 authorization code with Google.
	StrategyGoogle StrategyName = "google"
)

// CredentialStrategy is a closed set of credential kinds. Only the types in this
// package implement it; callers dispatch on the concrete type.
type CredentialStrategy interface {
	Name() StrategyName
	credentialStrategy()
}

// LocalCredentials carries a username and a raw password.
type LocalCredentials struct {
	Username string
	Password string
}

// Name implements CredentialStrategy.
func (LocalCredentials) Name() StrategyName { return StrategyLocal }

func (LocalCredentials) credentialStrategy() {}

// GoogleCredentials carries the authorization code returned to the OAuth callback.
type GoogleCredentials struct {
	Code string
}

// Name implements CredentialStrategy.
func (GoogleCredentials) Name() StrategyName { return StrategyGoogle }

func (GoogleCredentials) credentialStrategy() {}

// ExternalProfile is the identity returned by an OAuth provider.
type ExternalProfile struct {
	ProviderID string // Provider-specific subject, e.g. Google's 'sub'.
	Email      string
	Name       string
}
