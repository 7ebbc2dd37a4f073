package hol

// Principal is the user an operation runs on behalf of
type Principal struct {
	UserID string
	IsGM   bool
}

// SystemPrincipal is used for startup hooks and operator CLI commands
var SystemPrincipal = Principal{UserID: "system", IsGM: true}
