package user

// User is the identity the external auth layer resolves for a request. The
// application only personalizes output with it; authentication itself happens
// outside this service.
type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Email       string
	// Currency is the display currency code for amounts, e.g. "USD".
	Currency string
}
