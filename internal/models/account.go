package models

// Account is an operator account as returned by the accounts endpoints.
type Account struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FirstName   string `json:"firstName"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phoneNumber"`
}

// CreateAccount is the payload for registering a new account.
type CreateAccount struct {
	Name        string `json:"name"`
	FirstName   string `json:"firstName"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// Login is the credentials payload for the login endpoint.
type Login struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse is the token plus account returned on successful login.
type LoginResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"accountResponse"`
}
