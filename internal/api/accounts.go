package api

import (
	"context"

	"github.com/example/frontdesk/internal/models"
)

// AccountsService calls the account administration endpoints.
type AccountsService struct {
	client *Client
}

// Login exchanges credentials for a bearer token. Issued unauthenticated.
func (s *AccountsService) Login(ctx context.Context, creds models.Login) (models.LoginResponse, error) {
	var resp models.LoginResponse
	err := s.client.post(ctx, "/accounts/login", creds, &resp)
	return resp, err
}

// All lists every account. Admin only.
func (s *AccountsService) All(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := s.client.get(ctx, "/accounts", nil, &accounts)
	return accounts, err
}

// Create registers a new account. Admin only.
func (s *AccountsService) Create(ctx context.Context, account models.CreateAccount) (models.Account, error) {
	var created models.Account
	err := s.client.post(ctx, "/accounts", account, &created)
	return created, err
}

// Delete removes an account. Admin only.
func (s *AccountsService) Delete(ctx context.Context, accountID string) error {
	return s.client.delete(ctx, "/accounts/"+accountID)
}
