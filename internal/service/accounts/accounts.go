package accounts

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"adsgateway-service/internal/domain/ads"
	"adsgateway-service/internal/googleads"
)

type AccountsService struct {
	client googleads.Caller
	logger *zap.Logger
}

func NewAccountsService(client googleads.Caller, logger *zap.Logger) *AccountsService {
	return &AccountsService{client: client, logger: logger}
}

// ListAccessible returns a plain-text listing of every account the
// configured credentials can reach, one normalized ID per line.
func (s *AccountsService) ListAccessible(ctx context.Context) (string, error) {
	var out googleads.ListAccessibleCustomersResponse
	if err := s.client.Get(ctx, "customers:listAccessibleCustomers", &out); err != nil {
		s.logger.Error("account listing failed", zap.Error(err))
		return "", err
	}
	if len(out.ResourceNames) == 0 {
		return "No accessible accounts found.", nil
	}

	lines := []string{"Accessible Google Ads Accounts:", strings.Repeat("-", 50)}
	for _, resource := range out.ResourceNames {
		id := ads.NormalizeCustomerID(ads.LastPathSegment(resource))
		lines = append(lines, "Account ID: "+id)
	}
	return strings.Join(lines, "\n"), nil
}
