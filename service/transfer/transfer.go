package transfer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"tokenledger/core"
	"tokenledger/pkg/resthttp"
)

// Config transfer service config
type Config struct {
	// Endpoint base url of the gateway forwarding transfers to external contracts
	Endpoint string
}

type transferService struct {
	endpoint string
}

// New new transfer service
func New(cfg Config) core.TransferService {
	return &transferService{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
	}
}

type transferResponse struct {
	TraceID string `json:"trace_id"`
}

func (s *transferService) Send(ctx context.Context, w *core.Withdrawal) error {
	if s.endpoint == "" {
		return errors.New("withdraw endpoint not configured")
	}

	url := fmt.Sprintf("%s/contracts/%s/transfer", s.endpoint, w.Contract)
	request := resthttp.WithRequestID(ctx, w.TraceID)

	var resp transferResponse
	code, err := resthttp.Execute(request, http.MethodPost, url, w, &resp)
	if err != nil {
		return fmt.Errorf("transfer %s on %s: %w", w.Quantity, w.Contract, err)
	}

	if code != http.StatusOK && code != http.StatusCreated {
		return fmt.Errorf("transfer %s on %s: unexpected status %d", w.Quantity, w.Contract, code)
	}

	return nil
}
