package interfaces

import (
	"context"
	"encoding/json"

	"nibog_payments/internal/domain/entities"
)

// IPaymentTransactionRepository abstracts DynamoDB persistence for
// PaymentTransaction.

type IPaymentTransactionRepository interface {
	Create(ctx context.Context, t entities.PaymentTransaction) (entities.PaymentTransaction, error)
	GetByTransactionID(ctx context.Context, transactionID string) (entities.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, transactionID string, status entities.PaymentStatus, gatewayPayload json.RawMessage) error
}
