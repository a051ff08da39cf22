package repository

import (
	"context"
	"encoding/json"
	"time"

	"nibog_payments/internal/domain/entities"
	"nibog_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransactionsTableName = "payment_transactions"

type paymentTransactionItem struct {
	TransactionID     string `dynamodbav:"transaction_id"`
	BookingRef        string `dynamodbav:"booking_ref"`
	Amount            int64  `dynamodbav:"amount"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
	GatewayPayloadRaw string `dynamodbav:"gateway_payload_raw,omitempty"`
}

// PaymentTransactionDynamoRepository persists PaymentTransaction entities in
// DynamoDB.
//
// Table requirements:
//   - PK: transaction_id (string)
//   - GSI: booking_ref-index (PK: booking_ref)

type PaymentTransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentTransactionRepository = (*PaymentTransactionDynamoRepository)(nil)

func NewPaymentTransactionDynamoRepository(ddb *dynamodb.Client) *PaymentTransactionDynamoRepository {
	return &PaymentTransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *PaymentTransactionDynamoRepository) Create(ctx context.Context, t entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	it := toPaymentTransactionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "transaction_id",
		},
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	return t, nil
}

func (r *PaymentTransactionDynamoRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

func (r *PaymentTransactionDynamoRepository) UpdateStatus(ctx context.Context, transactionID string, status entities.PaymentStatus, gatewayPayload json.RawMessage) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	update := "SET #status = :status, updated_at = :now"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
		":now":    &types.AttributeValueMemberS{Value: now},
	}
	if len(gatewayPayload) > 0 {
		update += ", gateway_payload_raw = :payload"
		values[":payload"] = &types.AttributeValueMemberS{Value: string(gatewayPayload)}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		UpdateExpression: aws.String(update),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(transaction_id)"),
	})
	return err
}

func toPaymentTransactionItem(t entities.PaymentTransaction) paymentTransactionItem {
	return paymentTransactionItem{
		TransactionID:     t.TransactionID,
		BookingRef:        t.BookingRef,
		Amount:            t.Amount,
		Status:            string(t.Status),
		CreatedAt:         t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         t.UpdatedAt.UTC().Format(time.RFC3339Nano),
		GatewayPayloadRaw: string(t.GatewayPayloadRaw),
	}
}

func fromPaymentTransactionItem(it paymentTransactionItem) entities.PaymentTransaction {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentTransaction{
		TransactionID:     it.TransactionID,
		BookingRef:        it.BookingRef,
		Amount:            it.Amount,
		Status:            entities.PaymentStatus(it.Status),
		CreatedAt:         created,
		UpdatedAt:         updated,
		GatewayPayloadRaw: json.RawMessage(it.GatewayPayloadRaw),
	}
}
