package repository

import (
	"context"
	"time"

	"nibog_payments/internal/domain/entities"
	"nibog_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBookingsTableName = "bookings"

type bookingItem struct {
	BookingRef    string  `dynamodbav:"booking_ref"`
	UserID        int     `dynamodbav:"user_id"`
	ParentName    string  `dynamodbav:"parent_name"`
	Email         string  `dynamodbav:"email"`
	Phone         string  `dynamodbav:"phone"`
	EventID       int     `dynamodbav:"event_id"`
	TotalAmount   float64 `dynamodbav:"total_amount"`
	Status        string  `dynamodbav:"status"`
	TransactionID string  `dynamodbav:"transaction_id,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: booking_ref (string)
//   - GSI: transaction_id-index (PK: transaction_id)

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) GetByRef(ctx context.Context, bookingRef string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"booking_ref": &types.AttributeValueMemberS{Value: bookingRef},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#ref)"),
		ExpressionAttributeNames: map[string]string{
			"#ref": "booking_ref",
		},
	})
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, bookingRef string, status entities.BookingStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"booking_ref": &types.AttributeValueMemberS{Value: bookingRef},
		},
		UpdateExpression: aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ConditionExpression: aws.String("attribute_exists(booking_ref)"),
	})
	return err
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		BookingRef:    b.BookingRef,
		UserID:        b.UserID,
		ParentName:    b.ParentName,
		Email:         b.Email,
		Phone:         b.Phone,
		EventID:       b.EventID,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		TransactionID: b.TransactionID,
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	dt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Booking{
		BookingRef:    it.BookingRef,
		UserID:        it.UserID,
		ParentName:    it.ParentName,
		Email:         it.Email,
		Phone:         it.Phone,
		EventID:       it.EventID,
		TotalAmount:   it.TotalAmount,
		Status:        entities.BookingStatus(it.Status),
		TransactionID: it.TransactionID,
		CreatedAt:     dt,
	}
}
