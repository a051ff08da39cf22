package repository

import (
	"context"
	"time"

	"nibog_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRecoveryCacheTableName = "recovery_cache"
	defaultRecoveryCacheTTL       = 24 * time.Hour
)

// RecoveryCacheDynamoRepository is the server-side recovery cache: a
// session-scoped key-value store surviving the gateway redirect. Entries are
// transient, so items carry a DynamoDB TTL attribute.
//
// Table requirements:
//   - PK: session_id (string), SK: cache_key (string)
//   - TTL attribute: expires_at

type RecoveryCacheDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	ttl       time.Duration
}

var _ interfaces.IRecoveryCache = (*RecoveryCacheDynamoRepository)(nil)

func NewRecoveryCacheDynamoRepository(ddb *dynamodb.Client) *RecoveryCacheDynamoRepository {
	return &RecoveryCacheDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECOVERY_CACHE_TABLE", defaultRecoveryCacheTableName),
		ttl:       defaultRecoveryCacheTTL,
	}
}

func (r *RecoveryCacheDynamoRepository) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
			"cache_key":  &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	v, ok := out.Item["cache_value"].(*types.AttributeValueMemberS)
	if !ok {
		return "", false, nil
	}
	return v.Value, true, nil
}

func (r *RecoveryCacheDynamoRepository) Set(ctx context.Context, sessionID, key, value string) error {
	expiresAt := time.Now().Add(r.ttl).Unix()
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"session_id":  &types.AttributeValueMemberS{Value: sessionID},
			"cache_key":   &types.AttributeValueMemberS{Value: key},
			"cache_value": &types.AttributeValueMemberS{Value: value},
			"expires_at":  &types.AttributeValueMemberN{Value: formatInt64(expiresAt)},
		},
	})
	return err
}

func (r *RecoveryCacheDynamoRepository) Clear(ctx context.Context, sessionID string, keys ...string) error {
	for _, key := range keys {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"session_id": &types.AttributeValueMemberS{Value: sessionID},
				"cache_key":  &types.AttributeValueMemberS{Value: key},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
