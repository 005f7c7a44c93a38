package repository

import (
	"context"
	"time"

	"payment_factory/internal/domain/entities"
	"payment_factory/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

type dynamoPutAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type paymentLogItem struct {
	ID        string `dynamodbav:"id"`
	Gateway   string `dynamodbav:"gateway"`
	Family    string `dynamodbav:"family"`
	Message   string `dynamodbav:"message"`
	Timestamp string `dynamodbav:"timestamp"`
}

// PaymentLogDynamoRepository stores gateway log entries in DynamoDB.
//
// The table name comes from config.Load (PAYMENT_LOGS_TABLE).
//
// Table requirements:
//   - PK: id (string)

type PaymentLogDynamoRepository struct {
	ddb       dynamoPutAPI
	tableName string
	newID     func() string
}

var _ interfaces.ILogSink = (*PaymentLogDynamoRepository)(nil)

func NewPaymentLogDynamoRepository(ddb dynamoPutAPI, tableName string) *PaymentLogDynamoRepository {
	return &PaymentLogDynamoRepository{ddb: ddb, tableName: tableName, newID: uuid.NewString}
}

func (r *PaymentLogDynamoRepository) Record(ctx context.Context, entry entities.LogEntry) error {
	av, err := attributevalue.MarshalMap(toPaymentLogItem(r.newID(), entry))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toPaymentLogItem(id string, e entities.LogEntry) paymentLogItem {
	return paymentLogItem{
		ID:        id,
		Gateway:   string(e.Gateway),
		Family:    e.Family,
		Message:   e.Message,
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}
