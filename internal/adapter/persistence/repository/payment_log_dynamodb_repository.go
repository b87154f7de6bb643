package repository

import (
	"context"
	"strconv"
	"time"

	"notesbytes_settlement/internal/domain/entities"
	"notesbytes_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentLogsTableName = "payment_logs"
	paymentLogsOrderIDIndex     = "order_id-index"
)

type paymentLogItem struct {
	ID        string `dynamodbav:"id"`
	InvoiceID string `dynamodbav:"invoice_id,omitempty"`
	UserID    string `dynamodbav:"user_id"`
	Gateway   string `dynamodbav:"gateway"`
	PaymentID string `dynamodbav:"payment_id,omitempty"`
	OrderID   string `dynamodbav:"order_id"`
	EventType string `dynamodbav:"event_type"`
	Amount    string `dynamodbav:"amount"`
	Currency  string `dynamodbav:"currency"`
	Status    string `dynamodbav:"status"`
	LogData   string `dynamodbav:"log_data,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PaymentLogDynamoRepository persists PaymentLog entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id) — non-unique on purpose; a
//     revenue entry that fails repeatedly writes one row per attempt.
//
// The port is append-only, and the conditional create backs that up:
// an id collision is an error, never an overwrite.

type PaymentLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentLogRepository = (*PaymentLogDynamoRepository)(nil)

func NewPaymentLogDynamoRepository(ddb *dynamodb.Client) *PaymentLogDynamoRepository {
	return &PaymentLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_LOGS_TABLE", defaultPaymentLogsTableName),
	}
}

func (r *PaymentLogDynamoRepository) Append(ctx context.Context, l entities.PaymentLog) (entities.PaymentLog, error) {
	it := toPaymentLogItem(l)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentLog{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentLog{}, err
	}
	return l, nil
}

func (r *PaymentLogDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentLogsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentLogItem(it))
	}
	return items, nil
}

func toPaymentLogItem(l entities.PaymentLog) paymentLogItem {
	return paymentLogItem{
		ID:        l.ID,
		InvoiceID: l.InvoiceID,
		UserID:    l.UserID,
		Gateway:   l.Gateway,
		PaymentID: l.PaymentID,
		OrderID:   l.OrderID,
		EventType: string(l.EventType),
		Amount:    floatToString(l.Amount),
		Currency:  l.Currency,
		Status:    string(l.Status),
		LogData:   string(l.LogData),
		CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentLogItem(it paymentLogItem) entities.PaymentLog {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.PaymentLog{
		ID:        it.ID,
		InvoiceID: it.InvoiceID,
		UserID:    it.UserID,
		Gateway:   it.Gateway,
		PaymentID: it.PaymentID,
		OrderID:   it.OrderID,
		EventType: entities.PaymentLogEvent(it.EventType),
		Amount:    amount,
		Currency:  it.Currency,
		Status:    entities.PaymentLogStatus(it.Status),
		LogData:   []byte(it.LogData),
		CreatedAt: createdAt,
	}
}
