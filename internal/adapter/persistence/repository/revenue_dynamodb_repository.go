package repository

import (
	"context"
	"errors"
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
	defaultRevenuesTableName = "revenues"
	revenuesStatusIndex      = "status-created_at-index"
)

type revenueItem struct {
	ID                string `dynamodbav:"id"`
	OrderID           string `dynamodbav:"order_id"`
	SellerID          string `dynamodbav:"seller_id"`
	BuyerID           string `dynamodbav:"buyer_id"`
	TotalAmount       string `dynamodbav:"total_amount"`
	AdminCommission   string `dynamodbav:"admin_commission"`
	SellerAmount      string `dynamodbav:"seller_amount"`
	CommissionPercent string `dynamodbav:"commission_percent"`
	PayoutID          string `dynamodbav:"payout_id,omitempty"`
	Simulated         bool   `dynamodbav:"simulated,omitempty"`
	Status            string `dynamodbav:"status"`
	FailureReason     string `dynamodbav:"failure_reason,omitempty"`
	ProcessingAt      string `dynamodbav:"processing_at,omitempty"`
	SettledAt         string `dynamodbav:"settled_at,omitempty"`
	FailedAt          string `dynamodbav:"failed_at,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// RevenueDynamoRepository persists Revenue entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-created_at-index (PK: status, SK: created_at)
//
// The GSI sort key gives FindPending its oldest-first ordering, and the
// Claim conditional update is the engine's single-claim guarantee: it
// only succeeds when the row is still PENDING, so concurrent passes and
// multi-instance deployments cannot double-claim an entry.

type RevenueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRevenueRepository = (*RevenueDynamoRepository)(nil)

func NewRevenueDynamoRepository(ddb *dynamodb.Client) *RevenueDynamoRepository {
	return &RevenueDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVENUES_TABLE", defaultRevenuesTableName),
	}
}

func (r *RevenueDynamoRepository) Create(ctx context.Context, rev entities.Revenue) (entities.Revenue, error) {
	it := toRevenueItem(rev)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Revenue{}, err
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
		return entities.Revenue{}, err
	}
	return rev, nil
}

func (r *RevenueDynamoRepository) GetByID(ctx context.Context, id string) (entities.Revenue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Revenue{}, err
	}
	if len(out.Item) == 0 {
		return entities.Revenue{}, nil
	}

	var it revenueItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Revenue{}, err
	}
	return fromRevenueItem(it), nil
}

// FindPending returns PENDING entries oldest-first. The GSI sorts on
// created_at, so ScanIndexForward=true is the fairness ordering.
func (r *RevenueDynamoRepository) FindPending(ctx context.Context, limit int) ([]entities.Revenue, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(revenuesStatusIndex),
		KeyConditionExpression: aws.String("#st = :st"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":st": &types.AttributeValueMemberS{Value: string(entities.RevenueStatusPending)},
		},
		ScanIndexForward: aws.Bool(true),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalRevenues(out.Items)
}

// Claim atomically moves a PENDING entry to PROCESSING. A conditional
// check failure means another pass already owns the row.
func (r *RevenueDynamoRepository) Claim(ctx context.Context, id string, at time.Time) (entities.Revenue, error) {
	ts := at.UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#st = :pending"),
		UpdateExpression:    aws.String("SET #st = :processing, #processing_at = :at, #updated_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#st":            "status",
			"#processing_at": "processing_at",
			"#updated_at":    "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.RevenueStatusPending)},
			":processing": &types.AttributeValueMemberS{Value: string(entities.RevenueStatusProcessing)},
			":at":         &types.AttributeValueMemberS{Value: ts},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Revenue{}, interfaces.ErrRevenueAlreadyClaimed
		}
		return entities.Revenue{}, err
	}

	var it revenueItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Revenue{}, err
	}
	return fromRevenueItem(it), nil
}

// Save writes the full document (finalize transitions and operator
// resets). The row must already exist; revenue entries are never
// created through the settlement path.
func (r *RevenueDynamoRepository) Save(ctx context.Context, rev entities.Revenue) (entities.Revenue, error) {
	it := toRevenueItem(rev)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Revenue{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Revenue{}, err
	}
	return rev, nil
}

// FindProcessingOlderThan returns PROCESSING entries whose claim is
// older than cutoff. RFC3339Nano timestamps compare correctly as
// strings, so the filter runs server-side.
func (r *RevenueDynamoRepository) FindProcessingOlderThan(ctx context.Context, cutoff time.Time) ([]entities.Revenue, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(revenuesStatusIndex),
		KeyConditionExpression: aws.String("#st = :st"),
		FilterExpression:       aws.String("#processing_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#st":            "status",
			"#processing_at": "processing_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":st":     &types.AttributeValueMemberS{Value: string(entities.RevenueStatusProcessing)},
			":cutoff": &types.AttributeValueMemberS{Value: cutoff.UTC().Format(time.RFC3339Nano)},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalRevenues(out.Items)
}

func unmarshalRevenues(raw []map[string]types.AttributeValue) ([]entities.Revenue, error) {
	items := make([]entities.Revenue, 0, len(raw))
	for _, m := range raw {
		var it revenueItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRevenueItem(it))
	}
	return items, nil
}

func toRevenueItem(rev entities.Revenue) revenueItem {
	return revenueItem{
		ID:                rev.ID,
		OrderID:           rev.OrderID,
		SellerID:          rev.SellerID,
		BuyerID:           rev.BuyerID,
		TotalAmount:       floatToString(rev.TotalAmount),
		AdminCommission:   floatToString(rev.AdminCommission),
		SellerAmount:      floatToString(rev.SellerAmount),
		CommissionPercent: floatToString(rev.CommissionPercent),
		PayoutID:          rev.PayoutID,
		Simulated:         rev.Simulated,
		Status:            string(rev.Status),
		FailureReason:     rev.FailureReason,
		ProcessingAt:      formatOptionalTime(rev.ProcessingAt),
		SettledAt:         formatOptionalTime(rev.SettledAt),
		FailedAt:          formatOptionalTime(rev.FailedAt),
		CreatedAt:         rev.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         rev.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRevenueItem(it revenueItem) entities.Revenue {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	totalAmount, _ := strconv.ParseFloat(it.TotalAmount, 64)
	adminCommission, _ := strconv.ParseFloat(it.AdminCommission, 64)
	sellerAmount, _ := strconv.ParseFloat(it.SellerAmount, 64)
	commissionPercent, _ := strconv.ParseFloat(it.CommissionPercent, 64)
	return entities.Revenue{
		ID:                it.ID,
		OrderID:           it.OrderID,
		SellerID:          it.SellerID,
		BuyerID:           it.BuyerID,
		TotalAmount:       totalAmount,
		AdminCommission:   adminCommission,
		SellerAmount:      sellerAmount,
		CommissionPercent: commissionPercent,
		PayoutID:          it.PayoutID,
		Simulated:         it.Simulated,
		Status:            entities.RevenueStatus(it.Status),
		FailureReason:     it.FailureReason,
		ProcessingAt:      parseOptionalTime(it.ProcessingAt),
		SettledAt:         parseOptionalTime(it.SettledAt),
		FailedAt:          parseOptionalTime(it.FailedAt),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
