package repository

import (
	"context"
	"time"

	"notesbytes_settlement/internal/domain/entities"
	"notesbytes_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSellersTableName = "sellers"

type sellerItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Email           string `dynamodbav:"email"`
	FundDestination string `dynamodbav:"fund_destination,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// SellerDynamoRepository reads the seller projection the payout path
// needs. The sellers table is owned by the accounts service; this repo
// never writes to it.

type SellerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISellerRepository = (*SellerDynamoRepository)(nil)

func NewSellerDynamoRepository(ddb *dynamodb.Client) *SellerDynamoRepository {
	return &SellerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SELLERS_TABLE", defaultSellersTableName),
	}
}

func (r *SellerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Seller, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Seller{}, err
	}
	if len(out.Item) == 0 {
		return entities.Seller{}, nil
	}

	var it sellerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Seller{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Seller{
		ID:              it.ID,
		Name:            it.Name,
		Email:           it.Email,
		FundDestination: it.FundDestination,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}
