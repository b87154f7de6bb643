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

const defaultEmailTemplatesTableName = "email_templates"

type emailTemplateItem struct {
	Key       string `dynamodbav:"key"`
	Subject   string `dynamodbav:"subject"`
	Body      string `dynamodbav:"body"`
	Active    bool   `dynamodbav:"active"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EmailTemplateDynamoRepository reads CMS-managed templates by key.

type EmailTemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmailTemplateRepository = (*EmailTemplateDynamoRepository)(nil)

func NewEmailTemplateDynamoRepository(ddb *dynamodb.Client) *EmailTemplateDynamoRepository {
	return &EmailTemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMAIL_TEMPLATES_TABLE", defaultEmailTemplatesTableName),
	}
}

func (r *EmailTemplateDynamoRepository) GetByKey(ctx context.Context, key string) (entities.EmailTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return entities.EmailTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.EmailTemplate{}, nil
	}

	var it emailTemplateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EmailTemplate{}, err
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.EmailTemplate{
		Key:       it.Key,
		Subject:   it.Subject,
		Body:      it.Body,
		Active:    it.Active,
		UpdatedAt: updatedAt,
	}, nil
}
