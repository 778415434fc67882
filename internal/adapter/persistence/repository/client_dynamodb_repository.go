package repository

import (
	"context"
	"strconv"
	"time"

	"midtrans_gateway/internal/domain/entities"
	"midtrans_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID        string  `dynamodbav:"id"`
	FirstName string  `dynamodbav:"first_name"`
	LastName  string  `dynamodbav:"last_name"`
	Email     string  `dynamodbav:"email"`
	Phone     string  `dynamodbav:"phone"`
	Address   string  `dynamodbav:"address,omitempty"`
	City      string  `dynamodbav:"city,omitempty"`
	Postcode  string  `dynamodbav:"postcode,omitempty"`
	Country   string  `dynamodbav:"country,omitempty"`
	State     string  `dynamodbav:"state,omitempty"`
	Balance   float64 `dynamodbav:"balance"`
}

// ClientDynamoRepository persists clients and their account balance in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// AddFunds uses an ADD expression so concurrent credits for different
// invoices never lose an update; the last credit's description and
// metadata are kept on the row for auditing.
type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return entities.Client{
		ID:        it.ID,
		FirstName: it.FirstName,
		LastName:  it.LastName,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		City:      it.City,
		Postcode:  it.Postcode,
		Country:   it.Country,
		State:     it.State,
		Balance:   it.Balance,
	}, nil
}

func (r *ClientDynamoRepository) AddFunds(ctx context.Context, clientID string, amount float64, description string, meta map[string]string) error {
	metaAV, err := attributevalue.Marshal(meta)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: clientID},
		},
		UpdateExpression:    aws.String("ADD balance :amount SET last_credit_description = :desc, last_credit_meta = :meta, last_credit_at = :at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: strconv.FormatFloat(amount, 'f', -1, 64)},
			":desc":   &types.AttributeValueMemberS{Value: description},
			":meta":   metaAV,
			":at":     &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}
