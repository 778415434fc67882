package repository

import (
	"context"

	"midtrans_gateway/internal/domain/entities"
	"midtrans_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoicesTableName = "invoices"

type lineItemItem struct {
	ID       string  `dynamodbav:"id"`
	Price    float64 `dynamodbav:"price"`
	Quantity int     `dynamodbav:"quantity"`
	Title    string  `dynamodbav:"title"`
}

type invoiceItem struct {
	ID           string         `dynamodbav:"id"`
	ClientID     string         `dynamodbav:"client_id"`
	Items        []lineItemItem `dynamodbav:"items"`
	Tax          float64        `dynamodbav:"tax"`
	TotalWithTax float64        `dynamodbav:"total_with_tax"`
	Status       string         `dynamodbav:"status"`
	Hash         string         `dynamodbav:"hash,omitempty"`
}

// InvoiceDynamoRepository reads invoices from DynamoDB and flips them to
// paid when a settled notification arrives.
//
// Table requirements:
//   - PK: id (string)
type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) MarkAsPaid(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :paid"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
			"#id":     "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
		},
	})
	return err
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.LineItem{
			ID:       li.ID,
			Price:    li.Price,
			Quantity: li.Quantity,
			Title:    li.Title,
		})
	}
	return entities.Invoice{
		ID:           it.ID,
		ClientID:     it.ClientID,
		Items:        items,
		Tax:          it.Tax,
		TotalWithTax: it.TotalWithTax,
		Status:       entities.InvoiceStatus(it.Status),
		Hash:         it.Hash,
	}
}
