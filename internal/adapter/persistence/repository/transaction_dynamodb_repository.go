package repository

import (
	"context"
	"time"

	"midtrans_gateway/internal/domain/entities"
	"midtrans_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsInvoiceIDIndex   = "invoice_id-index"
)

type transactionItem struct {
	ID          string `dynamodbav:"id"`
	InvoiceID   string `dynamodbav:"invoice_id"`
	TxnStatus   string `dynamodbav:"txn_status,omitempty"`
	TxnID       string `dynamodbav:"txn_id,omitempty"`
	Amount      string `dynamodbav:"amount,omitempty"`
	Currency    string `dynamodbav:"currency,omitempty"`
	PaymentType string `dynamodbav:"payment_type,omitempty"`
	Status      string `dynamodbav:"status,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
//
// Save is an unconditional put: the notification flow always rewrites the
// row with the latest provider snapshot.
type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Items) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) Save(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(tx))
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return tx, nil
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	return transactionItem{
		ID:          tx.ID,
		InvoiceID:   tx.InvoiceID,
		TxnStatus:   tx.TxnStatus,
		TxnID:       tx.TxnID,
		Amount:      tx.Amount,
		Currency:    tx.Currency,
		PaymentType: tx.PaymentType,
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   tx.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Transaction{
		ID:          it.ID,
		InvoiceID:   it.InvoiceID,
		TxnStatus:   it.TxnStatus,
		TxnID:       it.TxnID,
		Amount:      it.Amount,
		Currency:    it.Currency,
		PaymentType: it.PaymentType,
		Status:      entities.TransactionStatus(it.Status),
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}
