package repository

import (
	"context"
	"time"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPaymentsTableName = "invoice_payments"
	PaymentsInvoiceIDKey     = "invoice_id"
	paymentsInvoiceIDIndex   = PaymentsInvoiceIDKey + "-index"
)

type invoicePaymentItem struct {
	ID             string                 `dynamodbav:"id"`
	InvoiceID      string                 `dynamodbav:"invoice_id"`
	Date           string                 `dynamodbav:"date"`
	Amount         float64                `dynamodbav:"amount"`
	Status         string                 `dynamodbav:"status"`
	ProviderStatus string                 `dynamodbav:"provider_status,omitempty"`
	MPPayload      map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw   string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// InvoicePaymentDynamoRepository persists InvoicePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
type InvoicePaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentDynamoRepository)(nil)

func NewInvoicePaymentDynamoRepository(ddb DynamoAPI, tableName string) *InvoicePaymentDynamoRepository {
	return &InvoicePaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultPaymentsTableName),
	}
}

func (r *InvoicePaymentDynamoRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	av, err := attributevalue.MarshalMap(toInvoicePaymentItem(p))
	if err != nil {
		return entities.InvoicePayment{}, err
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
		return entities.InvoicePayment{}, err
	}
	return p, nil
}

// GetByID returns a zero InvoicePayment when the id is unknown.
func (r *InvoicePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.InvoicePayment{}, nil
	}

	var it invoicePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InvoicePayment{}, err
	}
	return fromInvoicePaymentItem(it), nil
}

func (r *InvoicePaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.InvoicePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoicePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoicePaymentItem(it))
	}
	return items, nil
}

func toInvoicePaymentItem(p entities.InvoicePayment) invoicePaymentItem {
	return invoicePaymentItem{
		ID:             p.ID,
		InvoiceID:      string(p.InvoiceID),
		Date:           p.Date.UTC().Format(time.RFC3339Nano),
		Amount:         p.Amount,
		Status:         string(p.Status),
		ProviderStatus: p.ProviderStatus,
		MPPayload:      p.MPPayload,
		MPPayloadRaw:   string(p.MPPayloadRaw),
	}
}

func fromInvoicePaymentItem(it invoicePaymentItem) entities.InvoicePayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.InvoicePayment{
		ID:             it.ID,
		InvoiceID:      entities.ID(it.InvoiceID),
		Date:           dt,
		Amount:         it.Amount,
		Status:         entities.PaymentStatus(it.Status),
		ProviderStatus: it.ProviderStatus,
		MPPayload:      it.MPPayload,
		MPPayloadRaw:   []byte(it.MPPayloadRaw),
	}
}
