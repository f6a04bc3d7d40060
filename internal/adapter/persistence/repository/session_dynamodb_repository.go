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
	DefaultSessionsTableName = "sessions"

	// operatorSessionID is the single row holding the shop operator session.
	operatorSessionID = "operator"
)

type sessionItem struct {
	ID           string `dynamodbav:"id"`
	AccessToken  string `dynamodbav:"access_token"`
	RefreshToken string `dynamodbav:"refresh_token"`
	ExpiresAt    string `dynamodbav:"expires_at,omitempty"`
	UserID       string `dynamodbav:"user_id"`
	UserEmail    string `dynamodbav:"user_email"`
	UserName     string `dynamodbav:"user_name,omitempty"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// SessionDynamoRepository persists the operator session across restarts.
//
// Table requirements:
//   - PK: id (string)
type SessionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb DynamoAPI, tableName string) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultSessionsTableName),
		now:       time.Now,
	}
}

func (r *SessionDynamoRepository) Load(ctx context.Context) (*entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	if it.AccessToken == "" {
		return nil, nil
	}
	s := fromSessionItem(it)
	return &s, nil
}

func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.Session) error {
	it := toSessionItem(s)
	it.UpdatedAt = r.now().UTC().Format(time.RFC3339Nano)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionDynamoRepository) Clear(ctx context.Context) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(),
	})
	return err
}

func (r *SessionDynamoRepository) key() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: operatorSessionID},
	}
}

func toSessionItem(s entities.Session) sessionItem {
	it := sessionItem{
		ID:           operatorSessionID,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		UserID:       s.User.ID,
		UserEmail:    s.User.Email,
		UserName:     s.User.Name,
	}
	if !s.ExpiresAt.IsZero() {
		it.ExpiresAt = s.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return it
}

func fromSessionItem(it sessionItem) entities.Session {
	exp, _ := time.Parse(time.RFC3339, it.ExpiresAt)
	return entities.Session{
		AccessToken:  it.AccessToken,
		RefreshToken: it.RefreshToken,
		ExpiresAt:    exp,
		User: entities.User{
			ID:    it.UserID,
			Email: it.UserEmail,
			Name:  it.UserName,
		},
	}
}
