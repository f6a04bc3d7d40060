package database

import (
	"context"
	"errors"

	"assistec/internal/infrastructure/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoConfig locates DynamoDB. A local endpoint (e.g. http://dynamodb:8000)
// does not validate credentials, but the SDK still requires some.
type DynamoConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB creates a DynamoDB client for the BFF's own state.
func ConnectDynamoDB(ctx context.Context, cfg DynamoConfig) (*dynamodb.Client, error) {
	awsCfg, err := newAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.For("database").Info().
		Str("region", cfg.Region).
		Str("endpoint", cfg.Endpoint).
		Msg("dynamodb client created")
	return dynamodb.NewFromConfig(awsCfg), nil
}

func newAWSConfig(ctx context.Context, cfg DynamoConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	}

	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// TableSpec describes a table the BFF creates when missing. IndexKey, when
// set, adds a GSI named "<IndexKey>-index".
type TableSpec struct {
	Name     string
	Key      string
	IndexKey string
}

// EnsureTables creates missing tables with on-demand billing. Used against
// local DynamoDB; in AWS the tables are provisioned ahead of time.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, specs ...TableSpec) error {
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return err
		}

		input := &dynamodb.CreateTableInput{
			TableName:   aws.String(spec.Name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(spec.Key), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(spec.Key), KeyType: types.KeyTypeHash},
			},
		}
		if spec.IndexKey != "" {
			input.AttributeDefinitions = append(input.AttributeDefinitions, types.AttributeDefinition{
				AttributeName: aws.String(spec.IndexKey), AttributeType: types.ScalarAttributeTypeS,
			})
			input.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
				IndexName: aws.String(spec.IndexKey + "-index"),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String(spec.IndexKey), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			}}
		}
		if _, err := ddb.CreateTable(ctx, input); err != nil {
			return err
		}
		logger.For("database").Info().Str("table", spec.Name).Msg("table created")
	}
	return nil
}
