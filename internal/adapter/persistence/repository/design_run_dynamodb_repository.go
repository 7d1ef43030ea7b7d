package repository

import (
	"context"
	"strings"
	"time"

	"insurance_designer/internal/domain/entities"
	"insurance_designer/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

const (
	DefaultDesignRunsTableName = "design_runs"
	designRunsPolicyIDIndex    = "policy_id-index"
)

type designRunItem struct {
	ID                    string `dynamodbav:"id"`
	PolicyID              string `dynamodbav:"policy_id"`
	ProductID             string `dynamodbav:"product_id"`
	PolicyType            string `dynamodbav:"policy_type"`
	CoveragesRequested    int    `dynamodbav:"coverages_requested"`
	CoveragesCreated      int    `dynamodbav:"coverages_created"`
	ParticipantsRequested int    `dynamodbav:"participants_requested"`
	ParticipantsCreated   int    `dynamodbav:"participants_created"`
	PriceEntryID          string `dynamodbav:"price_entry_id,omitempty"`
	ItemOutcomes          string `dynamodbav:"item_outcomes"`
	CreatedAt             string `dynamodbav:"created_at"`
}

// DesignRunsAPI is the subset of the DynamoDB client the repository uses.
type DesignRunsAPI interface {
	dynamodb.QueryAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// DesignRunDynamoRepository persists DesignRun audit records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: policy_id-index with partition key policy_id (string)
//
// Item outcomes are stored as a JSON string attribute.
type DesignRunDynamoRepository struct {
	ddb       DesignRunsAPI
	tableName string
}

var _ interfaces.IDesignRunRepository = (*DesignRunDynamoRepository)(nil)

func NewDesignRunDynamoRepository(ddb DesignRunsAPI, tableName string) *DesignRunDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultDesignRunsTableName
	}
	return &DesignRunDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *DesignRunDynamoRepository) Create(ctx context.Context, run entities.DesignRun) (entities.DesignRun, error) {
	it, err := toDesignRunItem(run)
	if err != nil {
		return entities.DesignRun{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DesignRun{}, err
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
		return entities.DesignRun{}, err
	}
	log.Debug().Str("design_run_id", run.ID).Str("policy_id", run.PolicyID).Msg("[design-run][repository] stored")
	return run, nil
}

func (r *DesignRunDynamoRepository) GetByID(ctx context.Context, id string) (entities.DesignRun, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DesignRun{}, err
	}
	if len(out.Item) == 0 {
		return entities.DesignRun{}, nil
	}

	var it designRunItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DesignRun{}, err
	}
	return fromDesignRunItem(it)
}

func (r *DesignRunDynamoRepository) ListByPolicyID(ctx context.Context, policyID string) ([]entities.DesignRun, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(designRunsPolicyIDIndex),
		KeyConditionExpression: aws.String("policy_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: policyID},
		},
	})

	runs := make([]entities.DesignRun, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it designRunItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			run, err := fromDesignRunItem(it)
			if err != nil {
				return nil, err
			}
			runs = append(runs, run)
		}
	}
	sortRunsByCreatedAt(runs)
	return runs, nil
}

func toDesignRunItem(run entities.DesignRun) (designRunItem, error) {
	outcomes, err := encodeOutcomes(run.ItemOutcomes)
	if err != nil {
		return designRunItem{}, err
	}
	return designRunItem{
		ID:                    run.ID,
		PolicyID:              run.PolicyID,
		ProductID:             run.ProductID,
		PolicyType:            string(run.PolicyType),
		CoveragesRequested:    run.CoveragesRequested,
		CoveragesCreated:      run.CoveragesCreated,
		ParticipantsRequested: run.ParticipantsRequested,
		ParticipantsCreated:   run.ParticipantsCreated,
		PriceEntryID:          run.PriceEntryID,
		ItemOutcomes:          outcomes,
		CreatedAt:             run.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromDesignRunItem(it designRunItem) (entities.DesignRun, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	outcomes, err := decodeOutcomes(it.ItemOutcomes)
	if err != nil {
		return entities.DesignRun{}, err
	}
	return entities.DesignRun{
		ID:                    it.ID,
		PolicyID:              it.PolicyID,
		ProductID:             it.ProductID,
		PolicyType:            entities.PolicyType(it.PolicyType),
		CoveragesRequested:    it.CoveragesRequested,
		CoveragesCreated:      it.CoveragesCreated,
		ParticipantsRequested: it.ParticipantsRequested,
		ParticipantsCreated:   it.ParticipantsCreated,
		PriceEntryID:          it.PriceEntryID,
		ItemOutcomes:          outcomes,
		CreatedAt:             createdAt,
	}, nil
}
