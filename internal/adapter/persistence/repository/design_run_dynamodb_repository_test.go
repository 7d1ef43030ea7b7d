package repository

import (
	"context"
	"testing"
	"time"

	"insurance_designer/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignRunItem(t *testing.T) {
	created := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	run := entities.DesignRun{
		ID:                 "run-1",
		PolicyID:           "pol-1",
		ProductID:          "prod-1",
		PolicyType:         entities.PolicyTypeLife,
		CoveragesRequested: 2,
		CoveragesCreated:   1,
		ItemOutcomes: []entities.ItemOutcome{
			{Step: entities.DesignStepCoverage, ObjectKind: entities.ObjectCoverage, Index: 0, Success: true, ID: "cov-1"},
			{Step: entities.DesignStepCoverage, ObjectKind: entities.ObjectCoverage, Index: 1, Reason: "rejected"},
		},
		CreatedAt: created,
	}

	it, err := toDesignRunItem(run)
	require.NoError(t, err)

	av, err := attributevalue.MarshalMap(it)
	require.NoError(t, err)
	_, isString := av["item_outcomes"].(*types.AttributeValueMemberS)
	assert.True(t, isString, "item outcomes are stored as a string attribute")
	_, hasPriceEntry := av["price_entry_id"]
	assert.False(t, hasPriceEntry, "empty price entry id is omitted")

	back, err := fromDesignRunItem(it)
	require.NoError(t, err)
	assert.Equal(t, run.PolicyID, back.PolicyID)
	assert.True(t, back.CreatedAt.Equal(created))
	require.Len(t, back.ItemOutcomes, 2)
	assert.Equal(t, "rejected", back.ItemOutcomes[1].Reason)
}

func TestDecodeOutcomes(t *testing.T) {
	out, err := decodeOutcomes("")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = decodeOutcomes("{not json")
	assert.Error(t, err)
}

func TestSortRunsByCreatedAt(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	runs := []entities.DesignRun{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "mid", CreatedAt: base.Add(time.Hour)},
	}
	sortRunsByCreatedAt(runs)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{runs[0].ID, runs[1].ID, runs[2].ID})
}

// pagedDesignRuns serves Query results one page at a time.
type pagedDesignRuns struct {
	pages      [][]map[string]types.AttributeValue
	startKeys  []map[string]types.AttributeValue
	indexNames []string
}

func (p *pagedDesignRuns) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	p.startKeys = append(p.startKeys, in.ExclusiveStartKey)
	if in.IndexName != nil {
		p.indexNames = append(p.indexNames, *in.IndexName)
	}
	page := len(p.startKeys) - 1
	out := &dynamodb.QueryOutput{Items: p.pages[page]}
	if page < len(p.pages)-1 {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: "cursor"},
		}
	}
	return out, nil
}

func (p *pagedDesignRuns) PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return &dynamodb.PutItemOutput{}, nil
}

func (p *pagedDesignRuns) GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{}, nil
}

func designRunAttributes(t *testing.T, id string, created time.Time) map[string]types.AttributeValue {
	t.Helper()
	it, err := toDesignRunItem(entities.DesignRun{ID: id, PolicyID: "pol-1", CreatedAt: created})
	require.NoError(t, err)
	av, err := attributevalue.MarshalMap(it)
	require.NoError(t, err)
	return av
}

func TestDesignRunDynamoRepository_ListByPolicyID_ReadsEveryPage(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	api := &pagedDesignRuns{pages: [][]map[string]types.AttributeValue{
		{designRunAttributes(t, "run-1", base), designRunAttributes(t, "run-2", base.Add(time.Hour))},
		{designRunAttributes(t, "run-3", base.Add(2 * time.Hour))},
	}}
	repo := NewDesignRunDynamoRepository(api, "")

	runs, err := repo.ListByPolicyID(context.Background(), "pol-1")
	require.NoError(t, err)

	require.Len(t, runs, 3)
	assert.Equal(t, []string{"run-3", "run-2", "run-1"}, []string{runs[0].ID, runs[1].ID, runs[2].ID})
	require.Len(t, api.startKeys, 2)
	assert.Nil(t, api.startKeys[0])
	assert.Equal(t, "cursor", api.startKeys[1]["id"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, []string{designRunsPolicyIDIndex, designRunsPolicyIDIndex}, api.indexNames)
}

func TestDesignRunDynamoRepository_ListByPolicyID_Empty(t *testing.T) {
	api := &pagedDesignRuns{pages: [][]map[string]types.AttributeValue{nil}}
	repo := NewDesignRunDynamoRepository(api, "design_runs")

	runs, err := repo.ListByPolicyID(context.Background(), "pol-1")
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}
