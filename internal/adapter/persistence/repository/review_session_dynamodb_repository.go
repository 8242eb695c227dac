package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"liquiverde_bff/internal/domain/entities"
	"liquiverde_bff/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReviewSessionsTableName = "review_sessions"
	reviewSessionsListIDIndex      = "list_id-index"
)

// DynamoAPI is the subset of the DynamoDB client the repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type reviewSessionItem struct {
	ID             string `dynamodbav:"id"`
	ListID         string `dynamodbav:"list_id"`
	State          string `dynamodbav:"state"`
	Index          int    `dynamodbav:"index"`
	CandidateCount int    `dynamodbav:"candidate_count"`
	AcceptedCount  int    `dynamodbav:"accepted_count"`
	FailedCount    int    `dynamodbav:"failed_count"`
	TotalSavings   string `dynamodbav:"total_savings"`
	CandidatesRaw  string `dynamodbav:"candidates_raw,omitempty"`
	OutcomeRaw     string `dynamodbav:"outcome_raw,omitempty"`
	Error          string `dynamodbav:"error,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	ExpiresAt      *int64 `dynamodbav:"expires_at,omitempty"`
}

// ReviewSessionDynamoRepository persists ReviewSession snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: list_id-index (PK: list_id, string)
//   - optional TTL attribute: expires_at
//
// Candidates and outcome are stored as JSON strings; they are read back whole
// and never queried.

type ReviewSessionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	ttl       time.Duration
}

var _ interfaces.IReviewSessionRepository = (*ReviewSessionDynamoRepository)(nil)

// NewReviewSessionDynamoRepository uses tableName, or REVIEW_SESSIONS_TABLE when
// empty. ttl <= 0 disables expiry.
func NewReviewSessionDynamoRepository(ddb DynamoAPI, tableName string, ttl time.Duration) *ReviewSessionDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("REVIEW_SESSIONS_TABLE", defaultReviewSessionsTableName)
	}
	return &ReviewSessionDynamoRepository{ddb: ddb, tableName: tableName, ttl: ttl}
}

// Save upserts the latest snapshot of s.
func (r *ReviewSessionDynamoRepository) Save(ctx context.Context, s entities.ReviewSession) error {
	it, err := r.toItem(s)
	if err != nil {
		return err
	}
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

func (r *ReviewSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.ReviewSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ReviewSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.ReviewSession{}, nil
	}

	var it reviewSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ReviewSession{}, err
	}
	return fromReviewSessionItem(it)
}

// ListByListID returns the sessions of a list, newest first.
func (r *ReviewSessionDynamoRepository) ListByListID(ctx context.Context, listID int64) ([]entities.ReviewSession, error) {
	var (
		sessions []entities.ReviewSession
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(reviewSessionsListIDIndex),
			KeyConditionExpression: aws.String("list_id = :lid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":lid": &types.AttributeValueMemberS{Value: strconv.FormatInt(listID, 10)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it reviewSessionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			s, err := fromReviewSessionItem(it)
			if err != nil {
				return nil, err
			}
			sessions = append(sessions, s)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (r *ReviewSessionDynamoRepository) toItem(s entities.ReviewSession) (reviewSessionItem, error) {
	it := reviewSessionItem{
		ID:             s.ID,
		ListID:         strconv.FormatInt(s.ListID, 10),
		State:          string(s.State),
		Index:          s.Index,
		CandidateCount: len(s.Candidates),
		TotalSavings:   "0",
		Error:          s.Error,
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(s.Candidates) > 0 {
		b, err := json.Marshal(s.Candidates)
		if err != nil {
			return reviewSessionItem{}, err
		}
		it.CandidatesRaw = string(b)
	}
	if s.Outcome != nil {
		b, err := json.Marshal(s.Outcome)
		if err != nil {
			return reviewSessionItem{}, err
		}
		it.OutcomeRaw = string(b)
		it.AcceptedCount = s.Outcome.AcceptedCount
		it.FailedCount = s.Outcome.FailedCount
		it.TotalSavings = floatToString(s.Outcome.TotalSavings)
	}
	if r.ttl > 0 {
		exp := s.UpdatedAt.Add(r.ttl).Unix()
		it.ExpiresAt = &exp
	}
	return it, nil
}

func fromReviewSessionItem(it reviewSessionItem) (entities.ReviewSession, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	listID, _ := strconv.ParseInt(it.ListID, 10, 64)

	s := entities.ReviewSession{
		ID:        it.ID,
		ListID:    listID,
		State:     entities.ReviewState(it.State),
		Index:     it.Index,
		Error:     it.Error,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.CandidatesRaw != "" {
		if err := json.Unmarshal([]byte(it.CandidatesRaw), &s.Candidates); err != nil {
			return entities.ReviewSession{}, err
		}
	}
	if it.OutcomeRaw != "" {
		var o entities.Outcome
		if err := json.Unmarshal([]byte(it.OutcomeRaw), &o); err != nil {
			return entities.ReviewSession{}, err
		}
		s.Outcome = &o
	}
	return s, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
