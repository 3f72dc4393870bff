package repository

import (
	"context"
	"fmt"
	"strconv"

	"concessionaria_xpto/internal/infrastructure/database"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/redis/go-redis/v9"
)

const defaultSequencesTableName = "sequences"

// SequenceDynamoRepository hands out counter values with an atomic ADD on a
// single counter item per sequence name. It always writes directly, outside
// any unit of work.
//
// Table requirements:
//   - PK: id (string), the sequence name
type SequenceDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb DynamoDBAPI) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: database.GetenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			attrID: &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("sequence %s: missing counter value", name)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

// SequenceRedisRepository hands out counter values with INCR.
type SequenceRedisRepository struct {
	client *redis.Client
	prefix string
}

var _ interfaces.ISequenceRepository = (*SequenceRedisRepository)(nil)

func NewSequenceRedisRepository(client *redis.Client) *SequenceRedisRepository {
	return &SequenceRedisRepository{client: client, prefix: "sequence:"}
}

func (r *SequenceRedisRepository) Next(ctx context.Context, name string) (int64, error) {
	n, err := r.client.Incr(ctx, r.prefix+name).Result()
	if err != nil {
		return 0, fmt.Errorf("incr sequence %s: %w", name, err)
	}
	return n, nil
}
