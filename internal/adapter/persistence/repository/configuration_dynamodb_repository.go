package repository

import (
	"context"
	"os"
	"strings"

	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultConfigurationsTableName = "configurations"

type configurationItem struct {
	ID    string `dynamodbav:"id"`
	Value string `dynamodbav:"value"`
}

// ConfigurationDynamoRepository reads business configuration values.
//
// A key missing from the table falls back to the environment variable of the
// same name. Table requirements:
//   - PK: id (string), the configuration key
type ConfigurationDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IConfigurationProvider = (*ConfigurationDynamoRepository)(nil)

func NewConfigurationDynamoRepository(ddb DynamoDBAPI) *ConfigurationDynamoRepository {
	return &ConfigurationDynamoRepository{
		table: newDynamoTable(ddb, "CONFIGURATIONS_TABLE", defaultConfigurationsTableName),
	}
}

func (r *ConfigurationDynamoRepository) GetValue(ctx context.Context, key string) (string, error) {
	raw, err := r.table.get(ctx, key)
	if err != nil {
		return "", err
	}
	if raw != nil {
		var it configurationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return "", err
		}
		if v := strings.TrimSpace(it.Value); v != "" {
			return v, nil
		}
	}
	return strings.TrimSpace(os.Getenv(key)), nil
}
