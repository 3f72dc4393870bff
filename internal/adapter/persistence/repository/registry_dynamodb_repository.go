package repository

import (
	"context"
	"strings"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/google/uuid"
)

const (
	defaultPersonsTableName  = "persons"
	defaultSellersTableName  = "sellers"
	defaultChannelsTableName = "channels"

	sellersUserIDIndex = "user_id-index"
)

type personItem struct {
	ID             string       `dynamodbav:"id"`
	Name           string       `dynamodbav:"name"`
	Classification string       `dynamodbav:"classification"`
	CPF            *string      `dynamodbav:"cpf,omitempty"`
	CNPJ           *string      `dynamodbav:"cnpj,omitempty"`
	Address        *addressItem `dynamodbav:"address,omitempty"`
}

type addressItem struct {
	Street       string `dynamodbav:"street"`
	Number       string `dynamodbav:"number"`
	Complement   string `dynamodbav:"complement,omitempty"`
	Neighborhood string `dynamodbav:"neighborhood"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
	ZipCode      string `dynamodbav:"zip_code"`
}

// PersonDynamoRepository stores clients and related parties.
//
// Table requirements:
//   - PK: id (string)
type PersonDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IPersonService = (*PersonDynamoRepository)(nil)

func NewPersonDynamoRepository(ddb DynamoDBAPI) *PersonDynamoRepository {
	return &PersonDynamoRepository{
		table: newDynamoTable(ddb, "PERSONS_TABLE", defaultPersonsTableName),
	}
}

// SaveOrUpdate creates p when it has no id or is unknown, and replaces it otherwise.
func (r *PersonDynamoRepository) SaveOrUpdate(ctx context.Context, p entities.Person, _ entities.ActingUser) (entities.Person, error) {
	p.ID = strings.TrimSpace(p.ID)
	mode := writeCreate
	if p.ID == "" {
		p.ID = uuid.NewString()
	} else {
		existing, err := r.table.get(ctx, p.ID)
		if err != nil {
			return entities.Person{}, err
		}
		if existing != nil {
			mode = writeReplace
		}
	}

	av, err := attributevalue.MarshalMap(toPersonItem(p))
	if err != nil {
		return entities.Person{}, err
	}
	if err := r.table.put(ctx, p.ID, av, mode); err != nil {
		return entities.Person{}, err
	}
	return p, nil
}

func (r *PersonDynamoRepository) GetByID(ctx context.Context, id string) (entities.Person, error) {
	raw, err := r.table.get(ctx, id)
	if err != nil || raw == nil {
		return entities.Person{}, err
	}
	var it personItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Person{}, err
	}
	return fromPersonItem(it), nil
}

func toPersonItem(p entities.Person) personItem {
	it := personItem{
		ID:             p.ID,
		Name:           p.Name,
		Classification: string(p.Classification),
		CPF:            p.CPF,
		CNPJ:           p.CNPJ,
	}
	if p.Address != nil {
		a := addressItem(*p.Address)
		it.Address = &a
	}
	return it
}

func fromPersonItem(it personItem) entities.Person {
	p := entities.Person{
		ID:             it.ID,
		Name:           it.Name,
		Classification: entities.PersonClassification(it.Classification),
		CPF:            it.CPF,
		CNPJ:           it.CNPJ,
	}
	if it.Address != nil {
		a := entities.Address(*it.Address)
		p.Address = &a
	}
	return p
}

type sellerItem struct {
	ID           string   `dynamodbav:"id"`
	UserID       string   `dynamodbav:"user_id"`
	Name         string   `dynamodbav:"name"`
	SalesTeamIDs []string `dynamodbav:"sales_team_ids,stringset,omitempty"`
}

// SellerDynamoRepository resolves sellers and their sales teams.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index: user_id (string)
type SellerDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.ISellerService = (*SellerDynamoRepository)(nil)

func NewSellerDynamoRepository(ddb DynamoDBAPI) *SellerDynamoRepository {
	return &SellerDynamoRepository{
		table: newDynamoTable(ddb, "SELLERS_TABLE", defaultSellersTableName),
	}
}

func (r *SellerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Seller, error) {
	raw, err := r.table.get(ctx, id)
	if err != nil || raw == nil {
		return entities.Seller{}, err
	}
	var it sellerItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Seller{}, err
	}
	return entities.Seller(it), nil
}

func (r *SellerDynamoRepository) GetByUser(ctx context.Context, userID string) (entities.Seller, error) {
	raw, err := r.table.queryEq(ctx, sellersUserIDIndex, "user_id", userID)
	if err != nil || len(raw) == 0 {
		return entities.Seller{}, err
	}
	var it sellerItem
	if err := attributevalue.UnmarshalMap(raw[0], &it); err != nil {
		return entities.Seller{}, err
	}
	return entities.Seller(it), nil
}

func (r *SellerDynamoRepository) GetBySalesTeam(ctx context.Context, salesTeamID string) ([]entities.Seller, error) {
	cond := expression.Contains(expression.Name("sales_team_ids"), salesTeamID)
	raw, err := r.table.scan(ctx, &cond)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll[sellerItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Seller, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Seller(it))
	}
	return out, nil
}

type channelItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	HasPartner bool   `dynamodbav:"has_partner"`
}

// ChannelDynamoRepository resolves sales channels.
//
// Table requirements:
//   - PK: id (string)
type ChannelDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IChannelService = (*ChannelDynamoRepository)(nil)

func NewChannelDynamoRepository(ddb DynamoDBAPI) *ChannelDynamoRepository {
	return &ChannelDynamoRepository{
		table: newDynamoTable(ddb, "CHANNELS_TABLE", defaultChannelsTableName),
	}
}

func (r *ChannelDynamoRepository) GetByID(ctx context.Context, id string) (entities.Channel, error) {
	raw, err := r.table.get(ctx, id)
	if err != nil || raw == nil {
		return entities.Channel{}, err
	}
	var it channelItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Channel{}, err
	}
	return entities.Channel(it), nil
}
