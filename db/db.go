package db

import (
	"strconv"

	"github.com/jsphweid/midirect/composer"
	"github.com/jsphweid/midirect/model"
	"github.com/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// Composers is a composer.Source backed by a DynamoDB table keyed on PK,
// the case folded composer name. Results are cached for the life of the value.
type Composers struct {
	client dynamodbiface.DynamoDBAPI
	table  string
	cache  map[string]model.Composer
}

func NewComposers(client dynamodbiface.DynamoDBAPI, table string) *Composers {
	return &Composers{client: client, table: table, cache: make(map[string]model.Composer)}
}

// Open connects to DynamoDB. endpoint may be empty to use the AWS default,
// or point at a local instance such as http://localhost:8000.
func Open(table, endpoint, region string) (*Composers, error) {
	cfg := &aws.Config{}
	if region != "" {
		cfg.Region = aws.String(region)
	}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		if region == "" {
			cfg.Region = aws.String("localhost")
		}
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "Could not create a new DynamoDB session")
	}
	return NewComposers(dynamodb.New(sess), table), nil
}

func (c *Composers) Lookup(name string) (model.Composer, error) {
	key := composer.Key(name)
	if res, ok := c.cache[key]; ok {
		return res, nil
	}

	out, err := c.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(c.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(key)},
		},
	})
	if err != nil {
		return model.Composer{}, errors.Wrap(err, "Error from DynamoDB")
	}
	if len(out.Item) == 0 {
		return model.Composer{}, errors.Wrapf(composer.ErrNotFound, "Composer %s", name)
	}

	res := model.Composer{Name: name}
	if v := out.Item["Name"]; v != nil && v.S != nil {
		res.Name = *v.S
	}
	if res.YearBorn, err = year(out.Item["YearBorn"]); err != nil {
		return model.Composer{}, errors.Wrapf(err, "Composer %s YearBorn", name)
	}
	if res.YearDied, err = year(out.Item["YearDied"]); err != nil {
		return model.Composer{}, errors.Wrapf(err, "Composer %s YearDied", name)
	}
	c.cache[key] = res
	return res, nil
}

func year(v *dynamodb.AttributeValue) (uint, error) {
	if v == nil || v.N == nil {
		return 0, nil
	}
	y, err := strconv.ParseUint(*v.N, 10, 32)
	return uint(y), err
}
