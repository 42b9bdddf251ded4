package db

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/midirect/composer"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	items map[string]map[string]*dynamodb.AttributeValue
	calls int
}

func (f *fakeDynamo) GetItem(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
	f.calls++
	return &dynamodb.GetItemOutput{Item: f.items[*in.Key["PK"].S]}, nil
}

func TestLookupReadsAndCaches(t *testing.T) {
	fake := &fakeDynamo{items: map[string]map[string]*dynamodb.AttributeValue{
		"ravel": {
			"PK":       {S: aws.String("ravel")},
			"Name":     {S: aws.String("Ravel")},
			"YearBorn": {N: aws.String("1875")},
			"YearDied": {N: aws.String("1937")},
		},
	}}
	src := NewComposers(fake, "composers")

	c, err := src.Lookup("RAVEL")
	_, err2 := src.Lookup("Ravel")

	assert := assert.New(t)
	assert.Nil(err)
	assert.Nil(err2)
	assert.Equal("Ravel", c.Name)
	assert.Equal(uint(1875), c.YearBorn)
	assert.Equal(uint(1937), c.YearDied)
	assert.Equal(1, fake.calls)
}

func TestLookupMiss(t *testing.T) {
	src := NewComposers(&fakeDynamo{}, "composers")

	_, err := src.Lookup("Nobody")

	assert.New(t).Equal(composer.ErrNotFound, errors.Cause(err))
}
