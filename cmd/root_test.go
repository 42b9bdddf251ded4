package cmd

import (
	"testing"

	"github.com/jsphweid/midirect/composer"
	"github.com/jsphweid/midirect/config"
	"github.com/jsphweid/midirect/model"
	"github.com/stretchr/testify/assert"
)

func TestRectOptions(t *testing.T) {
	c := config.Default()
	c.Layout = model.Narrow
	c.IntervalFormat = config.IntervalName

	opts := rectOptions(c)

	assert := assert.New(t)
	assert.Equal(model.Narrow, opts.Layout)
	assert.True(opts.IntervalNames)
}

func TestComposerSourceDefaultsToTable(t *testing.T) {
	source, err := composerSource(config.Default())

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(composer.Default, source)
}

func TestSetupAppliesFlags(t *testing.T) {
	configPath = ""
	layoutFlag = "narrow"
	levelFlag = "debug"
	defer func() {
		layoutFlag = ""
		levelFlag = ""
	}()

	err := setup()

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(model.Narrow, cfg.Layout)
	assert.NotNil(logger)
}

func TestSetupRejectsBadLevel(t *testing.T) {
	configPath = ""
	levelFlag = "loud"
	defer func() { levelFlag = "" }()

	assert.New(t).NotNil(setup())
}
