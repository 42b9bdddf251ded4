package normalize

import (
	"testing"

	"github.com/jsphweid/midirect/model"
	"github.com/stretchr/testify/assert"
)

func countAtZero(track model.Track, kind model.Kind) int {
	var n int
	for _, e := range track {
		if e.Kind == kind && e.Offset == 0 {
			n++
		}
	}
	return n
}

func find(track model.Track, kind model.Kind) model.Event {
	for _, e := range track {
		if e.Kind == kind && e.Offset == 0 {
			return e
		}
	}
	return model.Event{}
}

func TestAddsDefaults(t *testing.T) {
	res, warnings := Track(model.Track{{Kind: model.NoteOn, Pitch: 60}}, 480)

	assert := assert.New(t)
	assert.Empty(warnings)
	assert.Len(res, 5)
	for _, kind := range []model.Kind{model.TimeSignature, model.KeySignature, model.Tempo, model.TicksPerBeat} {
		assert.Equal(1, countAtZero(res, kind), kind.String())
	}
	ts := find(res, model.TimeSignature)
	assert.Equal(uint8(4), ts.Numerator)
	assert.Equal(uint8(4), ts.Denominator)
	ks := find(res, model.KeySignature)
	assert.Equal(int8(0), ks.Fifths)
	assert.False(ks.Minor)
	assert.Equal(uint32(500000), find(res, model.Tempo).MicrosPerBeat)
	assert.Equal(uint16(480), find(res, model.TicksPerBeat).Resolution)
}

func TestKeepsSingleContextEvent(t *testing.T) {
	in := model.Track{{Kind: model.Tempo, MicrosPerBeat: 600000}}

	res, _ := Track(in, 96)

	assert := assert.New(t)
	assert.Equal(1, countAtZero(res, model.Tempo))
	assert.Equal(uint32(600000), find(res, model.Tempo).MicrosPerBeat)
}

func TestDuplicatesKeepLast(t *testing.T) {
	in := model.Track{
		{Kind: model.KeySignature, Fifths: 1},
		{Kind: model.KeySignature, Fifths: 2},
		{Kind: model.KeySignature, Fifths: -3},
		{Kind: model.KeySignature, Offset: 100, Fifths: 4},
	}

	res, warnings := Track(in, 96)

	assert := assert.New(t)
	assert.Len(warnings, 1)
	assert.Equal(model.MultipleContextEvents, warnings[0].Kind)
	assert.Equal(1, countAtZero(res, model.KeySignature))
	assert.Equal(int8(-3), find(res, model.KeySignature).Fifths)
	// mid-track events are left alone
	assert.Equal(model.Event{Kind: model.KeySignature, Offset: 100, Fifths: 4}, res[1])
}

func TestIdempotent(t *testing.T) {
	in := model.Track{
		{Kind: model.Tempo, MicrosPerBeat: 1},
		{Kind: model.Tempo, MicrosPerBeat: 2},
		{Kind: model.NoteOn, Offset: 10, Pitch: 60},
	}

	once, _ := Track(in, 480)
	twice, warnings := Track(once, 480)

	assert := assert.New(t)
	assert.Empty(warnings)
	assert.Equal(once, twice)
}
