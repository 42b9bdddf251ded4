package midi

import (
	"math"

	"github.com/jsphweid/midirect/constants"
	"github.com/jsphweid/midirect/model"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Decode turns a parsed SMF into per-track delta-time events. Every decoded
// track ends with an end-of-track event, even when the file omitted it.
func Decode(s *smf.SMF) (*model.Song, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, errors.Errorf("unsupported time format %v, only metric ticks are supported", s.TimeFormat)
	}
	if ticks == 0 {
		return nil, errors.New("time format has zero ticks per beat")
	}

	song := &model.Song{TicksPerBeat: uint16(ticks)}
	for _, track := range s.Tracks {
		var res model.RawTrack
		closed := false
		for _, event := range track {
			raw, err := decodeEvent(event)
			if err != nil {
				return nil, errors.Wrapf(err, "track %d", len(song.Tracks))
			}
			res = append(res, raw)
			if raw.Kind == model.RawEndOfTrack {
				closed = true
				break
			}
		}
		if !closed {
			res = append(res, model.RawEvent{Kind: model.RawEndOfTrack})
		}
		song.Tracks = append(song.Tracks, res)
	}
	return song, nil
}

func decodeEvent(event smf.Event) (model.RawEvent, error) {
	raw := model.RawEvent{Delta: event.Delta}
	msg := event.Message

	var channel, key, velocity uint8
	var num, denom, cpt, dsqpq uint8
	var isMajor, isFlat bool
	var bpm float64
	switch {
	case gomidi.Message(msg).GetNoteStart(&channel, &key, &velocity):
		raw.Kind = model.RawNoteOn
		raw.Pitch = key
		raw.Velocity = velocity
	case gomidi.Message(msg).GetNoteEnd(&channel, &key):
		raw.Kind = model.RawNoteOff
		raw.Pitch = key
	case msg.Is(smf.MetaEndOfTrackMsg):
		raw.Kind = model.RawEndOfTrack
	case msg.GetMetaTempo(&bpm):
		raw.Kind = model.RawTempo
		raw.MicrosPerBeat = uint32(math.Round(constants.MicrosPerMinute / bpm))
	case msg.GetMetaTimeSig(&num, &denom, &cpt, &dsqpq):
		// denominators past 2^7 wrap to zero in a byte
		if denom == 0 {
			return raw, errors.Errorf("time signature %d/? has a denominator larger than 128", num)
		}
		raw.Kind = model.RawTimeSignature
		raw.Numerator = num
		raw.Denominator = denom
	case msg.GetMetaKeySig(nil, &num, &isMajor, &isFlat):
		raw.Kind = model.RawKeySignature
		raw.Fifths = int8(num)
		if isFlat {
			raw.Fifths = -raw.Fifths
		}
		raw.Minor = !isMajor
	}
	return raw, nil
}
