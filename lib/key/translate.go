package key

import (
	"errors"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/lib/om"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/redis/go-redis/v9"
	"strings"
)

var (
	plog = logger.GetLogger("ookv/key")

	guardMismatches  = metrics.GetOrCreateCounter(`ookv_type_mismatch_total{source="guard"}`)
	remoteMismatches = metrics.GetOrCreateCounter(`ookv_type_mismatch_total{source="remote"}`)
)

// numericConflicts are the server replies for numeric commands that ran
// against a value that is not a number.
var numericConflicts = []string{
	"value is not an integer",
	"value is not a valid float",
	"hash value is not a float",
}

// Translate maps a server reply signalling a representation conflict to
// om.ErrTypeMismatch. Every other error (including redis.Nil) and nil are
// returned unchanged.
func Translate(err error) error {
	if err == nil || !isRepresentationConflict(err) {
		return err
	}
	remoteMismatches.Inc()
	plog.Debugf("translated server reply %q", err.Error())
	return om.NewError(om.RetCTypeMismatch, "operation against a key holding the wrong kind of value").WithCause(err)
}

// Result is the combinator form of Translate, it is meant to wrap the
// Result() call of a go-redis command:
//
//	n, err := key.Result(client.LLen(ctx, name).Result())
func Result[T any](v T, err error) (T, error) {
	return v, Translate(err)
}

// Wire converts the result of a single value command into a codec.Wire.
// redis.Nil becomes codec.Absent, other errors are translated.
func Wire(data string, err error) (codec.Wire, error) {
	if errors.Is(err, redis.Nil) {
		return codec.Absent, nil
	}
	if err != nil {
		return codec.Absent, Translate(err)
	}
	return codec.Reply(data), nil
}

func isRepresentationConflict(err error) bool {
	var rerr redis.Error
	if !errors.As(err, &rerr) || errors.Is(err, redis.Nil) {
		return false
	}
	msg := rerr.Error()
	if strings.HasPrefix(msg, "WRONGTYPE") {
		return true
	}
	for _, s := range numericConflicts {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
