package key

import (
	"context"
	"github.com/ValentinKolb/ooKV/lib/om"
)

// Representation returns the representation the store currently reports for
// the key (om.ReprNone if the key does not exist).
func (k *Key) Representation(ctx context.Context) (om.Representation, error) {
	typ, err := k.client.Type(ctx, k.name).Result()
	if err != nil {
		return om.ReprUnknown, err
	}
	return om.ParseRepresentation(typ), nil
}

// RequireRepresentationOrNone fails with om.ErrTypeMismatch if the key exists
// and holds a representation other than required. It is called before every
// write that could create the key.
func (k *Key) RequireRepresentationOrNone(ctx context.Context, required om.Representation) error {
	repr, err := k.Representation(ctx)
	if err != nil {
		return err
	}
	if repr == om.ReprNone || repr == required {
		return nil
	}

	guardMismatches.Inc()
	plog.Debugf("guard refused write to %q: holds %s, expected %s", k.name, repr, required)
	return om.Errorf(om.RetCTypeMismatch, "key %q holds a %s, expected a %s", k.name, repr, required)
}
