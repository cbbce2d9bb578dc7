package pkglog

import "context"

type correlationKey struct{}

// WithCorrelationID returns a copy of ctx carrying cid. Every record logged
// with the returned context gets a "_cID" attribute.
func WithCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationKey{}, cid)
}

// CorrelationID returns the ID stored by WithCorrelationID, or "" when ctx
// carries none.
func CorrelationID(ctx context.Context) string {
	cid, _ := ctx.Value(correlationKey{}).(string)
	return cid
}
