package observability

import (
	"context"

	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracer records X-Ray subsegments around the paper pipeline stages.
// A nil *Tracer is valid and records nothing, so call sites do not
// branch on whether tracing is enabled.
type Tracer struct {
	namespace string
}

// NewTracer creates a tracer whose subsegments are prefixed with the
// given namespace, e.g. "paperplay-backend.annotate".
func NewTracer(namespace string) *Tracer {
	return &Tracer{namespace: namespace}
}

// TraceFunction runs fn inside a subsegment named after the stage and
// records the returned error on it.
func (t *Tracer) TraceFunction(ctx context.Context, stage string, fn func(context.Context) error) error {
	if t == nil {
		return fn(ctx)
	}

	ctx, seg := xray.BeginSubsegment(ctx, t.namespace+"."+stage)
	err := fn(ctx)
	if seg != nil {
		seg.Close(err)
	}
	return err
}

// Annotate attaches an indexed key to the surrounding segment so traces
// can be filtered by it in the console.
func (t *Tracer) Annotate(ctx context.Context, key, value string) {
	if t == nil {
		return
	}
	if seg := xray.GetSegment(ctx); seg != nil {
		_ = seg.AddAnnotation(key, value)
	}
}
