package httprouter

import (
	"context"
	"net/http"

	"github.com/ibraheemdev/httprouter/radix"
)

// Param is a single URL parameter, consisting of a key and a value.
type Param = radix.Param

// Params is an ordered Param-slice; the first URL parameter of the matched
// route is also the first slice value.
type Params = radix.Params

type paramsKey struct{}

// ParamsKey is the request context key under which URL params are stored.
var ParamsKey = paramsKey{}

// ParamsFromContext pulls the URL parameters from a request context,
// or returns nil if none are present.
func ParamsFromContext(ctx context.Context) Params {
	p, _ := ctx.Value(ParamsKey).(Params)
	return p
}

// requestWithParams attaches ps to the request context.
func requestWithParams(r *http.Request, ps Params) *http.Request {
	if len(ps) == 0 {
		return r
	}
	return r.WithContext(context.WithValue(r.Context(), ParamsKey, ps))
}
