package httprouter

import (
	"net/http"

	"github.com/ibraheemdev/httprouter/radix"
	"github.com/valyala/bytebufferpool"
)

// OutcomeKind enumerates the decisions the router can reach for a request.
type OutcomeKind uint8

const (
	// OutcomeInvoke dispatches to the handler of an exactly matched route.
	OutcomeInvoke OutcomeKind = iota

	// OutcomeRedirect answers with a trailing-slash or fixed-path redirect.
	OutcomeRedirect

	// OutcomeAutoOptions answers an OPTIONS request automatically.
	OutcomeAutoOptions

	// OutcomeMethodNotAllowed answers 405 with the allowed methods.
	OutcomeMethodNotAllowed

	// OutcomeNotFound answers 404.
	OutcomeNotFound
)

// Outcome is the routing decision for a single request, produced by
// Router.Resolve. It implements http.Handler: serving it produces the final
// response, either by invoking the matched (or delegated fallback) handler
// or by synthesizing a redirect, automatic OPTIONS, 405 or 404 reply.
type Outcome struct {
	Kind OutcomeKind

	// Handler is the matched route handler for OutcomeInvoke, or the
	// configured fallback handler for the synthesized kinds. It is nil when
	// the response is fully synthesized.
	Handler http.Handler

	// Location and Code describe an OutcomeRedirect.
	Location string
	Code     int

	// Allow is the comma separated method list for OutcomeAutoOptions and
	// OutcomeMethodNotAllowed.
	Allow string

	// request carries the route params extracted during resolution.
	request *http.Request
}

// ServeHTTP writes the decided response. An Outcome must be served exactly
// once; only OutcomeInvoke can block, in the invoked handler itself.
func (o *Outcome) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if o.request != nil {
		r = o.request
	}

	switch o.Kind {
	case OutcomeInvoke:
		o.Handler.ServeHTTP(w, r)

	case OutcomeRedirect:
		http.Redirect(w, r, o.Location, o.Code)

	case OutcomeAutoOptions:
		w.Header().Set("Allow", o.Allow)
		if o.Handler != nil {
			o.Handler.ServeHTTP(w, r)
		}

	case OutcomeMethodNotAllowed:
		w.Header().Set("Allow", o.Allow)
		if o.Handler != nil {
			o.Handler.ServeHTTP(w, r)
		} else {
			w.WriteHeader(http.StatusMethodNotAllowed)
		}

	default: // OutcomeNotFound
		if o.Handler != nil {
			o.Handler.ServeHTTP(w, r)
		} else {
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

// Resolve decides how the request is to be answered. It consults the routing
// tree of the request method first and the wild method tree second, falling
// back to redirects and the configured handlers as the router's options
// allow. Resolve never fails; it always produces exactly one Outcome and has
// no side effects on the router.
func (router *Router) Resolve(r *http.Request) *Outcome {
	method := r.Method
	path := r.URL.Path

	if methodIndex := router.methodIndexOf(method); methodIndex > -1 {
		if tree := router.trees[methodIndex]; tree != nil {
			if handler, ps, tsr := tree.Get(path); handler != nil {
				return &Outcome{
					Kind:    OutcomeInvoke,
					Handler: handler,
					request: requestWithParams(r, ps),
				}
			} else if method != http.MethodConnect && path != "/" {
				if out := router.tryRedirect(r, tree, tsr, method, path); out != nil {
					return out
				}
			}
		}
	}

	// Try to search in the wild method tree
	if tree := router.trees[router.methodIndexOf(MethodWild)]; tree != nil {
		if handler, ps, tsr := tree.Get(path); handler != nil {
			return &Outcome{
				Kind:    OutcomeInvoke,
				Handler: handler,
				request: requestWithParams(r, ps),
			}
		} else if method != http.MethodConnect && path != "/" {
			if out := router.tryRedirect(r, tree, tsr, method, path); out != nil {
				return out
			}
		}
	}

	if method == http.MethodOptions && router.HandleOPTIONS {
		// Handle OPTIONS requests
		if allow := router.allowed(path, http.MethodOptions); allow != "" {
			out := &Outcome{Kind: OutcomeAutoOptions, Allow: allow, request: r}
			if router.GlobalOPTIONS != nil {
				out.Handler = router.GlobalOPTIONS
			}
			return out
		}
	} else if router.HandleMethodNotAllowed {
		// Handle 405
		if allow := router.allowed(path, method); allow != "" {
			out := &Outcome{Kind: OutcomeMethodNotAllowed, Allow: allow, request: r}
			if router.MethodNotAllowed != nil {
				out.Handler = router.MethodNotAllowed
			}
			return out
		}
	}

	// Handle 404
	out := &Outcome{Kind: OutcomeNotFound, request: r}
	if router.NotFound != nil {
		out.Handler = router.NotFound
	}
	return out
}

func (router *Router) tryRedirect(r *http.Request, tree *radix.Tree, tsr bool, method, path string) *Outcome {
	// Moved Permanently, request with GET method
	code := http.StatusMovedPermanently
	if method != http.MethodGet {
		// Permanent Redirect, request with same method
		code = http.StatusPermanentRedirect
	}

	if tsr && router.RedirectTrailingSlash {
		uri := bytebufferpool.Get()

		if len(path) > 1 && path[len(path)-1] == '/' {
			uri.SetString(path[:len(path)-1])
		} else {
			uri.SetString(path)
			uri.WriteByte('/')
		}

		if query := r.URL.RawQuery; len(query) > 0 {
			uri.WriteByte(questionMark)
			uri.WriteString(query)
		}

		out := &Outcome{Kind: OutcomeRedirect, Location: uri.String(), Code: code, request: r}
		bytebufferpool.Put(uri)

		return out
	}

	// Try to fix the request path
	if router.RedirectFixedPath {
		uri := bytebufferpool.Get()

		if tree.FindCaseInsensitivePath(CleanPath(path), router.RedirectTrailingSlash, uri) {
			if query := r.URL.RawQuery; len(query) > 0 {
				uri.WriteByte(questionMark)
				uri.WriteString(query)
			}

			out := &Outcome{Kind: OutcomeRedirect, Location: uri.String(), Code: code, request: r}
			bytebufferpool.Put(uri)

			return out
		}

		bytebufferpool.Put(uri)
	}

	return nil
}

// ServeHTTP makes the router implement the http.Handler interface.
func (router *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if router.PanicHandler != nil {
		defer router.recv(w, r)
	}

	router.Resolve(r).ServeHTTP(w, r)
}
