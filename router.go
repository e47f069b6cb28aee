package httprouter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ibraheemdev/httprouter/radix"
	"github.com/savsgio/gotils/bytes"
)

// MethodWild wild HTTP method
const MethodWild = "*"

var (
	questionMark = byte('?')

	// MatchedRoutePathParam is the param name under which the path of the matched
	// route is stored, if Router.SaveMatchedRoutePath is set.
	MatchedRoutePathParam = fmt.Sprintf("__matchedRoutePath::%s__", bytes.Rand(make([]byte, 15)))
)

// Router is an http.Handler which dispatches requests to different handlers
// via configurable routes. Routes and options must be set up before the
// router starts serving; a serving Router is read-only and safe for
// concurrent use.
type Router struct {
	trees              []*radix.Tree
	customMethodsIndex map[string]int
	registeredPaths    map[string][]string

	treeMutable   bool
	globalAllowed string

	// RedirectTrailingSlash enables automatic redirection if the current
	// route can't be matched but a handler for the path with (without) the
	// trailing slash exists.
	// For example if /foo/ is requested but a route only exists for /foo, the
	// client is redirected to /foo with HTTP status code 301 for GET requests
	// and 308 for all other request methods.
	RedirectTrailingSlash bool

	// RedirectFixedPath, if enabled, makes the router try to fix the current
	// request path, if no handler is registered for it.
	// First superfluous path elements like ../ or // are removed. Afterwards
	// the router does a case-insensitive lookup of the cleaned path. If a
	// handler can be found for this route, the router redirects to the
	// corrected path with status code 301 for GET requests and 308 for all
	// other request methods.
	// For example /FOO and /..//Foo could be redirected to /foo.
	// RedirectTrailingSlash is independent of this option.
	RedirectFixedPath bool

	// HandleMethodNotAllowed, if enabled, makes the router check if another
	// method is allowed for the current route, if the current request can not
	// be routed. If this is the case, the request is answered with
	// "Method Not Allowed" and HTTP status code 405. If no other method is
	// allowed, the request is delegated to the NotFound handler.
	HandleMethodNotAllowed bool

	// HandleOPTIONS, if enabled, makes the router automatically reply to
	// OPTIONS requests. Custom OPTIONS handlers take priority over automatic
	// replies.
	HandleOPTIONS bool

	// SaveMatchedRoutePath, if enabled, adds the matched route path onto the
	// request params under the key MatchedRoutePathParam before invoking the
	// handler. The matched route path is only added to handlers of routes
	// that were registered when this option was enabled.
	SaveMatchedRoutePath bool

	// GlobalOPTIONS is an optional handler that is called on automatic
	// OPTIONS requests. The handler is only called if HandleOPTIONS is true
	// and no OPTIONS handler for the specific path was set.
	// The "Allow" header is set before calling the handler.
	GlobalOPTIONS http.HandlerFunc

	// NotFound is a configurable handler which is called when no matching
	// route is found. If it is not set, a plain 404 is written.
	NotFound http.HandlerFunc

	// MethodNotAllowed is a configurable handler which is called when a
	// request cannot be routed and HandleMethodNotAllowed is true.
	// If it is not set, a plain 405 is written. The "Allow" header with
	// allowed request methods is set before the handler is called.
	MethodNotAllowed http.HandlerFunc

	// PanicHandler is called to handle panics recovered from handlers.
	// It should be used to generate an error page and return the HTTP error
	// code 500 (Internal Server Error). The handler can be used to keep your
	// server from crashing because of unrecovered panics.
	PanicHandler func(http.ResponseWriter, *http.Request, interface{})
}

// New returns a new router.
// Path auto-correction, including trailing slashes, is enabled by default.
func New() *Router {
	return &Router{
		trees:                  make([]*radix.Tree, 10),
		customMethodsIndex:     make(map[string]int),
		registeredPaths:        make(map[string][]string),
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
	}
}

// Group returns a new group.
// Path auto-correction, including trailing slashes, is enabled by default.
func (router *Router) Group(path string) *Group {
	validatePath(path)

	if path != "/" && strings.HasSuffix(path, "/") {
		panic("group path must not end with a trailing slash")
	}

	return &Group{
		router: router,
		prefix: path,
	}
}

func (router *Router) saveMatchedRoutePath(path string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps := ParamsFromContext(r.Context())
		ps = append(ps, Param{Key: MatchedRoutePathParam, Value: path})
		handler(w, requestWithParams(r, ps))
	}
}

func (router *Router) methodIndexOf(method string) int {
	switch method {
	case http.MethodGet:
		return 0
	case http.MethodHead:
		return 1
	case http.MethodPost:
		return 2
	case http.MethodPut:
		return 3
	case http.MethodPatch:
		return 4
	case http.MethodDelete:
		return 5
	case http.MethodConnect:
		return 6
	case http.MethodOptions:
		return 7
	case http.MethodTrace:
		return 8
	case MethodWild:
		return 9
	}

	if i, ok := router.customMethodsIndex[method]; ok {
		return i
	}

	return -1
}

// Mutable allows updating the route handler
//
// # It's disabled by default
//
// WARNING: Use with care. It could generate unexpected behaviours
func (router *Router) Mutable(v bool) {
	router.treeMutable = v

	for i := range router.trees {
		tree := router.trees[i]

		if tree != nil {
			tree.Mutable = v
		}
	}
}

// List returns all registered routes grouped by method
func (router *Router) List() map[string][]string {
	return router.registeredPaths
}

// GET is a shortcut for router.Handle(http.MethodGet, path, handler)
func (router *Router) GET(path string, handler http.HandlerFunc) {
	router.Handle(http.MethodGet, path, handler)
}

// HEAD is a shortcut for router.Handle(http.MethodHead, path, handler)
func (router *Router) HEAD(path string, handler http.HandlerFunc) {
	router.Handle(http.MethodHead, path, handler)
}

// POST is a shortcut for router.Handle(http.MethodPost, path, handler)
func (router *Router) POST(path string, handler http.HandlerFunc) {
	router.Handle(http.MethodPost, path, handler)
}

// PUT is a shortcut for router.Handle(http.MethodPut, path, handler)
func (router *Router) PUT(path string, handler http.HandlerFunc) {
	router.Handle(http.MethodPut, path, handler)
}

// PATCH is a shortcut for router.Handle(http.MethodPatch, path, handler)
func (router *Router) PATCH(path string, handler http.HandlerFunc) {
	router.Handle(http.MethodPatch, path, handler)
}

// DELETE is a shortcut for router.Handle(http.MethodDelete, path, handler)
func (router *Router) DELETE(path string, handler http.HandlerFunc) {
	router.Handle(http.MethodDelete, path, handler)
}

// CONNECT is a shortcut for router.Handle(http.MethodConnect, path, handler)
func (router *Router) CONNECT(path string, handler http.HandlerFunc) {
	router.Handle(http.MethodConnect, path, handler)
}

// OPTIONS is a shortcut for router.Handle(http.MethodOptions, path, handler)
func (router *Router) OPTIONS(path string, handler http.HandlerFunc) {
	router.Handle(http.MethodOptions, path, handler)
}

// TRACE is a shortcut for router.Handle(http.MethodTrace, path, handler)
func (router *Router) TRACE(path string, handler http.HandlerFunc) {
	router.Handle(http.MethodTrace, path, handler)
}

// ANY is a shortcut for router.Handle(router.MethodWild, path, handler)
//
// WARNING: Use only for routes where the request method is not important
func (router *Router) ANY(path string, handler http.HandlerFunc) {
	router.Handle(MethodWild, path, handler)
}

// Handle registers a new request handler with the given path and method.
//
// For GET, POST, PUT, PATCH and DELETE requests the respective shortcut
// functions can be used.
//
// This function is intended for bulk loading and to allow the usage of less
// frequently used, non-standardized or custom methods (e.g. for internal
// communication with a proxy).
func (router *Router) Handle(method, path string, handler http.HandlerFunc) {
	switch {
	case len(method) == 0:
		panic("method must not be empty")
	case handler == nil:
		panic("handler must not be nil")
	default:
		validatePath(path)
	}

	router.registeredPaths[method] = append(router.registeredPaths[method], path)

	methodIndex := router.methodIndexOf(method)
	if methodIndex == -1 {
		tree := radix.New()
		tree.Mutable = router.treeMutable

		router.trees = append(router.trees, tree)
		methodIndex = len(router.trees) - 1
		router.customMethodsIndex[method] = methodIndex
	}

	tree := router.trees[methodIndex]
	if tree == nil {
		tree = radix.New()
		tree.Mutable = router.treeMutable

		router.trees[methodIndex] = tree
		router.globalAllowed = router.allowed("*", "")
	}

	if router.SaveMatchedRoutePath {
		handler = router.saveMatchedRoutePath(path, handler)
	}

	tree.Add(path, handler)
}

// Lookup allows the manual lookup of a method + path combo.
// This is e.g. useful to build a framework around this router.
// If the path was found, it returns the handler function and the path
// parameter values. Otherwise the third return value indicates whether a
// redirection to the same path with / without the trailing slash should be
// performed.
func (router *Router) Lookup(method, path string) (http.Handler, Params, bool) {
	methodIndex := router.methodIndexOf(method)
	if methodIndex == -1 {
		return nil, nil, false
	}

	if tree := router.trees[methodIndex]; tree != nil {
		handler, ps, tsr := tree.Get(path)
		if handler != nil || tsr {
			return handler, ps, tsr
		}
	}

	if tree := router.trees[router.methodIndexOf(MethodWild)]; tree != nil {
		return tree.Get(path)
	}

	return nil, nil, false
}

func (router *Router) recv(w http.ResponseWriter, r *http.Request) {
	if rcv := recover(); rcv != nil {
		router.PanicHandler(w, r, rcv)
	}
}

// Allowed returns the methods that have a route registered for path, with
// OPTIONS appended if the set is not empty. The methods are sorted, except
// OPTIONS which always goes last. Pass "*" for a server-wide answer.
func (router *Router) Allowed(path string) []string {
	return router.allowedMethods(path, "")
}

func (router *Router) allowedMethods(path, reqMethod string) []string {
	allowed := make([]string, 0, 9)

	if path == "*" || path == "/*" { // server-wide
		for method := range router.registeredPaths {
			if method == http.MethodOptions || method == MethodWild {
				continue
			}
			allowed = append(allowed, method)
		}
	} else { // specific path
		for method := range router.registeredPaths {
			// Skip the requested method - we already tried this one
			if method == reqMethod || method == http.MethodOptions || method == MethodWild {
				continue
			}

			handler, _, _ := router.trees[router.methodIndexOf(method)].Get(path)
			if handler != nil {
				allowed = append(allowed, method)
			}
		}
	}

	if len(allowed) == 0 {
		return allowed
	}

	// Sort allowed methods.
	// sort.Strings(allowed) unfortunately causes unnecessary allocations
	// due to allowed being moved to the heap and interface conversion
	for i, l := 1, len(allowed); i < l; i++ {
		for j := i; j > 0 && allowed[j] < allowed[j-1]; j-- {
			allowed[j], allowed[j-1] = allowed[j-1], allowed[j]
		}
	}

	// OPTIONS goes last so the Allow header reads naturally
	return append(allowed, http.MethodOptions)
}

func (router *Router) allowed(path, reqMethod string) string {
	if (path == "*" || path == "/*") && reqMethod != "" {
		// empty method is used for internal calls to refresh the cache
		return router.globalAllowed
	}

	allowed := router.allowedMethods(path, reqMethod)
	if len(allowed) == 0 {
		return ""
	}

	// return as comma separated list
	return strings.Join(allowed, ", ")
}
