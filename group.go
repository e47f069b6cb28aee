package httprouter

import (
	"net/http"
	"strings"
)

// Group is a sub-router sharing its parent's trees and options, registering
// every route under a common path prefix.
type Group struct {
	router *Router
	prefix string
}

// Group returns a new nested group.
func (g *Group) Group(path string) *Group {
	validatePath(path)

	if path != "/" && strings.HasSuffix(path, "/") {
		panic("group path must not end with a trailing slash")
	}

	return &Group{
		router: g.router,
		prefix: g.prefix + path,
	}
}

// GET is a shortcut for group.Handle(http.MethodGet, path, handler)
func (g *Group) GET(path string, handler http.HandlerFunc) {
	g.Handle(http.MethodGet, path, handler)
}

// HEAD is a shortcut for group.Handle(http.MethodHead, path, handler)
func (g *Group) HEAD(path string, handler http.HandlerFunc) {
	g.Handle(http.MethodHead, path, handler)
}

// POST is a shortcut for group.Handle(http.MethodPost, path, handler)
func (g *Group) POST(path string, handler http.HandlerFunc) {
	g.Handle(http.MethodPost, path, handler)
}

// PUT is a shortcut for group.Handle(http.MethodPut, path, handler)
func (g *Group) PUT(path string, handler http.HandlerFunc) {
	g.Handle(http.MethodPut, path, handler)
}

// PATCH is a shortcut for group.Handle(http.MethodPatch, path, handler)
func (g *Group) PATCH(path string, handler http.HandlerFunc) {
	g.Handle(http.MethodPatch, path, handler)
}

// DELETE is a shortcut for group.Handle(http.MethodDelete, path, handler)
func (g *Group) DELETE(path string, handler http.HandlerFunc) {
	g.Handle(http.MethodDelete, path, handler)
}

// CONNECT is a shortcut for group.Handle(http.MethodConnect, path, handler)
func (g *Group) CONNECT(path string, handler http.HandlerFunc) {
	g.Handle(http.MethodConnect, path, handler)
}

// OPTIONS is a shortcut for group.Handle(http.MethodOptions, path, handler)
func (g *Group) OPTIONS(path string, handler http.HandlerFunc) {
	g.Handle(http.MethodOptions, path, handler)
}

// TRACE is a shortcut for group.Handle(http.MethodTrace, path, handler)
func (g *Group) TRACE(path string, handler http.HandlerFunc) {
	g.Handle(http.MethodTrace, path, handler)
}

// ANY is a shortcut for group.Handle(router.MethodWild, path, handler)
func (g *Group) ANY(path string, handler http.HandlerFunc) {
	g.Handle(MethodWild, path, handler)
}

// Handle registers a new request handler with the given path and method
// under the group's prefix.
func (g *Group) Handle(method, path string, handler http.HandlerFunc) {
	validatePath(path)

	g.router.Handle(method, g.prefix+path, handler)
}
