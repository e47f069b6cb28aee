// Package radix implements the per-method routing tree consumed by the
// router. A tree maps route patterns to handlers; patterns are rooted paths
// whose segments are either literals, named parameters (":name", one
// non-empty segment) or a trailing catch-all ("*name", the remainder of the
// path including the leading slash).
package radix

import (
	"net/http"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// Tree is a routing tree for a single HTTP method.
type Tree struct {
	root *node

	// Mutable allows replacing the handler of an already registered route
	// instead of panicking.
	Mutable bool
}

// New returns an empty routing tree.
func New() *Tree {
	return &Tree{root: new(node)}
}

// Add registers handler under the given route pattern.
//
// Add panics if the pattern does not begin with '/', if a wildcard segment
// is unnamed or conflicts with an existing route, if a catch-all is not the
// final segment, or if the pattern is already registered and the tree is not
// mutable.
func (t *Tree) Add(path string, handler http.Handler) {
	if len(path) == 0 || path[0] != '/' {
		panic("path must begin with '/' in path '" + path + "'")
	}

	n := t.root

	if path != "/" {
		segs := strings.Split(path[1:], "/")

		for i, seg := range segs {
			last := i == len(segs)-1

			switch {
			case seg == "" && last:
				// trailing slash routes live on the empty segment child
				n = n.staticChild("", path)
			case seg == "":
				panic("empty path segment in path '" + path + "'")
			case seg[0] == ':':
				if len(seg) == 1 {
					panic("param must be named in path '" + path + "'")
				}
				n = n.paramChild(seg[1:], path)
			case seg[0] == '*':
				if len(seg) == 1 {
					panic("catch-all must be named in path '" + path + "'")
				}
				if !last {
					panic("catch-all must be the final path segment in path '" + path + "'")
				}
				n = n.catchAllChild(seg[1:], path)
			default:
				n = n.staticChild(seg, path)
			}
		}
	}

	if n.handler != nil && !t.Mutable {
		panic("a handler is already registered for path '" + path + "'")
	}
	n.handler = handler
}

// Get performs an exact lookup of path. On a match it returns the registered
// handler and the extracted parameters. When path itself does not match, the
// third return value reports whether a route exists for the path with the
// trailing slash toggled, so that the caller may redirect.
func (t *Tree) Get(path string) (http.Handler, Params, bool) {
	if path == "" {
		path = "/"
	}
	if path[0] != '/' {
		return nil, nil, false
	}

	n := t.root

	if path == "/" {
		if n.handler != nil {
			return n.handler, nil, false
		}
		// a rooted catch-all is the only pattern that can still match "/"
		if n.catchAll != nil && n.catchAll.handler != nil {
			return n.catchAll.handler, Params{{Key: n.catchAll.name, Value: "/"}}, false
		}
		return nil, nil, false
	}

	var ps Params
	start := 1

	for {
		end := strings.IndexByte(path[start:], '/')
		if end >= 0 {
			end += start
		}

		var seg string
		if end < 0 {
			seg = path[start:]
		} else {
			seg = path[start:end]
		}

		c := n.children[seg]
		switch {
		case c != nil:
		case n.param != nil && seg != "":
			c = n.param
			ps = append(ps, Param{Key: n.param.name, Value: seg})
		case n.catchAll != nil && n.catchAll.handler != nil:
			ps = append(ps, Param{Key: n.catchAll.name, Value: path[start-1:]})
			return n.catchAll.handler, ps, false
		default:
			return nil, nil, false
		}

		if end < 0 {
			// the final segment, no trailing slash
			if c.handler != nil {
				return c.handler, ps, false
			}
			// recommend appending a slash if that would match
			if sc := c.children[""]; sc != nil && sc.handler != nil {
				return nil, nil, true
			}
			if c.catchAll != nil && c.catchAll.handler != nil {
				return nil, nil, true
			}
			return nil, nil, false
		}

		if end == len(path)-1 {
			// the final segment, with trailing slash
			if sc := c.children[""]; sc != nil && sc.handler != nil {
				return sc.handler, ps, false
			}
			if c.catchAll != nil && c.catchAll.handler != nil {
				ps = append(ps, Param{Key: c.catchAll.name, Value: "/"})
				return c.catchAll.handler, ps, false
			}
			// recommend stripping the slash if that would match
			if c.handler != nil {
				return nil, nil, true
			}
			return nil, nil, false
		}

		n = c
		start = end + 1
	}
}

// FindCaseInsensitivePath looks up a route matching path under Unicode case
// folding of its literal segments. The path argument must already be
// lexically clean. On success the differently-cased path that would match is
// appended to buf. If fixTrailingSlash is true a missing or superfluous
// trailing slash is corrected as well.
func (t *Tree) FindCaseInsensitivePath(path string, fixTrailingSlash bool, buf *bytebufferpool.ByteBuffer) bool {
	if path == "" || path[0] != '/' {
		return false
	}

	if path == "/" {
		if t.root.handler == nil {
			return false
		}
		buf.WriteByte('/')
		return true
	}

	buf.WriteByte('/')
	if t.root.matchCaseInsensitive(path[1:], fixTrailingSlash, buf) {
		return true
	}

	buf.Reset()
	return false
}
