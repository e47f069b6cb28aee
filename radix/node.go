package radix

import (
	"net/http"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// node is a single segment of one or more registered route patterns.
// Its children are keyed by their literal segment; at most one parameter
// child or one catch-all child may exist instead, never combined with
// literal siblings at the same position.
type node struct {
	name     string // parameter or catch-all name
	handler  http.Handler
	children map[string]*node
	param    *node
	catchAll *node
}

func (n *node) staticChild(seg, path string) *node {
	// the empty segment of a trailing slash route does not compete with a
	// parameter, which only matches non-empty segments
	if n.param != nil && seg != "" {
		panic("'" + seg + "' in path '" + path + "' conflicts with existing parameter ':" + n.param.name + "'")
	}
	if n.catchAll != nil {
		panic("'" + seg + "' in path '" + path + "' conflicts with existing catch-all '*" + n.catchAll.name + "'")
	}

	if n.children == nil {
		n.children = make(map[string]*node)
	}
	c := n.children[seg]
	if c == nil {
		c = new(node)
		n.children[seg] = c
	}
	return c
}

func (n *node) paramChild(name, path string) *node {
	for key := range n.children {
		if key != "" {
			panic("':" + name + "' in path '" + path + "' conflicts with existing literal segments")
		}
	}
	if n.catchAll != nil {
		panic("':" + name + "' in path '" + path + "' conflicts with existing catch-all '*" + n.catchAll.name + "'")
	}

	if n.param == nil {
		n.param = &node{name: name}
	} else if n.param.name != name {
		panic("':" + name + "' in path '" + path + "' conflicts with existing parameter ':" + n.param.name + "'")
	}
	return n.param
}

func (n *node) catchAllChild(name, path string) *node {
	if len(n.children) > 0 {
		panic("'*" + name + "' in path '" + path + "' conflicts with existing literal segments")
	}
	if n.param != nil {
		panic("'*" + name + "' in path '" + path + "' conflicts with existing parameter ':" + n.param.name + "'")
	}

	if n.catchAll == nil {
		n.catchAll = &node{name: name}
	} else if n.catchAll.name != name {
		panic("'*" + name + "' in path '" + path + "' conflicts with existing catch-all '*" + n.catchAll.name + "'")
	}
	return n.catchAll
}

// matchCaseInsensitive resolves the leading segment of rest against n's
// children. The canonical path of n, including its trailing slash, has
// already been written to buf.
func (n *node) matchCaseInsensitive(rest string, fixTrailingSlash bool, buf *bytebufferpool.ByteBuffer) bool {
	var seg, next string
	hadSlash := false
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		seg, next, hadSlash = rest[:i], rest[i+1:], true
	} else {
		seg = rest
	}

	// exact-case child first, then fold against the siblings
	if c := n.children[seg]; c != nil && c.tryCaseInsensitive(seg, next, hadSlash, fixTrailingSlash, buf) {
		return true
	}
	for key, c := range n.children {
		if key == seg || !strings.EqualFold(key, seg) {
			continue
		}
		if c.tryCaseInsensitive(key, next, hadSlash, fixTrailingSlash, buf) {
			return true
		}
	}

	if n.param != nil && seg != "" && n.param.tryCaseInsensitive(seg, next, hadSlash, fixTrailingSlash, buf) {
		return true
	}

	if n.catchAll != nil && n.catchAll.handler != nil {
		buf.WriteString(rest)
		return true
	}

	return false
}

// tryCaseInsensitive writes label and attempts to complete the lookup at c,
// unwinding the buffer again if it fails.
func (c *node) tryCaseInsensitive(label, next string, hadSlash, fixTrailingSlash bool, buf *bytebufferpool.ByteBuffer) bool {
	mark := len(buf.B)
	buf.WriteString(label)

	switch {
	case !hadSlash:
		// end of the request path
		if c.handler != nil {
			return true
		}
		if fixTrailingSlash {
			if sc := c.children[""]; sc != nil && sc.handler != nil {
				buf.WriteByte('/')
				return true
			}
			if c.catchAll != nil && c.catchAll.handler != nil {
				buf.WriteByte('/')
				return true
			}
		}

	case next == "":
		// request path ends with a trailing slash
		if sc := c.children[""]; sc != nil && sc.handler != nil {
			buf.WriteByte('/')
			return true
		}
		if c.catchAll != nil && c.catchAll.handler != nil {
			buf.WriteByte('/')
			return true
		}
		if fixTrailingSlash && c.handler != nil {
			return true
		}

	default:
		buf.WriteByte('/')
		if c.matchCaseInsensitive(next, fixTrailingSlash, buf) {
			return true
		}
	}

	buf.B = buf.B[:mark]
	return false
}
