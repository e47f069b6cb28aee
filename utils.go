package httprouter

import (
	"net/http"
	"strings"
)

func validatePath(path string) {
	switch {
	case len(path) == 0 || !strings.HasPrefix(path, "/"):
		panic("path must begin with '/' in path '" + path + "'")
	}
}

// UserValue returns the value of the named route parameter saved on the
// request, or nil if there is no such parameter.
func UserValue(r *http.Request, key string) interface{} {
	for _, p := range ParamsFromContext(r.Context()) {
		if p.Key == key {
			return p.Value
		}
	}
	return nil
}
