package valset

import (
	"fmt"
	"strings"
)

// QueryRouter allows us to register many query handlers
// to different paths and then direct each query
// to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type QueryRouter struct {
	routes map[string]QueryHandler
}

var _ QueryRegister = QueryRouter{}

// NewQueryRouter initializes a QueryRouter with no routes
func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler, 4),
	}
}

// RegisterQuery adds a new Handler for the given path.
// panics if another Handler was already registered
func (r QueryRouter) RegisterQuery(path string, h QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("Re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the Handler registered for the longest prefix of given
// path, together with the path remainder. A registered path matches only
// full path segments. Nil is returned if nothing matches.
func (r QueryRouter) Handler(path string) (QueryHandler, string) {
	var (
		best    QueryHandler
		bestLen = -1
	)
	for route, h := range r.routes {
		if !strings.HasPrefix(path, route) || len(route) <= bestLen {
			continue
		}
		if rest := path[len(route):]; rest != "" && rest[0] != '/' {
			continue
		}
		best, bestLen = h, len(route)
	}
	if best == nil {
		return nil, ""
	}
	return best, path[bestLen:]
}
