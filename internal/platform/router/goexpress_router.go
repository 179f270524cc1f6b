package router

import (
	"net/http"
	"strings"

	"github.com/ferdiebergado/goexpress"
)

type goexpressRouter struct {
	handler     *goexpress.Router
	prefix      string
	middlewares []Middleware
}

var _ Router = (*goexpressRouter)(nil)

func NewGoexpressRouter() Router {
	return &goexpressRouter{
		handler: goexpress.New(),
	}
}

func (r *goexpressRouter) path(pattern string) string {
	if r.prefix == "" {
		return pattern
	}
	return r.prefix + pattern
}

func (r *goexpressRouter) chain(middlewares []Middleware) []Middleware {
	if len(r.middlewares) == 0 {
		return middlewares
	}
	chain := make([]Middleware, 0, len(r.middlewares)+len(middlewares))
	chain = append(chain, r.middlewares...)
	return append(chain, middlewares...)
}

func (r *goexpressRouter) Delete(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Delete(r.path(pattern), handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Get(r.path(pattern), handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Options(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Options(r.path(pattern), handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Patch(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Patch(r.path(pattern), handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Post(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Post(r.path(pattern), handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Put(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Put(r.path(pattern), handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *goexpressRouter) Use(middleware Middleware) {
	r.handler.Use(middleware)
}

func (r *goexpressRouter) Group(prefix string, fn func(r Router), middlewares ...Middleware) {
	gr := &goexpressRouter{
		handler:     r.handler,
		prefix:      r.path(strings.TrimSuffix(prefix, "/")),
		middlewares: r.chain(middlewares),
	}

	fn(gr)
}
