package router

import "net/http"

type Middleware = func(next http.Handler) http.Handler

type Router interface {
	http.Handler

	Use(middleware Middleware)
	Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Post(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Put(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Patch(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Delete(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Options(pattern string, handler http.HandlerFunc, middlewares ...Middleware)

	// Group registers routes under prefix. Routes added inside fn run
	// middlewares after any inherited from the parent group.
	Group(prefix string, fn func(r Router), middlewares ...Middleware)
}
