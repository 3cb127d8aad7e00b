// Package render turns jsx element trees into HTML.
//
// RenderToString walks a tree of tag elements and component functions,
// threading the request-scoped jsx.Context through every call. Sibling
// children render concurrently but their output joins in declaration
// order. Page wraps a render into an HTTP response with a text/html
// default content type.
//
// The renderer holds no cross-request state and performs no caching:
// rendering the same tree with the same context twice produces the same
// output. Component errors propagate to the caller; mapping them to an
// error response is the server layer's job.
package render
