// Package api handles incoming HTTP requests, request decoding and response
// formatting. Handlers read the authenticated principal from the request
// context, call the resource controllers in internal/service and translate
// their outcomes into the JSON envelopes and status codes of the API, with
// messages taken from internal/catalog.
package api
