// Package protocol defines the message schema for the Model Context
// Protocol, revision 2024-11-05. It maps the JSON-RPC 2.0 wire format onto a
// closed, strongly typed set of request, notification and result variants.
//
// The package is purely a data model: values are constructed either by a
// caller building an outbound message or by one of the Parse/Resolve
// functions turning raw JSON into exactly one typed variant. There is no
// dispatch, no execution and no I/O here; transports collaborate with this
// package only through byte slices.
//
// # Layers
//
// Identifier types (RequestID, ProgressToken, Cursor) are small closed
// unions over JSON scalars. The envelope types (Request, Notification,
// Response) wrap method, id and payload. Most payload types are extensible
// records: declared fields plus an Extras map that round-trips unknown
// sibling keys losslessly. Content unions (PromptContent, SamplingContent,
// ResourceContents) are discriminated structurally and resolved in a fixed
// probe order. The method dispatch unions (ClientRequest, ClientNotification,
// ServerRequest, ServerNotification) are keyed by the method string, and
// ServerResult is resolved by ordered structural trial with EmptyResult
// strictly last.
//
// Every failure surfaces as a *errors.ProtocolError carrying one kind from
// the closed taxonomy; a message either fully parses or fails as a whole.
package protocol
