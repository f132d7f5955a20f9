package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

// Method names of protocol revision 2024-11-05. The enumeration is closed:
// dispatch rejects anything else with UnsupportedMethod.
const (
	MethodInitialize            = "initialize"
	MethodPing                  = "ping"
	MethodComplete              = "completion/complete"
	MethodSetLogLevel           = "logging/setLevel"
	MethodGetPrompt             = "prompts/get"
	MethodListPrompts           = "prompts/list"
	MethodListResources         = "resources/list"
	MethodListResourceTemplates = "resources/templates/list"
	MethodReadResource          = "resources/read"
	MethodSubscribeResource     = "resources/subscribe"
	MethodUnsubscribeResource   = "resources/unsubscribe"
	MethodCallTool              = "tools/call"
	MethodListTools             = "tools/list"
	MethodCreateMessage         = "sampling/createMessage"
	MethodListRoots             = "roots/list"
	MethodElicit                = "elicitation/create"

	NotificationInitialized          = "notifications/initialized"
	NotificationCancelled            = "notifications/cancelled"
	NotificationProgress             = "notifications/progress"
	NotificationRootsListChanged     = "notifications/roots/list_changed"
	NotificationMessage              = "notifications/message"
	NotificationResourceUpdated      = "notifications/resources/updated"
	NotificationResourcesListChanged = "notifications/resources/list_changed"
	NotificationToolsListChanged     = "notifications/tools/list_changed"
	NotificationPromptsListChanged   = "notifications/prompts/list_changed"
)

// ClientRequestParams is implemented by every payload type a client request
// can carry.
type ClientRequestParams interface{ clientRequestParams() }

// ClientNotificationParams is implemented by every payload type a client
// notification can carry.
type ClientNotificationParams interface{ clientNotificationParams() }

// ServerRequestParams is implemented by every payload type a server request
// can carry.
type ServerRequestParams interface{ serverRequestParams() }

// ServerNotificationParams is implemented by every payload type a server
// notification can carry.
type ServerNotificationParams interface{ serverNotificationParams() }

func (*PingParams) clientRequestParams()        {}
func (*InitializeParams) clientRequestParams()  {}
func (*CompleteParams) clientRequestParams()    {}
func (*SetLevelParams) clientRequestParams()    {}
func (*GetPromptParams) clientRequestParams()   {}
func (*PaginatedParams) clientRequestParams()   {}
func (*ReadResourceParams) clientRequestParams() {}
func (*SubscribeParams) clientRequestParams()   {}
func (*UnsubscribeParams) clientRequestParams() {}
func (*CallToolParams) clientRequestParams()    {}

func (*CancelledParams) clientNotificationParams()    {}
func (*ProgressParams) clientNotificationParams()     {}
func (*NotificationParams) clientNotificationParams() {}

func (*PingParams) serverRequestParams()          {}
func (*CreateMessageParams) serverRequestParams() {}
func (*ListRootsParams) serverRequestParams()     {}
func (*ElicitParams) serverRequestParams()        {}

func (*CancelledParams) serverNotificationParams()       {}
func (*ProgressParams) serverNotificationParams()        {}
func (*LoggingMessageParams) serverNotificationParams()  {}
func (*ResourceUpdatedParams) serverNotificationParams() {}
func (*NotificationParams) serverNotificationParams()    {}

// methodSpec pairs a method with its payload type. paramsOptional marks the
// documented parameter-optional methods that substitute an empty-but-valid
// default when params are absent.
type methodSpec struct {
	paramsType     reflect.Type
	paramsOptional bool
}

var clientRequestMethods = map[string]methodSpec{
	MethodPing:                  {reflect.TypeOf(&PingParams{}), true},
	MethodInitialize:            {reflect.TypeOf(&InitializeParams{}), false},
	MethodComplete:              {reflect.TypeOf(&CompleteParams{}), false},
	MethodSetLogLevel:           {reflect.TypeOf(&SetLevelParams{}), false},
	MethodGetPrompt:             {reflect.TypeOf(&GetPromptParams{}), false},
	MethodListPrompts:           {reflect.TypeOf(&PaginatedParams{}), false},
	MethodListResources:         {reflect.TypeOf(&PaginatedParams{}), false},
	MethodListResourceTemplates: {reflect.TypeOf(&PaginatedParams{}), false},
	MethodReadResource:          {reflect.TypeOf(&ReadResourceParams{}), false},
	MethodSubscribeResource:     {reflect.TypeOf(&SubscribeParams{}), false},
	MethodUnsubscribeResource:   {reflect.TypeOf(&UnsubscribeParams{}), false},
	MethodCallTool:              {reflect.TypeOf(&CallToolParams{}), false},
	MethodListTools:             {reflect.TypeOf(&PaginatedParams{}), false},
}

var clientNotificationMethods = map[string]methodSpec{
	NotificationCancelled:        {reflect.TypeOf(&CancelledParams{}), false},
	NotificationProgress:         {reflect.TypeOf(&ProgressParams{}), false},
	NotificationInitialized:      {reflect.TypeOf(&NotificationParams{}), true},
	NotificationRootsListChanged: {reflect.TypeOf(&NotificationParams{}), true},
}

var serverRequestMethods = map[string]methodSpec{
	MethodPing:          {reflect.TypeOf(&PingParams{}), true},
	MethodCreateMessage: {reflect.TypeOf(&CreateMessageParams{}), false},
	MethodListRoots:     {reflect.TypeOf(&ListRootsParams{}), true},
	MethodElicit:        {reflect.TypeOf(&ElicitParams{}), false},
}

var serverNotificationMethods = map[string]methodSpec{
	NotificationCancelled:            {reflect.TypeOf(&CancelledParams{}), false},
	NotificationProgress:             {reflect.TypeOf(&ProgressParams{}), false},
	NotificationMessage:              {reflect.TypeOf(&LoggingMessageParams{}), false},
	NotificationResourceUpdated:      {reflect.TypeOf(&ResourceUpdatedParams{}), false},
	NotificationResourcesListChanged: {reflect.TypeOf(&NotificationParams{}), true},
	NotificationToolsListChanged:     {reflect.TypeOf(&NotificationParams{}), true},
	NotificationPromptsListChanged:   {reflect.TypeOf(&NotificationParams{}), true},
}

// decodeMethodParams instantiates and fills the payload type a method
// expects, applying the default-params rule for parameter-optional methods.
func decodeMethodParams(method string, raw json.RawMessage, spec methodSpec) (interface{}, error) {
	target := reflect.New(spec.paramsType.Elem()).Interface()
	if raw == nil {
		if !spec.paramsOptional {
			return nil, mcperrors.MissingParams(method)
		}
		return target, nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		var pe *mcperrors.ProtocolError
		if errors.As(err, &pe) {
			return nil, pe
		}
		return nil, mcperrors.ParamsShapeMismatch(method, err)
	}
	if v, ok := target.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return target, nil
}

// ClientMessage is a message a client sends: *ClientRequest,
// *ClientNotification or *Response.
type ClientMessage interface{ clientMessage() }

// ServerMessage is a message a server sends: *ServerRequest,
// *ServerNotification or *Response.
type ServerMessage interface{ serverMessage() }

func (*ClientRequest) clientMessage()      {}
func (*ClientNotification) clientMessage() {}
func (*Response) clientMessage()           {}

func (*ServerRequest) serverMessage()      {}
func (*ServerNotification) serverMessage() {}
func (*Response) serverMessage()           {}

// ClientRequest is a method-dispatched request from the client, its params
// already decoded into the method-specific payload type.
type ClientRequest struct {
	ID     RequestID
	Method string
	Params ClientRequestParams
}

// NewClientRequest builds a client request, checking the method/payload
// pairing.
func NewClientRequest(id RequestID, method string, params ClientRequestParams) (*ClientRequest, error) {
	if err := checkPairing(method, params, clientRequestMethods); err != nil {
		return nil, err
	}
	if id.IsZero() {
		return nil, mcperrors.MalformedEnvelope("request requires an id")
	}
	return &ClientRequest{ID: id, Method: method, Params: params}, nil
}

// ParseClientRequest parses raw bytes into exactly one client request
// variant.
func ParseClientRequest(data []byte) (*ClientRequest, error) {
	if !json.Valid(data) {
		return nil, mcperrors.New(mcperrors.KindMalformedJSON, "")
	}
	var env Request
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	spec, ok := clientRequestMethods[env.Method]
	if !ok {
		return nil, mcperrors.UnsupportedMethod(env.Method)
	}
	params, err := decodeMethodParams(env.Method, env.Params, spec)
	if err != nil {
		return nil, err
	}
	return &ClientRequest{ID: env.ID, Method: env.Method, Params: params.(ClientRequestParams)}, nil
}

// MarshalJSON renders the request as a JSON-RPC envelope.
func (r ClientRequest) MarshalJSON() ([]byte, error) {
	if err := checkPairing(r.Method, r.Params, clientRequestMethods); err != nil {
		return nil, err
	}
	env, err := NewRequest(r.ID, r.Method, payloadOrNil(r.Params))
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// ClientNotification is a method-dispatched notification from the client.
type ClientNotification struct {
	Method string
	Params ClientNotificationParams
}

// NewClientNotification builds a client notification, checking the
// method/payload pairing.
func NewClientNotification(method string, params ClientNotificationParams) (*ClientNotification, error) {
	if err := checkPairing(method, params, clientNotificationMethods); err != nil {
		return nil, err
	}
	return &ClientNotification{Method: method, Params: params}, nil
}

// ParseClientNotification parses raw bytes into exactly one client
// notification variant.
func ParseClientNotification(data []byte) (*ClientNotification, error) {
	if !json.Valid(data) {
		return nil, mcperrors.New(mcperrors.KindMalformedJSON, "")
	}
	var env Notification
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	spec, ok := clientNotificationMethods[env.Method]
	if !ok {
		return nil, mcperrors.UnsupportedMethod(env.Method)
	}
	params, err := decodeMethodParams(env.Method, env.Params, spec)
	if err != nil {
		return nil, err
	}
	return &ClientNotification{Method: env.Method, Params: params.(ClientNotificationParams)}, nil
}

// MarshalJSON renders the notification as a JSON-RPC envelope.
func (n ClientNotification) MarshalJSON() ([]byte, error) {
	if err := checkPairing(n.Method, n.Params, clientNotificationMethods); err != nil {
		return nil, err
	}
	env, err := NewNotification(n.Method, payloadOrNil(n.Params))
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// ServerRequest is a method-dispatched request from the server.
type ServerRequest struct {
	ID     RequestID
	Method string
	Params ServerRequestParams
}

// NewServerRequest builds a server request, checking the method/payload
// pairing.
func NewServerRequest(id RequestID, method string, params ServerRequestParams) (*ServerRequest, error) {
	if err := checkPairing(method, params, serverRequestMethods); err != nil {
		return nil, err
	}
	if id.IsZero() {
		return nil, mcperrors.MalformedEnvelope("request requires an id")
	}
	return &ServerRequest{ID: id, Method: method, Params: params}, nil
}

// ParseServerRequest parses raw bytes into exactly one server request
// variant.
func ParseServerRequest(data []byte) (*ServerRequest, error) {
	if !json.Valid(data) {
		return nil, mcperrors.New(mcperrors.KindMalformedJSON, "")
	}
	var env Request
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	spec, ok := serverRequestMethods[env.Method]
	if !ok {
		return nil, mcperrors.UnsupportedMethod(env.Method)
	}
	params, err := decodeMethodParams(env.Method, env.Params, spec)
	if err != nil {
		return nil, err
	}
	return &ServerRequest{ID: env.ID, Method: env.Method, Params: params.(ServerRequestParams)}, nil
}

// MarshalJSON renders the request as a JSON-RPC envelope.
func (r ServerRequest) MarshalJSON() ([]byte, error) {
	if err := checkPairing(r.Method, r.Params, serverRequestMethods); err != nil {
		return nil, err
	}
	env, err := NewRequest(r.ID, r.Method, payloadOrNil(r.Params))
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// ServerNotification is a method-dispatched notification from the server.
type ServerNotification struct {
	Method string
	Params ServerNotificationParams
}

// NewServerNotification builds a server notification, checking the
// method/payload pairing.
func NewServerNotification(method string, params ServerNotificationParams) (*ServerNotification, error) {
	if err := checkPairing(method, params, serverNotificationMethods); err != nil {
		return nil, err
	}
	return &ServerNotification{Method: method, Params: params}, nil
}

// ParseServerNotification parses raw bytes into exactly one server
// notification variant.
func ParseServerNotification(data []byte) (*ServerNotification, error) {
	if !json.Valid(data) {
		return nil, mcperrors.New(mcperrors.KindMalformedJSON, "")
	}
	var env Notification
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	spec, ok := serverNotificationMethods[env.Method]
	if !ok {
		return nil, mcperrors.UnsupportedMethod(env.Method)
	}
	params, err := decodeMethodParams(env.Method, env.Params, spec)
	if err != nil {
		return nil, err
	}
	return &ServerNotification{Method: env.Method, Params: params.(ServerNotificationParams)}, nil
}

// MarshalJSON renders the notification as a JSON-RPC envelope.
func (n ServerNotification) MarshalJSON() ([]byte, error) {
	if err := checkPairing(n.Method, n.Params, serverNotificationMethods); err != nil {
		return nil, err
	}
	env, err := NewNotification(n.Method, payloadOrNil(n.Params))
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// ParseClientMessage classifies raw bytes as a client request, client
// notification or response and parses it fully.
func ParseClientMessage(data []byte) (ClientMessage, error) {
	if !json.Valid(data) {
		return nil, mcperrors.New(mcperrors.KindMalformedJSON, "")
	}
	switch {
	case IsRequest(data):
		return ParseClientRequest(data)
	case IsNotification(data):
		return ParseClientNotification(data)
	case IsResponse(data):
		var resp Response
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	default:
		return nil, mcperrors.MalformedEnvelope("message is neither a request, notification nor response")
	}
}

// ParseServerMessage classifies raw bytes as a server request, server
// notification or response and parses it fully.
func ParseServerMessage(data []byte) (ServerMessage, error) {
	if !json.Valid(data) {
		return nil, mcperrors.New(mcperrors.KindMalformedJSON, "")
	}
	switch {
	case IsRequest(data):
		return ParseServerRequest(data)
	case IsNotification(data):
		return ParseServerNotification(data)
	case IsResponse(data):
		var resp Response
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	default:
		return nil, mcperrors.MalformedEnvelope("message is neither a request, notification nor response")
	}
}

// payloadOrNil collapses a nil payload pointer to a nil interface so the
// envelope omits the params member instead of emitting null.
func payloadOrNil(params interface{}) interface{} {
	if params == nil || reflect.ValueOf(params).IsNil() {
		return nil
	}
	return params
}

// checkPairing verifies that a method belongs to the union and that the
// payload value is of the type the method expects.
func checkPairing(method string, params interface{}, table map[string]methodSpec) error {
	spec, ok := table[method]
	if !ok {
		return mcperrors.UnsupportedMethod(method)
	}
	if params == nil || reflect.ValueOf(params).IsNil() {
		if !spec.paramsOptional {
			return mcperrors.MissingParams(method)
		}
		return nil
	}
	if got := reflect.TypeOf(params); got != spec.paramsType {
		return mcperrors.ParamsShapeMismatch(method,
			fmt.Errorf("payload type %s does not match %s", got, spec.paramsType))
	}
	return nil
}
