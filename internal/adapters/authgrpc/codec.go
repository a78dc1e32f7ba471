// Package authgrpc speaks the auth service's CreateUser RPC over gRPC.
// Messages travel as JSON under the "json" content-subtype so no generated
// protobuf stubs are needed on either side.
package authgrpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype used by the client and server.
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return CodecName }

//nolint:gochecknoinits // codecs must be registered before any connection is made
func init() {
	encoding.RegisterCodec(jsonCodec{})
}

const (
	serviceName        = "auth.AuthService"
	createUserMethod   = "CreateUser"
	createUserFullName = "/" + serviceName + "/" + createUserMethod
)

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type wireUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

type createUserResponse struct {
	Success bool      `json:"success"`
	User    *wireUser `json:"user,omitempty"`
}
