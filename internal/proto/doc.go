// Package proto holds the credkeeper.v1.AuthService contract generated from
// proto/credkeeper/v1/auth.proto.
package proto

//go:generate protoc --proto_path=../.. --go_out=../.. --go_opt=module=github.com/dmitrijs2005/credkeeper --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/credkeeper proto/credkeeper/v1/auth.proto

// ServiceName is the fully qualified service name used for health reporting.
const ServiceName = "credkeeper.v1.AuthService"
