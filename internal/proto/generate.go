// Package proto holds the sessionkeeper.v1 messages and gRPC stubs
// generated from proto/sessionkeeper/v1/session.proto.
package proto

//go:generate protoc -I ../../proto --go_out=. --go_opt=module=github.com/dmitrijs2005/sessionkeeper/internal/proto --go-grpc_out=. --go-grpc_opt=module=github.com/dmitrijs2005/sessionkeeper/internal/proto sessionkeeper/v1/session.proto
