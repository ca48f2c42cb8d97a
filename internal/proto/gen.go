// Package proto holds the AccountService wire contract shared by the
// dashboard client and the backing store, generated from salesmatch.proto,
// plus conversions between wire and domain accounts.
package proto

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative internal/proto/salesmatch.proto
