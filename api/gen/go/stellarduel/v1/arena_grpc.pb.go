// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: stellarduel/v1/arena.proto

package stellarduelv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ArenaService_ListArenas_FullMethodName = "/stellarduel.v1.ArenaService/ListArenas"
	ArenaService_GetArena_FullMethodName   = "/stellarduel.v1.ArenaService/GetArena"
)

// ArenaServiceClient is the client API for ArenaService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ArenaService exposes the static arena catalog.
type ArenaServiceClient interface {
	// ListArenas returns every arena definition.
	ListArenas(ctx context.Context, in *ListArenasRequest, opts ...grpc.CallOption) (*ListArenasResponse, error)
	// GetArena returns one arena definition by key.
	GetArena(ctx context.Context, in *GetArenaRequest, opts ...grpc.CallOption) (*GetArenaResponse, error)
}

type arenaServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewArenaServiceClient(cc grpc.ClientConnInterface) ArenaServiceClient {
	return &arenaServiceClient{cc}
}

func (c *arenaServiceClient) ListArenas(ctx context.Context, in *ListArenasRequest, opts ...grpc.CallOption) (*ListArenasResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListArenasResponse)
	err := c.cc.Invoke(ctx, ArenaService_ListArenas_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *arenaServiceClient) GetArena(ctx context.Context, in *GetArenaRequest, opts ...grpc.CallOption) (*GetArenaResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetArenaResponse)
	err := c.cc.Invoke(ctx, ArenaService_GetArena_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ArenaServiceServer is the server API for ArenaService service.
// All implementations must embed UnimplementedArenaServiceServer
// for forward compatibility.
//
// ArenaService exposes the static arena catalog.
type ArenaServiceServer interface {
	// ListArenas returns every arena definition.
	ListArenas(context.Context, *ListArenasRequest) (*ListArenasResponse, error)
	// GetArena returns one arena definition by key.
	GetArena(context.Context, *GetArenaRequest) (*GetArenaResponse, error)
	mustEmbedUnimplementedArenaServiceServer()
}

// UnimplementedArenaServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedArenaServiceServer struct{}

func (UnimplementedArenaServiceServer) ListArenas(context.Context, *ListArenasRequest) (*ListArenasResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListArenas not implemented")
}
func (UnimplementedArenaServiceServer) GetArena(context.Context, *GetArenaRequest) (*GetArenaResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetArena not implemented")
}
func (UnimplementedArenaServiceServer) mustEmbedUnimplementedArenaServiceServer() {}
func (UnimplementedArenaServiceServer) testEmbeddedByValue()                      {}

// UnsafeArenaServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ArenaServiceServer will
// result in compilation errors.
type UnsafeArenaServiceServer interface {
	mustEmbedUnimplementedArenaServiceServer()
}

func RegisterArenaServiceServer(s grpc.ServiceRegistrar, srv ArenaServiceServer) {
	// If the following call panics, it indicates UnimplementedArenaServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ArenaService_ServiceDesc, srv)
}

func _ArenaService_ListArenas_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListArenasRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ArenaServiceServer).ListArenas(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ArenaService_ListArenas_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ArenaServiceServer).ListArenas(ctx, req.(*ListArenasRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ArenaService_GetArena_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetArenaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ArenaServiceServer).GetArena(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ArenaService_GetArena_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ArenaServiceServer).GetArena(ctx, req.(*GetArenaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ArenaService_ServiceDesc is the grpc.ServiceDesc for ArenaService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ArenaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stellarduel.v1.ArenaService",
	HandlerType: (*ArenaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListArenas",
			Handler:    _ArenaService_ListArenas_Handler,
		},
		{
			MethodName: "GetArena",
			Handler:    _ArenaService_GetArena_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stellarduel/v1/arena.proto",
}
