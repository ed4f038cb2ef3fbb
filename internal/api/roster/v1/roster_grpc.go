// Package rosterv1 — контракт gRPC-сервиса ростеров airline.roster.v1.RosterService.
// Запросы и ответы передаются как google.protobuf.Struct; поля описаны в fields.go.
package rosterv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "airline.roster.v1.RosterService"

const (
	RosterService_GenerateRoster_FullMethodName = "/" + ServiceName + "/GenerateRoster"
	RosterService_GetRoster_FullMethodName      = "/" + ServiceName + "/GetRoster"
	RosterService_ListRosters_FullMethodName    = "/" + ServiceName + "/ListRosters"
)

type RosterServiceClient interface {
	GenerateRoster(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetRoster(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListRosters(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type rosterServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRosterServiceClient(cc grpc.ClientConnInterface) RosterServiceClient {
	return &rosterServiceClient{cc}
}

func (c *rosterServiceClient) GenerateRoster(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RosterService_GenerateRoster_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) GetRoster(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RosterService_GetRoster_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) ListRosters(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RosterService_ListRosters_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RosterServiceServer — серверная сторона. Реализации должны встраивать
// UnimplementedRosterServiceServer.
type RosterServiceServer interface {
	GenerateRoster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRoster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListRosters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedRosterServiceServer()
}

type UnimplementedRosterServiceServer struct{}

func (UnimplementedRosterServiceServer) GenerateRoster(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateRoster not implemented")
}

func (UnimplementedRosterServiceServer) GetRoster(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRoster not implemented")
}

func (UnimplementedRosterServiceServer) ListRosters(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRosters not implemented")
}

func (UnimplementedRosterServiceServer) mustEmbedUnimplementedRosterServiceServer() {}

func RegisterRosterServiceServer(s grpc.ServiceRegistrar, srv RosterServiceServer) {
	s.RegisterService(&RosterService_ServiceDesc, srv)
}

func _RosterService_GenerateRoster_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).GenerateRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_GenerateRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).GenerateRoster(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_GetRoster_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).GetRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_GetRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).GetRoster(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_ListRosters_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).ListRosters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_ListRosters_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RosterServiceServer).ListRosters(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var RosterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RosterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateRoster",
			Handler:    _RosterService_GenerateRoster_Handler,
		},
		{
			MethodName: "GetRoster",
			Handler:    _RosterService_GetRoster_Handler,
		},
		{
			MethodName: "ListRosters",
			Handler:    _RosterService_ListRosters_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
