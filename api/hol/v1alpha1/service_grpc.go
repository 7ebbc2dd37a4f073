// Package holv1alpha1 declares the hol.api.v1alpha1.HolService gRPC contract.
// Every method exchanges google.protobuf.Struct messages.
package holv1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "hol.api.v1alpha1.HolService"

// Full method names
const (
	HolService_GetWeapon_FullMethodName     = "/" + ServiceName + "/GetWeapon"
	HolService_AttachRefine_FullMethodName  = "/" + ServiceName + "/AttachRefine"
	HolService_DetachRefine_FullMethodName  = "/" + ServiceName + "/DetachRefine"
	HolService_ImportEntry_FullMethodName   = "/" + ServiceName + "/ImportEntry"
	HolService_ImportAll_FullMethodName     = "/" + ServiceName + "/ImportAll"
	HolService_ListImports_FullMethodName   = "/" + ServiceName + "/ListImports"
	HolService_CreateActor_FullMethodName   = "/" + ServiceName + "/CreateActor"
	HolService_GetActorSheet_FullMethodName = "/" + ServiceName + "/GetActorSheet"
	HolService_AddWeapon_FullMethodName     = "/" + ServiceName + "/AddWeapon"
	HolService_AddItem_FullMethodName       = "/" + ServiceName + "/AddItem"
	HolService_SetSkill_FullMethodName      = "/" + ServiceName + "/SetSkill"
	HolService_AddSupport_FullMethodName    = "/" + ServiceName + "/AddSupport"
	HolService_EquipWeapon_FullMethodName   = "/" + ServiceName + "/EquipWeapon"
	HolService_RemoveItem_FullMethodName    = "/" + ServiceName + "/RemoveItem"
	HolService_AdjustCharge_FullMethodName  = "/" + ServiceName + "/AdjustCharge"
)

// HolServiceClient is the client API for HolService
type HolServiceClient interface {
	GetWeapon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AttachRefine(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DetachRefine(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ImportEntry(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ImportAll(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListImports(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreateActor(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetActorSheet(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AddWeapon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AddItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetSkill(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AddSupport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	EquipWeapon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RemoveItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AdjustCharge(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type holServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewHolServiceClient creates a client over cc
func NewHolServiceClient(cc grpc.ClientConnInterface) HolServiceClient {
	return &holServiceClient{cc}
}

func (c *holServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *holServiceClient) GetWeapon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_GetWeapon_FullMethodName, in, opts...)
}

func (c *holServiceClient) AttachRefine(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_AttachRefine_FullMethodName, in, opts...)
}

func (c *holServiceClient) DetachRefine(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_DetachRefine_FullMethodName, in, opts...)
}

func (c *holServiceClient) ImportEntry(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_ImportEntry_FullMethodName, in, opts...)
}

func (c *holServiceClient) ImportAll(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_ImportAll_FullMethodName, in, opts...)
}

func (c *holServiceClient) ListImports(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_ListImports_FullMethodName, in, opts...)
}

func (c *holServiceClient) CreateActor(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_CreateActor_FullMethodName, in, opts...)
}

func (c *holServiceClient) GetActorSheet(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_GetActorSheet_FullMethodName, in, opts...)
}

func (c *holServiceClient) AddWeapon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_AddWeapon_FullMethodName, in, opts...)
}

func (c *holServiceClient) AddItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_AddItem_FullMethodName, in, opts...)
}

func (c *holServiceClient) SetSkill(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_SetSkill_FullMethodName, in, opts...)
}

func (c *holServiceClient) AddSupport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_AddSupport_FullMethodName, in, opts...)
}

func (c *holServiceClient) EquipWeapon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_EquipWeapon_FullMethodName, in, opts...)
}

func (c *holServiceClient) RemoveItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_RemoveItem_FullMethodName, in, opts...)
}

func (c *holServiceClient) AdjustCharge(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HolService_AdjustCharge_FullMethodName, in, opts...)
}

// HolServiceServer is the server API for HolService
type HolServiceServer interface {
	GetWeapon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AttachRefine(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DetachRefine(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImportEntry(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImportAll(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListImports(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateActor(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetActorSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddWeapon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetSkill(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddSupport(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EquipWeapon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AdjustCharge(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedHolServiceServer()
}

// UnimplementedHolServiceServer must be embedded to have forward compatible implementations
type UnimplementedHolServiceServer struct{}

func (UnimplementedHolServiceServer) GetWeapon(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetWeapon not implemented")
}

func (UnimplementedHolServiceServer) AttachRefine(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AttachRefine not implemented")
}

func (UnimplementedHolServiceServer) DetachRefine(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method DetachRefine not implemented")
}

func (UnimplementedHolServiceServer) ImportEntry(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ImportEntry not implemented")
}

func (UnimplementedHolServiceServer) ImportAll(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ImportAll not implemented")
}

func (UnimplementedHolServiceServer) ListImports(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListImports not implemented")
}

func (UnimplementedHolServiceServer) CreateActor(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateActor not implemented")
}

func (UnimplementedHolServiceServer) GetActorSheet(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetActorSheet not implemented")
}

func (UnimplementedHolServiceServer) AddWeapon(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AddWeapon not implemented")
}

func (UnimplementedHolServiceServer) AddItem(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AddItem not implemented")
}

func (UnimplementedHolServiceServer) SetSkill(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SetSkill not implemented")
}

func (UnimplementedHolServiceServer) AddSupport(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AddSupport not implemented")
}

func (UnimplementedHolServiceServer) EquipWeapon(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method EquipWeapon not implemented")
}

func (UnimplementedHolServiceServer) RemoveItem(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveItem not implemented")
}

func (UnimplementedHolServiceServer) AdjustCharge(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AdjustCharge not implemented")
}

func (UnimplementedHolServiceServer) mustEmbedUnimplementedHolServiceServer() {}

// RegisterHolServiceServer registers srv with s
func RegisterHolServiceServer(s grpc.ServiceRegistrar, srv HolServiceServer) {
	s.RegisterService(&HolService_ServiceDesc, srv)
}

type unaryMethod func(HolServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(HolServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(HolServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// HolService_ServiceDesc is the grpc.ServiceDesc for HolService
var HolService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*HolServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetWeapon",
			Handler:    unaryHandler(HolService_GetWeapon_FullMethodName, HolServiceServer.GetWeapon),
		},
		{
			MethodName: "AttachRefine",
			Handler:    unaryHandler(HolService_AttachRefine_FullMethodName, HolServiceServer.AttachRefine),
		},
		{
			MethodName: "DetachRefine",
			Handler:    unaryHandler(HolService_DetachRefine_FullMethodName, HolServiceServer.DetachRefine),
		},
		{
			MethodName: "ImportEntry",
			Handler:    unaryHandler(HolService_ImportEntry_FullMethodName, HolServiceServer.ImportEntry),
		},
		{
			MethodName: "ImportAll",
			Handler:    unaryHandler(HolService_ImportAll_FullMethodName, HolServiceServer.ImportAll),
		},
		{
			MethodName: "ListImports",
			Handler:    unaryHandler(HolService_ListImports_FullMethodName, HolServiceServer.ListImports),
		},
		{
			MethodName: "CreateActor",
			Handler:    unaryHandler(HolService_CreateActor_FullMethodName, HolServiceServer.CreateActor),
		},
		{
			MethodName: "GetActorSheet",
			Handler:    unaryHandler(HolService_GetActorSheet_FullMethodName, HolServiceServer.GetActorSheet),
		},
		{
			MethodName: "AddWeapon",
			Handler:    unaryHandler(HolService_AddWeapon_FullMethodName, HolServiceServer.AddWeapon),
		},
		{
			MethodName: "AddItem",
			Handler:    unaryHandler(HolService_AddItem_FullMethodName, HolServiceServer.AddItem),
		},
		{
			MethodName: "SetSkill",
			Handler:    unaryHandler(HolService_SetSkill_FullMethodName, HolServiceServer.SetSkill),
		},
		{
			MethodName: "AddSupport",
			Handler:    unaryHandler(HolService_AddSupport_FullMethodName, HolServiceServer.AddSupport),
		},
		{
			MethodName: "EquipWeapon",
			Handler:    unaryHandler(HolService_EquipWeapon_FullMethodName, HolServiceServer.EquipWeapon),
		},
		{
			MethodName: "RemoveItem",
			Handler:    unaryHandler(HolService_RemoveItem_FullMethodName, HolServiceServer.RemoveItem),
		},
		{
			MethodName: "AdjustCharge",
			Handler:    unaryHandler(HolService_AdjustCharge_FullMethodName, HolServiceServer.AdjustCharge),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hol/api/v1alpha1/hol_service.proto",
}
