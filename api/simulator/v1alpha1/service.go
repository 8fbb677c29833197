// Package v1alpha1 defines the SimulatorService gRPC contract. Messages are
// plain Go structs carried by the JSON codec registered in this package.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "twsim.api.v1alpha1.SimulatorService"

// Full method names
const (
	SimulatorService_ListCreatures_FullMethodName   = "/" + ServiceName + "/ListCreatures"
	SimulatorService_GetCreature_FullMethodName     = "/" + ServiceName + "/GetCreature"
	SimulatorService_AggregateStats_FullMethodName  = "/" + ServiceName + "/AggregateStats"
	SimulatorService_CalculateDamage_FullMethodName = "/" + ServiceName + "/CalculateDamage"
	SimulatorService_SampleHit_FullMethodName       = "/" + ServiceName + "/SampleHit"
	SimulatorService_DetectEquipment_FullMethodName = "/" + ServiceName + "/DetectEquipment"
)

// SimulatorServiceServer is the server API for SimulatorService
type SimulatorServiceServer interface {
	ListCreatures(context.Context, *ListCreaturesRequest) (*ListCreaturesResponse, error)
	GetCreature(context.Context, *GetCreatureRequest) (*GetCreatureResponse, error)
	AggregateStats(context.Context, *AggregateStatsRequest) (*AggregateStatsResponse, error)
	CalculateDamage(context.Context, *CalculateDamageRequest) (*CalculateDamageResponse, error)
	SampleHit(context.Context, *SampleHitRequest) (*SampleHitResponse, error)
	DetectEquipment(context.Context, *DetectEquipmentRequest) (*DetectEquipmentResponse, error)
}

// UnimplementedSimulatorServiceServer can be embedded to have forward
// compatible implementations
type UnimplementedSimulatorServiceServer struct{}

func (UnimplementedSimulatorServiceServer) ListCreatures(context.Context, *ListCreaturesRequest) (*ListCreaturesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCreatures not implemented")
}

func (UnimplementedSimulatorServiceServer) GetCreature(context.Context, *GetCreatureRequest) (*GetCreatureResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCreature not implemented")
}

func (UnimplementedSimulatorServiceServer) AggregateStats(context.Context, *AggregateStatsRequest) (*AggregateStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AggregateStats not implemented")
}

func (UnimplementedSimulatorServiceServer) CalculateDamage(context.Context, *CalculateDamageRequest) (*CalculateDamageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateDamage not implemented")
}

func (UnimplementedSimulatorServiceServer) SampleHit(context.Context, *SampleHitRequest) (*SampleHitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SampleHit not implemented")
}

func (UnimplementedSimulatorServiceServer) DetectEquipment(context.Context, *DetectEquipmentRequest) (*DetectEquipmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DetectEquipment not implemented")
}

// RegisterSimulatorServiceServer registers srv on s
func RegisterSimulatorServiceServer(s grpc.ServiceRegistrar, srv SimulatorServiceServer) {
	s.RegisterService(&SimulatorService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to the grpc.MethodDesc handler shape
func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(SimulatorServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SimulatorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SimulatorServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// SimulatorService_ServiceDesc is the grpc.ServiceDesc for SimulatorService
var SimulatorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SimulatorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListCreatures",
			Handler:    unaryHandler(SimulatorService_ListCreatures_FullMethodName, SimulatorServiceServer.ListCreatures),
		},
		{
			MethodName: "GetCreature",
			Handler:    unaryHandler(SimulatorService_GetCreature_FullMethodName, SimulatorServiceServer.GetCreature),
		},
		{
			MethodName: "AggregateStats",
			Handler:    unaryHandler(SimulatorService_AggregateStats_FullMethodName, SimulatorServiceServer.AggregateStats),
		},
		{
			MethodName: "CalculateDamage",
			Handler:    unaryHandler(SimulatorService_CalculateDamage_FullMethodName, SimulatorServiceServer.CalculateDamage),
		},
		{
			MethodName: "SampleHit",
			Handler:    unaryHandler(SimulatorService_SampleHit_FullMethodName, SimulatorServiceServer.SampleHit),
		},
		{
			MethodName: "DetectEquipment",
			Handler:    unaryHandler(SimulatorService_DetectEquipment_FullMethodName, SimulatorServiceServer.DetectEquipment),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "twsim/api/v1alpha1/simulator.json",
}

// SimulatorServiceClient is the client API for SimulatorService
type SimulatorServiceClient interface {
	ListCreatures(ctx context.Context, in *ListCreaturesRequest, opts ...grpc.CallOption) (*ListCreaturesResponse, error)
	GetCreature(ctx context.Context, in *GetCreatureRequest, opts ...grpc.CallOption) (*GetCreatureResponse, error)
	AggregateStats(ctx context.Context, in *AggregateStatsRequest, opts ...grpc.CallOption) (*AggregateStatsResponse, error)
	CalculateDamage(ctx context.Context, in *CalculateDamageRequest, opts ...grpc.CallOption) (*CalculateDamageResponse, error)
	SampleHit(ctx context.Context, in *SampleHitRequest, opts ...grpc.CallOption) (*SampleHitResponse, error)
	DetectEquipment(ctx context.Context, in *DetectEquipmentRequest, opts ...grpc.CallOption) (*DetectEquipmentResponse, error)
}

type simulatorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSimulatorServiceClient returns a client that always sends the JSON
// content-subtype
func NewSimulatorServiceClient(cc grpc.ClientConnInterface) SimulatorServiceClient {
	return &simulatorServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simulatorServiceClient) ListCreatures(ctx context.Context, in *ListCreaturesRequest, opts ...grpc.CallOption) (*ListCreaturesResponse, error) {
	return invoke[ListCreaturesResponse](ctx, c.cc, SimulatorService_ListCreatures_FullMethodName, in, opts)
}

func (c *simulatorServiceClient) GetCreature(ctx context.Context, in *GetCreatureRequest, opts ...grpc.CallOption) (*GetCreatureResponse, error) {
	return invoke[GetCreatureResponse](ctx, c.cc, SimulatorService_GetCreature_FullMethodName, in, opts)
}

func (c *simulatorServiceClient) AggregateStats(ctx context.Context, in *AggregateStatsRequest, opts ...grpc.CallOption) (*AggregateStatsResponse, error) {
	return invoke[AggregateStatsResponse](ctx, c.cc, SimulatorService_AggregateStats_FullMethodName, in, opts)
}

func (c *simulatorServiceClient) CalculateDamage(ctx context.Context, in *CalculateDamageRequest, opts ...grpc.CallOption) (*CalculateDamageResponse, error) {
	return invoke[CalculateDamageResponse](ctx, c.cc, SimulatorService_CalculateDamage_FullMethodName, in, opts)
}

func (c *simulatorServiceClient) SampleHit(ctx context.Context, in *SampleHitRequest, opts ...grpc.CallOption) (*SampleHitResponse, error) {
	return invoke[SampleHitResponse](ctx, c.cc, SimulatorService_SampleHit_FullMethodName, in, opts)
}

func (c *simulatorServiceClient) DetectEquipment(ctx context.Context, in *DetectEquipmentRequest, opts ...grpc.CallOption) (*DetectEquipmentResponse, error) {
	return invoke[DetectEquipmentResponse](ctx, c.cc, SimulatorService_DetectEquipment_FullMethodName, in, opts)
}
