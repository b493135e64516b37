package grpc

// proto.go defines the gRPC server interface derived from calcjus/v1/calcjus.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from the generated calcjus/v1 package.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CalcServiceServer is the server API for CalcService.
type CalcServiceServer interface {
	ComputeSettlement(context.Context, *ComputeSettlementRequest) (*ComputeSettlementResponse, error)
	RefreshIndexSeries(context.Context, *RefreshIndexSeriesRequest) (*RefreshIndexSeriesResponse, error)
	GetIndexSeries(context.Context, *GetIndexSeriesRequest) (*GetIndexSeriesResponse, error)
	mustEmbedUnimplementedCalcServiceServer()
}

// UnimplementedCalcServiceServer provides forward-compatible default implementations.
type UnimplementedCalcServiceServer struct{}

func (UnimplementedCalcServiceServer) ComputeSettlement(context.Context, *ComputeSettlementRequest) (*ComputeSettlementResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeSettlement not implemented")
}
func (UnimplementedCalcServiceServer) RefreshIndexSeries(context.Context, *RefreshIndexSeriesRequest) (*RefreshIndexSeriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefreshIndexSeries not implemented")
}
func (UnimplementedCalcServiceServer) GetIndexSeries(context.Context, *GetIndexSeriesRequest) (*GetIndexSeriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetIndexSeries not implemented")
}
func (UnimplementedCalcServiceServer) mustEmbedUnimplementedCalcServiceServer() {}

// RegisterCalcServiceServer registers the CalcServiceServer with the gRPC server.
func RegisterCalcServiceServer(s *grpclib.Server, srv CalcServiceServer) {
	s.RegisterService(&_CalcService_serviceDesc, srv)
}

var _CalcService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "calcjus.v1.CalcService",
	HandlerType: (*CalcServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ComputeSettlement", Handler: _CalcService_ComputeSettlement_Handler},
		{MethodName: "RefreshIndexSeries", Handler: _CalcService_RefreshIndexSeries_Handler},
		{MethodName: "GetIndexSeries", Handler: _CalcService_GetIndexSeries_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _CalcService_ComputeSettlement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ComputeSettlementRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(CalcServiceServer).ComputeSettlement(ctx, req)
}

func _CalcService_RefreshIndexSeries_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(RefreshIndexSeriesRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(CalcServiceServer).RefreshIndexSeries(ctx, req)
}

func _CalcService_GetIndexSeries_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetIndexSeriesRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(CalcServiceServer).GetIndexSeries(ctx, req)
}
