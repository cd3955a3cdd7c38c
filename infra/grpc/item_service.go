package grpc

import (
	"catalog/app/item"
	"catalog/pkg/httperror"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ItemServiceName       = "catalog.v1.ItemService"
	getItemFullMethod     = "/" + ItemServiceName + "/GetItem"
	searchItemsFullMethod = "/" + ItemServiceName + "/SearchItems"
)

// ItemServiceServer is the read side of the catalog over gRPC. Items travel
// as Structs with the same keys as the JSON wire shape.
type ItemServiceServer interface {
	GetItem(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	SearchItems(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
}

var ItemServiceDesc = grpc.ServiceDesc{
	ServiceName: ItemServiceName,
	HandlerType: (*ItemServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetItem", Handler: getItemHandler},
		{MethodName: "SearchItems", Handler: searchItemsHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterItemServiceServer(s grpc.ServiceRegistrar, srv ItemServiceServer) {
	s.RegisterService(&ItemServiceDesc, srv)
}

func getItemHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ItemServiceServer).GetItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getItemFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ItemServiceServer).GetItem(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func searchItemsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ItemServiceServer).SearchItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: searchItemsFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ItemServiceServer).SearchItems(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

type ItemServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewItemServiceClient(cc grpc.ClientConnInterface) *ItemServiceClient {
	return &ItemServiceClient{cc: cc}
}

func (c *ItemServiceClient) GetItem(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getItemFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ItemServiceClient) SearchItems(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, searchItemsFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ItemService serves ItemServiceServer with the same handlers as the HTTP API.
type ItemService struct {
	getItem     *item.GetItemHandler
	searchItems *item.SearchItemsHandler
}

func NewItemService(repository item.Repository) *ItemService {
	return &ItemService{
		getItem:     item.NewGetItemHandler(repository),
		searchItems: item.NewSearchItemsHandler(repository),
	}
}

func (s *ItemService) GetItem(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	if req.GetValue() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id must be positive")
	}

	dto, err := s.getItem.Handle(ctx, &item.GetItemRequest{ItemID: req.GetValue()})
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(*dto)
}

func (s *ItemService) SearchItems(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	if strings.TrimSpace(req.GetValue()) == "" {
		return nil, status.Error(codes.InvalidArgument, "q is required")
	}

	dtos, err := s.searchItems.Handle(ctx, &item.SearchItemsRequest{Query: req.GetValue()})
	if err != nil {
		return nil, mapError(err)
	}

	values := make([]*structpb.Value, 0, len(dtos))
	for _, dto := range dtos {
		st, err := toStruct(dto)
		if err != nil {
			return nil, err
		}
		values = append(values, structpb.NewStructValue(st))
	}
	return &structpb.ListValue{Values: values}, nil
}

func mapError(err error) error {
	var httpErr *httperror.Error
	if errors.As(err, &httpErr) {
		switch httpErr.Status {
		case http.StatusNotFound:
			return status.Error(codes.NotFound, httpErr.Message)
		case http.StatusBadRequest:
			return status.Error(codes.InvalidArgument, httpErr.Message)
		}
	}
	zap.L().Error("gRPC handler failed", zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}

func toStruct(dto item.ItemDTO) (*structpb.Struct, error) {
	body, err := json.Marshal(dto)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode item: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, status.Errorf(codes.Internal, "encode item: %v", err)
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode item: %v", err)
	}
	return st, nil
}
