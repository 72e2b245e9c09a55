package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "mapfantasai.form.v1alpha1.FormService"

// Full method names of the form service
const (
	FormService_NewDraft_FullMethodName    = "/" + ServiceName + "/NewDraft"
	FormService_SetField_FullMethodName    = "/" + ServiceName + "/SetField"
	FormService_UpdateStat_FullMethodName  = "/" + ServiceName + "/UpdateStat"
	FormService_AddTag_FullMethodName      = "/" + ServiceName + "/AddTag"
	FormService_RemoveTag_FullMethodName   = "/" + ServiceName + "/RemoveTag"
	FormService_Preview_FullMethodName     = "/" + ServiceName + "/Preview"
	FormService_RollStats_FullMethodName   = "/" + ServiceName + "/RollStats"
	FormService_Submit_FullMethodName      = "/" + ServiceName + "/Submit"
	FormService_ListOptions_FullMethodName = "/" + ServiceName + "/ListOptions"
)

// FormServiceServer is the server API for the form service. Every call
// carries the draft it works on; the server keeps no session state.
type FormServiceServer interface {
	NewDraft(context.Context, *NewDraftRequest) (*DraftResponse, error)
	SetField(context.Context, *SetFieldRequest) (*DraftResponse, error)
	UpdateStat(context.Context, *UpdateStatRequest) (*DraftResponse, error)
	AddTag(context.Context, *AddTagRequest) (*DraftResponse, error)
	RemoveTag(context.Context, *RemoveTagRequest) (*DraftResponse, error)
	Preview(context.Context, *PreviewRequest) (*PreviewResponse, error)
	RollStats(context.Context, *RollStatsRequest) (*RollStatsResponse, error)
	Submit(context.Context, *SubmitRequest) (*SubmitResponse, error)
	ListOptions(context.Context, *ListOptionsRequest) (*ListOptionsResponse, error)
}

// RegisterFormServiceServer registers srv on s
func RegisterFormServiceServer(s grpc.ServiceRegistrar, srv FormServiceServer) {
	s.RegisterService(&FormService_ServiceDesc, srv)
}

func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(FormServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(FormServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(FormServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// FormService_ServiceDesc is the grpc.ServiceDesc for the form service
var FormService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FormServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "NewDraft", Handler: unaryHandler(FormService_NewDraft_FullMethodName, FormServiceServer.NewDraft)},
		{MethodName: "SetField", Handler: unaryHandler(FormService_SetField_FullMethodName, FormServiceServer.SetField)},
		{MethodName: "UpdateStat", Handler: unaryHandler(FormService_UpdateStat_FullMethodName, FormServiceServer.UpdateStat)},
		{MethodName: "AddTag", Handler: unaryHandler(FormService_AddTag_FullMethodName, FormServiceServer.AddTag)},
		{MethodName: "RemoveTag", Handler: unaryHandler(FormService_RemoveTag_FullMethodName, FormServiceServer.RemoveTag)},
		{MethodName: "Preview", Handler: unaryHandler(FormService_Preview_FullMethodName, FormServiceServer.Preview)},
		{MethodName: "RollStats", Handler: unaryHandler(FormService_RollStats_FullMethodName, FormServiceServer.RollStats)},
		{MethodName: "Submit", Handler: unaryHandler(FormService_Submit_FullMethodName, FormServiceServer.Submit)},
		{MethodName: "ListOptions", Handler: unaryHandler(FormService_ListOptions_FullMethodName, FormServiceServer.ListOptions)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mapfantasai/form/v1alpha1/form.json",
}

// FormServiceClient is the client API for the form service
type FormServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFormServiceClient creates a client speaking the JSON codec over cc
func NewFormServiceClient(cc grpc.ClientConnInterface) *FormServiceClient {
	return &FormServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// NewDraft calls FormService.NewDraft
func (c *FormServiceClient) NewDraft(ctx context.Context, in *NewDraftRequest, opts ...grpc.CallOption) (*DraftResponse, error) {
	return invoke[DraftResponse](ctx, c.cc, FormService_NewDraft_FullMethodName, in, opts)
}

// SetField calls FormService.SetField
func (c *FormServiceClient) SetField(ctx context.Context, in *SetFieldRequest, opts ...grpc.CallOption) (*DraftResponse, error) {
	return invoke[DraftResponse](ctx, c.cc, FormService_SetField_FullMethodName, in, opts)
}

// UpdateStat calls FormService.UpdateStat
func (c *FormServiceClient) UpdateStat(ctx context.Context, in *UpdateStatRequest, opts ...grpc.CallOption) (*DraftResponse, error) {
	return invoke[DraftResponse](ctx, c.cc, FormService_UpdateStat_FullMethodName, in, opts)
}

// AddTag calls FormService.AddTag
func (c *FormServiceClient) AddTag(ctx context.Context, in *AddTagRequest, opts ...grpc.CallOption) (*DraftResponse, error) {
	return invoke[DraftResponse](ctx, c.cc, FormService_AddTag_FullMethodName, in, opts)
}

// RemoveTag calls FormService.RemoveTag
func (c *FormServiceClient) RemoveTag(ctx context.Context, in *RemoveTagRequest, opts ...grpc.CallOption) (*DraftResponse, error) {
	return invoke[DraftResponse](ctx, c.cc, FormService_RemoveTag_FullMethodName, in, opts)
}

// Preview calls FormService.Preview
func (c *FormServiceClient) Preview(ctx context.Context, in *PreviewRequest, opts ...grpc.CallOption) (*PreviewResponse, error) {
	return invoke[PreviewResponse](ctx, c.cc, FormService_Preview_FullMethodName, in, opts)
}

// RollStats calls FormService.RollStats
func (c *FormServiceClient) RollStats(ctx context.Context, in *RollStatsRequest, opts ...grpc.CallOption) (*RollStatsResponse, error) {
	return invoke[RollStatsResponse](ctx, c.cc, FormService_RollStats_FullMethodName, in, opts)
}

// Submit calls FormService.Submit
func (c *FormServiceClient) Submit(ctx context.Context, in *SubmitRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	return invoke[SubmitResponse](ctx, c.cc, FormService_Submit_FullMethodName, in, opts)
}

// ListOptions calls FormService.ListOptions
func (c *FormServiceClient) ListOptions(ctx context.Context, in *ListOptionsRequest, opts ...grpc.CallOption) (*ListOptionsResponse, error) {
	return invoke[ListOptionsResponse](ctx, c.cc, FormService_ListOptions_FullMethodName, in, opts)
}
