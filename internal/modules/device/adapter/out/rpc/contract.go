package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey  = "device"
	serviceName   = "focusctl.device.v1.DevicePlugin"
	jsonCodecName = "json"

	methodGetDeviceInfo       = "/" + serviceName + "/GetDeviceInfo"
	methodListApps            = "/" + serviceName + "/ListApps"
	methodLaunchApp           = "/" + serviceName + "/LaunchApp"
	methodIsPermissionGranted = "/" + serviceName + "/IsPermissionGranted"
	methodRequestPermission   = "/" + serviceName + "/RequestPermission"
	methodSetBlockedApps      = "/" + serviceName + "/SetBlockedApps"
	methodClearBlockedApps    = "/" + serviceName + "/ClearBlockedApps"
	methodGetBlockedApps      = "/" + serviceName + "/GetBlockedApps"
	methodSetBreakGlass       = "/" + serviceName + "/SetBreakGlassPhrase"
	methodEnableGrayscale     = "/" + serviceName + "/EnableGrayscale"
	methodDisableGrayscale    = "/" + serviceName + "/DisableGrayscale"
	methodIsGrayscaleEnabled  = "/" + serviceName + "/IsGrayscaleEnabled"
	methodToggleGrayscale     = "/" + serviceName + "/ToggleGrayscale"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "FOCUSCTL_DEVICE_PLUGIN",
	MagicCookieValue: "focusctl",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type DeviceInfo struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Version  string `json:"version"`
}

type InstalledApp struct {
	PackageName string `json:"package_name"`
	AppName     string `json:"app_name"`
}

type ListAppsResponse struct {
	Apps []InstalledApp `json:"apps"`
}

type LaunchAppRequest struct {
	PackageName string `json:"package_name"`
}

type SetBlockedAppsRequest struct {
	PackageNames []string `json:"package_names"`
	Reason       string   `json:"reason"`
}

type BlockedAppsResponse struct {
	PackageNames []string `json:"package_names"`
}

type SetBreakGlassRequest struct {
	Phrase string `json:"phrase"`
}

type BoolResponse struct {
	Value bool `json:"value"`
}

type Ack struct {
	OK bool `json:"ok"`
}

type DevicePluginServer interface {
	GetDeviceInfo(ctx context.Context, in *Empty) (*DeviceInfo, error)
	ListApps(ctx context.Context, in *Empty) (*ListAppsResponse, error)
	LaunchApp(ctx context.Context, in *LaunchAppRequest) (*Ack, error)
	IsPermissionGranted(ctx context.Context, in *Empty) (*BoolResponse, error)
	RequestPermission(ctx context.Context, in *Empty) (*Ack, error)
	SetBlockedApps(ctx context.Context, in *SetBlockedAppsRequest) (*Ack, error)
	ClearBlockedApps(ctx context.Context, in *Empty) (*Ack, error)
	GetBlockedApps(ctx context.Context, in *Empty) (*BlockedAppsResponse, error)
	SetBreakGlassPhrase(ctx context.Context, in *SetBreakGlassRequest) (*Ack, error)
	EnableGrayscale(ctx context.Context, in *Empty) (*Ack, error)
	DisableGrayscale(ctx context.Context, in *Empty) (*Ack, error)
	IsGrayscaleEnabled(ctx context.Context, in *Empty) (*BoolResponse, error)
	ToggleGrayscale(ctx context.Context, in *BoolResponse) (*BoolResponse, error)
}

type DevicePluginClient interface {
	GetDeviceInfo(ctx context.Context) (*DeviceInfo, error)
	ListApps(ctx context.Context) (*ListAppsResponse, error)
	LaunchApp(ctx context.Context, in *LaunchAppRequest) (*Ack, error)
	IsPermissionGranted(ctx context.Context) (*BoolResponse, error)
	RequestPermission(ctx context.Context) (*Ack, error)
	SetBlockedApps(ctx context.Context, in *SetBlockedAppsRequest) (*Ack, error)
	ClearBlockedApps(ctx context.Context) (*Ack, error)
	GetBlockedApps(ctx context.Context) (*BlockedAppsResponse, error)
	SetBreakGlassPhrase(ctx context.Context, in *SetBreakGlassRequest) (*Ack, error)
	EnableGrayscale(ctx context.Context) (*Ack, error)
	DisableGrayscale(ctx context.Context) (*Ack, error)
	IsGrayscaleEnabled(ctx context.Context) (*BoolResponse, error)
	ToggleGrayscale(ctx context.Context) (*BoolResponse, error)
}

type devicePluginClient struct {
	conn *grpc.ClientConn
}

func NewDevicePluginClient(conn *grpc.ClientConn) DevicePluginClient {
	return &devicePluginClient{conn: conn}
}

func invoke[T any](c *devicePluginClient, ctx context.Context, method string, in any) (*T, error) {
	out := new(T)
	if err := c.conn.Invoke(ctx, method, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *devicePluginClient) GetDeviceInfo(ctx context.Context) (*DeviceInfo, error) {
	return invoke[DeviceInfo](c, ctx, methodGetDeviceInfo, &Empty{})
}

func (c *devicePluginClient) ListApps(ctx context.Context) (*ListAppsResponse, error) {
	return invoke[ListAppsResponse](c, ctx, methodListApps, &Empty{})
}

func (c *devicePluginClient) LaunchApp(ctx context.Context, in *LaunchAppRequest) (*Ack, error) {
	return invoke[Ack](c, ctx, methodLaunchApp, in)
}

func (c *devicePluginClient) IsPermissionGranted(ctx context.Context) (*BoolResponse, error) {
	return invoke[BoolResponse](c, ctx, methodIsPermissionGranted, &Empty{})
}

func (c *devicePluginClient) RequestPermission(ctx context.Context) (*Ack, error) {
	return invoke[Ack](c, ctx, methodRequestPermission, &Empty{})
}

func (c *devicePluginClient) SetBlockedApps(ctx context.Context, in *SetBlockedAppsRequest) (*Ack, error) {
	return invoke[Ack](c, ctx, methodSetBlockedApps, in)
}

func (c *devicePluginClient) ClearBlockedApps(ctx context.Context) (*Ack, error) {
	return invoke[Ack](c, ctx, methodClearBlockedApps, &Empty{})
}

func (c *devicePluginClient) GetBlockedApps(ctx context.Context) (*BlockedAppsResponse, error) {
	return invoke[BlockedAppsResponse](c, ctx, methodGetBlockedApps, &Empty{})
}

func (c *devicePluginClient) SetBreakGlassPhrase(ctx context.Context, in *SetBreakGlassRequest) (*Ack, error) {
	return invoke[Ack](c, ctx, methodSetBreakGlass, in)
}

func (c *devicePluginClient) EnableGrayscale(ctx context.Context) (*Ack, error) {
	return invoke[Ack](c, ctx, methodEnableGrayscale, &Empty{})
}

func (c *devicePluginClient) DisableGrayscale(ctx context.Context) (*Ack, error) {
	return invoke[Ack](c, ctx, methodDisableGrayscale, &Empty{})
}

func (c *devicePluginClient) IsGrayscaleEnabled(ctx context.Context) (*BoolResponse, error) {
	return invoke[BoolResponse](c, ctx, methodIsGrayscaleEnabled, &Empty{})
}

func (c *devicePluginClient) ToggleGrayscale(ctx context.Context) (*BoolResponse, error) {
	return invoke[BoolResponse](c, ctx, methodToggleGrayscale, &BoolResponse{})
}

func unaryHandler[Req any](fullMethod string, call func(context.Context, *Req) (any, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*Req)
			if !ok {
				return nil, fmt.Errorf("invalid request type")
			}
			return call(ctx, typed)
		}
		return interceptor(ctx, in, info, handler)
	}
}

func RegisterDevicePluginServer(server grpc.ServiceRegistrar, impl DevicePluginServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*DevicePluginServer)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: "GetDeviceInfo", Handler: unaryHandler[Empty](methodGetDeviceInfo, func(ctx context.Context, in *Empty) (any, error) {
				return impl.GetDeviceInfo(ctx, in)
			})},
			{MethodName: "ListApps", Handler: unaryHandler[Empty](methodListApps, func(ctx context.Context, in *Empty) (any, error) {
				return impl.ListApps(ctx, in)
			})},
			{MethodName: "LaunchApp", Handler: unaryHandler[LaunchAppRequest](methodLaunchApp, func(ctx context.Context, in *LaunchAppRequest) (any, error) {
				return impl.LaunchApp(ctx, in)
			})},
			{MethodName: "IsPermissionGranted", Handler: unaryHandler[Empty](methodIsPermissionGranted, func(ctx context.Context, in *Empty) (any, error) {
				return impl.IsPermissionGranted(ctx, in)
			})},
			{MethodName: "RequestPermission", Handler: unaryHandler[Empty](methodRequestPermission, func(ctx context.Context, in *Empty) (any, error) {
				return impl.RequestPermission(ctx, in)
			})},
			{MethodName: "SetBlockedApps", Handler: unaryHandler[SetBlockedAppsRequest](methodSetBlockedApps, func(ctx context.Context, in *SetBlockedAppsRequest) (any, error) {
				return impl.SetBlockedApps(ctx, in)
			})},
			{MethodName: "ClearBlockedApps", Handler: unaryHandler[Empty](methodClearBlockedApps, func(ctx context.Context, in *Empty) (any, error) {
				return impl.ClearBlockedApps(ctx, in)
			})},
			{MethodName: "GetBlockedApps", Handler: unaryHandler[Empty](methodGetBlockedApps, func(ctx context.Context, in *Empty) (any, error) {
				return impl.GetBlockedApps(ctx, in)
			})},
			{MethodName: "SetBreakGlassPhrase", Handler: unaryHandler[SetBreakGlassRequest](methodSetBreakGlass, func(ctx context.Context, in *SetBreakGlassRequest) (any, error) {
				return impl.SetBreakGlassPhrase(ctx, in)
			})},
			{MethodName: "EnableGrayscale", Handler: unaryHandler[Empty](methodEnableGrayscale, func(ctx context.Context, in *Empty) (any, error) {
				return impl.EnableGrayscale(ctx, in)
			})},
			{MethodName: "DisableGrayscale", Handler: unaryHandler[Empty](methodDisableGrayscale, func(ctx context.Context, in *Empty) (any, error) {
				return impl.DisableGrayscale(ctx, in)
			})},
			{MethodName: "IsGrayscaleEnabled", Handler: unaryHandler[Empty](methodIsGrayscaleEnabled, func(ctx context.Context, in *Empty) (any, error) {
				return impl.IsGrayscaleEnabled(ctx, in)
			})},
			{MethodName: "ToggleGrayscale", Handler: unaryHandler[BoolResponse](methodToggleGrayscale, func(ctx context.Context, in *BoolResponse) (any, error) {
				return impl.ToggleGrayscale(ctx, in)
			})},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/device-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl DevicePluginServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterDevicePluginServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewDevicePluginClient(conn), nil
}

func PluginMap(impl DevicePluginServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
