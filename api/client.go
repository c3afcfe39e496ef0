package api

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/volur-ai/sdk-go/types"
)

// Full method names of the upload RPCs.
const (
	UploadMaterialsMethod = "/volur.pork.materials.v1alpha3.MaterialInformationService/UploadMaterialInformation"
	UploadProductsMethod  = "/volur.pork.products.v1alpha3.ProductInformationService/UploadProductInformation"
	UploadDemandMethod    = "/volur.pork.demand.v1alpha2.DemandInformationService/UploadDemandInformation"
)

// invalidTokenMessage is the user-actionable result message for rejected
// credentials, as opposed to surfacing a bare transport status.
const invalidTokenMessage = "invalid token, set a valid token using the " + EnvToken + " environment variable"

// MaterialIterator yields material records one at a time, ending with io.EOF.
// sources/csv.MaterialsSource implements it.
type MaterialIterator interface {
	Next(ctx context.Context) (*types.Material, error)
}

// ProductIterator yields product records one at a time, ending with io.EOF.
type ProductIterator interface {
	Next(ctx context.Context) (*types.Product, error)
}

// DemandIterator yields demand records one at a time, ending with io.EOF.
type DemandIterator interface {
	Next(ctx context.Context) (*types.Demand, error)
}

// Client uploads record streams to the platform. Each Upload call owns one
// connection and one stream for the lifetime of the session; clients wanting
// concurrent uploads run independent sessions.
type Client struct {
	settings Settings
	log      zerolog.Logger
	dialOpts []grpc.DialOption
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for session events. The default client is
// silent.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithDialOptions appends gRPC dial options, after the defaults so they take
// precedence.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) { c.dialOpts = append(c.dialOpts, opts...) }
}

// NewClient builds a client for the configured endpoint.
func NewClient(settings Settings, opts ...Option) *Client {
	client := &Client{
		settings: settings,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// UploadMaterialsInformation streams every material of the source to the
// platform and reduces the exchange to one terminal result. A returned error
// means the session failed locally, before or outside the transport: a source
// or coercion failure, or a protocol violation. Transport failures are
// reported through the result's code and message instead.
func (c *Client) UploadMaterialsInformation(ctx context.Context, materials MaterialIterator) (types.UploadResult, error) {
	return upload(ctx, c, "materials", UploadMaterialsMethod,
		func(ctx context.Context) (*types.UploadMaterialInformationRequest, error) {
			material, err := materials.Next(ctx)
			if err != nil {
				return nil, err
			}
			return &types.UploadMaterialInformationRequest{Material: material}, nil
		},
		func(response *types.UploadMaterialInformationResponse) *types.Status {
			return response.Status
		},
	)
}

// UploadProductsInformation streams every product of the source to the
// platform. See UploadMaterialsInformation for the result contract.
func (c *Client) UploadProductsInformation(ctx context.Context, products ProductIterator) (types.UploadResult, error) {
	return upload(ctx, c, "products", UploadProductsMethod,
		func(ctx context.Context) (*types.UploadProductInformationRequest, error) {
			product, err := products.Next(ctx)
			if err != nil {
				return nil, err
			}
			return &types.UploadProductInformationRequest{Product: product}, nil
		},
		func(response *types.UploadProductInformationResponse) *types.Status {
			return response.Status
		},
	)
}

// UploadDemandInformation streams every demand record of the source to the
// platform. See UploadMaterialsInformation for the result contract.
func (c *Client) UploadDemandInformation(ctx context.Context, demand DemandIterator) (types.UploadResult, error) {
	return upload(ctx, c, "demand", UploadDemandMethod,
		func(ctx context.Context) (*types.UploadDemandInformationRequest, error) {
			record, err := demand.Next(ctx)
			if err != nil {
				return nil, err
			}
			return &types.UploadDemandInformationRequest{Demand: record}, nil
		},
		func(response *types.UploadDemandInformationResponse) *types.Status {
			return response.Status
		},
	)
}

func (c *Client) dial() (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})),
	}
	opts = append(opts, c.dialOpts...)
	conn, err := grpc.NewClient(c.settings.Address, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", c.settings.Address, err)
	}
	return conn, nil
}

// upload drives one session: a producer goroutine feeds the outbound half of
// the stream from the record source while a consumer drains the inbound half,
// tallying statuses. Responses are never correlated positionally with
// requests; they are a pure status tally.
func upload[Req, Resp any](
	ctx context.Context,
	c *Client,
	kind string,
	method string,
	nextRequest func(ctx context.Context) (*Req, error),
	responseStatus func(*Resp) *types.Status,
) (types.UploadResult, error) {
	log := c.log.With().Str("kind", kind).Logger()
	log.Info().Msg("start uploading")

	conn, err := c.dial()
	if err != nil {
		return types.UploadResult{}, err
	}
	defer conn.Close()

	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.settings.Token)

	group, streamCtx := errgroup.WithContext(ctx)
	desc := &grpc.StreamDesc{
		StreamName:    method,
		ClientStreams: true,
		ServerStreams: true,
	}
	stream, err := conn.NewStream(streamCtx, desc, method, grpc.CallContentSubtype(codecName))
	if err != nil {
		return reduce(log, err)
	}

	group.Go(func() error {
		for {
			request, err := nextRequest(streamCtx)
			if errors.Is(err, io.EOF) {
				return stream.CloseSend()
			}
			if err != nil {
				return err
			}
			if err := stream.SendMsg(request); err != nil {
				// The actual failure surfaces on the receive side.
				return nil
			}
		}
	})

	group.Go(func() error {
		for {
			response := new(Resp)
			if err := stream.RecvMsg(response); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			st := responseStatus(response)
			if st == nil {
				return &MalformedResponseError{}
			}
			if st.Code != 0 {
				log.Error().
					Int32("response_status_code", st.Code).
					Str("response_status_message", st.Message).
					Msg("server reported an error status")
			} else {
				log.Debug().Msg("record acknowledged")
			}
		}
	})

	if err := group.Wait(); err != nil {
		return reduce(log, err)
	}
	log.Info().Msg("successfully uploaded")
	return types.UploadResult{}, nil
}

// reduce folds a session failure into the terminal result. Transport
// statuses become the result's code and message; everything else, such as
// record production failures and protocol violations, propagates as an error
// so the caller can tell data problems from transport problems.
func reduce(log zerolog.Logger, err error) (types.UploadResult, error) {
	var malformed *MalformedResponseError
	if errors.As(err, &malformed) {
		log.Error().Msg("protocol violation: response does not contain a status")
		return types.UploadResult{}, err
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() == codes.Canceled {
		log.Error().Err(err).Msg("error occurred while generating requests")
		return types.UploadResult{}, err
	}
	if st.Code() == codes.Unauthenticated {
		log.Error().Msg(invalidTokenMessage)
		return types.UploadResult{
			Code:    int32(codes.Unauthenticated),
			Message: invalidTokenMessage,
		}, nil
	}
	log.Error().
		Str("rpc_error_code", st.Code().String()).
		Str("rpc_error_details", st.Message()).
		Msg("error occurred while uploading")
	return types.UploadResult{
		Code:    int32(st.Code()),
		Message: st.Message(),
	}, nil
}
