// Package volur is the entry point of the Völur SDK: a blocking client that
// maps CSV data into typed records and streams them to the Völur platform.
//
// Configure sources with the sources/csv package, then hand them to Client:
//
//	client, err := volur.NewClient()
//	if err != nil { ... }
//	source, err := csv.NewMaterialsSource(csv.MaterialsConfig{
//		Path:       "materials.csv",
//		MaterialID: idColumn,
//	})
//	if err != nil { ... }
//	err = client.UploadMaterialsInformation(ctx, source)
package volur

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/volur-ai/sdk-go/api"
	"github.com/volur-ai/sdk-go/types"
)

// uploader is the slice of the streaming API client the facade drives.
type uploader interface {
	UploadMaterialsInformation(ctx context.Context, materials api.MaterialIterator) (types.UploadResult, error)
	UploadProductsInformation(ctx context.Context, products api.ProductIterator) (types.UploadResult, error)
	UploadDemandInformation(ctx context.Context, demand api.DemandIterator) (types.UploadResult, error)
}

// Client is the synchronous entry point of the SDK. It drives one streaming
// session per call to completion and logs the terminal outcome; it holds no
// business logic of its own.
type Client struct {
	api uploader
	log zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger replaces the client's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient loads settings from the environment (VOLUR_API_ADDRESS,
// VOLUR_API_TOKEN, optional VOLUR_API_DEBUG and a local .env file) and builds
// a client.
func NewClient(opts ...Option) (*Client, error) {
	settings, err := api.LoadSettings()
	if err != nil {
		return nil, err
	}
	return NewClientWithSettings(settings, opts...), nil
}

// NewClientWithSettings builds a client from explicit settings. With Debug
// set, session events are written to stderr; otherwise the client is silent
// unless WithLogger is used.
func NewClientWithSettings(settings api.Settings, opts ...Option) *Client {
	client := &Client{log: zerolog.Nop()}
	if settings.Debug {
		client.log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
		})).With().Timestamp().Logger()
	}
	for _, opt := range opts {
		opt(client)
	}
	client.api = api.NewClient(settings, api.WithLogger(client.log))
	return client
}

// UploadMaterialsInformation uploads every material the source yields and
// blocks until the session reaches its terminal result.
func (c *Client) UploadMaterialsInformation(ctx context.Context, materials api.MaterialIterator) error {
	defer closeSource(materials)
	result, err := c.api.UploadMaterialsInformation(ctx, materials)
	return c.outcome("materials", result, err)
}

// UploadProductsInformation uploads every product the source yields and
// blocks until the session reaches its terminal result.
func (c *Client) UploadProductsInformation(ctx context.Context, products api.ProductIterator) error {
	defer closeSource(products)
	result, err := c.api.UploadProductsInformation(ctx, products)
	return c.outcome("products", result, err)
}

// UploadDemandInformation uploads every demand record the source yields and
// blocks until the session reaches its terminal result.
func (c *Client) UploadDemandInformation(ctx context.Context, demand api.DemandIterator) error {
	defer closeSource(demand)
	result, err := c.api.UploadDemandInformation(ctx, demand)
	return c.outcome("demand", result, err)
}

// outcome logs the terminal state of a session and never masks a failure as
// success.
func (c *Client) outcome(kind string, result types.UploadResult, err error) error {
	if err != nil {
		c.log.Error().Err(err).Msgf("error occurred while uploading %s information", kind)
		return err
	}
	if !result.Ok() {
		c.log.Error().
			Int32("response_status_code", result.Code).
			Str("response_status_message", result.Message).
			Msgf("error occurred while uploading %s information", kind)
		return fmt.Errorf("uploading %s information failed with status %d: %s", kind, result.Code, result.Message)
	}
	c.log.Info().Msgf("successfully uploaded %s information", kind)
	return nil
}

// closeSource releases a source that still holds resources, such as a file
// handle left open by a session that failed mid-stream.
func closeSource(source any) {
	if closer, ok := source.(io.Closer); ok {
		_ = closer.Close()
	}
}
