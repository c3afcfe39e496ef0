package volur

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volur-ai/sdk-go/api"
	"github.com/volur-ai/sdk-go/types"
)

type fakeUploader struct {
	result types.UploadResult
	err    error
	calls  []string
}

func (f *fakeUploader) UploadMaterialsInformation(_ context.Context, _ api.MaterialIterator) (types.UploadResult, error) {
	f.calls = append(f.calls, "materials")
	return f.result, f.err
}

func (f *fakeUploader) UploadProductsInformation(_ context.Context, _ api.ProductIterator) (types.UploadResult, error) {
	f.calls = append(f.calls, "products")
	return f.result, f.err
}

func (f *fakeUploader) UploadDemandInformation(_ context.Context, _ api.DemandIterator) (types.UploadResult, error) {
	f.calls = append(f.calls, "demand")
	return f.result, f.err
}

type closableMaterials struct {
	closed bool
}

func (s *closableMaterials) Next(_ context.Context) (*types.Material, error) { return nil, io.EOF }

func (s *closableMaterials) Close() error {
	s.closed = true
	return nil
}

func newFakeClient(fake *fakeUploader) *Client {
	return &Client{api: fake, log: zerolog.Nop()}
}

func TestClientUploadsEveryKind(t *testing.T) {
	fake := &fakeUploader{}
	client := newFakeClient(fake)

	require.NoError(t, client.UploadMaterialsInformation(context.Background(), &closableMaterials{}))
	require.NoError(t, client.UploadProductsInformation(context.Background(), nil))
	require.NoError(t, client.UploadDemandInformation(context.Background(), nil))

	assert.Equal(t, []string{"materials", "products", "demand"}, fake.calls)
}

func TestClientPropagatesSessionErrors(t *testing.T) {
	sessionErr := errors.New("row 3: bad value")
	client := newFakeClient(&fakeUploader{err: sessionErr})

	err := client.UploadMaterialsInformation(context.Background(), &closableMaterials{})
	assert.ErrorIs(t, err, sessionErr)
}

func TestClientTurnsFailedResultsIntoErrors(t *testing.T) {
	client := newFakeClient(&fakeUploader{
		result: types.UploadResult{Code: 16, Message: "invalid token"},
	})

	err := client.UploadMaterialsInformation(context.Background(), &closableMaterials{})
	require.EqualError(t, err, "uploading materials information failed with status 16: invalid token")
}

func TestClientClosesTheSource(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		source := &closableMaterials{}
		client := newFakeClient(&fakeUploader{})

		require.NoError(t, client.UploadMaterialsInformation(context.Background(), source))
		assert.True(t, source.closed)
	})

	t.Run("on failure", func(t *testing.T) {
		source := &closableMaterials{}
		client := newFakeClient(&fakeUploader{err: errors.New("mid-stream failure")})

		require.Error(t, client.UploadMaterialsInformation(context.Background(), source))
		assert.True(t, source.closed, "a failed session must not leak the source")
	})
}

func TestNewClientWithSettings(t *testing.T) {
	client := NewClientWithSettings(api.Settings{Address: "api.volur.example:443", Token: "secret"})
	require.NotNil(t, client)
	assert.NotNil(t, client.api)
}
