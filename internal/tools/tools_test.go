package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgribble/s3vmcp/internal/embedcli"
	"github.com/kgribble/s3vmcp/internal/s3vec"
	"github.com/kgribble/s3vmcp/internal/schema"
)

// fakeRunner records every invocation and replays canned output.
type fakeRunner struct {
	calls  [][]string
	subs   []string
	output string
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, subcommand string, args []string) (string, error) {
	f.subs = append(f.subs, subcommand)
	f.calls = append(f.calls, args)
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func newTestRegistry(t *testing.T, runner EmbedRunner) *Registry {
	t.Helper()
	if runner == nil {
		runner = &fakeRunner{output: "{}"}
	}
	reg, err := NewDefaultRegistry(NewService(s3vec.NewStub(), runner))
	require.NoError(t, err)
	return reg
}

func TestRegistryListsAllTools(t *testing.T) {
	reg := newTestRegistry(t, nil)

	names := make([]string, 0)
	for _, tool := range reg.List() {
		names = append(names, tool.Name)
	}

	assert.Equal(t, []string{
		"create_vector_bucket",
		"get_vector_bucket",
		"list_vector_buckets",
		"create_index",
		"get_index",
		"list_indexes",
		"list_vectors",
		"embed_and_store_text",
		"embed_and_store_file",
		"embed_and_store_s3_objects",
		"embed_and_query",
	}, names)
}

func TestCallUnknownTool(t *testing.T) {
	reg := newTestRegistry(t, nil)

	_, err := reg.Call(context.Background(), "drop_all_buckets", nil)
	assert.ErrorContains(t, err, "unknown tool")
}

func TestCallRejectsStructurallyInvalidArguments(t *testing.T) {
	runner := &fakeRunner{output: "{}"}
	reg := newTestRegistry(t, runner)
	ctx := context.Background()

	t.Run("missing required field", func(t *testing.T) {
		_, err := reg.Call(ctx, "create_index", json.RawMessage(`{"bucketName": "my-bucket"}`))
		var vErr *schema.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := reg.Call(ctx, "create_index", json.RawMessage(
			`{"bucketName": "my-bucket", "indexName": "my-index", "dimension": "big"}`))
		var vErr *schema.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("enum violation", func(t *testing.T) {
		_, err := reg.Call(ctx, "embed_and_store_text", json.RawMessage(
			`{"bucketName": "my-bucket", "indexName": "my-index", "textValue": "hi", "modelId": "gpt-4"}`))
		var vErr *schema.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	// Structural failures never reach a transport.
	assert.Empty(t, runner.calls)
}

func TestCallDomainValidation(t *testing.T) {
	reg := newTestRegistry(t, nil)

	_, err := reg.Call(context.Background(), "create_vector_bucket",
		json.RawMessage(`{"bucketName": "Invalid_Bucket"}`))

	var vErr *schema.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "bucketName", vErr.Field)
}

func TestCreateVectorBucketViaRegistry(t *testing.T) {
	reg := newTestRegistry(t, nil)

	result, err := reg.Call(context.Background(), "create_vector_bucket",
		json.RawMessage(`{"bucketName": "my-bucket"}`))
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestGetVectorBucketViaRegistry(t *testing.T) {
	reg := newTestRegistry(t, nil)

	result, err := reg.Call(context.Background(), "get_vector_bucket",
		json.RawMessage(`{"bucketName": "my-bucket"}`))
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestListVectorsSegmentPairingViaRegistry(t *testing.T) {
	reg := newTestRegistry(t, nil)

	_, err := reg.Call(context.Background(), "list_vectors", json.RawMessage(
		`{"bucketName": "my-bucket", "indexName": "my-index", "segmentCount": 4}`))

	var vErr *schema.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "together")
}

func TestEmbedAndStoreTextDecodesJSON(t *testing.T) {
	runner := &fakeRunner{output: `{"key": "doc-1", "status": "stored"}`}
	reg := newTestRegistry(t, runner)

	result, err := reg.Call(context.Background(), "embed_and_store_text", json.RawMessage(
		`{"bucketName": "my-bucket", "indexName": "my-index", "textValue": "hello"}`))
	require.NoError(t, err)

	res, ok := result.(*embedcli.Result)
	require.True(t, ok)
	assert.True(t, res.Decoded)

	require.Equal(t, []string{embedcli.SubcommandPut}, runner.subs)
	assert.Equal(t, []string{
		"--vector-bucket-name", "my-bucket",
		"--index-name", "my-index",
		"--model-id", "amazon.titan-embed-text-v2:0",
		"--text-value", "hello",
	}, runner.calls[0])
}

func TestEmbedAndStoreTextSanitizesControlCharacters(t *testing.T) {
	runner := &fakeRunner{output: "{}"}
	reg := newTestRegistry(t, runner)

	_, err := reg.Call(context.Background(), "embed_and_store_text", json.RawMessage(
		`{"bucketName": "my-bucket", "indexName": "my-index", "textValue": "hel\u0001lo"}`))
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0], "hello")
}

func TestEmbedAndStoreS3ObjectsReturnsRawText(t *testing.T) {
	runner := &fakeRunner{output: "Processed 14 objects\n"}
	reg := newTestRegistry(t, runner)

	result, err := reg.Call(context.Background(), "embed_and_store_s3_objects", json.RawMessage(
		`{"bucketName": "my-bucket", "indexName": "my-index", "s3Path": "s3://docs/reports/*.pdf", "modality": "text"}`))
	require.NoError(t, err)

	res, ok := result.(*embedcli.Result)
	require.True(t, ok)
	assert.False(t, res.Decoded)
	assert.Equal(t, "Processed 14 objects\n", res.Text)
}

func TestEmbedAndQueryArgumentsDoNotAccumulate(t *testing.T) {
	runner := &fakeRunner{output: "KEY  DISTANCE\n"}
	reg := newTestRegistry(t, runner)
	ctx := context.Background()

	_, err := reg.Call(ctx, "embed_and_query", json.RawMessage(
		`{"bucketName": "my-bucket", "indexName": "my-index", "queryInput": "q", "topK": 5}`))
	require.NoError(t, err)

	_, err = reg.Call(ctx, "embed_and_query", json.RawMessage(
		`{"bucketName": "my-bucket", "indexName": "my-index", "queryInput": "q", "topK": 10}`))
	require.NoError(t, err)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, 1, countFlag(runner.calls[0], "--k"))
	assert.Equal(t, 1, countFlag(runner.calls[1], "--k"))
	assert.Contains(t, runner.calls[0], "5")
	assert.NotContains(t, runner.calls[1], "5")
	assert.Contains(t, runner.calls[1], "10")
}

func TestEmbedAndQuerySurfacesExecErrors(t *testing.T) {
	runner := &fakeRunner{err: &embedcli.ExecError{Command: "s3vectors-embed query", ExitCode: 2, Stderr: "index not found"}}
	reg := newTestRegistry(t, runner)

	_, err := reg.Call(context.Background(), "embed_and_query", json.RawMessage(
		`{"bucketName": "my-bucket", "indexName": "my-index", "queryInput": "q"}`))

	var execErr *embedcli.ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 2, execErr.ExitCode)
}

func TestEmbedAndStoreFileModalityMismatch(t *testing.T) {
	runner := &fakeRunner{output: "{}"}
	reg := newTestRegistry(t, runner)

	_, err := reg.Call(context.Background(), "embed_and_store_file", json.RawMessage(
		`{"bucketName": "my-bucket", "indexName": "my-index", "file": "report.pdf", "modality": "image", "modelId": "amazon.titan-embed-image-v1"}`))

	var vErr *schema.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "modality", vErr.Field)
	assert.Empty(t, runner.calls)
}

func countFlag(args []string, flag string) int {
	n := 0
	for _, a := range args {
		if a == flag {
			n++
		}
	}
	return n
}
