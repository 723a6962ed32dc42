// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package plugin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"
)

func testRequest() *pluginpb.CodeGeneratorRequest {
	return &pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{"example.proto"},
		ProtoFile: []*descriptorpb.FileDescriptorProto{
			{
				Name:    proto.String("example.proto"),
				Package: proto.String("example"),
				Syntax:  proto.String("proto3"),
				MessageType: []*descriptorpb.DescriptorProto{
					{
						Name: proto.String("Test"),
						Field: []*descriptorpb.FieldDescriptorProto{
							{
								Name:   proto.String("value"),
								Number: proto.Int32(1),
								Type:   descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
								Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
							},
						},
					},
				},
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	resp := Generate(testRequest())

	require.Nil(t, resp.Error)
	assert.Equal(t, uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL), resp.GetSupportedFeatures())

	require.Len(t, resp.File, 2)
	assert.Equal(t, "example.proto/protrust.rs", resp.File[0].GetName())
	assert.Contains(t, resp.File[0].GetContent(), "pub struct Test {")

	assert.Equal(t, "mod.rs", resp.File[1].GetName())
	assert.Contains(t, resp.File[1].GetContent(), "pub mod example_proto {")
	assert.Contains(t, resp.File[1].GetContent(), "// DO NOT EDIT!")
}

func TestGenerate_OnlyRequestedFiles(t *testing.T) {
	req := testRequest()
	req.ProtoFile = append(req.ProtoFile, &descriptorpb.FileDescriptorProto{
		Name:    proto.String("other.proto"),
		Package: proto.String("other"),
		Syntax:  proto.String("proto3"),
	})

	resp := Generate(req)
	require.Nil(t, resp.Error)

	// other.proto is a dependency only, so just example.proto and mod.rs.
	require.Len(t, resp.File, 2)
	assert.Equal(t, "example.proto/protrust.rs", resp.File[0].GetName())
}

func TestGenerate_Parameter(t *testing.T) {
	req := testRequest()
	req.Parameter = proto.String("file_extension=.txt")

	resp := Generate(req)
	require.Nil(t, resp.Error)
	assert.Equal(t, "example.proto/protrust.txt", resp.File[0].GetName())
}

func TestGenerate_BadParameter(t *testing.T) {
	req := testRequest()
	req.Parameter = proto.String("bogus=1")

	resp := Generate(req)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.GetError(), `unrecognized option "bogus"`)
	assert.Empty(t, resp.File)
}

func TestGenerate_MissingFileToGenerate(t *testing.T) {
	req := testRequest()
	req.FileToGenerate = []string{"missing.proto"}

	resp := Generate(req)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.GetError(), `"missing.proto" not present`)
	assert.Empty(t, resp.File)
}

func TestRun(t *testing.T) {
	input, err := proto.Marshal(testRequest())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Run(bytes.NewReader(input), &out))

	resp := &pluginpb.CodeGeneratorResponse{}
	require.NoError(t, proto.Unmarshal(out.Bytes(), resp))
	assert.Nil(t, resp.Error)
	assert.Len(t, resp.File, 2)
}

func TestRun_MalformedRequest(t *testing.T) {
	var out bytes.Buffer
	err := Run(bytes.NewReader([]byte{0xff, 0xff, 0xff}), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal request")
}
