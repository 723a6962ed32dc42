// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

// Package plugin implements the protoc code-generator protocol: a
// CodeGeneratorRequest arrives on stdin, a CodeGeneratorResponse leaves on
// stdout, and all failures travel in the response's error field.
package plugin

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/ObsidianMinor/protrust/internal/rustgen"
	"github.com/ObsidianMinor/protrust/internal/schema"
)

// Run reads one request from in, generates, and writes the response to
// out. Only transport failures return an error; generation failures are
// reported through the response so protoc can surface them.
func Run(in io.Reader, out io.Writer) error {
	input, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	req := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(input, req); err != nil {
		return fmt.Errorf("failed to unmarshal request: %w", err)
	}

	output, err := proto.Marshal(Generate(req))
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if _, err := out.Write(output); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// Generate runs the generator for one request: options first (so a bad
// parameter rejects the run before any output exists), then the schema
// graph, then one unit per requested file and the run's single manifest.
func Generate(req *pluginpb.CodeGeneratorRequest) *pluginpb.CodeGeneratorResponse {
	resp := &pluginpb.CodeGeneratorResponse{
		SupportedFeatures: proto.Uint64(uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)),
	}
	fail := func(err error) *pluginpb.CodeGeneratorResponse {
		resp.File = nil
		resp.Error = proto.String(err.Error())
		return resp
	}

	opts, err := rustgen.ParseOptions(req.GetParameter())
	if err != nil {
		return fail(err)
	}

	files, err := schema.Build(req.GetProtoFile())
	if err != nil {
		return fail(err)
	}

	byName := make(map[string]*schema.File, len(files))
	for _, f := range files {
		byName[f.Name] = f
	}

	var targets []*schema.File
	for _, name := range req.GetFileToGenerate() {
		f, ok := byName[name]
		if !ok {
			return fail(fmt.Errorf("file to generate %q not present in request", name))
		}
		targets = append(targets, f)
	}

	for _, f := range targets {
		content, err := rustgen.GenerateFile(f, opts)
		if err != nil {
			return fail(err)
		}
		resp.File = append(resp.File, &pluginpb.CodeGeneratorResponse_File{
			Name:    proto.String(rustgen.OutputFilePath(f, opts)),
			Content: proto.String(string(content)),
		})
	}

	resp.File = append(resp.File, &pluginpb.CodeGeneratorResponse_File{
		Name:    proto.String("mod.rs"),
		Content: proto.String(string(rustgen.GenerateManifest(targets, opts))),
	})
	return resp
}
