package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/coppervale/stencil/internal/gen"
	"github.com/coppervale/stencil/internal/model"
)

// ModelsOutput is the output for the models tool.
type ModelsOutput struct {
	Count  int          `json:"count"  jsonschema:"number of models available"`
	Models []model.Info `json:"models" jsonschema:"model metadata, sorted by name"`
}

func handleModels(generator *gen.Generator) mcp.ToolHandlerFor[struct{}, ModelsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, ModelsOutput, error) {
		infos, err := generator.Library().List()
		if err != nil {
			return nil, ModelsOutput{}, fmt.Errorf("listing models: %w", err)
		}
		return nil, ModelsOutput{Count: len(infos), Models: infos}, nil
	}
}

// ShowInput is the input for the show tool.
type ShowInput struct {
	Name string `json:"name" jsonschema:"model name (file stem)"`
}

// PlaceholderInfo describes one placeholder line of a model.
type PlaceholderInfo struct {
	Line  int `json:"line"  jsonschema:"1-based line number in the model"`
	Index int `json:"index" jsonschema:"argument index consumed by this line"`
}

// ShowOutput is the output for the show tool.
type ShowOutput struct {
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Source       string            `json:"source"            jsonschema:"workspace or global"`
	Lines        int               `json:"lines"             jsonschema:"total line count"`
	RequiredArgs int               `json:"required_args"     jsonschema:"arguments the model needs"`
	ArgNames     []string          `json:"arg_names,omitempty" jsonschema:"documented argument names from frontmatter"`
	Placeholders []PlaceholderInfo `json:"placeholders,omitempty"`
}

func handleShow(generator *gen.Generator) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		if input.Name == "" {
			return nil, ShowOutput{}, fmt.Errorf("name is required")
		}

		m, err := generator.Library().Load(input.Name)
		if err != nil {
			return nil, ShowOutput{}, err
		}

		out := ShowOutput{
			Name:         m.Name,
			Description:  m.Description,
			Source:       m.Source,
			Lines:        len(m.Lines),
			RequiredArgs: m.RequiredArgs(),
			ArgNames:     m.ArgNames,
		}
		for _, line := range m.Placeholders() {
			out.Placeholders = append(out.Placeholders, PlaceholderInfo{
				Line:  line.Num,
				Index: line.ArgIndex,
			})
		}
		return nil, out, nil
	}
}

// ImageInfo describes one loaded image.
type ImageInfo struct {
	Name string `json:"name"`
	Size int    `json:"size" jsonschema:"content size in bytes"`
}

// ImagesOutput is the output for the images tool.
type ImagesOutput struct {
	Count  int         `json:"count"`
	Images []ImageInfo `json:"images" jsonschema:"loaded images, sorted by name"`
}

func handleImages(generator *gen.Generator) mcp.ToolHandlerFor[struct{}, ImagesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, ImagesOutput, error) {
		store := generator.Images()
		out := ImagesOutput{Count: store.Len()}
		for _, name := range store.Names() {
			content, err := store.Get(name)
			if err != nil {
				return nil, ImagesOutput{}, err
			}
			out.Images = append(out.Images, ImageInfo{Name: name, Size: len(content)})
		}
		return nil, out, nil
	}
}

// GenerateInput is the input for the generate tool.
type GenerateInput struct {
	Model string   `json:"model"           jsonschema:"model name (file stem)"`
	Args  []string `json:"args,omitempty"  jsonschema:"ordered argument strings, consumed by index"`
	Out   string   `json:"out,omitempty"   jsonschema:"output file path; when empty the output is returned inline"`
	Force bool     `json:"force,omitempty" jsonschema:"overwrite an existing output file"`
}

// GenerateOutput is the output for the generate tool.
type GenerateOutput struct {
	Model  string `json:"model"`
	Output string `json:"output,omitempty" jsonschema:"generated content, when no out path was given"`
	Path   string `json:"path,omitempty"   jsonschema:"file the output was written to"`
	Bytes  int    `json:"bytes"            jsonschema:"generated size in bytes"`
}

func handleGenerate(generator *gen.Generator) mcp.ToolHandlerFor[GenerateInput, GenerateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		if input.Model == "" {
			return nil, GenerateOutput{}, fmt.Errorf("model is required")
		}

		out, err := generator.Generate(input.Model, input.Args)
		if err != nil {
			return nil, GenerateOutput{}, err
		}

		result := GenerateOutput{Model: input.Model, Bytes: len(out)}
		if input.Out == "" {
			result.Output = string(out)
			return nil, result, nil
		}

		if err := generator.GenerateFile(input.Out, input.Model, input.Args, input.Force); err != nil {
			return nil, GenerateOutput{}, err
		}
		result.Path = input.Out
		return nil, result, nil
	}
}
