package binder

import (
	"net/url"

	"github.com/waferhq/wafer/core/form"
	"github.com/waferhq/wafer/core/route"
)

// Bind resolves a handler's declared parameters into an argument list, in
// declaration order. Each parameter takes the first source that can supply
// it:
//
//  1. the next unclaimed positional path parameter, consumed left to right
//  2. the first query value under the parameter's name
//  3. the first body value under the parameter's name
//  4. the uploaded file under the parameter's name
//  5. the session attribute under the parameter's name
//  6. the declared default
//
// Positional consumption is destructive and shared across the whole call:
// parameter order, not name, decides which segment each parameter gets.
// A parameter no source can supply fails the bind with a
// MissingParameterError; no partial argument list is ever returned.
func Bind(
	params []route.Param,
	positional []string,
	query url.Values,
	body form.Fields,
	files form.Files,
	sessionValues map[string]any,
) ([]any, error) {
	args := make([]any, 0, len(params))

	for _, param := range params {
		switch {
		case len(positional) > 0:
			args = append(args, positional[0])
			positional = positional[1:]
		case query.Has(param.Name):
			args = append(args, query.Get(param.Name))
		case hasFirst(body, param.Name):
			value, _ := body.First(param.Name)
			args = append(args, value)
		case hasFile(files, param.Name):
			args = append(args, files[param.Name])
		case hasValue(sessionValues, param.Name):
			args = append(args, sessionValues[param.Name])
		case param.HasDefault:
			args = append(args, param.Default)
		default:
			return nil, MissingParameterError{Name: param.Name}
		}
	}

	return args, nil
}

func hasFirst(fields form.Fields, name string) bool {
	_, ok := fields.First(name)
	return ok
}

func hasFile(files form.Files, name string) bool {
	_, ok := files[name]
	return ok
}

func hasValue(values map[string]any, name string) bool {
	_, ok := values[name]
	return ok
}
