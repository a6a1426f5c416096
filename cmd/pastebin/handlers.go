package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/waferhq/wafer/core/response"
	"github.com/waferhq/wafer/core/route"
	"github.com/waferhq/wafer/core/static"
	"github.com/waferhq/wafer/core/view"
)

// pastebin wires the application handlers to their collaborators.
type pastebin struct {
	pastes *pasteStore
	views  *view.Renderer
	files  *static.Dir
}

func (p *pastebin) register(reg *route.Registry) {
	reg.Register("index", p.index)
	reg.Register("paste", p.paste,
		route.Required("pasteID"),
		route.Optional("action", ""),
	)
	reg.Register("static", p.static, route.Required("path"))
	reg.Register("stream", p.stream)
}

// index shows the paste form on GET and creates a paste on POST.
func (p *pastebin) index(ctx route.Context, _ []any) (response.Result, error) {
	if ctx.Method() == http.MethodPost {
		content, _ := ctx.Form().First("paste_content")
		id := uuid.NewString()
		if err := p.pastes.Save(ctx, id, content); err != nil {
			return response.Result{}, err
		}
		return response.Redirect("/paste/" + id), nil
	}

	page, err := p.views.Render("index.html", nil)
	if err != nil {
		return response.Result{}, err
	}
	return response.Body(page), nil
}

// paste shows a stored paste, or deletes it when action is "delete".
func (p *pastebin) paste(ctx route.Context, args []any) (response.Result, error) {
	id := args[0].(string)
	action := args[1].(string)

	if action == "delete" {
		if err := p.pastes.Delete(ctx, id); err != nil {
			return response.Result{}, err
		}
		return response.Redirect("/"), nil
	}

	content, err := p.pastes.Get(ctx, id)
	if errors.Is(err, errPasteNotFound) {
		return response.StatusBody(404, "404 Not Found"), nil
	}
	if err != nil {
		return response.Result{}, err
	}

	page, err := p.views.Render("paste.html", map[string]any{
		"pasteID": id,
		"content": content,
	})
	if err != nil {
		return response.Result{}, err
	}
	return response.Body(page), nil
}

// static serves files from the static directory. Only the first path
// segment is addressable here; nested assets arrive via PathParams.
func (p *pastebin) static(ctx route.Context, args []any) (response.Result, error) {
	path := args[0].(string)
	if extras := ctx.PathParams(); len(extras) > 1 {
		for _, extra := range extras[1:] {
			path += "/" + extra
		}
	}
	return p.files.Serve(path), nil
}

// stream demonstrates a lazily produced chunked body.
func (p *pastebin) stream(ctx route.Context, _ []any) (response.Result, error) {
	return response.Body(response.Chunks(func(yield func([]byte) bool) {
		for i := 1; i <= 5; i++ {
			select {
			case <-ctx.Done():
				return
			case <-time.After(200 * time.Millisecond):
			}
			if !yield(fmt.Appendf(nil, "tick %d\n", i)) {
				return
			}
		}
	})), nil
}
