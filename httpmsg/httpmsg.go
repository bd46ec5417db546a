// Package httpmsg moves message params between fasthttp requests/responses and params.List.
package httpmsg

import (
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"

	"github.com/iostrovok/openidparams/internal/text"
	"github.com/iostrovok/openidparams/params"
)

const (
	ContentTypeForm         = "application/x-www-form-urlencoded"
	ContentTypeKeyValueForm = "text/plain"

	keyValueFormResponseType = "text/plain; charset=UTF-8"
)

var (
	ErrUnsupportedMethod      = errors.New("unsupported method")
	ErrUnsupportedContentType = errors.New("unsupported content type")
)

// FromRequest decodes the message carried by a request: the query string of a GET,
// or the body of a POST which is either a form or a key-value form.
func FromRequest(ctx *fasthttp.RequestCtx) (*params.List, error) {
	switch {
	case ctx.IsGet(), ctx.IsHead():
		return params.FromQueryString(string(ctx.URI().QueryString()))
	case ctx.IsPost():
	default:
		return nil, errors.Wrap(ErrUnsupportedMethod, string(ctx.Method()))
	}

	contentType := string(ctx.Request.Header.ContentType())
	switch text.MediaType(contentType) {
	case ContentTypeForm:
		return params.FromQueryString(string(ctx.PostBody()))
	case ContentTypeKeyValueForm:
		return params.FromKeyValueForm(string(ctx.PostBody()))
	}

	return nil, errors.Wrap(ErrUnsupportedContentType, contentType)
}

// WriteKeyValueForm writes a direct response.
func WriteKeyValueForm(ctx *fasthttp.RequestCtx, list *params.List, status int) {
	ctx.SetStatusCode(status)
	ctx.SetContentType(keyValueFormResponseType)
	ctx.SetBodyString(list.KeyValueForm())
}

// RedirectURL appends the list to the query of base, for indirect messages.
func RedirectURL(base string, list *params.List) (string, error) {
	uri := fasthttp.AcquireURI()
	defer fasthttp.ReleaseURI(uri)

	if err := uri.Parse(nil, []byte(base)); err != nil {
		return "", errors.Wrapf(err, "redirect url %q", base)
	}

	query := list.QueryString()
	if existing := uri.QueryString(); len(existing) > 0 && query != "" {
		query = string(existing) + "&" + query
	} else if len(existing) > 0 {
		query = string(existing)
	}

	uri.SetQueryString(query)
	return uri.String(), nil
}
