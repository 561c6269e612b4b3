package internal

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// RedirectPageFunc builds the page served in place of a cookie-setting redirect.
type RedirectPageFunc func(location string) templ.Component

// RedirectPage renders a page that navigates to location on the client side:
// a meta refresh, an inline script and a fallback link. Locations with unsafe
// schemes are replaced by templ's sanitization URL.
func RedirectPage(location string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		target := string(templ.URL(location))
		script, err := templ.JSONString(target)
		if err != nil {
			return err
		}
		attr := templ.EscapeString(target)

		var buf bytes.Buffer
		buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		buf.WriteString("<meta charset=\"utf-8\">\n")
		buf.WriteString("<meta http-equiv=\"refresh\" content=\"1;url=" + attr + "\">\n")
		buf.WriteString("<script>window.location.href = " + script + ";</script>\n")
		buf.WriteString("<title>Redirecting</title>\n</head>\n<body>\n")
		buf.WriteString("<p>If you are not redirected automatically, follow this <a href=\"" + attr + "\">link</a>.</p>\n")
		buf.WriteString("</body>\n</html>\n")

		_, err = w.Write(buf.Bytes())
		return err
	})
}

// renderRedirect renders the page for location into memory so the body size is
// known before headers go out.
func renderRedirect(ctx context.Context, page RedirectPageFunc, location string) ([]byte, error) {
	var buf bytes.Buffer
	if err := page(location).Render(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
