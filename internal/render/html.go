package render

import (
	"bytes"
	"html/template"

	"wishlist-console/internal/model"
)

// HTML renders the result tables as the bootstrap-styled markup of the web
// console, so the output can be pasted into a page or report.
type HTML struct{}

var wishlistTmpl = template.Must(template.New("wishlists").Parse(
	`<table class="table table-striped" cellpadding="10">
<thead><tr>
{{- range .Headers}}<th class="col-md-1">{{.}}</th>{{end -}}
</tr></thead>
<tbody>
{{- range .Rows}}
<tr id="row_{{.Index}}"><td>{{.ID}}</td><td>{{.UserID}}</td><td>{{.Name}}</td><td>{{.Archived}}</td><td>
<table class="table table-condensed">
<thead><tr>{{range $.ProductHeaders}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Products}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody></table>
</td></tr>
{{- end}}
</tbody></table>
`))

var productTmpl = template.Must(template.New("products").Parse(
	`<table class="table table-striped" cellpadding="10">
<thead><tr>
{{- range .Headers}}<th class="col-md-1">{{.}}</th>{{end -}}
</tr></thead>
<tbody>
{{- range $i, $r := .Rows}}
<tr id="row_{{$i}}">{{range $r}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody></table>
`))

func execute(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		// Templates are static and the data is plain strings.
		panic(err)
	}
	return buf.String()
}

func (HTML) Wishlists(list []model.Wishlist) string {
	return execute(wishlistTmpl, struct {
		Headers        []string
		ProductHeaders []string
		Rows           []wishlistView
	}{wishlistHeaders, productHeaders, wishlistViews(list)})
}

func (HTML) Products(list []model.Product) string {
	return execute(productTmpl, struct {
		Headers []string
		Rows    [][]string
	}{lineHeaders, lineCells(list)})
}
