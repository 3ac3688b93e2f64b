package render

// documentTemplate wraps the page fragment in a standalone HTML document.
// The highlighter assets are linked here and nowhere else.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Meta.Name}}</title>
  {{- if .Highlighter.StyleURL}}
  <link rel="stylesheet" href="{{.Highlighter.StyleURL}}" media="screen">
  {{- end}}
  <style>{{.Style}}</style>
</head>
<body class="wp-admin">
{{.Page}}
{{- if .Highlighter.ScriptURL}}
<script src="{{.Highlighter.ScriptURL}}"></script>
{{- end}}
</body>
</html>
`

// pageTemplate is the self-contained fragment: heading, mini menu with the
// sidebar boxes, then every pattern section.
const pageTemplate = `<div class="wrap">
<h1>{{.Meta.Name}}{{if .Meta.Version}} <span class="version">{{.Meta.Version}}</span>{{end}}</h1>
<div id="poststuff">
  <div id="post-body" class="metabox-holder columns-2">
    <div id="post-body-content">
      <div class="meta-box-sortables">
        <div class="postbox">
          <h2><span>MiniMenu</span></h2>
          <div class="inside">
{{.Menu}}
          </div>
        </div>
      </div>
    </div>
    <div id="postbox-container-1" class="postbox-container">
      <div class="meta-box-sortables">
        <div class="postbox">
          <h2><span>About the plugin</span></h2>
          <div class="inside">
{{.About}}
            <p>&copy; Copyright {{if .CopyrightSince}}{{.CopyrightSince}} - {{end}}{{.Year}}
            {{- if .Meta.Author}} {{if .Meta.AuthorURI}}<a href="{{.Meta.AuthorURI}}">{{.Meta.Author}}</a>{{else}}{{.Meta.Author}}{{end}}{{end}}</p>
          </div>
        </div>
        {{- if .Resources}}
        <div class="postbox">
          <h2><span>Resources &amp; Reference</span></h2>
          <div class="inside">
            <ul>
            {{- range .Resources}}
              <li><a href="{{.URL}}">{{.Title}}</a></li>
            {{- end}}
            </ul>
          </div>
        </div>
        {{- end}}
      </div>
    </div>
  </div>
  <br class="clear">
</div>
{{- if .Notice}}
<div class="notice notice-error"><p>{{.Notice}}</p></div>
{{- end}}
{{range .Sections}}{{.}}{{end}}
</div>
`

// sectionTemplate renders one pattern: the live markup, then its escaped
// source in a disclosure panel.
const sectionTemplate = `<section class="pattern" id="{{.Snippet.Anchor}}">
{{if .IncludeErr}}<div class="notice notice-error inline"><p>{{.IncludeErr}}</p></div>{{else}}{{.Markup}}{{end}}
{{- if .HasSource}}
<details class="primer">
<summary title="Show markup and usage">&#8226;&#8226;&#8226; Show markup and usage</summary>
<section>
<pre><code class="language-{{.Language}}">{{.Source}}</code></pre>
</section>
</details>
{{- end}}
<p><a class="alignright button" href="#" onclick="window.scrollTo(0,0);return false;" style="margin:3px 0 0 30px;">scroll to top</a><br class="clear"></p>
</section>
<hr>
`

// menuTemplate is the mini menu table.
const menuTemplate = `<table class="widefat" cellspacing="0">
{{- range .Rows}}
<tr{{if .Alternate}} class="alternate"{{end}}>
  <td class="row-title"><a href="#{{.Anchor}}">{{.Title}}</a></td>
</tr>
{{- end}}
</table>`

// pageStyle approximates the admin chrome the patterns expect.
const pageStyle = `
body { margin: 0; padding: 20px; background: #f1f1f1; color: #3c434a;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Oxygen-Sans, Ubuntu, Cantarell, "Helvetica Neue", sans-serif;
  font-size: 13px; line-height: 1.4em; }
.wrap { margin: 10px 20px 0 2px; }
.wrap h1 { font-size: 23px; font-weight: 400; margin: 0; padding: 9px 0 4px; }
#poststuff { padding-top: 10px; min-width: 763px; }
.metabox-holder.columns-2 #post-body-content { float: left; width: calc(100% - 300px); }
.postbox-container { float: right; width: 280px; }
.postbox { background: #fff; border: 1px solid #c3c4c7; margin-bottom: 20px; }
.postbox h2 { font-size: 14px; margin: 0; padding: 8px 12px; border-bottom: 1px solid #c3c4c7; }
.postbox .inside { padding: 0 12px 12px; }
.widefat { width: 100%; border-spacing: 0; border: 1px solid #c3c4c7; }
.widefat td { padding: 8px 10px; }
.alternate { background-color: #f6f7f7; }
.row-title { font-size: 14px; font-weight: 600; }
.clear { clear: both; }
.alignright { float: right; }
.button { display: inline-block; padding: 0 10px; line-height: 2.15; border: 1px solid #2271b1;
  border-radius: 3px; background: #f6f7f7; color: #2271b1; text-decoration: none; }
.notice { background: #fff; border-left: 4px solid #72aee6; padding: 1px 12px; margin: 5px 0 15px; }
.notice-error { border-left-color: #d63638; }
section.pattern { padding: 10px 0; }
details.primer summary { cursor: pointer; color: #2271b1; }
details.primer pre { overflow: auto; background: #f6f7f7; padding: 10px; }
`

// defaultAbout is shown in the about box when no about file is configured.
const defaultAbout = `Shows the admin styles on one page to help you build interfaces
that look at home in the admin area. Read more about it on
[github](https://github.com/bueltge/WordPress-Admin-Style) or in
[this post](http://wpengineer.com/2226/new-plugin-to-style-your-plugin-on-wordpress-admin-with-default-styles/)
on the blog of WP Engineer.
`
