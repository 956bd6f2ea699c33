package render

import "html/template"

var diffTemplate = template.Must(template.New("render").Parse(`
{{- define "diff" -}}
<div class="d2h-wrapper">
{{- if .FileList}}{{template "filelist" .Files}}{{end}}
{{- range .Files}}{{template "file" .}}{{end -}}
</div>
{{- end -}}

{{- define "filelist" -}}
<div class="d2h-file-list-wrapper">
<div class="d2h-file-list-header"><span class="d2h-file-list-title">Files changed ({{len .}})</span></div>
<ul class="d2h-file-list">
{{- range .}}
<li class="d2h-file-list-line"><span class="d2h-file-name-wrapper">{{.ListIcon}}<a href="#{{.ID}}" class="d2h-file-name">{{.Name}}</a><span class="d2h-file-stats"><span class="d2h-lines-added">+{{.Additions}}</span><span class="d2h-lines-deleted">-{{.Deletions}}</span></span></span></li>
{{- end}}
</ul>
</div>
{{- end -}}

{{- define "file" -}}
<div id="{{.ID}}" class="d2h-file-wrapper" data-lang="{{.Lang}}" data-status="{{.Status}}">
<div class="d2h-file-header"><span class="d2h-file-name-wrapper">{{.Icon}}<span class="d2h-file-name">{{.Name}}</span><span class="d2h-tag d2h-{{.Status}} d2h-{{.Status}}-tag">{{.Tag}}</span></span></div>
<div class="d2h-file-diff"><div class="d2h-code-wrapper">
<table class="d2h-diff-table chroma"><tbody class="d2h-diff-tbody">
{{- if .Redacted}}
<tr><td class="d2h-code-linenumber d2h-info"></td><td class="d2h-info"><div class="d2h-code-line">File content redacted</div></td></tr>
{{- else if .Binary}}
<tr><td class="d2h-code-linenumber d2h-info"></td><td class="d2h-info"><div class="d2h-code-line">Binary file not shown</div></td></tr>
{{- end}}
{{- range .Rows}}
{{- if .Info}}
<tr><td class="d2h-code-linenumber d2h-info"></td><td class="d2h-info"><div class="d2h-code-line">{{.Content}}</div></td></tr>
{{- else}}
<tr><td class="d2h-code-linenumber {{.Class}}"><div class="line-num1">{{.Old}}</div><div class="line-num2">{{.New}}</div></td><td class="{{.Class}}"><div class="d2h-code-line"><span class="d2h-code-line-prefix">{{.Prefix}}</span><span class="d2h-code-line-ctn">{{.Content}}</span></div></td></tr>
{{- end}}
{{- end}}
</tbody></table>
</div></div>
</div>
{{- end -}}
`))
