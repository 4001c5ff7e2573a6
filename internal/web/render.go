// Package web 负责页面模板、静态资源与视图数据
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// 模板名
const (
	TemplateHome         = "home"
	TemplatePrivacy      = "privacy"
	TemplateTerms        = "terms"
	TemplateNotFound     = "not_found"
	TemplateInviteStart  = "invite_start"
	TemplateInviteResult = "invite_result"
)

var funcs = template.FuncMap{
	"isLoading": func(s InviteState) bool { return s == InviteLoading },
	"isInvalid": func(s InviteState) bool { return s == InviteInvalid },
	"isValid":   func(s InviteState) bool { return s == InviteValid },
	"featureColor": func(color string) string {
		return "feature-icon feature-icon--" + color
	},
}

// Templates 解析全部内嵌模板
func Templates() (*template.Template, error) {
	tmpl, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("解析页面模板失败: %w", err)
	}
	return tmpl, nil
}

// StaticFS 内嵌静态资源，挂载到 /static
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static 目录随二进制内嵌，缺失属于构建错误
		panic(err)
	}
	return http.FS(sub)
}
