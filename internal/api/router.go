package api

import (
	"embed"
	"html/template"
	"strconv"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxBodyBytes = 1 << 20

type RouterConfig struct {
	Debug          bool
	AllowedOrigins []string
}

func SetupRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), maxBodySize(maxBodyBytes))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(corsMiddleware(cfg.AllowedOrigins))
	}
	r.SetHTMLTemplate(loadTemplates())

	r.GET("/", handler.IndexPage)
	r.POST("/analyze", handler.AnalyzePage)
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	api.POST("/analyze", handler.AnalyzeJSON)

	return r
}

func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"fmtFloat": func(f float64) string {
			return strconv.FormatFloat(f, 'f', 4, 64)
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
