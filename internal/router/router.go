package router

import (
	"html/template"
	"path/filepath"

	"github.com/auntiehomie/castkeepr/internal/config"
	"github.com/auntiehomie/castkeepr/internal/handlers"
	"github.com/auntiehomie/castkeepr/internal/middleware"
	"github.com/auntiehomie/castkeepr/internal/services"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the serving surface. Dependencies come in explicitly
// so tests can run the full router against fakes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, store services.SavedCastStore, ingest *services.IngestService) {
	// Handlers
	webhookHandler := handlers.NewWebhookHandler(ingest)
	apiHandler := handlers.NewAPIHandler(store)
	frameHandler := handlers.NewFrameHandler(cfg, store)
	previewHandler := handlers.NewPreviewHandler()

	// Ingestion entry point
	r.POST("/webhook", middleware.VerifyNeynarSignature(cfg.WebhookSecret), webhookHandler.Handle)

	// REST surface for the mini-app
	api := r.Group("/api")
	{
		api.GET("/saved-casts", apiHandler.ListSavedCasts) // 用户已保存的 cast 列表
		api.GET("/user-info", apiHandler.UserInfo)         // 保存数量统计
		api.GET("/frame-image", previewHandler.FrameImage) // 预览图生成
	}

	// Frame protocol entry + interaction
	r.GET("/frame", frameHandler.Entry)
	r.POST("/frame", frameHandler.Interact)
}

// LoadTemplates builds the multitemplate renderer for the frame documents.
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files. The view goes first: multitemplate executes
	// the template named after the first file.
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, view)
		files = append(files, includes...)
		return files
	}

	// FuncMap
	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
	}

	// Frame documents: one view per machine state
	r.AddFromFilesFuncs("frame/entry.html", funcMap, assemble(templatesDir+"/views/frame/entry.html")...)
	r.AddFromFilesFuncs("frame/page.html", funcMap, assemble(templatesDir+"/views/frame/page.html")...)
	r.AddFromFilesFuncs("frame/empty.html", funcMap, assemble(templatesDir+"/views/frame/empty.html")...)

	return r
}
