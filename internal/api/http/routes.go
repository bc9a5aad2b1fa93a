package http

import "github.com/gin-gonic/gin"

// Register mounts the desktop and chat API on r
func Register(r gin.IRouter, h *Handlers) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/metrics/json", h.MetricsJSON)

	r.GET("/desktop", h.Desktop)
	r.PUT("/desktop/viewport", h.SetViewport)
	r.GET("/apps", h.ListApps)

	windows := r.Group("/windows")
	windows.GET("", h.ListWindows)
	windows.POST("", h.OpenWindow)
	windows.POST("/:id/focus", h.FocusWindow)
	windows.POST("/:id/minimize", h.MinimizeWindow)
	windows.POST("/:id/restore", h.RestoreWindow)
	windows.POST("/:id/maximize", h.MaximizeWindow)
	windows.POST("/:id/drag", h.DragWindow)
	windows.POST("/:id/drag/start", h.BeginWindowDrag)
	windows.POST("/:id/drag/move", h.MoveWindowDrag)
	windows.POST("/:id/drag/end", h.EndWindowDrag)
	windows.POST("/:id/resize", h.ResizeWindow)
	windows.DELETE("/:id", h.CloseWindow)

	icons := r.Group("/icons")
	icons.GET("", h.ListIcons)
	icons.DELETE("/selection", h.ClearSelection)
	icons.POST("/reset", h.ResetIcons)
	icons.POST("/selection-box/start", h.BeginSelectionBox)
	icons.POST("/selection-box/move", h.UpdateSelectionBox)
	icons.POST("/selection-box/end", h.EndSelectionBox)
	icons.POST("/:id/select", h.SelectIcon)
	icons.POST("/:id/drag", h.DragIcon)
	icons.POST("/:id/open", h.OpenIcon)
	icons.POST("/:id/press", h.PressIcon)
	icons.POST("/:id/move", h.MoveIconPointer)
	icons.POST("/:id/release", h.ReleaseIcon)

	r.GET("/dock", h.Dock)
	r.POST("/dock/:appId/click", h.DockClick)

	r.POST("/context-menu", h.OpenContextMenu)
	r.POST("/context-menu/select", h.SelectMenuItem)
	r.DELETE("/context-menu", h.CloseContextMenu)

	r.POST("/api/chat", h.Chat)
}
