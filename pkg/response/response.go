// Package response 统一的页面响应辅助
// 设计说明：
// 1. 所有端点都返回服务端渲染的HTML页面或302重定向,没有JSON接口
// 2. 底层存储错误不会原样展示给用户,到达这里之前已被转换成业务错误
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTML 渲染页面(200)
func HTML(c *gin.Context, name string, data gin.H) {
	c.HTML(http.StatusOK, name, data)
}

// NotFound 渲染404页面
// message是用户可见的说明,如"找不到主键为 3 的图书"
func NotFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"Message": message,
	})
}

// Redirect 302重定向(表单提交成功后跳转,避免刷新重复提交)
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// Error 渲染500错误页面
// 只展示通用提示,详细错误已由调用方记录到日志
func Error(c *gin.Context, message string) {
	c.HTML(http.StatusInternalServerError, "500.html", gin.H{
		"Message": message,
	})
}
