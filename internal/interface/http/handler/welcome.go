package handler

import (
	"math/rand"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/mylibrary/pkg/response"
)

// slogans 欢迎页随机展示的标语
var slogans = []string{
	"Having fun isn't hard when you've got a library card.",
	"Libraries make shhh happen.",
	"Believe in your shelf.",
	"Need a good read? We've got you covered.",
	"Check us out. And maybe one of our books too.",
	"Get a better read on the world",
}

// WelcomeHandler 欢迎页处理器
type WelcomeHandler struct{}

// NewWelcomeHandler 创建欢迎页处理器
func NewWelcomeHandler() *WelcomeHandler {
	return &WelcomeHandler{}
}

// Welcome 欢迎页
// GET /welcome/
func (h *WelcomeHandler) Welcome(c *gin.Context) {
	response.HTML(c, "welcome.html", gin.H{
		"Slogan": slogans[rand.Intn(len(slogans))],
	})
}
