package book

import (
	"context"

	"github.com/xiebiao/mylibrary/internal/domain/book"
	"github.com/xiebiao/mylibrary/pkg/metrics"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 1. 应用层负责用例编排:表单解析 → 领域服务 → 结果分类
// 2. 所有失败都折叠进SubmitResult.Errors,调用方只需要区分"成功跳转"
//    和"带错误重新渲染"两种出口
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// Execute 执行创建
func (uc *CreateBookUseCase) Execute(ctx context.Context, input FormInput) *SubmitResult {
	candidate, parseErrs := buildCandidate(input, nil)

	err := uc.bookService.CreateBook(ctx, candidate)
	if formErrs := mergeSaveOutcome(err, parseErrs, msgCreateFailure); formErrs != nil {
		return &SubmitResult{Errors: formErrs}
	}

	metrics.IncCounter(metrics.BooksCreatedTotal)
	return &SubmitResult{Book: candidate}
}
