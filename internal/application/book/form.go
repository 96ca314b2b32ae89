package book

import (
	"errors"
	"strings"
	"time"

	"github.com/xiebiao/mylibrary/internal/domain/book"
	"github.com/xiebiao/mylibrary/pkg/logger"
	"github.com/xiebiao/mylibrary/pkg/metrics"
)

// 表单提交流水线
// 设计说明:
// 1. 显式两段式:原始字符串解析 → 类型化实体校验,不走反射式自动绑定
// 2. 解析失败(日期格式错)与字段规则失败合并在一个FieldErrors里,
//    用户一次就能看到所有问题
// 3. 创建和更新共用同一条流水线,区别只在existing参数

// dateLayout 出版日期的输入格式
const dateLayout = "2006-01-02"

// FormInput 未经解析的原始表单字段
type FormInput struct {
	Authors         string
	Title           string
	PublicationDate string
	ISBN            string
}

// FormErrors 表单提交失败的结构化结果
// Fields按字段给出原因标签;NonField是无法归属到单个字段的提示
// (保存阶段的ISBN并发冲突、存储故障)
type FormErrors struct {
	Fields   book.FieldErrors
	NonField string
}

// SubmitResult 表单提交结果
// Errors为nil表示成功,Book为已持久化的图书
type SubmitResult struct {
	Book   *book.Book
	Errors *FormErrors
}

// 保存阶段的非字段错误提示
const (
	msgISBNConflict  = "保存失败:该ISBN号刚刚被其他记录占用,请修改后重试"
	msgCreateFailure = "无法将这本图书保存到数据库"
	msgUpdateFailure = "无法更新数据库中的这本图书"
)

// buildCandidate 原始字段 → 类型化候选实体
// 返回解析阶段发现的字段错误(目前只有日期);日期解析失败时实体保留零值日期,
// 后续字段校验会把它标记为blank,合并阶段再用invalid_date覆盖
func buildCandidate(input FormInput, existing *book.Book) (*book.Book, book.FieldErrors) {
	parseErrs := make(book.FieldErrors)

	authors := strings.TrimSpace(input.Authors)
	title := strings.TrimSpace(input.Title)
	isbn := strings.TrimSpace(input.ISBN)

	var pubDate time.Time
	if raw := strings.TrimSpace(input.PublicationDate); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			parseErrs.Add("publication_date", book.ReasonInvalidDate)
		} else {
			pubDate = parsed
		}
	}

	if existing == nil {
		return book.NewBook(authors, title, pubDate, isbn), parseErrs
	}

	candidate := *existing
	candidate.Replace(authors, title, pubDate, isbn)
	return &candidate, parseErrs
}

// mergeSaveOutcome 把领域服务的返回值和解析错误合并成FormErrors
// 分类处理(见§错误处理设计):
// - *ValidationError: 字段级,用户可纠正,不记日志
// - ErrISBNDuplicate: 预检查漏掉的并发冲突,非字段提示,计入duplicate指标
// - 其他: 存储故障,记错误日志并给通用提示,计入store指标
// 返回nil表示保存成功
func mergeSaveOutcome(err error, parseErrs book.FieldErrors, genericMsg string) *FormErrors {
	if err == nil && len(parseErrs) == 0 {
		return nil
	}

	formErrs := &FormErrors{Fields: make(book.FieldErrors)}

	var validationErr *book.ValidationError
	switch {
	case err == nil:
		// 解析错误存在时实体校验必然失败,不会走到这里;兜底防御
	case errors.As(err, &validationErr):
		for field, reason := range validationErr.Fields {
			formErrs.Fields[field] = reason
		}
	case errors.Is(err, book.ErrISBNDuplicate):
		formErrs.NonField = msgISBNConflict
		metrics.IncCounterVec(metrics.BookSaveFailuresTotal, map[string]string{"reason": "duplicate"})
	default:
		logger.Error("图书保存失败", err)
		formErrs.NonField = genericMsg
		metrics.IncCounterVec(metrics.BookSaveFailuresTotal, map[string]string{"reason": "store"})
	}

	// 解析错误优先于同字段的规则错误(invalid_date覆盖blank)
	for field, reason := range parseErrs {
		formErrs.Fields[field] = reason
	}

	return formErrs
}
