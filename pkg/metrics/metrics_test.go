package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	assert.NotNil(t, HTTPRequestsTotal, "HTTPRequestsTotal未初始化")
	assert.NotNil(t, HTTPRequestDuration, "HTTPRequestDuration未初始化")
	assert.NotNil(t, BooksCreatedTotal, "BooksCreatedTotal未初始化")
	assert.NotNil(t, BookSaveFailuresTotal, "BookSaveFailuresTotal未初始化")

	// 重复初始化不应panic(promauto重复注册会panic,靠initialized标记防护)
	InitMetrics()
}

// TestCounter 测试Counter指标
func TestCounter(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, BooksCreatedTotal)

	IncCounter(BooksCreatedTotal)
	IncCounter(BooksCreatedTotal)
	IncCounter(BooksCreatedTotal)

	after := getCounterValue(t, BooksCreatedTotal)
	assert.Equal(t, before+3, after, "Counter应递增3")
}

// TestCounterVec 测试带标签的Counter指标
func TestCounterVec(t *testing.T) {
	InitMetrics()

	IncCounterVec(BookSaveFailuresTotal, map[string]string{"reason": "duplicate"})
	IncCounterVec(BookSaveFailuresTotal, map[string]string{"reason": "store"})
	IncCounterVec(BookSaveFailuresTotal, map[string]string{"reason": "duplicate"})

	counter, err := BookSaveFailuresTotal.GetMetricWith(map[string]string{"reason": "duplicate"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, getCounterValue(t, counter), float64(2))
}

// getCounterValue 读取Counter当前值
func getCounterValue(t *testing.T, c interface {
	Write(*dto.Metric) error
}) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}
