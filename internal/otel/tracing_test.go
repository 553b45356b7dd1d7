package otel

import (
	"context"
	"strings"
	"testing"

	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
)

// 测试内容：验证未启用时返回可调用的空关闭函数。
func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), config.TracingConfig{Enabled: false})
	if err != nil {
		t.Fatalf("期望为 nil，实际为 %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("关闭期望为 nil，实际为 %v", err)
	}
}

// 测试内容：验证不支持的协议降级为不导出而不是报错。
func TestInit_UnsupportedProtocolDegrades(t *testing.T) {
	shutdown, err := Init(context.Background(), config.TracingConfig{Enabled: true, Protocol: "carrier-pigeon"})
	if err != nil {
		t.Fatalf("期望为 nil，实际为 %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("关闭期望为 nil，实际为 %v", err)
	}
}

// 测试内容：验证采样比例的选择。
func TestSampler(t *testing.T) {
	if d := Sampler(1).Description(); !strings.Contains(d, "AlwaysOnSampler") {
		t.Fatalf("期望全量采样，实际为 %s", d)
	}
	if d := Sampler(0.25).Description(); !strings.Contains(d, "TraceIDRatioBased{0.25}") {
		t.Fatalf("期望按比例采样，实际为 %s", d)
	}
}
