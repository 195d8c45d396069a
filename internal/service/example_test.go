package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/mjml_render.git/internal/compiler"
	"github.com/InQaaaaGit/mjml_render.git/internal/config"
	"github.com/InQaaaaGit/mjml_render.git/internal/models"
	"github.com/InQaaaaGit/mjml_render.git/internal/service"
)

const exampleMarkup = `<mjml><mj-body><mj-section><mj-column>` +
	`<mj-text>Monthly digest</mj-text>` +
	`</mj-column></mj-section></mj-body></mjml>`

// ExampleRenderService_RenderOne демонстрирует компиляцию одного MJML-документа.
func ExampleRenderService_RenderOne() {
	// Создаем конфигурацию для примера
	cfg := &config.Config{
		AppEnv: config.EnvProduction,
	}

	// Создаем логгер (отключаем логи для примера)
	logger := zap.NewNop()

	// Создаем сервис с реальным компилятором
	svc := service.NewRenderService(compiler.NewMJMLEngine(), cfg, logger)

	html, err := svc.RenderOne(context.Background(), exampleMarkup)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("HTML is not empty: %t\n", html != "")
	fmt.Printf("Text survived compilation: %t\n", strings.Contains(html, "Monthly digest"))

	// Output:
	// HTML is not empty: true
	// Text survived compilation: true
}

// ExampleRenderService_RenderOne_invalidInput демонстрирует классифицированный
// отказ при пустой разметке.
func ExampleRenderService_RenderOne_invalidInput() {
	cfg := &config.Config{
		AppEnv: config.EnvProduction,
	}
	svc := service.NewRenderService(compiler.NewMJMLEngine(), cfg, zap.NewNop())

	_, err := svc.RenderOne(context.Background(), "   ")

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		fmt.Printf("Code: %s\n", svcErr.Code)
		fmt.Printf("Message: %s\n", svcErr.Message)
	}

	// Output:
	// Code: INVALID_INPUT
	// Message: mjml content is required
}

// ExampleRenderService_RenderBatch демонстрирует пакетную компиляцию:
// отказ одной записи не влияет на обработку остальных.
func ExampleRenderService_RenderBatch() {
	cfg := &config.Config{
		AppEnv: config.EnvProduction,
	}
	svc := service.NewRenderService(compiler.NewMJMLEngine(), cfg, zap.NewNop())

	items := []models.BatchItem{
		{ID: json.RawMessage(`"digest"`), MJML: exampleMarkup},
		{MJML: ""},
	}

	results, summary := svc.RenderBatch(context.Background(), items)

	fmt.Printf("Total: %d, success: %d, failed: %d\n", summary.Total, summary.Success, summary.Failed)
	fmt.Printf("First ID: %s, success: %t\n", results[0].ID, results[0].Success)
	fmt.Printf("Second ID: %s, code: %s\n", results[1].ID, results[1].Code)

	// Output:
	// Total: 2, success: 1, failed: 1
	// First ID: "digest", success: true
	// Second ID: 1, code: INVALID_INPUT
}

// ExampleNewRenderService демонстрирует создание нового экземпляра сервиса.
func ExampleNewRenderService() {
	cfg := &config.Config{
		ServerAddress: ":8080",
		LogLevel:      "info",
		AppEnv:        config.EnvProduction,
	}

	// Создаем логгер (отключаем логи для примера)
	logger := zap.NewNop()

	svc := service.NewRenderService(compiler.NewMJMLEngine(), cfg, logger)

	fmt.Printf("Service created successfully: %t\n", svc != nil)
	fmt.Printf("Engine version is not empty: %t\n", svc.EngineVersion() != "")

	// Output:
	// Service created successfully: true
	// Engine version is not empty: true
}
