// Package parser — граница с внешним парсером свободного текста корзины.
// Парсер — отдельный исполняемый файл: текст на stdin, JSON-список позиций на stdout.
package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"buybackCalc/internal/domain"
	"buybackCalc/internal/ports"
)

var _ ports.IRawParser = (*Parser)(nil)

// Config — настройки парсера. Переменные: BUYBACK_PARSER_COMMAND.
type Config struct {
	Command string `envconfig:"COMMAND" default:"./parser"`
}

// Parser реализует ports.IRawParser через подпроцесс.
type Parser struct {
	command string
	log     *slog.Logger
}

// New создаёт парсер по конфигу.
func New(cfg *Config, log *slog.Logger) *Parser {
	if cfg == nil {
		cfg = &Config{Command: "./parser"}
	}
	return &Parser{command: cfg.Command, log: log}
}

// Parse скармливает текст подпроцессу и декодирует его stdout.
// Ненулевой код выхода — ошибка формы входа (domain.ErrRawInput) с текстом stderr.
func (p *Parser) Parse(ctx context.Context, raw string) ([]domain.Item, error) {
	cmd := exec.CommandContext(ctx, p.command)
	cmd.Stdin = strings.NewReader(raw)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			p.log.Warn("parser rejected input", "stderr", stderr.String())
			return nil, fmt.Errorf("%w: %s", domain.ErrRawInput, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("parser run: %w", err)
	}

	var items []domain.Item
	if err := json.Unmarshal(stdout.Bytes(), &items); err != nil {
		return nil, fmt.Errorf("parser decode output: %w", err)
	}
	return items, nil
}
