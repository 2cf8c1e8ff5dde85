// roster-export 在命令行中预览或导出值班表，读取与服务端相同的配置和存储
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kingpin"
	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/config"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/repository"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/service"
	applogger "github.com/ilyasbozdemir/personel-duty-tracking/pkg/logger"
)

// options 命令行参数
type options struct {
	configPath string
	start      string
	end        string
	outDir     string
	noSnapshot bool
	preview    bool
}

func main() {
	var opts options
	kingpin.Flag("config", "配置文件路径").Short('c').Envar("NOBET_CONFIG").StringVar(&opts.configPath)
	kingpin.Flag("start", "开始日期 (YYYY-MM-DD)").Required().StringVar(&opts.start)
	kingpin.Flag("end", "结束日期 (YYYY-MM-DD)").Required().StringVar(&opts.end)

	cmdPreview := kingpin.Command("preview", "在终端打印值班表")
	cmdExport := kingpin.Command("export", "导出值班表 xlsx 文件")
	cmdExport.Flag("out", "输出目录").Short('o').Default(".").ExistingDirVar(&opts.outDir)
	cmdExport.Flag("no-snapshot", "不归档 PNG 快照").BoolVar(&opts.noSnapshot)

	opts.preview = kingpin.Parse() == cmdPreview.FullCommand()

	// run 返回后所有 defer（存储关闭、日志刷新）均已执行
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "roster-export: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, stdout io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	defer logger.Sync()

	if opts.noSnapshot {
		cfg.Export.Snapshot = false
	}

	storage, err := repository.OpenStorage(cfg, logger)
	if err != nil {
		return fmt.Errorf("存储初始化失败: %w", err)
	}
	defer storage.Close()

	svc := service.NewService(cfg, repository.NewRepository(storage.KV), logger)
	q := &dto.ExportQuery{StartDate: opts.start, EndDate: opts.end}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if opts.preview {
		preview, err := svc.Export.Preview(ctx, q)
		if err != nil {
			return fmt.Errorf("预览失败: %w", err)
		}
		printPreview(stdout, preview)
		return nil
	}

	buf, fileName, err := svc.Export.Export(ctx, q)
	if err != nil {
		return fmt.Errorf("导出失败: %w", err)
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = "."
	}
	path := filepath.Join(outDir, fileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("写入文件失败: %w", err)
	}
	logger.Info("值班表已导出", zap.String("path", path), zap.Int("size", buf.Len()))
	return nil
}

func printPreview(w io.Writer, p *dto.RosterPreviewResponse) {
	fmt.Fprintf(w, "%s  (%s - %s)\n\n", p.FileName, p.StartDate, p.EndDate)
	for _, row := range p.Rows {
		switch len(row.Cells) {
		case 0:
			fmt.Fprintln(w)
		case 1:
			fmt.Fprintln(w, row.Cells[0])
		default:
			fmt.Fprintf(w, "  %-30s %s\n", row.Cells[0], strings.Join(row.Cells[1:], " "))
		}
	}
}
