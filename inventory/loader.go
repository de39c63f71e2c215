package inventory

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"godict/appliance"
	"godict/datastruct/dict"
)

// Loader 负责库存与数据文件之间的装载和保存 文件系统通过afero注入便于测试
type Loader struct {
	fs afero.Fs
}

func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load 逐行解析数据文件并入库 返回成功装载的条数
// 解析失败或货号重复的行跳过并记录日志 不中断装载
func (l *Loader) Load(filename string, inv *Inventory) (int, error) {
	file, err := l.fs.Open(filename)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s failed", filename)
	}
	defer file.Close()

	count := 0
	lineNo := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		item, err := appliance.ParseLine(line)
		if err != nil {
			zap.L().Warn("skip unparsable line",
				zap.String("file", filename),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}
		if err := inv.Add(item); err != nil {
			if errors.Is(err, dict.ErrDuplicateKey) {
				zap.L().Warn("skip duplicate item number",
					zap.String("file", filename),
					zap.Int("line", lineNo),
					zap.String("item", item.Info().ItemNumber))
				continue
			}
			return count, err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, errors.Wrapf(err, "read %s failed", filename)
	}
	zap.L().Info("appliances loaded",
		zap.String("file", filename),
		zap.Int("count", count))
	return count, nil
}

// Save 将当前库存按文件格式落盘 顺序按货号
func (l *Loader) Save(filename string, inv *Inventory) error {
	var builder strings.Builder
	for _, item := range inv.All() {
		builder.WriteString(item.FileFormat())
		builder.WriteByte('\n')
	}
	if err := afero.WriteFile(l.fs, filename, []byte(builder.String()), 0644); err != nil {
		return errors.Wrapf(err, "write %s failed", filename)
	}
	zap.L().Info("appliances saved",
		zap.String("file", filename),
		zap.Int32("count", inv.Len()))
	return nil
}
