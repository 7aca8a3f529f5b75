package mail

import (
	"backend/config"
	"backend/services/enrich"
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
	"time"

	"github.com/jordan-wright/email"
)

// MailService 运行摘要邮件通知
type MailService struct {
	cfg *config.MailConfig
}

// NewMailService 创建邮件服务
func NewMailService(cfg *config.MailConfig) *MailService {
	return &MailService{cfg: cfg}
}

// shouldRetry 判断是否应该重试
func (s *MailService) shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "i/o timeout")
}

// sendMailInternal 内部邮件发送函数
// 465端口走SSL/TLS，587端口走STARTTLS，其余端口按明文发送
func (s *MailService) sendMailInternal(e *email.Email) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	tlsConfig := &tls.Config{
		ServerName: s.cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	switch s.cfg.Port {
	case 465:
		return e.SendWithTLS(addr, auth, tlsConfig)
	case 587:
		return e.SendWithStartTLS(addr, auth, tlsConfig)
	default:
		return e.Send(addr, auth)
	}
}

// summaryTemplate 运行摘要邮件模板
const summaryTemplate = `
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2 style="color: #333;">游戏库富集运行摘要</h2>
	<table style="width: 100%; border-collapse: collapse; font-size: 14px;">
		<tr><td style="padding: 6px; border-bottom: 1px solid #eee;">本地截图目录</td><td style="padding: 6px; border-bottom: 1px solid #eee;">{{.FoldersFound}}</td></tr>
		<tr><td style="padding: 6px; border-bottom: 1px solid #eee;">库内游戏行</td><td style="padding: 6px; border-bottom: 1px solid #eee;">{{.RowsInDB}}</td></tr>
		<tr><td style="padding: 6px; border-bottom: 1px solid #eee;">孤儿入库成功</td><td style="padding: 6px; border-bottom: 1px solid #eee;">{{.OrphansInserted}}</td></tr>
		<tr><td style="padding: 6px; border-bottom: 1px solid #eee;">孤儿入库失败</td><td style="padding: 6px; border-bottom: 1px solid #eee;">{{.OrphanFailures}}</td></tr>
		<tr><td style="padding: 6px; border-bottom: 1px solid #eee;">扫描行数</td><td style="padding: 6px; border-bottom: 1px solid #eee;">{{.Scanned}}</td></tr>
		<tr><td style="padding: 6px; border-bottom: 1px solid #eee;">补全成功</td><td style="padding: 6px; border-bottom: 1px solid #eee;">{{.Enriched}}</td></tr>
		<tr><td style="padding: 6px; border-bottom: 1px solid #eee;">补全失败</td><td style="padding: 6px; border-bottom: 1px solid #eee;">{{.EnrichFailures}}</td></tr>
	</table>
	<p style="font-size: 12px; color: #999; margin-top: 20px;">开始：{{.StartedAt}}　结束：{{.FinishedAt}}</p>
	<p style="font-size: 12px; color: #999;">此邮件由系统自动发送，请勿回复。</p>
</div>
`

// SendRunSummary 把一次完整运行的统计发送给配置的收件人
// 未启用邮件通知时直接返回nil
func (s *MailService) SendRunSummary(summary *enrich.RunSummary) error {
	if !s.cfg.Enabled {
		return nil
	}

	data := struct {
		FoldersFound, RowsInDB, OrphansInserted, OrphanFailures int
		Scanned, Enriched, EnrichFailures                       int
		StartedAt, FinishedAt                                   string
	}{
		FoldersFound:    summary.FoldersFound,
		RowsInDB:        summary.RowsInDB,
		OrphansInserted: summary.OrphansInserted,
		OrphanFailures:  summary.OrphanFailures,
		Scanned:         summary.Scanned,
		Enriched:        summary.Enriched,
		EnrichFailures:  summary.EnrichFailures,
		StartedAt:       summary.StartedAt.Format("2006-01-02 15:04:05"),
		FinishedAt:      summary.FinishedAt.Format("2006-01-02 15:04:05"),
	}

	tmpl, err := template.New("summary").Parse(summaryTemplate)
	if err != nil {
		return fmt.Errorf("解析摘要邮件模板失败: %v", err)
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("生成摘要邮件内容失败: %v", err)
	}

	e := email.NewEmail()
	e.From = s.cfg.From
	e.To = []string{s.cfg.To}
	e.Subject = fmt.Sprintf("游戏库富集摘要 %s", summary.FinishedAt.Format("2006-01-02"))
	e.HTML = body.Bytes()

	sendErr := s.sendMailInternal(e)
	if sendErr != nil && s.shouldRetry(sendErr) {
		// 仅对特定错误进行一次重试
		time.Sleep(2 * time.Second)
		sendErr = s.sendMailInternal(e)
	}
	if sendErr != nil {
		return fmt.Errorf("发送摘要邮件失败: %v", sendErr)
	}
	return nil
}
