// Package notify delivers contact form submissions to the site owner.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cleanblog/internal/config"
	"github.com/cleanblog/internal/db"
	"github.com/wneessen/go-mail"
)

const dialTimeout = 15 * time.Second

var ErrRecipientMissing = errors.New("contact recipient is not configured")

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer 通过 SMTP 把联系表单留言发给站长
type Mailer struct {
	client    sender
	from      string
	recipient string
}

// NewMailer 根据配置创建 SMTP 客户端，465 端口走隐式 TLS，其余端口强制 STARTTLS
func NewMailer(cfg config.MailConfig) (*Mailer, error) {
	if strings.TrimSpace(cfg.Recipient) == "" {
		return nil, ErrRecipientMissing
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(dialTimeout),
	}
	if cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Mailer{client: client, from: cfg.Username, recipient: cfg.Recipient}, nil
}

// NotifyContact 发送一封通知邮件，发件人为站点账号，回复地址为访客邮箱
func (m *Mailer) NotifyContact(ctx context.Context, msg db.ContactMessage) error {
	message, err := m.buildMessage(msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

func (m *Mailer) buildMessage(msg db.ContactMessage) (*mail.Msg, error) {
	message := mail.NewMsg()
	if err := message.From(m.from); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := message.To(m.recipient); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	if err := message.ReplyTo(msg.Email); err != nil {
		return nil, fmt.Errorf("set reply-to: %w", err)
	}
	message.Subject(Subject(msg))
	message.SetBodyString(mail.TypeTextPlain, Body(msg))
	return message, nil
}

// Subject 返回通知邮件标题
func Subject(msg db.ContactMessage) string {
	return "New message from " + msg.Name
}

// Body 返回通知邮件正文：留言内容后接电话
func Body(msg db.ContactMessage) string {
	return msg.Message + "\n" + msg.Phone
}

const maxLogSnippetRunes = 512

// LogNotifier 在未配置 SMTP 时把留言写进日志，便于本地开发
type LogNotifier struct{}

func (LogNotifier) NotifyContact(_ context.Context, msg db.ContactMessage) error {
	log.Printf("[contact] id=%d subject=%q reply-to=%s body=%q", msg.ID, Subject(msg), msg.Email, logSnippet(Body(msg)))
	return nil
}

// logSnippet 截断过长的留言，避免刷屏
func logSnippet(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "<empty>"
	}
	if utf8.RuneCountInString(trimmed) <= maxLogSnippetRunes {
		return trimmed
	}
	return string([]rune(trimmed)[:maxLogSnippetRunes]) + "…(truncated)"
}
