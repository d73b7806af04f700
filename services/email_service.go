// File: /services/email_service.go
package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"drivecalc-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
	logger *zap.Logger

	// In-memory storage for verification codes
	verificationCodes map[string]VerificationCode
	mutex             sync.RWMutex
}

type VerificationCode struct {
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}

func NewEmailService(cfg *config.Config, logger *zap.Logger) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	service := &EmailService{
		config:            cfg,
		dialer:            dialer,
		logger:            logger,
		verificationCodes: make(map[string]VerificationCode),
	}

	// Start cleanup goroutine
	go service.cleanupExpiredCodes()

	return service
}

// Generate a random 4-digit verification code
func (es *EmailService) generateVerificationCode() string {
	const digits = "0123456789"
	code := make([]byte, 4)

	for i := range code {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		code[i] = digits[num.Int64()]
	}

	return string(code)
}

// SendVerificationEmail mails a verification code, reusing a still-valid one
// when present so repeated requests don't invalidate the code in transit.
func (es *EmailService) SendVerificationEmail(email, name string) (string, error) {
	es.mutex.RLock()
	existingCode, exists := es.verificationCodes[email]
	es.mutex.RUnlock()

	var code string
	if exists && !existingCode.Used && time.Now().Before(existingCode.ExpiresAt) {
		code = existingCode.Code
		es.logger.Debug("Reusing existing verification code", zap.String("email", email))
	} else {
		code = es.generateVerificationCode()

		// Codes expire in 10 minutes
		es.mutex.Lock()
		es.verificationCodes[email] = VerificationCode{
			Code:      code,
			Email:     email,
			ExpiresAt: time.Now().Add(10 * time.Minute),
			Used:      false,
		}
		es.mutex.Unlock()
		es.logger.Debug("Generated new verification code", zap.String("email", email))
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "DriveCalc - Confirme seu email")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #28A745; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .code { background: #e9ecef; padding: 20px; text-align: center; border-radius: 8px; margin: 20px 0; }
        .code-number { font-size: 32px; font-weight: bold; color: #28A745; letter-spacing: 8px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>DriveCalc</h1>
            <p>Confirmação de email</p>
        </div>
        <div class="content">
            <h2>Olá, %s!</h2>
            <p>Use o código abaixo para confirmar seu email e ativar sua conta.</p>
            <div class="code">
                <div class="code-number">%s</div>
                <p><small>Este código expira em 10 minutos.</small></p>
            </div>
            <p>Se você não criou uma conta no DriveCalc, ignore este email.</p>
            <p><strong>Equipe DriveCalc</strong></p>
        </div>
    </div>
</body>
</html>`, name, code)

	textBody := fmt.Sprintf(`Olá, %s!

Use o código abaixo para confirmar seu email e ativar sua conta no DriveCalc.

Código de verificação: %s

Este código expira em 10 minutos.

Se você não criou uma conta no DriveCalc, ignore este email.

Equipe DriveCalc
`, name, code)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	es.logger.Info("Verification email sent", zap.String("email", email))
	return code, nil
}

// VerifyCode checks a code and marks it used on success.
func (es *EmailService) VerifyCode(email, inputCode string) bool {
	es.mutex.RLock()
	storedCode, exists := es.verificationCodes[email]
	es.mutex.RUnlock()

	if !exists {
		es.logger.Debug("No verification code found", zap.String("email", email))
		return false
	}

	if storedCode.Used {
		es.logger.Debug("Verification code already used", zap.String("email", email))
		return false
	}

	if time.Now().After(storedCode.ExpiresAt) {
		es.logger.Debug("Verification code expired", zap.String("email", email))
		es.mutex.Lock()
		delete(es.verificationCodes, email)
		es.mutex.Unlock()
		return false
	}

	if storedCode.Code != inputCode {
		es.logger.Debug("Invalid verification code", zap.String("email", email))
		return false
	}

	// Mark as used
	es.mutex.Lock()
	storedCode.Used = true
	es.verificationCodes[email] = storedCode
	es.mutex.Unlock()

	es.logger.Info("Verification code accepted", zap.String("email", email))
	return true
}

// GetVerificationCode exposes the current code for debugging endpoints.
func (es *EmailService) GetVerificationCode(email string) string {
	es.mutex.RLock()
	defer es.mutex.RUnlock()

	if code, exists := es.verificationCodes[email]; exists && !code.Used && time.Now().Before(code.ExpiresAt) {
		return code.Code
	}
	return ""
}

// Cleanup expired verification codes
func (es *EmailService) cleanupExpiredCodes() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		es.mutex.Lock()
		now := time.Now()
		for email, code := range es.verificationCodes {
			if now.After(code.ExpiresAt) || code.Used {
				delete(es.verificationCodes, email)
			}
		}
		es.mutex.Unlock()
	}
}

// SendWeeklyReportEmail mails the previous week's earnings summary to a
// driver who opted into weekly reports.
func (es *EmailService) SendWeeklyReportEmail(email, name string, summary WeeklySummary) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("DriveCalc - Resumo semanal (%s a %s)", summary.WeekStart, summary.WeekEnd))

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #28A745; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .stat { background: white; padding: 15px; margin: 10px 0; border-radius: 8px; border-left: 4px solid #28A745; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>DriveCalc</h1>
            <p>Resumo semanal de ganhos</p>
        </div>
        <div class="content">
            <h2>Olá, %s!</h2>
            <p>Aqui está o resumo da sua semana de %s a %s:</p>
            <div class="stat"><strong>Ganhos líquidos:</strong> R$ %.2f</div>
            <div class="stat"><strong>Média por dia trabalhado:</strong> R$ %.2f</div>
            <div class="stat"><strong>Melhor dia:</strong> %s (R$ %.2f)</div>
            <div class="stat"><strong>Margem média:</strong> %.1f%%</div>
            <div class="stat"><strong>Dias trabalhados:</strong> %d</div>
            <p><strong>Equipe DriveCalc</strong></p>
        </div>
    </div>
</body>
</html>`, name, summary.WeekStart, summary.WeekEnd,
		summary.TotalNetEarnings, summary.AveragePerWorkedDay,
		summary.BestDay, summary.BestDayNetEarnings,
		summary.AverageMarginPct, summary.WorkedDays)

	textBody := fmt.Sprintf(`Olá, %s!

Resumo da sua semana de %s a %s:

Ganhos líquidos: R$ %.2f
Média por dia trabalhado: R$ %.2f
Melhor dia: %s (R$ %.2f)
Margem média: %.1f%%
Dias trabalhados: %d

Equipe DriveCalc
`, name, summary.WeekStart, summary.WeekEnd,
		summary.TotalNetEarnings, summary.AveragePerWorkedDay,
		summary.BestDay, summary.BestDayNetEarnings,
		summary.AverageMarginPct, summary.WorkedDays)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send weekly report email: %w", err)
	}

	es.logger.Info("Weekly report email sent", zap.String("email", email))
	return nil
}
