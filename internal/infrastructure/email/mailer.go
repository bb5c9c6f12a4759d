// Package email implementa el canal de correo SMTP de la aplicación: código
// de reinicio de contraseña y bienvenida de cuentas nuevas.
package email

import (
	"fmt"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/sred/vitrine-api/internal/application/auth"
	"github.com/sred/vitrine-api/pkg/config"
)

var _ auth.Mailer = (*Mailer)(nil)

// Mailer implementa auth.Mailer sobre SMTP con gomail.
type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	siteName string
	siteURL  string
}

// NewMailer construye el canal de correo con la configuración SMTP.
func NewMailer(cfg config.SMTPConfig, siteName, siteURL string) *Mailer {
	return &Mailer{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:     cfg.From,
		siteName: siteName,
		siteURL:  siteURL,
	}
}

// SendResetCode envía el código de reinicio de contraseña.
func (m *Mailer) SendResetCode(to, code string) error {
	subject := fmt.Sprintf("Code de réinitialisation - %s", m.siteName)
	body := fmt.Sprintf(resetBodyHTML, m.siteName, code, m.siteURL, time.Now().Year(), m.siteName)
	return m.send(to, subject, body)
}

// SendWelcome envía la bienvenida al crear una cuenta de administración.
func (m *Mailer) SendWelcome(to, username string) error {
	subject := fmt.Sprintf("Bienvenue sur %s", m.siteName)
	body := fmt.Sprintf(welcomeBodyHTML, m.siteName, username, m.siteURL, time.Now().Year(), m.siteName)
	return m.send(to, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.siteName+" Admin")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp: enviar a %s: %w", to, err)
	}
	return nil
}

// Plantillas HTML inline, en el idioma del sitio. Orden de argumentos:
// sitio, dato principal (código o username), URL admin, año, sitio.
const resetBodyHTML = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f0f7ff; margin: 0; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; border: 3px solid #0056b3;">
      <div style="background-color: #0056b3; padding: 30px; text-align: center;">
        <h1 style="margin: 0; font-size: 40px; color: #ffffff;">%s</h1>
        <div style="color: #ffffff; font-size: 20px; font-weight: bold;">RÉINITIALISATION</div>
      </div>
      <div style="padding: 40px 30px; color: #333333;">
        <h2 style="color: #0056b3; margin-top: 0;">Bonjour,</h2>
        <p style="font-size: 16px;">Vous avez demandé un code de réinitialisation pour votre compte.</p>
        <div style="background-color: #e6f2ff; border: 2px solid #0056b3; border-radius: 8px; padding: 25px; margin: 25px 0; text-align: center;">
          <div style="font-size: 14px; color: #0056b3; font-weight: bold; text-transform: uppercase;">Votre code (10 min)</div>
          <div style="font-size: 48px; font-weight: 900; color: #0056b3; letter-spacing: 5px; margin: 15px 0;">%s</div>
        </div>
        <div style="text-align: center; margin-top: 30px;">
          <a href="%s/admin" style="display: inline-block; background-color: #0056b3; color: white; padding: 12px 25px; border-radius: 6px; text-decoration: none; font-weight: bold;">Retour à l'Administration</a>
        </div>
        <p style="font-size: 14px; color: #64748b; font-style: italic; margin-top: 30px;">
          Si vous n'êtes pas à l'origine de cette demande, vous pouvez ignorer cet email en toute sécurité. Votre mot de passe actuel restera inchangé.
        </p>
      </div>
      <div style="text-align: center; padding: 30px; background: #f8fafc; color: #64748b; font-size: 13px;">
        <p style="margin: 0; font-weight: 600;">© %d %s - Emballages et Décors</p>
        <p style="margin-top: 5px;">Ceci est un message automatique, veuillez ne pas y répondre.</p>
      </div>
    </div>
  </body>
</html>`

const welcomeBodyHTML = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f0f7ff; margin: 0; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; border: 3px solid #0056b3;">
      <div style="background-color: #0056b3; padding: 30px; text-align: center;">
        <h1 style="margin: 0; font-size: 40px; color: #ffffff;">%s</h1>
        <div style="color: #ffffff; font-size: 20px; font-weight: bold;">BIENVENUE</div>
      </div>
      <div style="padding: 40px 30px; color: #333333;">
        <h2 style="color: #0056b3; margin-top: 0;">Bonjour %s,</h2>
        <p style="font-size: 16px;">Votre compte administrateur vient d'être créé. Vous pouvez dès maintenant accéder à l'espace d'administration.</p>
        <div style="text-align: center; margin-top: 30px;">
          <a href="%s/admin" style="display: inline-block; background-color: #0056b3; color: white; padding: 12px 25px; border-radius: 6px; text-decoration: none; font-weight: bold;">Accéder à l'Administration</a>
        </div>
      </div>
      <div style="text-align: center; padding: 30px; background: #f8fafc; color: #64748b; font-size: 13px;">
        <p style="margin: 0; font-weight: 600;">© %d %s - Emballages et Décors</p>
        <p style="margin-top: 5px;">Ceci est un message automatique, veuillez ne pas y répondre.</p>
      </div>
    </div>
  </body>
</html>`
