package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// SeasonDigestData feeds the weekly progress digest template.
type SeasonDigestData struct {
	Season      string
	ShowCount   int
	AvgProgress int
	DoneCount   int
	BusyCount   int
	TodoCount   int
}

// SendSeasonDigestEmail mails the weekly season progress digest (async so the
// scheduler tick is not blocked by SMTP).
func SendSeasonDigestEmail(to []string, data SeasonDigestData) {
	go func() {
		tmplPath := "templates/season_digest.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("digest template load failed: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("digest template render failed: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to...)
		m.SetHeader("Subject", "Season progress digest "+data.Season)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("digest mail send failed: %v", err)
		}
	}()
}

// SendShowReadyEmail sends a short plain-text note when a show's checklist
// reaches 100%.
func SendShowReadyEmail(to []string, showTitle, season string) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		addr := host + ":" + os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		e := email.NewEmail()
		e.From = from
		e.To = to
		e.Subject = fmt.Sprintf("Show complete: %s (%s)", showTitle, season)
		e.Text = []byte(fmt.Sprintf("All checklist items for '%s' in season %s are done. The show is ready for the website.", showTitle, season))
		if err := e.Send(addr, smtp.PlainAuth("", username, password, host)); err != nil {
			log.Printf("ready mail send failed: %v", err)
		}
	}()
}
