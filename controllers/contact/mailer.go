package contactcontroller

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

// forwardMessage emails a contact submission to the configured inbox.
// Single attempt; failures are logged and swallowed so the public request
// never depends on SMTP being up.
func forwardMessage(message models.ContactMessage) {
	host := os.Getenv("SMTP_HOST")
	forwardTo := os.Getenv("CONTACT_FORWARD_TO")
	if host == "" || forwardTo == "" {
		log.Println("📭 SMTP forwarding not configured, skipping")
		return
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")

	m := gomail.NewMessage()
	m.SetHeader("From", user)
	m.SetHeader("To", forwardTo)
	m.SetHeader("Reply-To", message.Email)
	m.SetHeader("Subject", fmt.Sprintf("New contact message from %s", message.Name))
	m.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nEmail: %s\n\n%s\n", message.Name, message.Email, message.Message,
	))

	d := gomail.NewDialer(host, port, user, pass)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("❌ Failed to forward contact message %s: %v", message.ID, err)
		return
	}
	log.Printf("✉️ Forwarded contact message %s to %s", message.ID, forwardTo)
}
